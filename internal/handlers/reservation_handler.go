package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/dto"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/httpresp"
	"github.com/jellomark/beautishop-scheduler/internal/middleware"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	usecase "github.com/jellomark/beautishop-scheduler/internal/usecase/reservation"
)

type ReservationHandler struct {
	create   *usecase.CreateReservation
	confirm  *usecase.ConfirmReservation
	reject   *usecase.RejectReservation
	cancel   *usecase.CancelReservation
	complete *usecase.CompleteReservation
	noShow   *usecase.NoShowReservation

	get        *usecase.GetReservation
	listMember *usecase.ListMemberReservations
	listShop   *usecase.ListShopReservations
}

func NewReservationHandler(
	create *usecase.CreateReservation,
	confirm *usecase.ConfirmReservation,
	reject *usecase.RejectReservation,
	cancel *usecase.CancelReservation,
	complete *usecase.CompleteReservation,
	noShow *usecase.NoShowReservation,
	get *usecase.GetReservation,
	listMember *usecase.ListMemberReservations,
	listShop *usecase.ListShopReservations,
) *ReservationHandler {
	return &ReservationHandler{
		create:     create,
		confirm:    confirm,
		reject:     reject,
		cancel:     cancel,
		complete:   complete,
		noShow:     noShow,
		get:        get,
		listMember: listMember,
		listShop:   listShop,
	}
}

// --------- Requests ---------

type CreateReservationRequest struct {
	ShopID      uuid.UUID `json:"shop_id" binding:"required"`
	TreatmentID uuid.UUID `json:"treatment_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	StartTime   string    `json:"start_time" binding:"required"`
	Memo        string    `json:"memo"`
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// --------- Member ---------

func (h *ReservationHandler) Create(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.create.Execute(c.Request.Context(), usecase.CreateReservationInput{
		ShopID:      req.ShopID,
		MemberID:    memberID,
		TreatmentID: req.TreatmentID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		Memo:        req.Memo,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, dto.FromReservation(*res))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), memberID, reservationID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, dto.FromReservation(*res))
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	reservations, err := h.listMember.Execute(c.Request.Context(), memberID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, dto.FromReservations(reservations))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}

	res, err := h.get.Execute(c.Request.Context(), callerID, reservationID)
	if err != nil {
		if httperr.IsBusiness(err, "unauthorized_reservation_access") {
			httperr.Forbidden(c, "unauthorized_reservation_access", "Reservation belongs to someone else.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, dto.FromReservation(*res))
}

// --------- Owner ---------

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.ownerTransition(c, func(c *gin.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
		return h.confirm.Execute(c.Request.Context(), ownerID, reservationID)
	})
}

func (h *ReservationHandler) Reject(c *gin.Context) {
	var req RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rejection reason is required.")
		return
	}

	h.ownerTransition(c, func(c *gin.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
		return h.reject.Execute(c.Request.Context(), ownerID, reservationID, req.Reason)
	})
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	h.ownerTransition(c, func(c *gin.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
		return h.complete.Execute(c.Request.Context(), ownerID, reservationID)
	})
}

func (h *ReservationHandler) NoShow(c *gin.Context) {
	h.ownerTransition(c, func(c *gin.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error) {
		return h.noShow.Execute(c.Request.Context(), ownerID, reservationID)
	})
}

func (h *ReservationHandler) ListByShop(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	reservations, err := h.listShop.Execute(c.Request.Context(), ownerID, shopID)
	if err != nil {
		if httperr.IsBusiness(err, "unauthorized_reservation_access") {
			httperr.Forbidden(c, "unauthorized_reservation_access", "Shop belongs to a different owner.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, dto.FromReservations(reservations))
}

// --------- Helpers ---------

type transitionFn func(c *gin.Context, ownerID, reservationID uuid.UUID) (*models.Reservation, error)

func (h *ReservationHandler) ownerTransition(c *gin.Context, fn transitionFn) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	reservationID, ok := parseReservationID(c)
	if !ok {
		return
	}

	res, err := fn(c, ownerID, reservationID)
	if err != nil {
		if httperr.IsBusiness(err, "unauthorized_reservation_access") {
			httperr.Forbidden(c, "unauthorized_reservation_access", "Reservation belongs to a different shop.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, dto.FromReservation(*res))
}

func parseReservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Reservation id must be a UUID.")
		return uuid.Nil, false
	}
	return id, true
}
