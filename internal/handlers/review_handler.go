package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/httpresp"
	"github.com/jellomark/beautishop-scheduler/internal/middleware"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Content       string    `json:"content" binding:"max=500"`
}

// Create lets a member review their own completed reservation. One review
// per reservation; the shop's rating aggregate is recomputed in the same
// transaction.
func (h *ReviewHandler) Create(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var reservation models.Reservation
	if err := h.db.First(&reservation, "id = ?", req.ReservationID).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return
	}

	if reservation.MemberID != memberID {
		httperr.Forbidden(c, "unauthorized_reservation_access", "Reservation belongs to someone else.")
		return
	}

	if reservation.Status != string(domain.StatusCompleted) {
		httperr.BadRequest(c, "reservation_not_completed", "Only completed reservations can be reviewed.")
		return
	}

	review := models.Review{
		ShopID:        reservation.ShopID,
		MemberID:      memberID,
		ReservationID: reservation.ID,
		Rating:        req.Rating,
		Content:       req.Content,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recalcShopRating(tx, reservation.ShopID)
	})
	if err != nil {
		// The unique index on reservation_id rejects a second review.
		httperr.Conflict(c, "review_already_exists", "This reservation has already been reviewed.")
		return
	}

	httpresp.Created(c, review)
}

// GET /shops/:shopId/reviews
func (h *ReviewHandler) ListByShop(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var reviews []models.Review
	if err := h.db.Where("shop_id = ?", shopID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

func recalcShopRating(tx *gorm.DB, shopID uuid.UUID) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("shop_id = ?", shopID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.Shop{}).
		Where("id = ?", shopID).
		Updates(map[string]any{
			"average_rating": agg.Avg,
			"review_count":   agg.Count,
		}).Error
}
