package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/audit"
	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	"github.com/jellomark/beautishop-scheduler/internal/notification"
)

type CancelReservation struct {
	transitioner
}

func NewCancelReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notify *notification.Dispatcher,
	invalids CacheInvalidator,
	clk clock.Clock,
) *CancelReservation {
	return &CancelReservation{transitioner{
		repo:     repo,
		audit:    auditDispatcher,
		notify:   notify,
		invalids: invalids,
		clock:    clk,
	}}
}

// Execute cancels the member's own reservation, from PENDING or CONFIRMED.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	memberID uuid.UUID,
	reservationID uuid.UUID,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if res.MemberID != memberID {
		return nil, httperr.ErrBusiness("unauthorized_reservation_access")
	}

	updated, err := uc.apply(ctx, *res, domain.StatusCancelled, "", memberID, "reservation_cancelled")
	if err != nil {
		return nil, err
	}

	if shop, err := uc.repo.GetShopByID(ctx, updated.ShopID); err == nil {
		uc.notify.Dispatch(notification.Message{
			UserID:   shop.OwnerID,
			UserRole: "OWNER",
			Title:    "A reservation was cancelled",
			Body:     updated.Date.Format("2006-01-02") + " " + updated.StartTime.Format("15:04"),
			Type:     "RESERVATION_CANCELLED",
			Data:     map[string]string{"reservationId": updated.ID.String()},
		})
	}

	return updated, nil
}
