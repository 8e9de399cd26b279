package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/audit"
	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	"github.com/jellomark/beautishop-scheduler/internal/notification"
)

type CompleteReservation struct {
	transitioner
}

func NewCompleteReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notify *notification.Dispatcher,
	invalids CacheInvalidator,
	clk clock.Clock,
) *CompleteReservation {
	return &CompleteReservation{transitioner{
		repo:     repo,
		audit:    auditDispatcher,
		notify:   notify,
		invalids: invalids,
		clock:    clk,
	}}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	reservationID uuid.UUID,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.ownerShop(ctx, ownerID, res)
	if err != nil {
		return nil, err
	}

	updated, err := uc.apply(ctx, *res, domain.StatusCompleted, "", ownerID, "reservation_completed")
	if err != nil {
		return nil, err
	}

	// Completion unlocks the member's review for this visit.
	uc.notify.Dispatch(notification.Message{
		UserID:   updated.MemberID,
		UserRole: "MEMBER",
		Title:    "Thanks for your visit",
		Body:     "How was " + shop.Name + "? Leave a review.",
		Type:     "RESERVATION_COMPLETED",
		Data:     map[string]string{"reservationId": updated.ID.String()},
	})

	return updated, nil
}
