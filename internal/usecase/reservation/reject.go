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

type RejectReservation struct {
	transitioner
}

func NewRejectReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notify *notification.Dispatcher,
	invalids CacheInvalidator,
	clk clock.Clock,
) *RejectReservation {
	return &RejectReservation{transitioner{
		repo:     repo,
		audit:    auditDispatcher,
		notify:   notify,
		invalids: invalids,
		clock:    clk,
	}}
}

// Execute rejects a pending reservation. reason is mandatory and stored on
// the snapshot.
func (uc *RejectReservation) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	reservationID uuid.UUID,
	reason string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.ownerShop(ctx, ownerID, res)
	if err != nil {
		return nil, err
	}

	updated, err := uc.apply(ctx, *res, domain.StatusRejected, reason, ownerID, "reservation_rejected")
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notification.Message{
		UserID:   updated.MemberID,
		UserRole: "MEMBER",
		Title:    "Your reservation was declined",
		Body:     shop.Name + ": " + updated.RejectionReason,
		Type:     "RESERVATION_REJECTED",
		Data:     map[string]string{"reservationId": updated.ID.String()},
	})

	return updated, nil
}
