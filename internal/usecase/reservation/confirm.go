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

type ConfirmReservation struct {
	transitioner
}

func NewConfirmReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notify *notification.Dispatcher,
	invalids CacheInvalidator,
	clk clock.Clock,
) *ConfirmReservation {
	return &ConfirmReservation{transitioner{
		repo:     repo,
		audit:    auditDispatcher,
		notify:   notify,
		invalids: invalids,
		clock:    clk,
	}}
}

func (uc *ConfirmReservation) Execute(
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

	updated, err := uc.apply(ctx, *res, domain.StatusConfirmed, "", ownerID, "reservation_confirmed")
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notification.Message{
		UserID:   updated.MemberID,
		UserRole: "MEMBER",
		Title:    "Your reservation is confirmed",
		Body:     shop.Name + " " + updated.Date.Format("2006-01-02") + " " + updated.StartTime.Format("15:04"),
		Type:     "RESERVATION_CONFIRMED",
		Data:     map[string]string{"reservationId": updated.ID.String()},
	})

	return updated, nil
}
