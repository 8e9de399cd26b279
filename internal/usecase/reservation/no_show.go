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

type NoShowReservation struct {
	transitioner
}

func NewNoShowReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notify *notification.Dispatcher,
	invalids CacheInvalidator,
	clk clock.Clock,
) *NoShowReservation {
	return &NoShowReservation{transitioner{
		repo:     repo,
		audit:    auditDispatcher,
		notify:   notify,
		invalids: invalids,
		clock:    clk,
	}}
}

func (uc *NoShowReservation) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	reservationID uuid.UUID,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.ownerShop(ctx, ownerID, res); err != nil {
		return nil, err
	}

	return uc.apply(ctx, *res, domain.StatusNoShow, "", ownerID, "reservation_no_show")
}
