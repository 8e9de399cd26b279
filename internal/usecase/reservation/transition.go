package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/audit"
	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/metrics"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	"github.com/jellomark/beautishop-scheduler/internal/notification"
)

// transitioner carries the shared plumbing of every status-change use case:
// apply the lifecycle transition, persist the fresh snapshot, then fan out
// metrics, cache invalidation, and audit.
type transitioner struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notify   *notification.Dispatcher
	invalids CacheInvalidator
	clock    clock.Clock
}

func (t *transitioner) apply(
	ctx context.Context,
	res models.Reservation,
	target domain.Status,
	reason string,
	actor uuid.UUID,
	action string,
) (*models.Reservation, error) {

	updated, err := domain.Transition(res, target, reason, t.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := t.repo.UpdateReservation(ctx, &updated); err != nil {
		return nil, err
	}

	metrics.IncStatusTransition(string(target))
	t.invalids.InvalidateShop(ctx, updated.ShopID)

	t.audit.Dispatch(audit.Event{
		ShopID:   updated.ShopID,
		UserID:   &actor,
		Action:   action,
		Entity:   "reservation",
		EntityID: &updated.ID,
	})

	return &updated, nil
}

// ownerShop authorizes an owner action: the reservation's shop must belong
// to the acting owner.
func (t *transitioner) ownerShop(
	ctx context.Context,
	ownerID uuid.UUID,
	res *models.Reservation,
) (*models.Shop, error) {

	shop, err := t.repo.GetShopByID(ctx, res.ShopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, httperr.ErrBusiness("unauthorized_reservation_access")
	}
	return shop, nil
}
