package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

// ===============================
// Read-side use cases
// ===============================

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

// Execute returns the reservation if the caller is its member or the owner
// of its shop.
func (uc *GetReservation) Execute(
	ctx context.Context,
	callerID uuid.UUID,
	reservationID uuid.UUID,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if res.MemberID == callerID {
		return res, nil
	}

	shop, err := uc.repo.GetShopByID(ctx, res.ShopID)
	if err != nil || shop.OwnerID != callerID {
		return nil, httperr.ErrBusiness("unauthorized_reservation_access")
	}

	return res, nil
}

type ListMemberReservations struct {
	repo domain.Repository
}

func NewListMemberReservations(repo domain.Repository) *ListMemberReservations {
	return &ListMemberReservations{repo: repo}
}

func (uc *ListMemberReservations) Execute(
	ctx context.Context,
	memberID uuid.UUID,
) ([]models.Reservation, error) {
	return uc.repo.ListByMember(ctx, memberID)
}

type ListShopReservations struct {
	repo domain.Repository
}

func NewListShopReservations(repo domain.Repository) *ListShopReservations {
	return &ListShopReservations{repo: repo}
}

func (uc *ListShopReservations) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	shopID uuid.UUID,
) ([]models.Reservation, error) {

	shop, err := uc.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, httperr.ErrBusiness("unauthorized_reservation_access")
	}

	return uc.repo.ListByShop(ctx, shopID)
}
