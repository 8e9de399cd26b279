package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

func storedReservation(shopID, memberID uuid.UUID, status domain.Status) *models.Reservation {
	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	return &models.Reservation{
		ID:        uuid.New(),
		ShopID:    shopID,
		MemberID:  memberID,
		Date:      time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    string(status),
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	}
}

func TestConfirmReservation(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)
	repo.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil)

	uc := NewConfirmReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	updated, err := uc.Execute(context.Background(), shop.OwnerID, res.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)
	assert.Equal(t, testNow, updated.UpdatedAt)

	// The stored snapshot passed to the use case is not mutated.
	assert.Equal(t, string(domain.StatusPending), res.Status)
}

func TestConfirmReservation_WrongOwner(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)

	uc := NewConfirmReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), uuid.New(), res.ID)

	assert.True(t, httperr.IsBusiness(err, "unauthorized_reservation_access"))
	repo.AssertNotCalled(t, "UpdateReservation", mock.Anything, mock.Anything)
}

func TestConfirmReservation_AlreadyConfirmed(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusConfirmed)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)

	uc := NewConfirmReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), shop.OwnerID, res.ID)

	var tErr domain.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, domain.StatusConfirmed, tErr.From)
}

func TestRejectReservation(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)
	repo.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil)

	uc := NewRejectReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	updated, err := uc.Execute(context.Background(), shop.OwnerID, res.ID, "fully booked")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRejected), updated.Status)
	assert.Equal(t, "fully booked", updated.RejectionReason)
}

func TestRejectReservation_BlankReason(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)

	uc := NewRejectReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), shop.OwnerID, res.ID, "   ")

	var vErr domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rejection_reason", vErr.Field)
	repo.AssertNotCalled(t, "UpdateReservation", mock.Anything, mock.Anything)
}

func TestCancelReservation(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	memberID := uuid.New()
	res := storedReservation(shop.ID, memberID, domain.StatusConfirmed)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)
	repo.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil)

	uc := NewCancelReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	updated, err := uc.Execute(context.Background(), memberID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), updated.Status)
}

func TestCancelReservation_NotTheMember(t *testing.T) {
	repo := new(mockRepo)
	res := storedReservation(uuid.New(), uuid.New(), domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)

	uc := NewCancelReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), uuid.New(), res.ID)

	assert.True(t, httperr.IsBusiness(err, "unauthorized_reservation_access"))
	repo.AssertNotCalled(t, "UpdateReservation", mock.Anything, mock.Anything)
}

func TestCompleteReservation(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusConfirmed)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)
	repo.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil)

	uc := NewCompleteReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	updated, err := uc.Execute(context.Background(), shop.OwnerID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), updated.Status)
}

func TestNoShowReservation_FromPendingFails(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	res := storedReservation(shop.ID, uuid.New(), domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)

	uc := NewNoShowReservation(repo, nil, nil, noopCache{}, clock.Fixed(testNow))

	_, err := uc.Execute(context.Background(), shop.OwnerID, res.ID)

	var tErr domain.InvalidTransitionError
	assert.ErrorAs(t, err, &tErr)
}

func TestGetReservation_Authorization(t *testing.T) {
	repo := new(mockRepo)
	shop := testShop()
	memberID := uuid.New()
	res := storedReservation(shop.ID, memberID, domain.StatusPending)

	repo.On("GetReservationByID", mock.Anything, res.ID).Return(res, nil)
	repo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil)

	uc := NewGetReservation(repo)

	// The member sees their own reservation.
	got, err := uc.Execute(context.Background(), memberID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	// So does the shop owner.
	got, err = uc.Execute(context.Background(), shop.OwnerID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	// Anyone else does not.
	_, err = uc.Execute(context.Background(), uuid.New(), res.ID)
	assert.True(t, httperr.IsBusiness(err, "unauthorized_reservation_access"))
}
