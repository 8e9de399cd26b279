package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetShopByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Shop, error)

	// -------- Treatment --------
	GetTreatment(
		ctx context.Context,
		shopID uuid.UUID,
		treatmentID uuid.UUID,
	) (*models.Treatment, error)

	// -------- Reservation (create / conflict) --------

	// CreateReservation persists a new reservation. The overlap check and
	// the insert are atomic with respect to concurrent creates for the same
	// shop and date: a losing concurrent writer gets ConflictError.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Reservation (read) --------
	GetReservationByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Reservation, error)

	FindActiveByShopAndDate(
		ctx context.Context,
		shopID uuid.UUID,
		date time.Time,
	) ([]models.Reservation, error)

	ListByMember(
		ctx context.Context,
		memberID uuid.UUID,
	) ([]models.Reservation, error)

	ListByShop(
		ctx context.Context,
		shopID uuid.UUID,
	) ([]models.Reservation, error)

	// -------- Reservation (state change) --------
	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error
}
