package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

const dateLayout = "2006-01-02"

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *ReservationGormRepository) GetShopByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "shop", ID: id.String()}
		}
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Treatment
// --------------------------------------------------

func (r *ReservationGormRepository) GetTreatment(
	ctx context.Context,
	shopID uuid.UUID,
	treatmentID uuid.UUID,
) (*models.Treatment, error) {

	var treatment models.Treatment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", treatmentID, shopID).
		First(&treatment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "treatment", ID: treatmentID.String()}
		}
		return nil, err
	}
	return &treatment, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

// lockKey folds (shopID, date) into the 64-bit key space of Postgres
// advisory locks. Concurrent creates for the same shop and day serialize on
// this key across all service instances.
func lockKey(shopID uuid.UUID, date time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(shopID.String()))
	h.Write([]byte(date.Format(dateLayout)))
	return int64(h.Sum64())
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serialize check-then-insert per (shop, date). The lock is released
		// with the transaction.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			lockKey(res.ShopID, res.Date),
		).Error; err != nil {
			return err
		}

		var conflict models.Reservation
		err := tx.
			Where(
				"shop_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
				res.ShopID,
				res.Date.Format(dateLayout),
				domain.ActiveStatuses(),
				res.EndTime,
				res.StartTime,
			).
			Order("start_time ASC").
			First(&conflict).Error

		if err == nil {
			return domain.ConflictError{Start: conflict.StartTime, End: conflict.EndTime}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(res).Error; err != nil {
			// The exclusion constraint is the backstop; surface its
			// violation the same way as a lost race.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
				return domain.ConflictError{Start: res.StartTime, End: res.EndTime}
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "reservation", ID: id.String()}
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) FindActiveByShopAndDate(
	ctx context.Context,
	shopID uuid.UUID,
	date time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"shop_id = ? AND date = ? AND status IN ?",
			shopID,
			date.Format(dateLayout),
			domain.ActiveStatuses(),
		).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListByMember(
	ctx context.Context,
	memberID uuid.UUID,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("date DESC, start_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListByShop(
	ctx context.Context,
	shopID uuid.UUID,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("date DESC, start_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
