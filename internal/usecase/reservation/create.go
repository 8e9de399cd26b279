package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/audit"
	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/metrics"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	"github.com/jellomark/beautishop-scheduler/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ShopID      uuid.UUID
	MemberID    uuid.UUID
	TreatmentID uuid.UUID

	Date      string // 2006-01-02
	StartTime string // 15:04
	Memo      string
}

// ======================================================
// USE CASE
// ======================================================

// CreateReservation coordinates booking creation: past-date guard, overlap
// check against the day's active reservations, then an atomic persist.
// Under concurrent attempts for overlapping ranges the store guarantees at
// most one winner; the loser sees ConflictError.
type CreateReservation struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notify   *notification.Dispatcher
	invalids CacheInvalidator
	clock    clock.Clock
}

func NewCreateReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notify *notification.Dispatcher,
	invalids CacheInvalidator,
	clk clock.Clock,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		audit:    auditDispatcher,
		notify:   notify,
		invalids: invalids,
		clock:    clk,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	now := uc.clock.Now()
	loc := now.Location()

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}

	if date.Before(clock.DateOf(now)) {
		return nil, domain.PastDateError{Date: date}
	}

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	// Resolves the treatment within the shop, so a treatment belonging to
	// another shop surfaces as not found.
	treatment, err := uc.repo.GetTreatment(ctx, in.ShopID, in.TreatmentID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.StartTime, loc)
	if err != nil {
		return nil, domain.ValidationError{Field: "start_time", Reason: "must be formatted as HH:MM"}
	}
	end := start.Add(time.Duration(treatment.DurationMin) * time.Minute)

	active, err := uc.repo.FindActiveByShopAndDate(ctx, in.ShopID, date)
	if err != nil {
		return nil, err
	}

	for _, existing := range active {
		if domain.Overlaps(start, end, existing.StartTime, existing.EndTime) {
			metrics.IncReservationConflict()
			return nil, domain.ConflictError{Start: existing.StartTime, End: existing.EndTime}
		}
	}

	res, err := domain.New(
		shop.ID,
		in.MemberID,
		in.TreatmentID,
		date,
		start,
		treatment.DurationMin,
		in.Memo,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateReservation(ctx, &res); err != nil {
		if _, conflict := err.(domain.ConflictError); conflict {
			metrics.IncReservationConflict()
		}
		return nil, err
	}

	metrics.IncReservationCreated()
	uc.invalids.InvalidateShop(ctx, shop.ID)

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &in.MemberID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	uc.notify.Dispatch(notification.Message{
		UserID:   shop.OwnerID,
		UserRole: "OWNER",
		Title:    "New reservation received",
		Body:     treatment.Name + " " + in.Date + " " + in.StartTime,
		Type:     "RESERVATION_CREATED",
		Data:     map[string]string{"reservationId": res.ID.String()},
	})

	return &res, nil
}
