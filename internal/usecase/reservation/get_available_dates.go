package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
)

type GetAvailableDatesInput struct {
	ShopID      uuid.UUID
	TreatmentID uuid.UUID
	YearMonth   string // 2006-01
}

type GetAvailableDates struct {
	repo  domain.Repository
	cache AvailabilityCache
	clock clock.Clock
}

func NewGetAvailableDates(
	repo domain.Repository,
	cache AvailabilityCache,
	clk clock.Clock,
) *GetAvailableDates {
	return &GetAvailableDates{repo: repo, cache: cache, clock: clk}
}

// Execute returns the dates of the month with at least one bookable slot,
// starting from today. The result is advisory: a listed date can fill up
// before the member books.
func (uc *GetAvailableDates) Execute(
	ctx context.Context,
	in GetAvailableDatesInput,
) ([]string, error) {

	now := uc.clock.Now()
	loc := now.Location()

	month, err := time.ParseInLocation("2006-01", in.YearMonth, loc)
	if err != nil {
		return nil, domain.ValidationError{Field: "year_month", Reason: "must be formatted as YYYY-MM"}
	}

	today := clock.DateOf(now)
	from := month
	if from.Before(today) {
		from = today
	}
	to := month.AddDate(0, 1, -1)

	if from.After(to) {
		return []string{}, nil
	}

	fromStr := from.Format("2006-01-02")
	toStr := to.Format("2006-01-02")

	if dates, hit := uc.cache.GetDates(ctx, in.ShopID, in.TreatmentID, fromStr, toStr); hit {
		return dates, nil
	}

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	treatment, err := uc.repo.GetTreatment(ctx, in.ShopID, in.TreatmentID)
	if err != nil {
		return nil, err
	}

	schedule, err := domain.ParseOperatingSchedule(shop.OperatingHoursMap())
	if err != nil {
		return nil, err
	}

	var lookupErr error
	available := domain.ComputeAvailableDates(
		schedule,
		treatment.DurationMin,
		from,
		to,
		func(date time.Time) []domain.TimeRange {
			active, err := uc.repo.FindActiveByShopAndDate(ctx, in.ShopID, date)
			if err != nil {
				lookupErr = err
				return nil
			}
			return domain.ActiveRanges(active)
		},
	)
	if lookupErr != nil {
		return nil, lookupErr
	}

	dates := make([]string, 0, len(available))
	for _, d := range available {
		dates = append(dates, d.Format("2006-01-02"))
	}

	uc.cache.SetDates(ctx, in.ShopID, in.TreatmentID, fromStr, toStr, dates)

	return dates, nil
}
