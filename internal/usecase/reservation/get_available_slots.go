package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/clock"
	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
)

type GetAvailableSlotsInput struct {
	ShopID      uuid.UUID
	TreatmentID uuid.UUID
	Date        string // 2006-01-02
}

type AvailableSlotsResult struct {
	Date      time.Time     `json:"date"`
	OpenTime  time.Time     `json:"open_time"`
	CloseTime time.Time     `json:"close_time"`
	Slots     []domain.Slot `json:"slots"`
}

type GetAvailableSlots struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetAvailableSlots(repo domain.Repository, clk clock.Clock) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, clock: clk}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in GetAvailableSlotsInput,
) (*AvailableSlotsResult, error) {

	loc := uc.clock.Now().Location()
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
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

	open, close, ok := schedule.HoursOn(date)
	if !ok {
		return &AvailableSlotsResult{Date: date, Slots: []domain.Slot{}}, nil
	}

	active, err := uc.repo.FindActiveByShopAndDate(ctx, in.ShopID, date)
	if err != nil {
		return nil, err
	}

	slots := domain.ComputeSlots(open, close, treatment.DurationMin, domain.ActiveRanges(active))
	if slots == nil {
		slots = []domain.Slot{}
	}

	return &AvailableSlotsResult{
		Date:      date,
		OpenTime:  open,
		CloseTime: close,
		Slots:     slots,
	}, nil
}
