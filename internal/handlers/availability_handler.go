package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/httpresp"
	usecase "github.com/jellomark/beautishop-scheduler/internal/usecase/reservation"
)

type AvailabilityHandler struct {
	slots *usecase.GetAvailableSlots
	dates *usecase.GetAvailableDates
}

func NewAvailabilityHandler(
	slots *usecase.GetAvailableSlots,
	dates *usecase.GetAvailableDates,
) *AvailabilityHandler {
	return &AvailabilityHandler{slots: slots, dates: dates}
}

// GET /shops/:shopId/availability/slots?treatment_id=...&date=YYYY-MM-DD
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	treatmentID, err := uuid.Parse(c.Query("treatment_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "Query param 'treatment_id' must be a UUID.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query param 'date' is required.")
		return
	}

	result, err := h.slots.Execute(c.Request.Context(), usecase.GetAvailableSlotsInput{
		ShopID:      shopID,
		TreatmentID: treatmentID,
		Date:        date,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, result)
}

// GET /shops/:shopId/availability/dates?treatment_id=...&month=YYYY-MM
func (h *AvailabilityHandler) Dates(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	treatmentID, err := uuid.Parse(c.Query("treatment_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "Query param 'treatment_id' must be a UUID.")
		return
	}

	month := c.Query("month")
	if month == "" {
		httperr.BadRequest(c, "missing_month", "Query param 'month' is required.")
		return
	}

	dates, err := h.dates.Execute(c.Request.Context(), usecase.GetAvailableDatesInput{
		ShopID:      shopID,
		TreatmentID: treatmentID,
		YearMonth:   month,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, dates)
}
