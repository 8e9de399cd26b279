package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jellomark/beautishop-scheduler/internal/models"
)

type ReservationDTO struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	MemberID    uuid.UUID `json:"member_id"`
	TreatmentID uuid.UUID `json:"treatment_id"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Status          string `json:"status"`
	Memo            string `json:"memo,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromReservation(r models.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:              r.ID,
		ShopID:          r.ShopID,
		MemberID:        r.MemberID,
		TreatmentID:     r.TreatmentID,
		Date:            r.Date.Format("2006-01-02"),
		StartTime:       r.StartTime.Format("15:04"),
		EndTime:         r.EndTime.Format("15:04"),
		Status:          r.Status,
		Memo:            r.Memo,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromReservations(rs []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r))
	}
	return out
}
