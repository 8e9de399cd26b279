package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ShopID   uuid.UUID `gorm:"type:uuid;index" json:"shop_id"`
	MemberID uuid.UUID `gorm:"type:uuid" json:"member_id"`

	// One review per completed reservation.
	ReservationID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"reservation_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Content string `gorm:"size:500" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
