package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Phone       string `gorm:"size:20" json:"phone"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:500" json:"description"`

	// Weekly operating hours as a weekday -> "HH:MM-HH:MM" | "closed" map,
	// validated by domain/reservation.ParseOperatingSchedule before writes.
	OperatingHours string `gorm:"type:jsonb;default:'{}'" json:"operating_hours"`

	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	ReviewCount   int     `gorm:"default:0" json:"review_count"`

	Images []ShopImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Shop) OperatingHoursMap() map[string]string {
	out := map[string]string{}
	if s.OperatingHours == "" {
		return out
	}
	_ = json.Unmarshal([]byte(s.OperatingHours), &out)
	return out
}

type ShopImage struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;index" json:"shop_id"`

	URL      string `gorm:"size:500;not null" json:"url"`
	Position int    `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *ShopImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
