package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Treatment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;index" json:"shop_id"`
	Shop   Shop      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
	Price       int64  `gorm:"not null" json:"price"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Treatment) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
