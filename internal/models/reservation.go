package models

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ShopID uuid.UUID `gorm:"type:uuid;index:idx_reservations_shop_date" json:"shop_id"`
	Shop   Shop      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MemberID uuid.UUID `gorm:"type:uuid;index" json:"member_id"`
	Member   User      `gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TreatmentID uuid.UUID `gorm:"type:uuid" json:"treatment_id"`
	Treatment   Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date      time.Time `gorm:"type:date;index:idx_reservations_shop_date" json:"date"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Memo            string `gorm:"size:200" json:"memo,omitempty"`
	RejectionReason string `gorm:"size:200" json:"rejection_reason,omitempty"`

	// Stamped by the domain layer from the injected clock, never by gorm.
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
