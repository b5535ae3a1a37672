package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShippingAddress struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	AddressLine1 string    `gorm:"size:255;not null" json:"addressLine1"`
	AddressLine2 *string   `gorm:"size:255" json:"addressLine2,omitempty"`
	City         string    `gorm:"size:100;not null" json:"city"`
	State        string    `gorm:"size:100;not null" json:"state"`
	PostalCode   string    `gorm:"size:20;not null" json:"postalCode"`
	Country      string    `gorm:"size:100;not null" json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *ShippingAddress) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}
