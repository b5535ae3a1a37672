package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Artist is the seller profile linked one-to-one with a User.
type Artist struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	StoreName   string          `gorm:"size:100;not null;uniqueIndex" json:"storeName"`
	Bio         string          `gorm:"type:text" json:"bio"`
	BirthDate   *time.Time      `json:"birthDate,omitempty"`
	Commissions decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"commissions"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	User        *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Artworks    []Artwork       `gorm:"foreignKey:ArtistID" json:"artworks,omitempty"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}
