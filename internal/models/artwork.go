package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Artwork is a listing owned by an Artist. Stock is only decremented by
// checkout; Available flips to false when a purchase drains the stock.
type Artwork struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"size:200;not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Price       decimal.Decimal             `gorm:"type:decimal(12,2);not null;index" json:"price"`
	Stock       int                         `gorm:"not null" json:"stock"`
	IsUnique    bool                        `gorm:"not null" json:"isUnique"`
	Available   bool                        `gorm:"not null;index" json:"available"`
	Featured    bool                        `gorm:"not null;index" json:"featured"`
	Image       datatypes.JSONSlice[string] `json:"image"`
	Dimensions  string                      `gorm:"size:100" json:"dimensions"`
	Medium      string                      `gorm:"size:100" json:"medium"`
	Year        *int                        `json:"year,omitempty"`
	ArtistID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"artistId"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
	Artist      *Artist                     `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Categories  []Category                  `gorm:"many2many:artwork_categories;" json:"categories"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	if a.Image == nil {
		a.Image = datatypes.JSONSlice[string]{}
	}
	return nil
}

// ArtworkCategory is the join row between artworks and categories.
type ArtworkCategory struct {
	ArtworkID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ArtworkCategory) TableName() string {
	return "artwork_categories"
}
