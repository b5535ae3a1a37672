package dto

import (
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateArtworkRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Stock       *int            `json:"stock" validate:"omitempty,min=0"`
	IsUnique    *bool           `json:"isUnique"`
	Available   *bool           `json:"available"`
	Featured    *bool           `json:"featured"`
	CategoryIDs []uuid.UUID     `json:"categoryIds"`
	Image       []string        `json:"image" validate:"omitempty,max=20,dive,required,max=2048"`
	Dimensions  string          `json:"dimensions" validate:"max=100"`
	Medium      string          `json:"medium" validate:"max=100"`
	Year        *int            `json:"year" validate:"omitempty,min=1000,max=3000"`
}

// UpdateArtworkRequest is a partial update; nil fields are left untouched.
// Stock is deliberately absent: only checkout writes it.
type UpdateArtworkRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	IsUnique    *bool            `json:"isUnique"`
	Available   *bool            `json:"available"`
	Featured    *bool            `json:"featured"`
	CategoryIDs *[]uuid.UUID     `json:"categoryIds"`
	Image       *[]string        `json:"image" validate:"omitempty,max=20,dive,required,max=2048"`
	Dimensions  *string          `json:"dimensions" validate:"omitempty,max=100"`
	Medium      *string          `json:"medium" validate:"omitempty,max=100"`
	Year        *int             `json:"year" validate:"omitempty,min=1000,max=3000"`
}

type ArtworkListResponse struct {
	Artworks   []models.Artwork `json:"artworks"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}
