package dto

import (
	"time"

	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApplyArtistRequest struct {
	StoreName string `json:"storeName" validate:"required,min=2,max=100"`
	Bio       string `json:"bio" validate:"required,max=2000"`
}

type UpdateArtistProfileRequest struct {
	StoreName   *string          `json:"storeName" validate:"omitempty,min=2,max=100"`
	Bio         *string          `json:"bio" validate:"omitempty,max=2000"`
	BirthDate   *string          `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Commissions *decimal.Decimal `json:"commissions" validate:"omitempty,gte=0,lte=100"`
}

// ArtistSummary is the lightweight mode=list entry.
type ArtistSummary struct {
	ID        uuid.UUID `json:"id"`
	StoreName string    `json:"storeName"`
}

type ArtistOwner struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

type ArtistDirectoryEntry struct {
	ID           uuid.UUID       `json:"id"`
	StoreName    string          `json:"storeName"`
	Bio          string          `json:"bio"`
	Commissions  decimal.Decimal `json:"commissions"`
	CreatedAt    time.Time       `json:"createdAt"`
	User         ArtistOwner     `json:"user"`
	ArtworkCount int64           `json:"artworkCount"`
}

type ArtistDirectoryResponse struct {
	Artists    []ArtistDirectoryEntry `json:"artists"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}

// Sale is one order line for an artwork owned by the requesting artist.
type Sale struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"orderId"`
	OrderStatus  string          `json:"orderStatus"`
	ArtworkID    uuid.UUID       `json:"artworkId"`
	ArtworkTitle string          `json:"artworkTitle"`
	BuyerEmail   string          `json:"buyerEmail"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type ArtistStats struct {
	TotalArtworks   int64           `json:"totalArtworks"`
	TotalSalesCount int64           `json:"totalSalesCount"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

type ArtistDashboardResponse struct {
	Artist   models.Artist    `json:"artist"`
	Artworks []models.Artwork `json:"artworks"`
	Sales    []Sale           `json:"sales"`
	Stats    ArtistStats      `json:"stats"`
}

type ArtistProfileResponse struct {
	models.Artist
	ArtworkCount int64 `json:"artworkCount"`
}

type ApplyArtistResponse struct {
	Artist models.Artist `json:"artist"`
	// Token carries the SELLER role so the client need not log in again.
	Token string `json:"token"`
}
