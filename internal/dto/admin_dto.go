package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdminArtist struct {
	ID           uuid.UUID       `json:"id"`
	StoreName    string          `json:"storeName"`
	Commissions  decimal.Decimal `json:"commissions"`
	CreatedAt    time.Time       `json:"createdAt"`
	ArtworkCount int64           `json:"artworkCount"`
}

type AdminArtwork struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Available  bool            `json:"available"`
	CreatedAt  time.Time       `json:"createdAt"`
	ArtistName string          `json:"artistName"`
}

type AdminOrder struct {
	ID          uuid.UUID       `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	BuyerEmail  string          `json:"buyerEmail"`
}

type AdminStats struct {
	TotalUsers    int             `json:"totalUsers"`
	ActiveArtists int             `json:"activeArtists"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

type AdminDashboardResponse struct {
	Users    []UserResponse `json:"users"`
	Artists  []AdminArtist  `json:"artists"`
	Artworks []AdminArtwork `json:"artworks"`
	Orders   []AdminOrder   `json:"orders"`
	Stats    AdminStats     `json:"stats"`
}
