package dto

import (
	"time"

	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CheckoutItem struct {
	ID       uuid.UUID       `json:"id" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,min=1,max=1000"`
	Price    decimal.Decimal `json:"price" validate:"required,gt=0"`
}

type AddressRequest struct {
	AddressLine1 string  `json:"addressLine1" validate:"required,max=255"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=255"`
	City         string  `json:"city" validate:"required,max=100"`
	State        string  `json:"state" validate:"required,max=100"`
	PostalCode   string  `json:"postalCode" validate:"required,max=20"`
	Country      string  `json:"country" validate:"required,max=100"`
}

// ToModel builds an unsaved address owned by userID.
func (a AddressRequest) ToModel(userID uuid.UUID) models.ShippingAddress {
	return models.ShippingAddress{
		UserID:       userID,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}

type CheckoutRequest struct {
	Items           []CheckoutItem  `json:"items" validate:"max=100,dive"`
	ShippingAddress AddressRequest  `json:"shippingAddress"`
	TotalAmount     decimal.Decimal `json:"totalAmount" validate:"required,gt=0"`
}

type ArtworkSummary struct {
	ID    uuid.UUID                   `json:"id"`
	Title string                      `json:"title"`
	Image datatypes.JSONSlice[string] `json:"image"`
}

type OrderItemView struct {
	ID       uuid.UUID       `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Artwork  ArtworkSummary  `json:"artwork"`
}

type OrderView struct {
	ID              uuid.UUID               `json:"id"`
	Status          string                  `json:"status"`
	TotalAmount     decimal.Decimal         `json:"totalAmount"`
	CreatedAt       time.Time               `json:"createdAt"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress,omitempty"`
	Items           []OrderItemView         `json:"items"`
}

// NewOrderView expects Items.Artwork and ShippingAddress to be preloaded.
func NewOrderView(o *models.Order) OrderView {
	v := OrderView{
		ID:              o.ID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		CreatedAt:       o.CreatedAt,
		ShippingAddress: o.ShippingAddress,
		Items:           make([]OrderItemView, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		iv := OrderItemView{ID: it.ID, Quantity: it.Quantity, Price: it.Price}
		iv.Artwork.ID = it.ArtworkID
		if it.Artwork != nil {
			iv.Artwork.Title = it.Artwork.Title
			iv.Artwork.Image = it.Artwork.Image
		}
		v.Items = append(v.Items, iv)
	}
	return v
}
