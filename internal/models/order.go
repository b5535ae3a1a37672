package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending    = "PENDING"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

// Order is created once per checkout with status PENDING.
type Order struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"userId"`
	ShippingAddressID uuid.UUID        `gorm:"type:uuid;not null" json:"shippingAddressId"`
	TotalAmount       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	Status            string           `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt         time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	User              *User            `gorm:"foreignKey:UserID" json:"-"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID" json:"shippingAddress,omitempty"`
	Items             []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}

// OrderItem stores the price at purchase time. It is never recomputed from
// the live artwork price.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"orderId"`
	ArtworkID uuid.UUID       `gorm:"type:uuid;not null;index" json:"artworkId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	Order     *Order          `gorm:"foreignKey:OrderID" json:"-"`
	Artwork   *Artwork        `gorm:"foreignKey:ArtworkID" json:"-"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}
