package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/identity"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOutOfStock    = errors.New("artwork is out of stock")
	ErrPriceMismatch = errors.New("price does not match current listing")
)

type OrderService struct {
	db      *gorm.DB
	pricing Pricing
}

func NewOrderService(db *gorm.DB, pricing Pricing) *OrderService {
	return &OrderService{db: db, pricing: pricing}
}

// Checkout turns a cart into an order. The shipping address, the order, its
// items and every stock decrement are written in one transaction; any failing
// item rolls all of them back. Returned errors wrap ErrEmptyCart,
// ErrArtworkNotFound, ErrOutOfStock or ErrPriceMismatch and carry the item
// detail for logging.
func (s *OrderService) Checkout(ctx context.Context, who identity.Identity, req *dto.CheckoutRequest) (*dto.OrderView, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		address := req.ShippingAddress.ToModel(who.UserID)
		if err := tx.Create(&address).Error; err != nil {
			return fmt.Errorf("failed to create shipping address: %w", err)
		}

		order = models.Order{
			UserID:            who.UserID,
			ShippingAddressID: address.ID,
			TotalAmount:       req.TotalAmount,
			Status:            models.OrderPending,
			ShippingAddress:   &address,
		}
		if err := tx.Omit("ShippingAddress").Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		subtotal := decimal.Zero
		for i, line := range req.Items {
			item, err := s.purchase(tx, order.ID, i, line)
			if err != nil {
				return err
			}
			subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			order.Items = append(order.Items, *item)
		}

		quote := s.pricing.Quote(subtotal)
		if !s.pricing.Matches(req.TotalAmount, quote.Total) {
			return fmt.Errorf("%w: client total %s, computed %s", ErrPriceMismatch, req.TotalAmount, quote.Total)
		}
		if !order.TotalAmount.Equal(quote.Total) {
			order.TotalAmount = quote.Total
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("total_amount", quote.Total).Error; err != nil {
				return fmt.Errorf("failed to store order total: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := dto.NewOrderView(&order)
	return &view, nil
}

// purchase records one cart line at the live artwork price and decrements
// stock with a conditional update so concurrent checkouts cannot oversell.
func (s *OrderService) purchase(tx *gorm.DB, orderID uuid.UUID, idx int, line dto.CheckoutItem) (*models.OrderItem, error) {
	var artwork models.Artwork
	err := tx.Select("id", "title", "price", "stock", "available", "image").
		First(&artwork, "id = ?", line.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item %d (%s)", ErrArtworkNotFound, idx, line.ID)
		}
		return nil, fmt.Errorf("failed to load artwork %s: %w", line.ID, err)
	}

	if !artwork.Available || artwork.Stock < line.Quantity {
		return nil, fmt.Errorf("%w: item %d %q requested %d, stock %d",
			ErrOutOfStock, idx, artwork.Title, line.Quantity, artwork.Stock)
	}
	if !s.pricing.Matches(line.Price, artwork.Price) {
		return nil, fmt.Errorf("%w: item %d %q client price %s, listed %s",
			ErrPriceMismatch, idx, artwork.Title, line.Price, artwork.Price)
	}

	item := models.OrderItem{
		OrderID:   orderID,
		ArtworkID: artwork.ID,
		Quantity:  line.Quantity,
		Price:     artwork.Price,
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}

	res := tx.Model(&models.Artwork{}).
		Where("id = ? AND available = ? AND stock >= ?", artwork.ID, true, line.Quantity).
		Updates(map[string]interface{}{
			"stock":     gorm.Expr("stock - ?", line.Quantity),
			"available": gorm.Expr("stock - ? > 0", line.Quantity),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to decrement stock for %s: %w", artwork.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: item %d %q lost a concurrent stock race", ErrOutOfStock, idx, artwork.Title)
	}

	item.Artwork = &artwork
	return &item, nil
}

// ListOrders returns the caller's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, who identity.Identity) ([]dto.OrderView, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Scopes(identity.ForUser(who.UserID)).
		Preload("ShippingAddress").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Artwork", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title", "image") }).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	views := make([]dto.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, dto.NewOrderView(&orders[i]))
	}
	return views, nil
}

func (s *OrderService) ListAddresses(ctx context.Context, who identity.Identity) ([]models.ShippingAddress, error) {
	addresses := []models.ShippingAddress{}
	err := s.db.WithContext(ctx).
		Scopes(identity.ForUser(who.UserID)).
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *OrderService) CreateAddress(ctx context.Context, who identity.Identity, req *dto.AddressRequest) (*models.ShippingAddress, error) {
	address := req.ToModel(who.UserID)
	if err := s.db.WithContext(ctx).Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &address, nil
}
