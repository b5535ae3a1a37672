package services

import (
	"context"
	"fmt"

	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Dashboard runs the four collection reads concurrently and derives the
// platform totals from them. Revenue ignores cancelled orders.
func (s *AdminService) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	var (
		users    []models.User
		artists  []dto.AdminArtist
		artworks []dto.AdminArtwork
		orders   []dto.AdminOrder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Order("created_at DESC").Find(&users).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Artist{}).
			Select(`artists.id, artists.store_name, artists.commissions, artists.created_at,
				(SELECT COUNT(*) FROM artworks WHERE artworks.artist_id = artists.id) AS artwork_count`).
			Order("artists.created_at DESC").
			Scan(&artists).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Artwork{}).
			Select(`artworks.id, artworks.title, artworks.price, artworks.stock, artworks.available,
				artworks.created_at, artists.store_name AS artist_name`).
			Joins("LEFT JOIN artists ON artists.id = artworks.artist_id").
			Order("artworks.created_at DESC").
			Scan(&artworks).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Order{}).
			Select(`orders.id, orders.total_amount, orders.status, orders.created_at,
				users.email AS buyer_email`).
			Joins("LEFT JOIN users ON users.id = orders.user_id").
			Order("orders.created_at DESC").
			Scan(&orders).Error
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load admin dashboard: %w", err)
	}

	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status != models.OrderCancelled {
			revenue = revenue.Add(o.TotalAmount)
		}
	}

	userViews := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		userViews = append(userViews, dto.NewUserResponse(&users[i]))
	}

	return &dto.AdminDashboardResponse{
		Users:    userViews,
		Artists:  nonNil(artists),
		Artworks: nonNil(artworks),
		Orders:   nonNil(orders),
		Stats: dto.AdminStats{
			TotalUsers:    len(users),
			ActiveArtists: len(artists),
			TotalOrders:   len(orders),
			TotalRevenue:  revenue,
		},
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
