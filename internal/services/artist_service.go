package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beauxarts/marketplace-api/internal/cache"
	"github.com/beauxarts/marketplace-api/internal/catalog"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/identity"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrAlreadyArtist  = errors.New("you are already an artist")
	ErrStoreNameTaken = errors.New("store name already taken")
)

const topArtistsLimit = 10

type ArtistService struct {
	db                *gorm.DB
	tokens            *identity.TokenIssuer
	cache             CacheConfig
	defaultCommission decimal.Decimal
}

func NewArtistService(db *gorm.DB, tokens *identity.TokenIssuer, cacheCfg CacheConfig, defaultCommission decimal.Decimal) *ArtistService {
	return &ArtistService{db: db, tokens: tokens, cache: cacheCfg, defaultCommission: defaultCommission}
}

// ListTop returns the lightweight artist list used by navigation menus.
func (s *ArtistService) ListTop(ctx context.Context) ([]dto.ArtistSummary, error) {
	return cache.ReadThrough(ctx, s.cache.store(), "artists", "mode=list", s.cache.TTL, s.cache.Observe,
		func() ([]dto.ArtistSummary, error) {
			out := []dto.ArtistSummary{}
			err := s.db.WithContext(ctx).Model(&models.Artist{}).
				Select("id", "store_name").
				Order("store_name ASC").
				Limit(topArtistsLimit).
				Scan(&out).Error
			if err != nil {
				return nil, fmt.Errorf("failed to list artists: %w", err)
			}
			return out, nil
		})
}

type directoryRow struct {
	ID           uuid.UUID
	StoreName    string
	Bio          string
	Commissions  decimal.Decimal
	CreatedAt    time.Time
	UserFullname string
	UserEmail    string
	ArtworkCount int64
}

// Directory returns a page of artists with owner details and artwork counts.
func (s *ArtistService) Directory(ctx context.Context, page, limit int, search string) (*dto.ArtistDirectoryResponse, error) {
	key := "page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit) + "&search=" + strings.ToLower(search)
	return cache.ReadThrough(ctx, s.cache.store(), "artists", key, s.cache.TTL, s.cache.Observe,
		func() (*dto.ArtistDirectoryResponse, error) {
			return s.queryDirectory(ctx, page, limit, search)
		})
}

func (s *ArtistService) queryDirectory(ctx context.Context, page, limit int, search string) (*dto.ArtistDirectoryResponse, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		return db.Where("LOWER(artists.store_name) LIKE ? ESCAPE '\\'", "%"+catalog.EscapeLike(strings.ToLower(search))+"%")
	}

	var (
		total int64
		rows  []directoryRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Artist{}).Scopes(filter).Count(&total).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Artist{}).
			Select(`artists.id, artists.store_name, artists.bio, artists.commissions, artists.created_at,
				users.fullname AS user_fullname, users.email AS user_email,
				(SELECT COUNT(*) FROM artworks WHERE artworks.artist_id = artists.id) AS artwork_count`).
			Joins("JOIN users ON users.id = artists.user_id").
			Scopes(filter).
			Order("artists.created_at DESC").Order("artists.id ASC").
			Offset((page - 1) * limit).Limit(limit).
			Scan(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to query artist directory: %w", err)
	}

	entries := make([]dto.ArtistDirectoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.ArtistDirectoryEntry{
			ID:           r.ID,
			StoreName:    r.StoreName,
			Bio:          r.Bio,
			Commissions:  r.Commissions,
			CreatedAt:    r.CreatedAt,
			User:         dto.ArtistOwner{Fullname: r.UserFullname, Email: r.UserEmail},
			ArtworkCount: r.ArtworkCount,
		})
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &dto.ArtistDirectoryResponse{
		Artists:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Apply promotes the caller to SELLER and creates their artist profile in one
// transaction. It can succeed only once per user.
func (s *ArtistService) Apply(ctx context.Context, who identity.Identity, req *dto.ApplyArtistRequest) (*dto.ApplyArtistResponse, error) {
	storeName := strings.TrimSpace(req.StoreName)
	var (
		artist models.Artist
		user   models.User
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", who.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Artist{}).Scopes(identity.ForUser(user.ID)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyArtist
		}
		if err := tx.Model(&models.Artist{}).Where("store_name = ?", storeName).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrStoreNameTaken
		}

		artist = models.Artist{
			UserID:      user.ID,
			StoreName:   storeName,
			Bio:         strings.TrimSpace(req.Bio),
			Commissions: s.defaultCommission,
		}
		if err := tx.Create(&artist).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrStoreNameTaken
			}
			return err
		}

		// Admins keep their role; everyone else becomes a seller.
		if user.Role != models.RoleAdmin {
			user.Role = models.RoleSeller
			if err := tx.Model(&user).Update("role", models.RoleSeller).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &dto.ApplyArtistResponse{Artist: artist, Token: token}, nil
}

// Dashboard returns the caller's artworks, the order lines that sold them and
// derived totals.
func (s *ArtistService) Dashboard(ctx context.Context, who identity.Identity) (*dto.ArtistDashboardResponse, error) {
	db := s.db.WithContext(ctx)
	artist, err := s.ownArtist(db, who)
	if err != nil {
		return nil, err
	}

	artworks := []models.Artwork{}
	if err := db.Where("artist_id = ?", artist.ID).Preload("Categories").
		Order("created_at DESC").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to load artworks: %w", err)
	}

	sales := []dto.Sale{}
	err = db.Table("order_items").
		Select(`order_items.id, order_items.order_id, orders.status AS order_status,
			order_items.artwork_id, artworks.title AS artwork_title, users.email AS buyer_email,
			order_items.quantity, order_items.price, orders.created_at`).
		Joins("JOIN artworks ON artworks.id = order_items.artwork_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("artworks.artist_id = ?", artist.ID).
		Order("orders.created_at DESC").
		Scan(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	revenue := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.Price.Mul(decimal.NewFromInt(int64(sale.Quantity))))
	}

	return &dto.ArtistDashboardResponse{
		Artist:   *artist,
		Artworks: artworks,
		Sales:    sales,
		Stats: dto.ArtistStats{
			TotalArtworks:   int64(len(artworks)),
			TotalSalesCount: int64(len(sales)),
			TotalRevenue:    revenue,
		},
	}, nil
}

func (s *ArtistService) GetProfile(ctx context.Context, who identity.Identity) (*dto.ArtistProfileResponse, error) {
	db := s.db.WithContext(ctx)
	var artist models.Artist
	err := db.Scopes(identity.ForUser(who.UserID)).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "email", "fullname", "phone", "role")
		}).
		First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistProfileRequired
		}
		return nil, fmt.Errorf("failed to load artist profile: %w", err)
	}

	var count int64
	if err := db.Model(&models.Artwork{}).Where("artist_id = ?", artist.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count artworks: %w", err)
	}
	return &dto.ArtistProfileResponse{Artist: artist, ArtworkCount: count}, nil
}

func (s *ArtistService) UpdateProfile(ctx context.Context, who identity.Identity, req *dto.UpdateArtistProfileRequest) (*dto.ArtistProfileResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artist, err := s.ownArtist(tx, who)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.StoreName != nil {
			name := strings.TrimSpace(*req.StoreName)
			if name != artist.StoreName {
				var count int64
				if err := tx.Model(&models.Artist{}).
					Where("store_name = ? AND id <> ?", name, artist.ID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return ErrStoreNameTaken
				}
				updates["store_name"] = name
			}
		}
		if req.Bio != nil {
			updates["bio"] = strings.TrimSpace(*req.Bio)
		}
		if req.BirthDate != nil {
			d, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				return fmt.Errorf("%w: birthDate", ErrInvalidInput)
			}
			updates["birth_date"] = d
		}
		if req.Commissions != nil {
			c := req.Commissions.Round(2)
			if c.IsNegative() || c.GreaterThan(decimal.NewFromInt(100)) {
				return fmt.Errorf("%w: commissions must be between 0 and 100", ErrInvalidInput)
			}
			updates["commissions"] = c
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(artist).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrStoreNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, who)
}

func (s *ArtistService) ownArtist(db *gorm.DB, who identity.Identity) (*models.Artist, error) {
	var artist models.Artist
	if err := db.Scopes(identity.ForUser(who.UserID)).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistProfileRequired
		}
		return nil, fmt.Errorf("failed to load artist profile: %w", err)
	}
	return &artist, nil
}
