package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/beauxarts/marketplace-api/internal/cache"
	"github.com/beauxarts/marketplace-api/internal/catalog"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/identity"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrArtworkNotFound       = errors.New("artwork not found")
	ErrArtistProfileRequired = errors.New("artist profile not found")
	ErrUnknownCategory       = errors.New("one or more categories do not exist")
)

// CacheConfig wires a read-through cache into the list endpoints. The zero
// value disables caching.
type CacheConfig struct {
	Store   cache.Cache
	TTL     time.Duration
	Observe cache.Observer
}

func (c CacheConfig) store() cache.Cache {
	if c.Store == nil {
		return cache.Nop{}
	}
	return c.Store
}

type CatalogService struct {
	db    *gorm.DB
	cache CacheConfig
}

func NewCatalogService(db *gorm.DB, cacheCfg CacheConfig) *CatalogService {
	return &CatalogService{db: db, cache: cacheCfg}
}

// ListArtworks returns one page of artworks matching c. Results are cached by
// the canonical criteria key and are not invalidated on writes.
func (s *CatalogService) ListArtworks(ctx context.Context, c catalog.Criteria) (*dto.ArtworkListResponse, error) {
	return cache.ReadThrough(ctx, s.cache.store(), "artworks", c.CacheKey(), s.cache.TTL, s.cache.Observe,
		func() (*dto.ArtworkListResponse, error) {
			return s.queryArtworks(ctx, c)
		})
}

func (s *CatalogService) queryArtworks(ctx context.Context, c catalog.Criteria) (*dto.ArtworkListResponse, error) {
	db := s.db.WithContext(ctx)

	var (
		total    int64
		artworks []models.Artwork
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Model(&models.Artwork{}).Scopes(c.Apply).Count(&total).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&models.Artwork{}).
			Scopes(c.Apply, c.Order, c.Paginate).
			Preload("Artist", selectArtistSummary).
			Preload("Categories").
			Find(&artworks).Error
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}

	if artworks == nil {
		artworks = []models.Artwork{}
	}
	return &dto.ArtworkListResponse{
		Artworks:   artworks,
		Total:      total,
		Page:       c.Page(),
		Limit:      c.Limit(),
		TotalPages: c.TotalPages(total),
	}, nil
}

func (s *CatalogService) GetArtwork(ctx context.Context, id uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	err := s.db.WithContext(ctx).
		Preload("Artist").
		Preload("Artist.User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "fullname") }).
		Preload("Categories").
		First(&artwork, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to load artwork: %w", err)
	}
	return &artwork, nil
}

// CreateArtwork lists a new artwork under the caller's artist profile.
func (s *CatalogService) CreateArtwork(ctx context.Context, who identity.Identity, req *dto.CreateArtworkRequest) (*models.Artwork, error) {
	var created models.Artwork
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.Scopes(identity.ForUser(who.UserID)).First(&artist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistProfileRequired
			}
			return err
		}

		categories, err := loadCategories(tx, req.CategoryIDs)
		if err != nil {
			return err
		}

		stock := 1
		if req.Stock != nil {
			stock = *req.Stock
		}
		available := stock > 0
		if req.Available != nil {
			available = *req.Available
		}

		created = models.Artwork{
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Price:       req.Price.Round(2),
			Stock:       stock,
			IsUnique:    boolOr(req.IsUnique, true),
			Available:   available,
			Featured:    boolOr(req.Featured, false),
			Image:       datatypes.JSONSlice[string](req.Image),
			Dimensions:  req.Dimensions,
			Medium:      req.Medium,
			Year:        req.Year,
			ArtistID:    artist.ID,
			Categories:  categories,
		}
		return tx.Omit("Categories.*").Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetArtwork(ctx, created.ID)
}

// UpdateArtwork applies a partial update. Only the owning artist or an admin
// may edit; stock is never touched here.
func (s *CatalogService) UpdateArtwork(ctx context.Context, who identity.Identity, id uuid.UUID, req *dto.UpdateArtworkRequest) (*models.Artwork, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artwork, err := loadOwnedArtwork(tx, who, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = req.Price.Round(2)
		}
		if req.IsUnique != nil {
			updates["is_unique"] = *req.IsUnique
		}
		if req.Available != nil {
			updates["available"] = *req.Available
		}
		if req.Featured != nil {
			updates["featured"] = *req.Featured
		}
		if req.Image != nil {
			updates["image"] = datatypes.JSONSlice[string](*req.Image)
		}
		if req.Dimensions != nil {
			updates["dimensions"] = *req.Dimensions
		}
		if req.Medium != nil {
			updates["medium"] = *req.Medium
		}
		if req.Year != nil {
			updates["year"] = *req.Year
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Artwork{}).Where("id = ?", artwork.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.CategoryIDs != nil {
			categories, err := loadCategories(tx, *req.CategoryIDs)
			if err != nil {
				return err
			}
			artwork.Artist = nil
			if err := tx.Model(artwork).Omit("Categories.*").Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetArtwork(ctx, id)
}

// DeleteArtwork removes an artwork and every row referencing it. The steps
// run in one transaction since nothing cascades at the schema level.
func (s *CatalogService) DeleteArtwork(ctx context.Context, who identity.Identity, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artwork, err := loadOwnedArtwork(tx, who, id)
		if err != nil {
			return err
		}
		if err := tx.Where("artwork_id = ?", artwork.ID).Delete(&models.ArtworkCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artwork_id = ?", artwork.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(artwork).Error
	})
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// loadOwnedArtwork returns ErrArtworkNotFound or ErrForbidden when the caller
// may not manage the artwork.
func loadOwnedArtwork(tx *gorm.DB, who identity.Identity, id uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := tx.Preload("Artist").First(&artwork, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	if artwork.Artist == nil || !who.Owns(artwork.Artist.UserID) {
		return nil, ErrForbidden
	}
	return &artwork, nil
}

func loadCategories(tx *gorm.DB, ids []uuid.UUID) ([]models.Category, error) {
	categories := []models.Category{}
	if len(ids) == 0 {
		return categories, nil
	}
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	if err := tx.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(unique) {
		return nil, ErrUnknownCategory
	}
	return categories, nil
}

func selectArtistSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "store_name", "user_id")
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
