package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/beauxarts/marketplace-api/internal/identity"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testPricing = Pricing{
	ShippingFee:           decimal.NewFromInt(25),
	FreeShippingThreshold: decimal.NewFromInt(500),
	TaxRate:               decimal.RequireFromString("0.08"),
	Tolerance:             decimal.RequireFromString("0.01"),
}

func newTokens() *identity.TokenIssuer {
	return identity.NewTokenIssuer("test-secret", time.Hour)
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	u := models.User{Email: email, Password: "x", Fullname: "Test " + role, Role: role}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedArtist(t *testing.T, db *gorm.DB, storeName string) (models.User, models.Artist) {
	t.Helper()
	u := seedUser(t, db, storeName+"@example.com", models.RoleSeller)
	a := models.Artist{UserID: u.ID, StoreName: storeName, Bio: "bio", Commissions: decimal.NewFromInt(3)}
	require.NoError(t, db.Create(&a).Error)
	return u, a
}

type artworkOpt func(*models.Artwork)

func withStock(n int) artworkOpt { return func(a *models.Artwork) { a.Stock = n } }

func withCreatedAt(ts time.Time) artworkOpt { return func(a *models.Artwork) { a.CreatedAt = ts } }

func withFeatured() artworkOpt { return func(a *models.Artwork) { a.Featured = true } }

func withCategories(cs ...models.Category) artworkOpt {
	return func(a *models.Artwork) { a.Categories = cs }
}

func seedArtwork(t *testing.T, db *gorm.DB, artistID uuid.UUID, title, price string, opts ...artworkOpt) models.Artwork {
	t.Helper()
	a := models.Artwork{
		Title:     title,
		Price:     decimal.RequireFromString(price),
		Stock:     1,
		IsUnique:  true,
		Available: true,
		ArtistID:  artistID,
	}
	for _, o := range opts {
		o(&a)
	}
	if a.Stock == 0 {
		a.Available = false
	}
	require.NoError(t, db.Omit("Categories.*").Create(&a).Error)
	return a
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func identityOf(u models.User) identity.Identity {
	return identity.Identity{UserID: u.ID, Email: u.Email, Role: u.Role, Fullname: u.Fullname}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func reloadArtwork(t *testing.T, db *gorm.DB, id uuid.UUID) models.Artwork {
	t.Helper()
	var a models.Artwork
	require.NoError(t, db.First(&a, "id = ?", id).Error, fmt.Sprintf("artwork %s", id))
	return a
}
