package services

import (
	"context"
	"testing"

	"github.com/beauxarts/marketplace-api/internal/database/dbtest"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboardExcludesCancelledRevenue(t *testing.T) {
	db := dbtest.New(t)
	orders := NewOrderService(db, testPricing)
	admin := NewAdminService(db)

	buyer := seedUser(t, db, "buyer@example.com", models.RoleUser)
	_, artist := seedArtist(t, db, "Atelier")
	a := seedArtwork(t, db, artist.ID, "Harbour", "100", withStock(3))

	first, err := orders.Checkout(context.Background(), identityOf(buyer), cart("133", line(a, 1)))
	require.NoError(t, err)
	_, err = orders.Checkout(context.Background(), identityOf(buyer), cart("133", line(a, 1)))
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", first.ID).Update("status", models.OrderCancelled).Error)

	dash, err := admin.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dash.Stats.TotalUsers)
	assert.Equal(t, 1, dash.Stats.ActiveArtists)
	assert.Equal(t, 2, dash.Stats.TotalOrders)
	assert.True(t, dash.Stats.TotalRevenue.Equal(decimal.NewFromInt(133)))

	require.Len(t, dash.Artists, 1)
	assert.Equal(t, int64(1), dash.Artists[0].ArtworkCount)
	require.Len(t, dash.Artworks, 1)
	assert.Equal(t, "Atelier", dash.Artworks[0].ArtistName)
	assert.Equal(t, 1, dash.Artworks[0].Stock)
	require.Len(t, dash.Orders, 2)
	assert.Equal(t, "buyer@example.com", dash.Orders[0].BuyerEmail)
}

func TestAdminDashboardEmpty(t *testing.T) {
	dash, err := NewAdminService(dbtest.New(t)).Dashboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, dash.Orders)
	assert.NotNil(t, dash.Users)
	assert.True(t, dash.Stats.TotalRevenue.IsZero())
}
