package database_test

import (
	"testing"

	"github.com/beauxarts/marketplace-api/internal/database"
	"github.com/beauxarts/marketplace-api/internal/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesMarketplaceTables(t *testing.T) {
	db := dbtest.New(t)

	for _, table := range []string{
		"users", "artists", "categories", "artworks", "artwork_categories",
		"shipping_addresses", "orders", "order_items", "system_logs",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	require.NoError(t, database.Ping(db))
}
