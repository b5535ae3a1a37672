package catalog

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(raw string) func(string) string {
	v, _ := url.ParseQuery(raw)
	return v.Get
}

func TestFromQueryDefaults(t *testing.T) {
	c := FromQuery(query(""))

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 20, c.Limit())
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, SortNewest, c.Sort())
	assert.Nil(t, c.CategoryID())
	assert.True(t, c.Price().IsZero())
	assert.False(t, c.OnlyAvailable())
}

func TestFromQueryMalformedNumbersFallBack(t *testing.T) {
	c := FromQuery(query("page=abc&limit=NaN&minPrice=cheap&maxPrice=&categoryId=7&sortBy=random"))

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 20, c.Limit())
	assert.True(t, c.Price().IsZero())
	assert.Nil(t, c.CategoryID())
	assert.Equal(t, SortNewest, c.Sort())
}

func TestFromQueryClampsRanges(t *testing.T) {
	c := FromQuery(query("page=-3&limit=5000"))
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, MaxLimit, c.Limit())

	c = FromQuery(query("page=0&limit=0"))
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, DefaultLimit, c.Limit())

	c = FromQuery(query("page=9223372036854775807&limit=100"))
	assert.Equal(t, MaxPage, c.Page())
	assert.Positive(t, c.Offset())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% pure\_oil \\`, EscapeLike(`100% pure_oil \`))
}

func TestFromQueryAllFilters(t *testing.T) {
	cat := uuid.New()
	artist := uuid.New()
	c := FromQuery(query("page=3&limit=10&search=%20Oil%20&categoryId=" + cat.String() +
		"&artistId=" + artist.String() + "&minPrice=100&maxPrice=200.50&available=true&featured=TRUE&sortBy=price_asc"))

	assert.Equal(t, 3, c.Page())
	assert.Equal(t, 20, c.Offset())
	assert.Equal(t, "Oil", c.Search())
	require.NotNil(t, c.CategoryID())
	assert.Equal(t, cat, *c.CategoryID())
	require.NotNil(t, c.ArtistID())
	assert.Equal(t, artist, *c.ArtistID())
	assert.True(t, c.Price().Min.Equal(decimal.NewFromInt(100)))
	assert.True(t, c.Price().Max.Equal(decimal.RequireFromString("200.5")))
	assert.True(t, c.OnlyAvailable())
	assert.True(t, c.OnlyFeatured())
	assert.Equal(t, SortPriceAsc, c.Sort())
}

func TestAvailableOnlyFiltersOnTrue(t *testing.T) {
	assert.False(t, FromQuery(query("available=false")).OnlyAvailable())
	assert.False(t, FromQuery(query("featured=1")).OnlyFeatured())
}

func TestCacheKeyIsCanonical(t *testing.T) {
	a := FromQuery(query("maxPrice=200&minPrice=100.00&sortBy=price_asc&search=OIL"))
	b := FromQuery(query("search=oil&minPrice=100&sortBy=price_asc&maxPrice=200.0&page=1&limit=20"))
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c := FromQuery(query("search=oil&page=2"))
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestBuildCopiesPointers(t *testing.T) {
	b := NewBuilder().MinPrice(decimal.NewFromInt(5))
	first := b.Build()
	b.MinPrice(decimal.NewFromInt(50))
	second := b.Build()

	assert.True(t, first.Price().Min.Equal(decimal.NewFromInt(5)))
	assert.True(t, second.Price().Min.Equal(decimal.NewFromInt(50)))
}

func TestTotalPages(t *testing.T) {
	c := NewBuilder().Limit(20).Build()
	assert.Equal(t, 0, c.TotalPages(0))
	assert.Equal(t, 1, c.TotalPages(20))
	assert.Equal(t, 2, c.TotalPages(21))
}
