// Package catalog compiles artwork browse requests into database queries.
//
// A request is normalised once into an immutable Criteria value, either from
// raw query parameters (FromQuery) or programmatically (NewBuilder). Apply is
// the only place the predicate is turned into SQL, so the page fetch and the
// total count always share it.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit inside an int32 offset.
	MaxPage = math.MaxInt32 / MaxLimit
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// ParseSortKey maps unknown values to SortNewest.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortOldest, SortPriceAsc, SortPriceDesc, SortNewest:
		return k
	default:
		return SortNewest
	}
}

// PriceRange bounds are inclusive; a nil bound is open.
type PriceRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

func (r PriceRange) IsZero() bool { return r.Min == nil && r.Max == nil }

// Criteria is an immutable artwork query. Use NewBuilder or FromQuery.
type Criteria struct {
	page       int
	limit      int
	search     string
	categoryID *uuid.UUID
	artistID   *uuid.UUID
	price      PriceRange
	available  bool
	featured   bool
	sort       SortKey
}

func (c Criteria) Page() int              { return c.page }
func (c Criteria) Limit() int             { return c.limit }
func (c Criteria) Offset() int            { return (c.page - 1) * c.limit }
func (c Criteria) Search() string         { return c.search }
func (c Criteria) CategoryID() *uuid.UUID { return c.categoryID }
func (c Criteria) ArtistID() *uuid.UUID   { return c.artistID }
func (c Criteria) Price() PriceRange      { return c.price }
func (c Criteria) OnlyAvailable() bool    { return c.available }
func (c Criteria) OnlyFeatured() bool     { return c.featured }
func (c Criteria) Sort() SortKey          { return c.sort }

// TotalPages is ceil(total/limit).
func (c Criteria) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	l := int64(c.limit)
	return int((total + l - 1) / l)
}

// CacheKey is a canonical encoding of the criteria: equal criteria produce
// equal keys regardless of parameter order or formatting in the request.
func (c Criteria) CacheKey() string {
	var b strings.Builder
	b.WriteString("page=")
	b.WriteString(strconv.Itoa(c.page))
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(c.limit))
	b.WriteString("&sort=")
	b.WriteString(string(c.sort))
	if c.search != "" {
		b.WriteString("&search=")
		b.WriteString(strings.ToLower(c.search))
	}
	if c.categoryID != nil {
		b.WriteString("&category=")
		b.WriteString(c.categoryID.String())
	}
	if c.artistID != nil {
		b.WriteString("&artist=")
		b.WriteString(c.artistID.String())
	}
	if c.price.Min != nil {
		b.WriteString("&min=")
		b.WriteString(c.price.Min.String())
	}
	if c.price.Max != nil {
		b.WriteString("&max=")
		b.WriteString(c.price.Max.String())
	}
	if c.available {
		b.WriteString("&available=true")
	}
	if c.featured {
		b.WriteString("&featured=true")
	}
	return b.String()
}

// Builder accumulates criteria fields. Build returns a normalised copy, so a
// builder can be reused without affecting criteria already built.
type Builder struct {
	c Criteria
}

func NewBuilder() *Builder {
	return &Builder{c: Criteria{page: DefaultPage, limit: DefaultLimit, sort: SortNewest}}
}

func (b *Builder) Page(page int) *Builder {
	b.c.page = page
	return b
}

func (b *Builder) Limit(limit int) *Builder {
	b.c.limit = limit
	return b
}

func (b *Builder) Search(q string) *Builder {
	b.c.search = strings.TrimSpace(q)
	return b
}

func (b *Builder) Category(id uuid.UUID) *Builder {
	b.c.categoryID = &id
	return b
}

func (b *Builder) Artist(id uuid.UUID) *Builder {
	b.c.artistID = &id
	return b
}

func (b *Builder) MinPrice(p decimal.Decimal) *Builder {
	b.c.price.Min = &p
	return b
}

func (b *Builder) MaxPrice(p decimal.Decimal) *Builder {
	b.c.price.Max = &p
	return b
}

func (b *Builder) OnlyAvailable() *Builder {
	b.c.available = true
	return b
}

func (b *Builder) OnlyFeatured() *Builder {
	b.c.featured = true
	return b
}

func (b *Builder) SortBy(k SortKey) *Builder {
	b.c.sort = k
	return b
}

func (b *Builder) Build() Criteria {
	c := b.c
	if c.page < 1 {
		c.page = DefaultPage
	}
	if c.page > MaxPage {
		c.page = MaxPage
	}
	if c.limit < 1 {
		c.limit = DefaultLimit
	}
	if c.limit > MaxLimit {
		c.limit = MaxLimit
	}
	if c.sort == "" {
		c.sort = SortNewest
	}
	if c.categoryID != nil {
		id := *c.categoryID
		c.categoryID = &id
	}
	if c.artistID != nil {
		id := *c.artistID
		c.artistID = &id
	}
	if c.price.Min != nil {
		p := *c.price.Min
		c.price.Min = &p
	}
	if c.price.Max != nil {
		p := *c.price.Max
		c.price.Max = &p
	}
	return c
}

// FromQuery builds criteria from raw query parameters. Malformed values fall
// back to defaults or are dropped; it never fails.
func FromQuery(get func(key string) string) Criteria {
	b := NewBuilder().
		Page(atoiOr(get("page"), DefaultPage)).
		Limit(atoiOr(get("limit"), DefaultLimit)).
		Search(get("search")).
		SortBy(ParseSortKey(get("sortBy")))

	if id, err := uuid.Parse(strings.TrimSpace(get("categoryId"))); err == nil {
		b.Category(id)
	}
	if id, err := uuid.Parse(strings.TrimSpace(get("artistId"))); err == nil {
		b.Artist(id)
	}
	if p, ok := parsePrice(get("minPrice")); ok {
		b.MinPrice(p)
	}
	if p, ok := parsePrice(get("maxPrice")); ok {
		b.MaxPrice(p)
	}
	if strings.EqualFold(strings.TrimSpace(get("available")), "true") {
		b.OnlyAvailable()
	}
	if strings.EqualFold(strings.TrimSpace(get("featured")), "true") {
		b.OnlyFeatured()
	}
	return b.Build()
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func parsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
