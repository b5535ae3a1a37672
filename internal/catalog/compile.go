package catalog

import (
	"strings"

	"gorm.io/gorm"
)

// Apply adds the filter predicate to db. It does not add ordering or paging,
// so the same scope serves both the count and the page fetch.
func (c Criteria) Apply(db *gorm.DB) *gorm.DB {
	if c.search != "" {
		pattern := "%" + EscapeLike(strings.ToLower(c.search)) + "%"
		db = db.Where(
			"(LOWER(artworks.title) LIKE ? ESCAPE '\\' OR LOWER(artworks.description) LIKE ? ESCAPE '\\' OR LOWER(artworks.medium) LIKE ? ESCAPE '\\')",
			pattern, pattern, pattern,
		)
	}
	if c.categoryID != nil {
		db = db.Where("artworks.id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("artwork_categories").
				Select("artwork_id").
				Where("category_id = ?", *c.categoryID),
		)
	}
	if c.artistID != nil {
		db = db.Where("artworks.artist_id = ?", *c.artistID)
	}
	if c.price.Min != nil {
		db = db.Where("artworks.price >= ?", *c.price.Min)
	}
	if c.price.Max != nil {
		db = db.Where("artworks.price <= ?", *c.price.Max)
	}
	if c.available {
		db = db.Where("artworks.available = ?", true)
	}
	if c.featured {
		db = db.Where("artworks.featured = ?", true)
	}
	return db
}

// Order adds the sort clause with an id tiebreak so paging is deterministic.
func (c Criteria) Order(db *gorm.DB) *gorm.DB {
	switch c.sort {
	case SortOldest:
		db = db.Order("artworks.created_at ASC")
	case SortPriceAsc:
		db = db.Order("artworks.price ASC")
	case SortPriceDesc:
		db = db.Order("artworks.price DESC")
	default:
		db = db.Order("artworks.created_at DESC")
	}
	return db.Order("artworks.id ASC")
}

// Paginate adds offset and limit.
func (c Criteria) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset(c.Offset()).Limit(c.limit)
}

// EscapeLike escapes LIKE wildcards for use with ESCAPE '\\'.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
