package catalogue

import (
	"strings"

	"gorm.io/gorm"
)

// Filter carries the optional catalogue query parameters. Empty fields are
// no-ops; both predicates apply when both are set.
type Filter struct {
	Location string
	Category string
}

// Apply narrows query with case-insensitive substring predicates and applies
// the canonical catalogue sort: newest production date first with undated
// rows at the bottom, product name as the tie-break.
func (f Filter) Apply(query *gorm.DB) *gorm.DB {
	if f.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", Pattern(f.Location))
	}

	if f.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", Pattern(f.Category))
	}

	return ApplySort(query)
}

// ApplySort applies the catalogue sort order without any filtering.
func ApplySort(query *gorm.DB) *gorm.DB {
	return query.Order("production_date DESC NULLS LAST").Order("name ASC")
}

// Pattern converts a search term into a lowercase LIKE wildcard pattern.
func Pattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
