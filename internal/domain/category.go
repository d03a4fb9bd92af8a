package domain

import "strings"

// Category tags what kind of activity an item is.
type Category string

const (
	CategorySightseeing  Category = "sightseeing"
	CategoryCulture      Category = "culture"
	CategoryFood         Category = "food"
	CategoryAdventure    Category = "adventure"
	CategoryRelaxation   Category = "relaxation"
	CategoryShopping     Category = "shopping"
	CategoryNightlife    Category = "nightlife"
	CategoryUnclassified Category = "unclassified"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategorySightseeing,
	CategoryCulture,
	CategoryFood,
	CategoryAdventure,
	CategoryRelaxation,
	CategoryShopping,
	CategoryNightlife,
	CategoryUnclassified,
}

// legacyCategories maps tags produced by older clients and the discovery
// catalog onto the fixed enumeration.
var legacyCategories = map[string]Category{
	"experience": CategoryUnclassified,
	"other":      CategoryUnclassified,
}

// ParseCategory normalizes s (case and surrounding space) and reports whether
// it names a known category. An empty string parses as CategoryUnclassified.
func ParseCategory(s string) (Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return CategoryUnclassified, true
	}
	if c, ok := legacyCategories[norm]; ok {
		return c, true
	}
	c := Category(norm)
	return c, c.Valid()
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
