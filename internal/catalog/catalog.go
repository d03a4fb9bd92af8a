// Package catalog holds the static discovery data travellers browse before
// building a trip: sample cities and bookable activities. The data ships
// inside the binary, so reading it never touches the network or the disk.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/filter"
)

//go:embed catalog.json
var embedded []byte

// Listing is a catalog activity together with the city that offers it.
type Listing struct {
	City     string
	Country  string
	Activity domain.Activity
}

// Catalog is a parsed, read-only copy of the discovery data.
type Catalog struct {
	cities   []filter.City
	listings []Listing
}

type document struct {
	Cities     []cityRecord     `json:"cities"`
	Activities []activityRecord `json:"activities"`
}

type cityRecord struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Region     string `json:"region"`
	CostIndex  int    `json:"cost_index"`
	Popularity int    `json:"popularity"`
}

type activityRecord struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Duration    *float64 `json:"duration"`
	Cost        float64  `json:"cost"`
	Description string   `json:"description"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	c, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	return c, nil
}

// Parse builds a Catalog from a JSON document of the embedded shape.
// Activity types outside the fixed category list are rejected, except for
// the legacy tags ParseCategory folds into unclassified.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalDataShape, err)
	}

	c := &Catalog{
		cities:   make([]filter.City, 0, len(doc.Cities)),
		listings: make([]Listing, 0, len(doc.Activities)),
	}
	for _, r := range doc.Cities {
		c.cities = append(c.cities, filter.City{
			Name:       r.Name,
			Country:    r.Country,
			Region:     r.Region,
			CostIndex:  r.CostIndex,
			Popularity: r.Popularity,
		})
	}
	for i, r := range doc.Activities {
		cat, ok := domain.ParseCategory(r.Type)
		if !ok {
			return nil, fmt.Errorf("%w: activities[%d].type: unknown category %q", domain.ErrExternalDataShape, i, r.Type)
		}
		a := domain.Activity{
			Name:          r.Name,
			Description:   r.Description,
			DurationHours: r.Duration,
			Cost:          r.Cost,
			Category:      cat,
			Location:      r.City,
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("activities[%d]: %w", i, err)
		}
		c.listings = append(c.listings, Listing{City: r.City, Country: r.Country, Activity: a})
	}
	return c, nil
}

// Cities returns a copy of every catalog city in catalog order.
func (c *Catalog) Cities() []filter.City {
	out := make([]filter.City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Activities returns a deep copy of every listing in catalog order.
func (c *Catalog) Activities() []Listing {
	out := make([]Listing, len(c.listings))
	for i, l := range c.listings {
		out[i] = Listing{City: l.City, Country: l.Country, Activity: l.Activity.Clone()}
	}
	return out
}

// City looks up a catalog city by name, ignoring case.
func (c *Catalog) City(name string) (filter.City, bool) {
	for _, city := range c.cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}
	return filter.City{}, false
}

// InCity matches listings offered in the named city, ignoring case.
func InCity(name string) filter.Predicate[Listing] {
	return func(l Listing) bool { return strings.EqualFold(l.City, name) }
}

// OfActivity lifts an activity predicate to listings.
func OfActivity(p filter.Predicate[domain.Activity]) filter.Predicate[Listing] {
	return filter.On(func(l Listing) domain.Activity { return l.Activity }, p)
}
