package handler

import (
	"net/http"

	"github.com/pkordes/globetrotter/backend/internal/catalog"
	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/filter"
	"github.com/pkordes/globetrotter/backend/internal/service"
)

// Listing is one catalog activity returned by activity search.
type Listing struct {
	City     string       `json:"city"`
	Country  string       `json:"country"`
	Bucket   string       `json:"cost_bucket"`
	Activity ActivityBody `json:"activity"`
}

// City is one catalog city returned by city search.
type City struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Region     string `json:"region"`
	CostIndex  int    `json:"cost_index"`
	Popularity int    `json:"popularity"`
}

// SearchActivities handles GET /search/activities.
// Query: q, city, category, bucket (free|budget|moderate|premium), max_cost.
func (s *Server) SearchActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.ActivityQuery{Text: q.Get("q"), City: q.Get("city")}

	if raw := q.Get("category"); raw != "" {
		cat, ok := domain.ParseCategory(raw)
		if !ok {
			badRequest(w, "unknown category "+raw)
			return
		}
		query.Category = cat
	}
	if raw := q.Get("bucket"); raw != "" {
		b, ok := filter.ParseCostBucket(raw)
		if !ok {
			badRequest(w, "unknown cost bucket "+raw)
			return
		}
		query.Bucket = b
	}
	maxCost, ok := floatQuery(w, r, "max_cost")
	if !ok {
		return
	}
	query.MaxCost = maxCost

	listings := s.search.SearchActivities(query)
	writeJSON(w, http.StatusOK, listingsToResponse(listings))
}

// SearchCities handles GET /search/cities. Query: q, region.
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cities := s.search.SearchCities(service.CityQuery{Text: q.Get("q"), Region: q.Get("region")})

	out := make([]City, len(cities))
	for i, c := range cities {
		out[i] = City(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func listingsToResponse(ls []catalog.Listing) []Listing {
	out := make([]Listing, len(ls))
	for i, l := range ls {
		out[i] = Listing{
			City:     l.City,
			Country:  l.Country,
			Bucket:   string(filter.BucketOf(l.Activity.Cost)),
			Activity: activityToResponse(l.Activity),
		}
	}
	return out
}
