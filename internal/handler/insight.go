package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/globetrotter/backend/internal/budget"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// TripStats is the body of GET /trips/{id}/stats.
type TripStats struct {
	TripID           string  `json:"trip_id"`
	Status           string  `json:"status"`
	DurationDays     int     `json:"duration_days"`
	Nights           int     `json:"nights"`
	DestinationCount int     `json:"destination_count"`
	ActivityCount    int     `json:"activity_count"`
	TotalBudget      float64 `json:"total_budget"`
	BudgetSource     string  `json:"budget_source"`
	PerDayBudget     float64 `json:"per_day_budget"`
}

// CategoryAmounts holds one amount per budget category.
type CategoryAmounts struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}

// BudgetDay is one entry of the daily spending schedule.
type BudgetDay struct {
	Index int                `json:"index"`
	Date  openapi_types.Date `json:"date"`
	CategoryAmounts
	Total float64 `json:"total"`
}

// BudgetBreakdown is the body of GET /trips/{id}/budget.
type BudgetBreakdown struct {
	Categories CategoryAmounts `json:"categories"`
	Shares     CategoryAmounts `json:"shares"`
	Total      float64         `json:"total"`
	PerDay     float64         `json:"per_day"`
	Days       int             `json:"days"`
	Tier       string          `json:"tier"`
	Daily      []BudgetDay     `json:"daily"`
}

// Portfolio is the body of GET /users/{id}/stats.
type Portfolio struct {
	TripCount        int     `json:"trip_count"`
	Upcoming         int     `json:"upcoming"`
	Ongoing          int     `json:"ongoing"`
	Completed        int     `json:"completed"`
	DestinationCount int     `json:"destination_count"`
	ActivityCount    int     `json:"activity_count"`
	TotalBudget      float64 `json:"total_budget"`
}

// GetTripStats handles GET /trips/{tripID}/stats.
func (s *Server) GetTripStats(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	in, err := s.insights.Stats(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	d := in.Stats
	writeJSON(w, http.StatusOK, TripStats{
		TripID:           in.Trip.ID.String(),
		Status:           string(d.Status),
		DurationDays:     d.DurationDays,
		Nights:           d.Nights,
		DestinationCount: d.DestinationCount,
		ActivityCount:    d.ActivityCount,
		TotalBudget:      d.TotalBudget,
		BudgetSource:     string(d.BudgetSource),
		PerDayBudget:     d.PerDayBudget,
	})
}

// GetTripBudget handles GET /trips/{tripID}/budget.
func (s *Server) GetTripBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	b, err := s.insights.Budget(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdownToResponse(b))
}

// GetPortfolio handles GET /users/{userID}/stats.
func (s *Server) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userID")
	if !ok {
		return
	}
	p, err := s.insights.Portfolio(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, portfolioToResponse(p))
}

func breakdownToResponse(b budget.Breakdown) BudgetBreakdown {
	daily := make([]BudgetDay, len(b.Daily))
	for i, d := range b.Daily {
		daily[i] = BudgetDay{
			Index:           d.Index,
			Date:            openapi_types.Date{Time: d.Date},
			CategoryAmounts: CategoryAmounts(d.Categories),
			Total:           d.Total,
		}
	}
	return BudgetBreakdown{
		Categories: CategoryAmounts(b.Categories),
		Shares:     CategoryAmounts(b.Shares()),
		Total:      b.Total,
		PerDay:     b.PerDay,
		Days:       b.Days,
		Tier:       string(b.Tier),
		Daily:      daily,
	}
}

func portfolioToResponse(p stats.Portfolio) Portfolio {
	return Portfolio(p)
}
