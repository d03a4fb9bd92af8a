package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// destinationRecord is the JSONB shape of one itinerary stop.
// Keys use the same snake_case names as the HTTP API.
type destinationRecord struct {
	City       string           `json:"city"`
	Country    string           `json:"country,omitempty"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Budget     *float64         `json:"budget,omitempty"`
	Activities []activityRecord `json:"activities"`
}

type activityRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Time        string   `json:"time,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Cost        float64  `json:"cost"`
	Category    string   `json:"category"`
	Location    string   `json:"location,omitempty"`
	Day         int      `json:"day,omitempty"`
}

type budgetRecord struct {
	Total         float64 `json:"total"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}

func encodeDestinations(ds []domain.Destination) ([]byte, error) {
	recs := make([]destinationRecord, len(ds))
	for i, d := range ds {
		acts := make([]activityRecord, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = activityRecord{
				Name:        a.Name,
				Description: a.Description,
				Time:        a.Time,
				Duration:    a.DurationHours,
				Cost:        a.Cost,
				Category:    string(a.Category),
				Location:    a.Location,
				Day:         a.Day,
			}
		}
		recs[i] = destinationRecord{
			City:       d.City,
			Country:    d.Country,
			StartDate:  d.StartDate.Format(domain.DateLayout),
			EndDate:    d.EndDate.Format(domain.DateLayout),
			Budget:     d.Budget,
			Activities: acts,
		}
	}
	return json.Marshal(recs)
}

func decodeDestinations(data []byte) ([]domain.Destination, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var recs []destinationRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	out := make([]domain.Destination, len(recs))
	for i, r := range recs {
		start, err := time.Parse(domain.DateLayout, r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("destinations[%d].start_date: %w", i, err)
		}
		end, err := time.Parse(domain.DateLayout, r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("destinations[%d].end_date: %w", i, err)
		}
		d := domain.Destination{
			City:      r.City,
			Country:   r.Country,
			StartDate: start,
			EndDate:   end,
			Budget:    r.Budget,
		}
		for _, a := range r.Activities {
			// Rows written before the category list was fixed may carry
			// legacy tags; anything unknown reads back as unclassified.
			cat, ok := domain.ParseCategory(a.Category)
			if !ok {
				cat = domain.CategoryUnclassified
			}
			d.Activities = append(d.Activities, domain.Activity{
				Name:          a.Name,
				Description:   a.Description,
				Time:          a.Time,
				DurationHours: a.Duration,
				Cost:          a.Cost,
				Category:      cat,
				Location:      a.Location,
				Day:           a.Day,
			})
		}
		out[i] = d
	}
	return out, nil
}

func encodeBudget(b *domain.Budget) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(budgetRecord(*b))
}

func decodeBudget(data []byte) (*domain.Budget, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var rec budgetRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	b := domain.Budget(rec)
	return &b, nil
}
