package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// TripRequest is the body of POST /trips and PUT /trips/{id}.
// UserID and Destinations are only read on create.
type TripRequest struct {
	UserID       uuid.UUID          `json:"user_id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	CoverImage   string             `json:"cover_image"`
	Budget       *BudgetBody        `json:"budget"`
	Destinations []DestinationBody  `json:"destinations"`
}

// Trip is the JSON representation of a trip.
type Trip struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	CoverImage   string             `json:"cover_image,omitempty"`
	Budget       *BudgetBody        `json:"budget,omitempty"`
	Destinations []DestinationBody  `json:"destinations"`
	Visibility   string             `json:"visibility"`
	AIGenerated  bool               `json:"ai_generated"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// TripList is a page of trips.
type TripList struct {
	Data       []Trip      `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page returned in a TripList.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// BudgetBody is the declared budget of a trip.
type BudgetBody struct {
	Total         float64 `json:"total"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}

// DestinationBody is one itinerary stop, used in requests and responses.
type DestinationBody struct {
	City       string             `json:"city"`
	Country    string             `json:"country,omitempty"`
	StartDate  openapi_types.Date `json:"start_date"`
	EndDate    openapi_types.Date `json:"end_date"`
	Budget     *float64           `json:"budget,omitempty"`
	Activities []ActivityBody     `json:"activities"`
}

// ActivityBody is one activity, used in requests and responses.
// Requests may name the activity with title and classify it with type;
// responses always use name and category.
type ActivityBody struct {
	Name        string   `json:"name"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Time        string   `json:"time,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Cost        float64  `json:"cost"`
	Category    string   `json:"category"`
	Type        string   `json:"type,omitempty"`
	Location    string   `json:"location,omitempty"`
	Day         int      `json:"day,omitempty"`
}

// --- request mapping --------------------------------------------------------

func (b TripRequest) toDomain() (domain.Trip, error) {
	t := domain.Trip{
		UserID:      b.UserID,
		Name:        b.Name,
		Description: b.Description,
		StartDate:   b.StartDate.Time,
		EndDate:     b.EndDate.Time,
		CoverImage:  b.CoverImage,
	}
	if b.Budget != nil {
		bd := domain.Budget(*b.Budget)
		t.Budget = &bd
	}
	ds, err := destinationsToDomain(b.Destinations)
	if err != nil {
		return domain.Trip{}, err
	}
	t.Destinations = ds
	return t, nil
}

func destinationsToDomain(bodies []DestinationBody) ([]domain.Destination, error) {
	if bodies == nil {
		return nil, nil
	}
	out := make([]domain.Destination, len(bodies))
	for i, b := range bodies {
		d, err := b.toDomain()
		if err != nil {
			return nil, prefixFieldError(fmt.Sprintf("destinations[%d]", i), err)
		}
		out[i] = d
	}
	return out, nil
}

func (b DestinationBody) toDomain() (domain.Destination, error) {
	d := domain.Destination{
		City:      b.City,
		Country:   b.Country,
		StartDate: b.StartDate.Time,
		EndDate:   b.EndDate.Time,
		Budget:    b.Budget,
	}
	for i, ab := range b.Activities {
		a, err := ab.toDomain()
		if err != nil {
			return domain.Destination{}, prefixFieldError(fmt.Sprintf("activities[%d]", i), err)
		}
		d.Activities = append(d.Activities, a)
	}
	return d, nil
}

func (b ActivityBody) toDomain() (domain.Activity, error) {
	name, category := b.Name, b.Category
	if name == "" {
		name = b.Title
	}
	if category == "" {
		category = b.Type
	}
	cat, ok := domain.ParseCategory(category)
	if !ok {
		return domain.Activity{}, &domain.FieldError{Field: "category", Reason: fmt.Sprintf("unknown category %q", category)}
	}
	return domain.Activity{
		Name:          name,
		Description:   b.Description,
		Time:          b.Time,
		DurationHours: b.Duration,
		Cost:          b.Cost,
		Category:      cat,
		Location:      b.Location,
		Day:           b.Day,
	}, nil
}

// prefixFieldError qualifies a nested FieldError with its parent path.
func prefixFieldError(prefix string, err error) error {
	if fe, ok := err.(*domain.FieldError); ok {
		return &domain.FieldError{Field: prefix + "." + fe.Field, Reason: fe.Reason}
	}
	return err
}

// --- response mapping -------------------------------------------------------

func tripToResponse(t domain.Trip) Trip {
	resp := Trip{
		ID:           t.ID,
		UserID:       t.UserID,
		Name:         t.Name,
		Description:  t.Description,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		CoverImage:   t.CoverImage,
		Destinations: destinationsToResponse(t.Destinations),
		Visibility:   string(t.Visibility),
		AIGenerated:  t.AIGenerated,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.Budget != nil {
		b := BudgetBody(*t.Budget)
		resp.Budget = &b
	}
	return resp
}

func tripsToResponse(trips []domain.Trip) []Trip {
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}

func destinationsToResponse(ds []domain.Destination) []DestinationBody {
	out := make([]DestinationBody, len(ds))
	for i, d := range ds {
		acts := make([]ActivityBody, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = activityToResponse(a)
		}
		out[i] = DestinationBody{
			City:       d.City,
			Country:    d.Country,
			StartDate:  openapi_types.Date{Time: d.StartDate},
			EndDate:    openapi_types.Date{Time: d.EndDate},
			Budget:     d.Budget,
			Activities: acts,
		}
	}
	return out
}

func activityToResponse(a domain.Activity) ActivityBody {
	return ActivityBody{
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
