package domain

// GeneratedPlan is the response shape of the external recommendation service.
// Any field may be missing; the itinerary adapter fills safe defaults or
// rejects the plan with ErrExternalDataShape.
type GeneratedPlan struct {
	TripName        string      `json:"tripName"`
	Overview        string      `json:"overview"`
	Highlights      []string    `json:"highlights"`
	EstimatedBudget *PlanBudget `json:"estimatedBudget"`
	Days            []PlanDay   `json:"days"`
}

// PlanBudget is the generator's own cost estimate.
type PlanBudget struct {
	Total      *float64 `json:"total"`
	Activities *float64 `json:"activities"`
	Food       *float64 `json:"food"`
}

// PlanDay is one day of a generated plan.
type PlanDay struct {
	DayNumber  int            `json:"dayNumber"`
	Date       string         `json:"date"`
	Title      string         `json:"title"`
	Activities []PlanActivity `json:"activities"`
}

// PlanActivity is a single suggestion within a PlanDay.
type PlanActivity struct {
	Time        string   `json:"time"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
	Location    string   `json:"location"`
}

// PlanStop names the city a generated plan was requested for.
// The generator response itself does not repeat it.
type PlanStop struct {
	City    string
	Country string
}
