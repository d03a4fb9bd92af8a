package domain

// ExportRow is a single row in a trip itinerary export.
// It is a flat, denormalized view: one row per activity, with trip and
// destination fields repeated on every row. Destinations with no activities
// yield one row with empty activity fields, and a trip with no destinations
// yields a single row carrying only the trip fields.
type ExportRow struct {
	// Trip fields, repeated on every row.
	TripID        string
	TripName      string
	TripStartDate string // "2006-01-02"
	TripEndDate   string

	// Destination fields, empty when the trip has no destinations.
	Position         int // 1-based stop number, 0 when there is no stop
	City             string
	Country          string
	DestinationStart string
	DestinationEnd   string

	// Activity fields, empty when the destination has no activities.
	ActivityName string
	Category     string
	Time         string
	Day          int
	Cost         float64
	Location     string
}
