package stats

import (
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// Portfolio summarizes a collection of trips, typically everything a user owns.
type Portfolio struct {
	TripCount        int
	Upcoming         int
	Ongoing          int
	Completed        int
	DestinationCount int
	ActivityCount    int
	TotalBudget      float64
}

// Summarize folds trips into a Portfolio. An empty or nil slice yields the zero value.
func Summarize(trips []domain.Trip, now time.Time) Portfolio {
	var p Portfolio
	for _, t := range trips {
		p.TripCount++
		switch TripStatus(t, now) {
		case StatusUpcoming:
			p.Upcoming++
		case StatusOngoing:
			p.Ongoing++
		case StatusCompleted:
			p.Completed++
		}
		p.DestinationCount += DestinationCount(t)
		p.ActivityCount += ActivityCount(t)
		total, _ := TotalBudget(t)
		p.TotalBudget += total
	}
	return p
}
