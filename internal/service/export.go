package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// ExportService flattens a trip's itinerary into a table.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per activity of the trip, in itinerary order.
// Destinations with no activities contribute one row with empty activity
// fields, and a trip with no destinations yields a single trip-only row.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return exportRows(trip), nil
}

func exportRows(trip domain.Trip) []domain.ExportRow {
	base := domain.ExportRow{
		TripID:        trip.ID.String(),
		TripName:      trip.Name,
		TripStartDate: trip.StartDate.Format(domain.DateLayout),
		TripEndDate:   trip.EndDate.Format(domain.DateLayout),
	}
	if len(trip.Destinations) == 0 {
		return []domain.ExportRow{base}
	}

	var rows []domain.ExportRow
	for i, d := range trip.Destinations {
		stop := base
		stop.Position = i + 1
		stop.City = d.City
		stop.Country = d.Country
		stop.DestinationStart = d.StartDate.Format(domain.DateLayout)
		stop.DestinationEnd = d.EndDate.Format(domain.DateLayout)

		if len(d.Activities) == 0 {
			rows = append(rows, stop)
			continue
		}
		for _, a := range d.Activities {
			row := stop
			row.ActivityName = a.Name
			row.Category = string(a.Category)
			row.Time = a.Time
			row.Day = a.Day
			row.Cost = a.Cost
			row.Location = a.Location
			rows = append(rows, row)
		}
	}
	return rows
}
