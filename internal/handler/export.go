package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date",
	"position", "city", "country", "destination_start", "destination_end",
	"activity", "category", "time", "day", "cost", "location",
}

// ExportRow is the JSON form of one row of an itinerary export.
type ExportRow struct {
	TripID           string  `json:"trip_id"`
	TripName         string  `json:"trip_name"`
	TripStartDate    string  `json:"trip_start_date"`
	TripEndDate      string  `json:"trip_end_date"`
	Position         int     `json:"position,omitempty"`
	City             string  `json:"city,omitempty"`
	Country          string  `json:"country,omitempty"`
	DestinationStart string  `json:"destination_start,omitempty"`
	DestinationEnd   string  `json:"destination_end,omitempty"`
	ActivityName     string  `json:"activity,omitempty"`
	Category         string  `json:"category,omitempty"`
	Time             string  `json:"time,omitempty"`
	Day              int     `json:"day,omitempty"`
	Cost             float64 `json:"cost"`
	Location         string  `json:"location,omitempty"`
}

// GetExport handles GET /trips/{tripID}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		badRequest(w, "format must be json or csv")
		return
	}

	rows, err := s.export.Export(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if format == "csv" {
		writeCSV(w, id.String(), rows)
		return
	}
	out := make([]ExportRow, len(rows))
	for i, row := range rows {
		out[i] = ExportRow(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows with a header line. The body is buffered so a
// failure never leaves a half-written table behind a 200 status.
func writeCSV(w http.ResponseWriter, name string, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(csvRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trip-%s.csv"`, name))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// csvRecord encodes a domain.ExportRow as a flat string slice. Zero
// position and day are written as empty cells.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripName,
		r.TripStartDate,
		r.TripEndDate,
		optionalInt(r.Position),
		r.City,
		r.Country,
		r.DestinationStart,
		r.DestinationEnd,
		r.ActivityName,
		r.Category,
		r.Time,
		optionalInt(r.Day),
		strconv.FormatFloat(r.Cost, 'f', 2, 64),
		r.Location,
	}
}

func optionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
