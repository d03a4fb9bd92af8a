package handler_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/handler"
)

func exportServer(svc handler.ExportServicer) *handler.Server {
	return handler.NewServer(nil, nil, nil, nil, svc)
}

func exportRows(tripID uuid.UUID) []domain.ExportRow {
	base := domain.ExportRow{
		TripID: tripID.String(), TripName: "Italy by Rail",
		TripStartDate: "2025-06-01", TripEndDate: "2025-06-05",
	}
	rome := base
	rome.Position, rome.City, rome.Country = 1, "Rome", "Italy"
	rome.DestinationStart, rome.DestinationEnd = "2025-06-01", "2025-06-03"
	rome.ActivityName, rome.Category, rome.Day, rome.Cost = "Colosseum", "sightseeing", 1, 18

	florence := base
	florence.Position, florence.City, florence.Country = 2, "Florence", "Italy"
	florence.DestinationStart, florence.DestinationEnd = "2025-06-04", "2025-06-05"
	return []domain.ExportRow{rome, florence}
}

func exportPath(id uuid.UUID, query string) string {
	return "/trips/" + id.String() + "/export" + query
}

// ---- JSON ------------------------------------------------------------------

func TestGetExport_DefaultJSON(t *testing.T) {
	id := uuid.New()
	svc := &mockExportServicer{
		export: func(_ context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
			assert.Equal(t, id, tripID)
			return exportRows(id), nil
		},
	}

	rec := do(t, exportServer(svc), http.MethodGet, exportPath(id, ""), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	rows := decode[[]handler.ExportRow](t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, "Colosseum", rows[0].ActivityName)
	assert.Equal(t, 2, rows[1].Position)
	assert.Empty(t, rows[1].ActivityName)
}

func TestGetExport_FormatJSON_ExplicitParam(t *testing.T) {
	id := uuid.New()
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) { return exportRows(id), nil },
	}

	rec := do(t, exportServer(svc), http.MethodGet, exportPath(id, "?format=json"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

// ---- CSV -------------------------------------------------------------------

func TestGetExport_CSV(t *testing.T) {
	id := uuid.New()
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) { return exportRows(id), nil },
	}

	rec := do(t, exportServer(svc), http.MethodGet, exportPath(id, "?format=csv"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "trip-"+id.String()+".csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per export row")
	assert.Equal(t, "trip_id", records[0][0])
	assert.Equal(t, []string{
		id.String(), "Italy by Rail", "2025-06-01", "2025-06-05",
		"1", "Rome", "Italy", "2025-06-01", "2025-06-03",
		"Colosseum", "sightseeing", "", "1", "18.00", "",
	}, records[1])
	assert.Equal(t, "", records[2][9], "a stop without activities has an empty activity cell")
	assert.Equal(t, "", records[2][12])
}

func TestGetExport_CSV_QuotesCommas(t *testing.T) {
	id := uuid.New()
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
			return []domain.ExportRow{{TripID: id.String(), TripName: "Rome, Florence and Venice"}}, nil
		},
	}

	rec := do(t, exportServer(svc), http.MethodGet, exportPath(id, "?format=csv"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Rome, Florence and Venice"`)
}

// ---- errors ----------------------------------------------------------------

func TestGetExport_400_UnknownFormat(t *testing.T) {
	rec := do(t, exportServer(&mockExportServicer{}), http.MethodGet, exportPath(uuid.New(), "?format=xml"), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExport_404(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) { return nil, domain.ErrNotFound },
	}

	rec := do(t, exportServer(svc), http.MethodGet, exportPath(uuid.New(), "?format=csv"), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetExport_ServiceError_Returns500(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) { return nil, errors.New("db is down") },
	}

	rec := do(t, exportServer(svc), http.MethodGet, exportPath(uuid.New(), ""), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
