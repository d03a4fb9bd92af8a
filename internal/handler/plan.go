package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// ApplyPlanRequest is the body of POST /trips/{id}/plan. Plan is the
// recommendation service's response, passed through as received.
type ApplyPlanRequest struct {
	City    string               `json:"city"`
	Country string               `json:"country"`
	Plan    domain.GeneratedPlan `json:"plan"`
}

// AcceptPlanRequest is the body of POST /plans/accept. Missing dates are
// taken from the plan's own days.
type AcceptPlanRequest struct {
	UserID    uuid.UUID            `json:"user_id"`
	City      string               `json:"city"`
	Country   string               `json:"country"`
	StartDate *openapi_types.Date  `json:"start_date"`
	EndDate   *openapi_types.Date  `json:"end_date"`
	Plan      domain.GeneratedPlan `json:"plan"`
}

// ApplyPlan handles POST /trips/{tripID}/plan. The plan replaces the trip's
// itinerary with a single stop holding the suggested activities.
func (s *Server) ApplyPlan(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	var body ApplyPlanRequest
	if !decodeBody(w, r, &body) {
		return
	}
	stop := domain.PlanStop{City: strings.TrimSpace(body.City), Country: strings.TrimSpace(body.Country)}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.ApplyPlan(r.Context(), tripID, body.Plan, stop))
}

// AcceptPlan handles POST /plans/accept by creating a new trip from a plan.
func (s *Server) AcceptPlan(w http.ResponseWriter, r *http.Request) {
	var body AcceptPlanRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.UserID == uuid.Nil {
		badRequest(w, "user_id is required")
		return
	}
	stop := domain.PlanStop{City: strings.TrimSpace(body.City), Country: strings.TrimSpace(body.Country)}
	s.respondTrip(w, r, http.StatusCreated)(s.itinerary.AcceptPlan(r.Context(), body.UserID, body.Plan, stop,
		optionalDate(body.StartDate), optionalDate(body.EndDate)))
}

func optionalDate(d *openapi_types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
