package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/service"
	"github.com/pkordes/globetrotter/backend/internal/stats"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.UserID == uuid.Nil {
		badRequest(w, "user_id is required")
		return
	}
	trip, err := body.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips?user_id=.
// With ?q= or ?status= the user's trips are filtered instead of paged;
// otherwise ?page= and ?limit= apply (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := uuid.Parse(q.Get("user_id"))
	if err != nil {
		badRequest(w, "user_id must be a UUID")
		return
	}

	if q.Has("q") || q.Has("status") {
		query := service.TripQuery{Text: strings.TrimSpace(q.Get("q"))}
		if raw := q.Get("status"); raw != "" {
			st, ok := stats.ParseStatus(raw)
			if !ok {
				badRequest(w, "status must be one of upcoming, ongoing, completed")
				return
			}
			query.Status = st
		}
		trips, err := s.search.FilterTrips(r.Context(), userID, query)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, TripList{Data: tripsToResponse(trips)})
		return
	}

	page, ok := intQuery(w, r, "page")
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit")
	if !ok {
		return
	}
	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.trips.ListPaged(r.Context(), userID, params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TripList{
		Data:       tripsToResponse(trips),
		Pagination: &Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// ListUserTrips handles GET /users/{userID}/trips. It returns every trip the
// user owns, soonest first, without paging.
func (s *Server) ListUserTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userID")
	if !ok {
		return
	}
	trips, err := s.trips.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TripList{Data: tripsToResponse(trips)})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}. Only header fields change; the
// itinerary is edited through the destination endpoints.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	var body TripRequest
	if !decodeBody(w, r, &body) {
		return
	}
	body.Destinations = nil
	trip, err := body.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ShareTrip handles POST /trips/{tripID}/share.
func (s *Server) ShareTrip(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, s.trips.Share)
}

// UnshareTrip handles DELETE /trips/{tripID}/share.
func (s *Server) UnshareTrip(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, s.trips.Unshare)
}

func (s *Server) setVisibility(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uuid.UUID) (domain.Trip, error)) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := apply(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// GetSharedTrip handles GET /shared/{tripID}. Private trips read as not found.
func (s *Server) GetSharedTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetShared(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}
