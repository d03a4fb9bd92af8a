package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/itinerary"
)

// ReorderRequest is the body of POST /trips/{id}/destinations/reorder.
// Order lists every current stop index exactly once, in the new order.
type ReorderRequest struct {
	Order []int `json:"order"`
}

// ReplaceDestinationsRequest is the body of PUT /trips/{id}/destinations.
type ReplaceDestinationsRequest struct {
	Destinations []DestinationBody `json:"destinations"`
}

// MoveActivityRequest is the body of POST .../activities/{a}/move.
type MoveActivityRequest struct {
	ToDestination int `json:"to_destination"`
}

// EditActivityRequest is the body of PATCH .../activities/{a}.
// Value is the raw inline-edit text and is parsed according to Field.
type EditActivityRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// AddDestination handles POST /trips/{tripID}/destinations.
func (s *Server) AddDestination(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	var body DestinationBody
	if !decodeBody(w, r, &body) {
		return
	}
	d, err := body.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.respondTrip(w, r, http.StatusCreated)(s.itinerary.AddDestination(r.Context(), tripID, d))
}

// ReplaceDestinations handles PUT /trips/{tripID}/destinations.
func (s *Server) ReplaceDestinations(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	var body ReplaceDestinationsRequest
	if !decodeBody(w, r, &body) {
		return
	}
	ds, err := destinationsToDomain(body.Destinations)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.ReplaceAllDestinations(r.Context(), tripID, ds))
}

// ReorderDestinations handles POST /trips/{tripID}/destinations/reorder.
func (s *Server) ReorderDestinations(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	var body ReorderRequest
	if !decodeBody(w, r, &body) {
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.ReorderDestinations(r.Context(), tripID, body.Order))
}

// UpdateDestination handles PUT /trips/{tripID}/destinations/{destIndex}.
// The stop's activities are kept; only its own fields change.
func (s *Server) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	idx, ok := indexParam(w, r, "destIndex")
	if !ok {
		return
	}
	var body DestinationBody
	if !decodeBody(w, r, &body) {
		return
	}
	body.Activities = nil
	d, err := body.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.UpdateDestination(r.Context(), tripID, idx, d))
}

// RemoveDestination handles DELETE /trips/{tripID}/destinations/{destIndex}.
func (s *Server) RemoveDestination(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	idx, ok := indexParam(w, r, "destIndex")
	if !ok {
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.RemoveDestination(r.Context(), tripID, idx))
}

// AddActivity handles POST /trips/{tripID}/destinations/{destIndex}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}
	idx, ok := indexParam(w, r, "destIndex")
	if !ok {
		return
	}
	var body ActivityBody
	if !decodeBody(w, r, &body) {
		return
	}
	a, err := body.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.respondTrip(w, r, http.StatusCreated)(s.itinerary.AddActivity(r.Context(), tripID, idx, a))
}

// RemoveActivity handles DELETE .../destinations/{destIndex}/activities/{actIndex}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dest, act, ok := activityParams(w, r)
	if !ok {
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.RemoveActivity(r.Context(), tripID, dest, act))
}

// EditActivity handles PATCH .../destinations/{destIndex}/activities/{actIndex}.
func (s *Server) EditActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dest, act, ok := activityParams(w, r)
	if !ok {
		return
	}
	var body EditActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.EditActivityField(r.Context(), tripID, dest, act, itinerary.Field(body.Field), body.Value))
}

// MoveActivity handles POST .../destinations/{destIndex}/activities/{actIndex}/move.
func (s *Server) MoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, dest, act, ok := activityParams(w, r)
	if !ok {
		return
	}
	var body MoveActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}
	s.respondTrip(w, r, http.StatusOK)(s.itinerary.MoveActivity(r.Context(), tripID, dest, act, body.ToDestination))
}

func activityParams(w http.ResponseWriter, r *http.Request) (tripID uuid.UUID, dest, act int, ok bool) {
	if tripID, ok = uuidParam(w, r, "tripID"); !ok {
		return
	}
	if dest, ok = indexParam(w, r, "destIndex"); !ok {
		return
	}
	act, ok = indexParam(w, r, "actIndex")
	return
}

// respondTrip returns a sink for a service call's (trip, error) pair.
func (s *Server) respondTrip(w http.ResponseWriter, r *http.Request, status int) func(domain.Trip, error) {
	return func(trip domain.Trip, err error) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, status, tripToResponse(trip))
	}
}
