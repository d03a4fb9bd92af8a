package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// decodeBody reads a JSON request body into v. On failure it writes the
// response itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, err)
			return false
		}
		badRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// uuidParam parses the named chi URL parameter as a UUID.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		badRequest(w, fmt.Sprintf("%s must be a UUID", name))
		return uuid.Nil, false
	}
	return id, true
}

// indexParam parses the named chi URL parameter as a non-negative list index.
// Out-of-range indexes are left for the itinerary engine to report.
func indexParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		badRequest(w, fmt.Sprintf("%s must be an integer", name))
		return 0, false
	}
	return i, true
}

// intQuery parses an optional integer query parameter. A missing value
// yields nil.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(w, fmt.Sprintf("%s must be an integer", name))
		return nil, false
	}
	return &v, true
}

// floatQuery parses an optional decimal query parameter.
func floatQuery(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		badRequest(w, fmt.Sprintf("%s must be a number", name))
		return nil, false
	}
	return &v, true
}
