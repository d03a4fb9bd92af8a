package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorMapping pairs a domain sentinel with its HTTP status and code.
// The first match wins.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
	{domain.ErrInvalidPermutation, http.StatusUnprocessableEntity, "invalid_permutation"},
	{domain.ErrExternalDataShape, http.StatusUnprocessableEntity, "invalid_plan"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrIndexOutOfRange, http.StatusNotFound, "index_out_of_range"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
}

// writeError maps err to a status code and writes the error body.
// Errors that match no sentinel are logged and reported as 500 without
// leaking their text to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("request_too_large", "request body is too large"))
		return
	}
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			writeJSON(w, m.status, errorBody(m.code, unwrapMessage(err)))
			return
		}
	}

	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
}

// badRequest reports a request rejected before reaching the service layer
// (malformed body, unparsable path or query parameter).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody("bad_request", message))
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// unwrapMessage strips the "pkg.Type.Method: " prefixes each layer adds, so
// "service.TripService.Create: validation error: name: is required" becomes
// "validation error: name: is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		i := strings.Index(msg, ": ")
		if i < 0 || !isCallerPrefix(msg[:i]) {
			return msg
		}
		msg = msg[i+2:]
	}
}

func isCallerPrefix(s string) bool {
	return strings.Contains(s, ".") && !strings.ContainsAny(s, " []")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(v)
}
