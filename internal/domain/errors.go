package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when an entity fails its own invariants
// (negative cost, end date before start date, unknown category).
// The wrapping message names the violated field, e.g.
// "validation error: destinations[0].activities[1].cost: must not be negative".
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrIndexOutOfRange is returned by itinerary mutations that reference a
// destination or activity position that does not exist.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidPermutation is returned when a reorder request is not a bijection
// over the current destination indices.
var ErrInvalidPermutation = errors.New("invalid permutation")

// ErrExternalDataShape is returned when a generated plan is missing required
// fields that no safe default can fill (e.g. no days at all).
var ErrExternalDataShape = errors.New("external data shape error")

// ErrConflict is returned by the repo when a trip was modified by someone else
// after the caller read it. Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
