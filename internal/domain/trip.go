// Package domain contains the core data types for the GlobeTrotter backend.
// This package has no external dependencies beyond uuid and is imported by
// every other internal package (engine, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visibility controls whether a trip can be read through the public share link.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Trip is the top-level travel plan owned by a user.
// A trip exclusively owns its destinations, and each destination exclusively
// owns its activities. Deleting a trip removes everything nested in it.
type Trip struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	CoverImage   string
	Destinations []Destination
	Budget       *Budget // nil when the traveller never declared one
	Visibility   Visibility
	AIGenerated  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Budget is the summary a traveller declares for a trip.
// Only Total takes part in aggregation; the category fields are informational.
type Budget struct {
	Total         float64
	Accommodation float64
	Food          float64
	Activities    float64
	Transport     float64
}

// Destination is an ordered city-level stop within a trip.
// Its position in Trip.Destinations is its order; there is no separate sort key.
type Destination struct {
	City       string
	Country    string
	StartDate  time.Time
	EndDate    time.Time
	Budget     *float64
	Activities []Activity
}

// Activity is a single timed, costed item within a destination.
type Activity struct {
	Name          string
	Description   string
	Time          string   // free-form ("10:00 AM") or "15:04"
	DurationHours *float64 // nil when unknown
	Cost          float64
	Category      Category
	Location      string // free text used for map lookups

	// Day is the 1-based day of the trip this activity is scheduled on.
	// Zero means unscheduled.
	Day int
}

// Clone returns a deep copy of the trip. Slices and pointers in the copy
// share no memory with t.
func (t Trip) Clone() Trip {
	out := t
	if t.Budget != nil {
		b := *t.Budget
		out.Budget = &b
	}
	out.Destinations = cloneDestinations(t.Destinations)
	return out
}

// Clone returns a deep copy of the destination.
func (d Destination) Clone() Destination {
	out := d
	if d.Budget != nil {
		b := *d.Budget
		out.Budget = &b
	}
	if d.Activities != nil {
		out.Activities = make([]Activity, len(d.Activities))
		for i, a := range d.Activities {
			out.Activities[i] = a.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if a.DurationHours != nil {
		h := *a.DurationHours
		out.DurationHours = &h
	}
	return out
}

func cloneDestinations(ds []Destination) []Destination {
	if ds == nil {
		return nil
	}
	out := make([]Destination, len(ds))
	for i, d := range ds {
		out[i] = d.Clone()
	}
	return out
}

// CloneDestinations returns a deep copy of a destination sequence.
func CloneDestinations(ds []Destination) []Destination {
	return cloneDestinations(ds)
}
