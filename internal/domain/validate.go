package domain

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the trip and everything nested in it.
// The returned error wraps ErrValidation and names the first violated field.
func (t Trip) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return invalid("name", "is required")
	}
	if t.StartDate.IsZero() {
		return invalid("start_date", "is required")
	}
	if t.EndDate.IsZero() {
		return invalid("end_date", "is required")
	}
	if DateOf(t.EndDate).Before(DateOf(t.StartDate)) {
		return invalid("end_date", "must not be before start_date")
	}
	if t.Budget != nil {
		if err := t.Budget.validate(); err != nil {
			return err
		}
	}
	switch t.Visibility {
	case "", VisibilityPrivate, VisibilityPublic:
	default:
		return invalid("visibility", fmt.Sprintf("unknown value %q", t.Visibility))
	}
	return ValidateDestinations(t.Destinations)
}

// ValidateDestinations checks every destination in order and prefixes any
// failure with its position, e.g. "destinations[2].city".
func ValidateDestinations(ds []Destination) error {
	for i, d := range ds {
		if err := d.Validate(); err != nil {
			return prefixField(fmt.Sprintf("destinations[%d]", i), err)
		}
	}
	return nil
}

// Validate checks the destination's own invariants and all of its activities.
func (d Destination) Validate() error {
	if strings.TrimSpace(d.City) == "" {
		return invalid("city", "is required")
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return invalid("start_date", "start and end dates are required")
	}
	if DateOf(d.EndDate).Before(DateOf(d.StartDate)) {
		return invalid("end_date", "must not be before start_date")
	}
	if d.Budget != nil {
		if !finite(*d.Budget) {
			return invalid("budget", "must be a finite number")
		}
		if *d.Budget < 0 {
			return invalid("budget", "must not be negative")
		}
	}
	for i, a := range d.Activities {
		if err := a.Validate(); err != nil {
			return prefixField(fmt.Sprintf("activities[%d]", i), err)
		}
	}
	return nil
}

// Validate checks the activity's own invariants.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return invalid("name", "is required")
	}
	if a.DurationHours != nil {
		if !finite(*a.DurationHours) {
			return invalid("duration", "must be a finite number")
		}
		if *a.DurationHours <= 0 {
			return invalid("duration", "must be greater than zero")
		}
	}
	if !finite(a.Cost) {
		return invalid("cost", "must be a finite number")
	}
	if a.Cost < 0 {
		return invalid("cost", "must not be negative")
	}
	if !a.Category.Valid() {
		return invalid("category", fmt.Sprintf("unknown category %q", a.Category))
	}
	if a.Day < 0 {
		return invalid("day", "must not be negative")
	}
	return nil
}

func (b Budget) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"budget.total", b.Total},
		{"budget.accommodation", b.Accommodation},
		{"budget.food", b.Food},
		{"budget.activities", b.Activities},
		{"budget.transport", b.Transport},
	}
	for _, f := range fields {
		if !finite(f.value) {
			return invalid(f.name, "must be a finite number")
		}
		if f.value < 0 {
			return invalid(f.name, "must not be negative")
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FieldError describes which field of an entity failed validation.
// errors.Is(err, ErrValidation) holds for every FieldError.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// prefixField qualifies a nested FieldError with its parent path.
func prefixField(prefix string, err error) error {
	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Field: prefix + "." + fe.Field, Reason: fe.Reason}
	}
	return err
}
