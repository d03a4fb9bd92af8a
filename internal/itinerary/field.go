package itinerary

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// Field names an editable attribute of an activity.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldTime        Field = "time"
	FieldDuration    Field = "duration"
	FieldCost        Field = "cost"
	FieldCategory    Field = "category"
	FieldLocation    Field = "location"
	FieldDay         Field = "day"
)

// setters parse a raw inline-edit value and apply it to an activity.
// Each setter only checks that the value parses; the activity's own
// Validate enforces the range rules afterwards.
var setters = map[Field]func(a *domain.Activity, value string) error{
	FieldName:        func(a *domain.Activity, v string) error { a.Name = strings.TrimSpace(v); return nil },
	FieldDescription: func(a *domain.Activity, v string) error { a.Description = v; return nil },
	FieldTime:        setTime,
	FieldDuration:    setDuration,
	FieldCost:        setCost,
	FieldCategory:    setCategory,
	FieldLocation:    func(a *domain.Activity, v string) error { a.Location = strings.TrimSpace(v); return nil },
	FieldDay:         setDay,
}

// EditActivityField updates a single attribute of one activity, as used for
// inline edits of suggested activities. The value is parsed according to the
// field and must pass that attribute's validation.
func EditActivityField(trip domain.Trip, destIndex, actIndex int, field Field, value string) (domain.Trip, error) {
	if err := checkActivity(trip, destIndex, actIndex); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.EditActivityField: %w", err)
	}
	set, ok := setters[field]
	if !ok {
		return domain.Trip{}, fmt.Errorf("itinerary.EditActivityField: %w", &domain.FieldError{
			Field: string(field), Reason: "is not an editable activity field",
		})
	}

	out := trip.Clone()
	act := &out.Destinations[destIndex].Activities[actIndex]
	if err := set(act, value); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.EditActivityField: %w", err)
	}
	if err := act.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.EditActivityField: %w", err)
	}
	return out, nil
}

func setTime(a *domain.Activity, v string) error {
	v = strings.TrimSpace(v)
	// Clock-shaped values must be real times; anything else ("morning",
	// "10:00 AM") is kept as free text.
	if len(v) == 5 && v[2] == ':' {
		h, errH := strconv.Atoi(v[:2])
		m, errM := strconv.Atoi(v[3:])
		if errH != nil || errM != nil || h > 23 || m > 59 {
			return &domain.FieldError{Field: string(FieldTime), Reason: fmt.Sprintf("%q is not a valid HH:MM time", v)}
		}
	}
	a.Time = v
	return nil
}

func setDuration(a *domain.Activity, v string) error {
	if strings.TrimSpace(v) == "" {
		a.DurationHours = nil
		return nil
	}
	h, err := parseNumber(FieldDuration, v)
	if err != nil {
		return err
	}
	a.DurationHours = &h
	return nil
}

func setCost(a *domain.Activity, v string) error {
	c, err := parseNumber(FieldCost, v)
	if err != nil {
		return err
	}
	a.Cost = c
	return nil
}

func setCategory(a *domain.Activity, v string) error {
	c, ok := domain.ParseCategory(v)
	if !ok {
		return &domain.FieldError{Field: string(FieldCategory), Reason: fmt.Sprintf("unknown category %q", v)}
	}
	a.Category = c
	return nil
}

func setDay(a *domain.Activity, v string) error {
	if strings.TrimSpace(v) == "" {
		a.Day = 0
		return nil
	}
	d, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return &domain.FieldError{Field: string(FieldDay), Reason: fmt.Sprintf("%q is not a whole number", v)}
	}
	a.Day = d
	return nil
}

func parseNumber(field Field, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &domain.FieldError{Field: string(field), Reason: fmt.Sprintf("%q is not a number", v)}
	}
	return f, nil
}
