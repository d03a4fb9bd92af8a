// Package itinerary implements copy-on-write edits to a trip's ordered
// destinations and their activities. Every function takes a trip by value and
// returns a new, validated trip; the caller's trip, including its nested
// slices, is never modified. On error the zero Trip is returned together with
// an error wrapping one of the domain sentinels.
package itinerary

import (
	"fmt"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// AddDestination appends d to the end of the trip's sequence.
func AddDestination(trip domain.Trip, d domain.Destination) (domain.Trip, error) {
	if err := d.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.AddDestination: %w", err)
	}
	out := trip.Clone()
	out.Destinations = append(out.Destinations, d.Clone())
	return out, nil
}

// UpdateDestination replaces the stop's own fields (city, country, dates,
// budget) with those of d. The stop keeps its existing activities.
func UpdateDestination(trip domain.Trip, index int, d domain.Destination) (domain.Trip, error) {
	if err := checkDestination(trip, index); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.UpdateDestination: %w", err)
	}
	out := trip.Clone()
	updated := d.Clone()
	updated.Activities = out.Destinations[index].Activities
	if err := updated.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.UpdateDestination: %w", err)
	}
	out.Destinations[index] = updated
	return out, nil
}

// RemoveDestination deletes the stop at index together with its activities.
func RemoveDestination(trip domain.Trip, index int) (domain.Trip, error) {
	if err := checkDestination(trip, index); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.RemoveDestination: %w", err)
	}
	out := trip.Clone()
	out.Destinations = append(out.Destinations[:index], out.Destinations[index+1:]...)
	return out, nil
}

// AddActivity appends a to the destination at destIndex.
func AddActivity(trip domain.Trip, destIndex int, a domain.Activity) (domain.Trip, error) {
	if err := checkDestination(trip, destIndex); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.AddActivity: %w", err)
	}
	if err := a.Validate(); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.AddActivity: %w", err)
	}
	out := trip.Clone()
	dest := &out.Destinations[destIndex]
	dest.Activities = append(dest.Activities, a.Clone())
	return out, nil
}

// RemoveActivity deletes one activity from the destination at destIndex.
func RemoveActivity(trip domain.Trip, destIndex, actIndex int) (domain.Trip, error) {
	if err := checkActivity(trip, destIndex, actIndex); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.RemoveActivity: %w", err)
	}
	out := trip.Clone()
	dest := &out.Destinations[destIndex]
	dest.Activities = append(dest.Activities[:actIndex], dest.Activities[actIndex+1:]...)
	return out, nil
}

// MoveActivity moves an activity to the end of another destination's list.
// Moving within the same destination sends the activity to the end.
func MoveActivity(trip domain.Trip, fromDest, actIndex, toDest int) (domain.Trip, error) {
	if err := checkActivity(trip, fromDest, actIndex); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.MoveActivity: %w", err)
	}
	if err := checkDestination(trip, toDest); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.MoveActivity: target: %w", err)
	}
	out := trip.Clone()
	moved := out.Destinations[fromDest].Activities[actIndex]
	src := &out.Destinations[fromDest]
	src.Activities = append(src.Activities[:actIndex], src.Activities[actIndex+1:]...)
	dst := &out.Destinations[toDest]
	dst.Activities = append(dst.Activities, moved)
	return out, nil
}

// ReorderDestinations rearranges stops so that position i of the result holds
// the stop previously at order[i]. order must be a permutation of
// 0..len(destinations)-1; anything else is rejected without changes.
func ReorderDestinations(trip domain.Trip, order []int) (domain.Trip, error) {
	if err := checkPermutation(order, len(trip.Destinations)); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.ReorderDestinations: %w", err)
	}
	src := domain.CloneDestinations(trip.Destinations)
	out := trip.Clone()
	for i, from := range order {
		out.Destinations[i] = src[from]
	}
	return out, nil
}

// ReplaceAllDestinations swaps in a whole new destination sequence, as happens
// when a generated plan is accepted or edited. Every nested entity is
// validated before anything is replaced.
func ReplaceAllDestinations(trip domain.Trip, ds []domain.Destination) (domain.Trip, error) {
	if err := domain.ValidateDestinations(ds); err != nil {
		return domain.Trip{}, fmt.Errorf("itinerary.ReplaceAllDestinations: %w", err)
	}
	out := trip.Clone()
	out.Destinations = domain.CloneDestinations(ds)
	return out, nil
}

func checkDestination(trip domain.Trip, index int) error {
	if index < 0 || index >= len(trip.Destinations) {
		return fmt.Errorf("%w: destination %d (trip has %d)", domain.ErrIndexOutOfRange, index, len(trip.Destinations))
	}
	return nil
}

func checkActivity(trip domain.Trip, destIndex, actIndex int) error {
	if err := checkDestination(trip, destIndex); err != nil {
		return err
	}
	n := len(trip.Destinations[destIndex].Activities)
	if actIndex < 0 || actIndex >= n {
		return fmt.Errorf("%w: activity %d of destination %d (has %d)", domain.ErrIndexOutOfRange, actIndex, destIndex, n)
	}
	return nil
}

// checkPermutation reports whether order is a bijection over [0, n).
func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d indices for %d destinations", domain.ErrInvalidPermutation, len(order), n)
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: index %d out of range", domain.ErrInvalidPermutation, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: index %d repeated", domain.ErrInvalidPermutation, i)
		}
		seen[i] = true
	}
	return nil
}
