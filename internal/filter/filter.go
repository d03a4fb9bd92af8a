// Package filter composes side-effect-free predicates over list views of
// trips, activities and cities. Applying a set of predicates keeps exactly the
// items every predicate accepts, so the order in which they are given does not
// matter, and applying none returns the input unchanged.
package filter

import "strings"

// Predicate reports whether an item should be kept. Predicates must not
// modify the item or depend on state that changes between calls.
type Predicate[T any] func(T) bool

// Apply returns the items accepted by every predicate, preserving order.
// With no predicates the input slice itself is returned.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return items
	}
	keep := All(preds...)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// All combines predicates with logical AND. All() accepts everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(it T) bool {
		for _, p := range preds {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates with logical OR. Any() accepts nothing.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(it T) bool {
		for _, p := range preds {
			if p(it) {
				return true
			}
		}
		return false
	}
}

// On lifts a predicate over U to one over T using get to reach the U inside.
func On[T, U any](get func(T) U, p Predicate[U]) Predicate[T] {
	return func(it T) bool { return p(get(it)) }
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
