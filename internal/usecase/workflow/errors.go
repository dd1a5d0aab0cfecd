// Package workflow implements the article status state machine.
// It validates and applies transitions among Draft, Review, Scheduled and
// Published, and computes advisory reminders for scheduled articles.
// The engine is pure: it holds no state, performs no I/O, and never
// modifies the record it is given. Callers receive a mutated copy and
// are responsible for persisting it.
package workflow

import "errors"

// Sentinel errors for workflow violations. The HTTP layer maps all of
// these to client errors.
var (
	// ErrInvalidStatus indicates a target status outside the enumeration.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrIllegalTransition indicates the edge (current, target) is not in
	// the transition table. Self-transitions are rejected: a re-schedule
	// goes through the schedule operation, not a repeated transition.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrMissingScheduleDate indicates a transition to Scheduled without
	// a publish date.
	ErrMissingScheduleDate = errors.New("publish date is required to schedule")

	// ErrInvalidDate indicates a publish date that could not be parsed
	// or lies in the past.
	ErrInvalidDate = errors.New("invalid publish date")
)
