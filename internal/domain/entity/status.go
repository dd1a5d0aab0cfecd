package entity

import "time"

// Status is the workflow state of an article. It is a closed enumeration;
// any value outside the four constants below is rejected at the boundary.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

// StatusOrder is the fixed presentation order of the pipeline buckets.
var StatusOrder = []Status{StatusDraft, StatusReview, StatusScheduled, StatusPublished}

// Valid reports whether s is one of the recognized workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// ParseStatus converts a wire-format string into a Status.
// Returns a ValidationError for anything outside the enumeration.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", &ValidationError{Field: "status", Message: "unrecognized value '" + raw + "'"}
	}
	return s, nil
}

// ReminderOffset selects how far ahead of the target publish date the
// reminder window opens.
type ReminderOffset string

const (
	ReminderNone    ReminderOffset = "none"
	ReminderOneDay  ReminderOffset = "one_day"
	ReminderOneWeek ReminderOffset = "one_week"
)

// Valid reports whether r is a recognized reminder offset.
// The empty string is accepted and treated as ReminderNone by Window.
func (r ReminderOffset) Valid() bool {
	switch r {
	case "", ReminderNone, ReminderOneDay, ReminderOneWeek:
		return true
	}
	return false
}

// Window returns the duration of the reminder window, or zero for none.
func (r ReminderOffset) Window() time.Duration {
	switch r {
	case ReminderOneDay:
		return 24 * time.Hour
	case ReminderOneWeek:
		return 7 * 24 * time.Hour
	}
	return 0
}

// ParseReminderOffset converts a wire-format string into a ReminderOffset.
// The empty string maps to ReminderNone.
func ParseReminderOffset(raw string) (ReminderOffset, error) {
	if raw == "" {
		return ReminderNone, nil
	}
	r := ReminderOffset(raw)
	if !r.Valid() {
		return "", &ValidationError{Field: "reminder_offset", Message: "unrecognized value '" + raw + "'"}
	}
	return r, nil
}
