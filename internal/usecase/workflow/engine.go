package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
)

// Options carries the optional parameters of a status transition.
type Options struct {
	// PublishDate is the raw target publish date. Required when the
	// target status is Scheduled, ignored otherwise. Accepted layouts
	// are RFC 3339, "2006-01-02T15:04" and "2006-01-02".
	PublishDate string

	// ReminderOffset selects the reminder window for a scheduled
	// article. Defaults to none.
	ReminderOffset entity.ReminderOffset
}

// publishDateLayouts are tried in order when parsing Options.PublishDate.
// The minute-precision layout matches what the calendar front end sends.
var publishDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// scheduleGrace tolerates client clocks slightly behind the server when
// checking that a publish date is not in the past.
const scheduleGrace = time.Minute

// transitions is the set of permitted status edges. Published is
// terminal: the workflow is monotonic and a published article is never
// reopened. Missing entries (including self-edges) are illegal.
var transitions = map[entity.Status]map[entity.Status]bool{
	entity.StatusDraft: {
		entity.StatusReview:    true,
		entity.StatusScheduled: true,
		entity.StatusPublished: true,
	},
	entity.StatusReview: {
		entity.StatusDraft:     true,
		entity.StatusScheduled: true,
		entity.StatusPublished: true,
	},
	entity.StatusScheduled: {
		entity.StatusDraft:     true,
		entity.StatusReview:    true,
		entity.StatusPublished: true,
	},
	entity.StatusPublished: {},
}

// Transition validates and applies a status change, returning the mutated
// copy of the article. The input record is never modified: every check
// runs before the first mutation, and on any error the returned article
// is the unchanged input.
//
// Side effects on success:
//   - target Scheduled: TargetPublishDate and ReminderOffset are set from
//     the options.
//   - target Draft or Review: both schedule fields are cleared. Moving an
//     article off the calendar discards its slot; this is the documented
//     policy, not an accident.
//   - target Published: TargetPublishDate is kept as-is as a historical
//     record; no date is required.
func Transition(a *entity.Article, target entity.Status, opts Options) (*entity.Article, error) {
	return TransitionAt(a, target, opts, time.Now())
}

// TransitionAt is Transition with an explicit clock, used by the
// auto-publish worker and by tests.
func TransitionAt(a *entity.Article, target entity.Status, opts Options, now time.Time) (*entity.Article, error) {
	if !target.Valid() {
		return a, fmt.Errorf("%w: '%s'", ErrInvalidStatus, target)
	}
	if !transitions[a.Status][target] {
		return a, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, a.Status, target)
	}

	var publishAt *time.Time
	if target == entity.StatusScheduled {
		t, err := scheduleDate(opts.PublishDate, now)
		if err != nil {
			return a, err
		}
		publishAt = &t
	}

	out := a.Clone()
	switch target {
	case entity.StatusScheduled:
		out.TargetPublishDate = publishAt
		out.ReminderOffset = opts.ReminderOffset
		if out.ReminderOffset == "" {
			out.ReminderOffset = entity.ReminderNone
		}
	case entity.StatusDraft, entity.StatusReview:
		out.TargetPublishDate = nil
		out.ReminderOffset = entity.ReminderNone
	case entity.StatusPublished:
		// keep the schedule fields as a historical record
	}
	out.Status = target
	out.UpdatedAt = now
	return out, nil
}

// Schedule places an article on the calendar. For Draft and Review
// articles it is the Scheduled transition; for an article that is
// already Scheduled it updates the publish date and reminder in place,
// since moving a calendar slot is an explicit re-schedule rather than a
// status change. The raw Scheduled -> Scheduled transition stays illegal.
func Schedule(a *entity.Article, opts Options) (*entity.Article, error) {
	return ScheduleAt(a, opts, time.Now())
}

// ScheduleAt is Schedule with an explicit clock.
func ScheduleAt(a *entity.Article, opts Options, now time.Time) (*entity.Article, error) {
	if a.Status != entity.StatusScheduled {
		return TransitionAt(a, entity.StatusScheduled, opts, now)
	}

	t, err := scheduleDate(opts.PublishDate, now)
	if err != nil {
		return a, err
	}

	out := a.Clone()
	out.TargetPublishDate = &t
	out.ReminderOffset = opts.ReminderOffset
	if out.ReminderOffset == "" {
		out.ReminderOffset = entity.ReminderNone
	}
	out.UpdatedAt = now
	return out, nil
}

// scheduleDate validates the raw publish date of a schedule request:
// present, parseable and not in the past (modulo the grace window).
func scheduleDate(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, ErrMissingScheduleDate
	}
	t, err := ParsePublishDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if t.Before(now.Add(-scheduleGrace)) {
		return time.Time{}, fmt.Errorf("%w: '%s' is in the past", ErrInvalidDate, raw)
	}
	return t, nil
}

// ParsePublishDate parses a raw publish date in any accepted layout.
// Layouts without a zone are interpreted in local time, matching how the
// drafts directory is used (a single writer's machine).
func ParsePublishDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range publishDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse '%s'", ErrInvalidDate, raw)
}
