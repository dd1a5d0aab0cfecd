package workflow

import (
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
)

// ReminderStatus is the advisory proximity of an article to its scheduled
// publish date. It is computed on demand and never stored or delivered.
type ReminderStatus string

const (
	// NoReminder applies to articles that are not scheduled or have no
	// target publish date.
	NoReminder ReminderStatus = "none"

	// NotYetDue means the publish date is further away than the
	// configured reminder window.
	NotYetDue ReminderStatus = "not_yet_due"

	// DueSoon means the publish date falls within the reminder window.
	DueSoon ReminderStatus = "due_soon"

	// DueNow means the publish date has arrived or passed.
	DueNow ReminderStatus = "due_now"
)

// ComputeReminder evaluates the reminder state of an article at the given
// instant. Pure function; the record is not touched.
func ComputeReminder(a *entity.Article, now time.Time) ReminderStatus {
	if a.Status != entity.StatusScheduled || a.TargetPublishDate == nil {
		return NoReminder
	}

	delta := a.TargetPublishDate.Sub(now)
	if delta <= 0 {
		return DueNow
	}
	if window := a.ReminderOffset.Window(); window > 0 && delta <= window {
		return DueSoon
	}
	return NotYetDue
}
