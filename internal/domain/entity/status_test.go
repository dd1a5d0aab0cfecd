package entity_test

import (
	"testing"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"draft", "review", "scheduled", "published"} {
		st, err := entity.ParseStatus(raw)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", raw, err)
		}
		if string(st) != raw {
			t.Errorf("ParseStatus(%q) = %q", raw, st)
		}
	}

	for _, raw := range []string{"", "Draft", "DRAFT", "archived", "live"} {
		if _, err := entity.ParseStatus(raw); err == nil {
			t.Errorf("ParseStatus(%q) must fail", raw)
		}
	}
}

func TestParseReminderOffset(t *testing.T) {
	r, err := entity.ParseReminderOffset("")
	if err != nil {
		t.Fatalf("empty reminder offset returned error: %v", err)
	}
	if r != entity.ReminderNone {
		t.Errorf("empty offset = %q, want none", r)
	}

	if _, err := entity.ParseReminderOffset("one_month"); err == nil {
		t.Error("unknown reminder offset must be rejected")
	}
}

func TestReminderOffset_Window(t *testing.T) {
	tests := []struct {
		offset entity.ReminderOffset
		want   time.Duration
	}{
		{entity.ReminderNone, 0},
		{entity.ReminderOffset(""), 0},
		{entity.ReminderOneDay, 24 * time.Hour},
		{entity.ReminderOneWeek, 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		if got := tt.offset.Window(); got != tt.want {
			t.Errorf("Window(%q) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
