package output

import (
	"strings"
	"testing"
	"time"

	"github.com/marcus/cn/internal/models"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m 00s"},
		{185, "3m 05s"},
		{3600, "60m 00s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.secs); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(12.5); got != "12.50" {
		t.Errorf("FormatMoney(12.5) = %q", got)
	}
	if got := FormatMoney(0); got != "0.00" {
		t.Errorf("FormatMoney(0) = %q", got)
	}
}

func TestFormatDirection(t *testing.T) {
	if got := FormatDirection(models.DirectionInbound); got != "←" {
		t.Errorf("inbound = %q", got)
	}
	if got := FormatDirection(models.DirectionOutbound); got != "→" {
		t.Errorf("outbound = %q", got)
	}
	if got := FormatDirection(""); got != " " {
		t.Errorf("unset = %q", got)
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1m ago"},
		{now.Add(-30 * time.Minute), "30m ago"},
		{now.Add(-2 * time.Hour), "2h ago"},
		{now.Add(-3 * 24 * time.Hour), "3d ago"},
	}
	for _, tt := range tests {
		if got := FormatTimeAgo(tt.t); got != tt.want {
			t.Errorf("FormatTimeAgo(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}

	old := now.Add(-30 * 24 * time.Hour)
	if got := FormatTimeAgo(old); got != old.Format("2006-01-02") {
		t.Errorf("old timestamps fall back to the date, got %q", got)
	}
}

func TestFormatNoteShortRespectsDisplayToggles(t *testing.T) {
	n := &models.CallNote{
		ID:           "cn-1",
		ContactName:  "Maria",
		Status:       models.StatusFollowUp,
		DurationSecs: 95,
		Direction:    models.DirectionInbound,
		Tags:         []string{"quote", "urgent"},
		CreatedAt:    time.Now(),
	}

	full := FormatNoteShort(n, models.NoteDisplay{ShowDuration: true, ShowDirection: true, ShowTags: true})
	if !strings.Contains(full, "1m 35s") || !strings.Contains(full, "#quote #urgent") || !strings.Contains(full, "←") {
		t.Errorf("full line missing fields: %q", full)
	}

	bare := FormatNoteShort(n, models.NoteDisplay{})
	if strings.Contains(bare, "1m 35s") || strings.Contains(bare, "#quote") || strings.Contains(bare, "←") {
		t.Errorf("bare line should hide toggled-off fields: %q", bare)
	}
	if !strings.Contains(bare, "Maria") {
		t.Errorf("contact name always shows: %q", bare)
	}
}

func TestFormatReminderShortMarks(t *testing.T) {
	now := time.Now()

	done := &models.Reminder{ID: "rm-1", Title: "x", DueDate: now.Add(time.Hour), Completed: true}
	if got := FormatReminderShort(done, now); !strings.Contains(got, "✓") {
		t.Errorf("completed mark missing: %q", got)
	}

	overdue := &models.Reminder{ID: "rm-2", Title: "x", DueDate: now.Add(-time.Hour)}
	if got := FormatReminderShort(overdue, now); !strings.Contains(got, "!") {
		t.Errorf("overdue mark missing: %q", got)
	}

	open := &models.Reminder{ID: "rm-3", Title: "x", DueDate: now.Add(time.Hour)}
	if got := FormatReminderShort(open, now); !strings.Contains(got, "○") {
		t.Errorf("open mark missing: %q", got)
	}
}
