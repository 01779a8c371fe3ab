package timeparse

import (
	"testing"
	"time"
)

func TestParseDueDateFrom(t *testing.T) {
	// Tuesday reference
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-04-01", time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)},
		{"today", time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)},
		{"tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)},
		{"next-week", time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)},
		{"next-month", time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)},
		{"+3d", time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)},
		{"+2w", time.Date(2026, 3, 24, 0, 0, 0, 0, time.Local)},
		{"+1m", time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)},
		{"friday", time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)},
		{"tuesday", time.Date(2026, 3, 17, 0, 0, 0, 0, time.Local)}, // same weekday advances a full week
		{"Monday", time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)},
		{"  TOMORROW  ", time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDateFrom(tt.input, now)
			if err != nil {
				t.Fatalf("ParseDueDateFrom(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDueDateFrom(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDueDateFromErrors(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	inputs := []string{"", "someday", "+3x", "03/10/2026", "+d"}
	for _, input := range inputs {
		if _, err := ParseDueDateFrom(input, now); err == nil {
			t.Errorf("ParseDueDateFrom(%q) succeeded, want error", input)
		}
	}
}
