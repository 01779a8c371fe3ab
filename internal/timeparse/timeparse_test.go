package timeparse

import (
	"testing"
	"time"
)

// Fixed reference: Tuesday 2026-03-10, 14:30 local
var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func TestDetectTimes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Candidate // At checked separately
	}{
		{
			name: "simple pm",
			text: "call me at 3pm",
			want: []Candidate{{Hour: 15, Minute: 0}},
		},
		{
			name: "am with minutes",
			text: "meeting 9:15 am tomorrow",
			want: []Candidate{{Hour: 9, Minute: 15}},
		},
		{
			name: "24 hour",
			text: "delivery window 16:45",
			want: []Candidate{{Hour: 16, Minute: 45}},
		},
		{
			name: "noon and midnight",
			text: "12pm or 12am works",
			want: []Candidate{{Hour: 12, Minute: 0}, {Hour: 0, Minute: 0}},
		},
		{
			name: "multiple times",
			text: "try 10am, else 4:30pm",
			want: []Candidate{{Hour: 10, Minute: 0}, {Hour: 16, Minute: 30}},
		},
		{
			name: "duplicates collapse",
			text: "3pm. I said 3pm. also 15:00",
			want: []Candidate{{Hour: 15, Minute: 0}},
		},
		{
			name: "no times",
			text: "send the quote next week",
			want: nil,
		},
		{
			name: "invalid hour ignored",
			text: "code 25:99 is not a time but 13pm neither",
			want: nil,
		},
		{
			name: "phone numbers are not times",
			text: "call +55 11 98765 4321",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTimes(tt.text, testNow)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectTimes(%q) = %d candidates, want %d: %+v", tt.text, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Hour != tt.want[i].Hour || got[i].Minute != tt.want[i].Minute {
					t.Errorf("candidate %d = %d:%02d, want %d:%02d",
						i, got[i].Hour, got[i].Minute, tt.want[i].Hour, tt.want[i].Minute)
				}
			}
		})
	}
}

func TestDetectTimesResolution(t *testing.T) {
	// 14:30 reference: 3pm is still ahead today, 9am already passed
	got := DetectTimes("9am or 3pm", testNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}

	nine, three := got[0], got[1]
	if !nine.At.After(testNow) {
		t.Errorf("9am resolved to %v, expected a future instant", nine.At)
	}
	if nine.At.Day() != testNow.Day()+1 {
		t.Errorf("9am should land tomorrow, got day %d", nine.At.Day())
	}
	if three.At.Day() != testNow.Day() {
		t.Errorf("3pm should land today, got day %d", three.At.Day())
	}
	if !three.At.After(testNow) {
		t.Errorf("3pm resolved to %v, expected a future instant", three.At)
	}
}

func TestDetectTimesExactMatchRollsOver(t *testing.T) {
	// A time equal to now has already passed
	got := DetectTimes("at 2:30pm", testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].At.Day() != testNow.Day()+1 {
		t.Errorf("2:30pm at 14:30 should roll to tomorrow, got %v", got[0].At)
	}
}
