// Package timeparse detects clock times in free text and parses reminder
// due-date inputs. Detection is deliberately narrow: 12- and 24-hour clock
// times only, no relative dates ("next Friday") and no date literals.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Candidate is a detected clock time resolved to a concrete instant:
// today at hour:minute, or tomorrow if that time has already passed.
type Candidate struct {
	Hour   int
	Minute int
	At     time.Time
}

// Matches "3pm", "3 pm", "3:15pm", "11:05 AM" and 24-hour "15:00".
var clockPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b|\b(\d{1,2}):(\d{2})\b`)

// DetectTimes returns the clock times found in text, de-duplicated by
// hour and minute, resolved against now.
func DetectTimes(text string, now time.Time) []Candidate {
	matches := clockPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[int]bool)
	var candidates []Candidate
	for _, m := range matches {
		hour, minute, ok := parseMatch(m)
		if !ok {
			continue
		}

		key := hour*60 + minute
		if seen[key] {
			continue
		}
		seen[key] = true

		at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !now.Before(at) {
			at = at.AddDate(0, 0, 1)
		}

		candidates = append(candidates, Candidate{Hour: hour, Minute: minute, At: at})
	}

	return candidates
}

func parseMatch(m []string) (hour, minute int, ok bool) {
	if m[3] != "" {
		// 12-hour form with meridiem; minutes optional
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false
		}
		switch strings.ToLower(m[3]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return hour, minute, true
	}

	// 24-hour form, minutes required
	hour, _ = strconv.Atoi(m[4])
	minute, _ = strconv.Atoi(m[5])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
