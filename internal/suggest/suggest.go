// Package suggest provides "did you mean" matching for enum-style CLI values
// (statuses, priorities, groupings) using Levenshtein distance.
package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// maxDistance is the largest edit distance still offered as a suggestion
const maxDistance = 3

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// Values returns the valid values closest to unknown, best first. Prefix
// matches rank ahead of pure edit-distance matches.
func Values(unknown string, valid []string) []string {
	unknown = strings.ToLower(strings.TrimSpace(unknown))
	if unknown == "" {
		return nil
	}

	type scored struct {
		value string
		score int
	}
	var candidates []scored

	for _, v := range valid {
		lower := strings.ToLower(v)
		if lower == unknown {
			continue
		}
		score := levenshtein(unknown, lower)
		if strings.HasPrefix(lower, unknown) {
			score = 0
		}
		if score <= maxDistance {
			candidates = append(candidates, scored{value: v, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.value)
	}
	return out
}

// Hint formats an invalid-value error with a suggestion when one exists
func Hint(kind, unknown string, valid []string) error {
	if matches := Values(unknown, valid); len(matches) > 0 {
		return fmt.Errorf("invalid %s: %q (did you mean %q?)", kind, unknown, matches[0])
	}
	return fmt.Errorf("invalid %s: %q (valid: %s)", kind, unknown, strings.Join(valid, ", "))
}
