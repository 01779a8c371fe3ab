package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Note text wraps to the terminal within bounds: capped so long notes stay
// readable on wide screens, floored so the renderer doesn't mangle lists.
const (
	maxNoteWidth = 100
	minNoteWidth = 24
)

// noteWidth picks the wrap width for rendered note text
func noteWidth() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	} else if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		width = cols
	}

	if width > maxNoteWidth {
		return maxNoteWidth
	}
	if width < minNoteWidth {
		return minNoteWidth
	}
	return width
}

// RenderMarkdown renders note text as terminal markdown. Blank text renders
// as nothing rather than an empty styled block.
func RenderMarkdown(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(noteWidth()),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n") + "\n", nil
}
