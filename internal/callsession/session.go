// Package callsession tracks an in-progress or just-ended call and produces
// a note draft when the user saves or skips. The machine runs
// Idle → CallStarted → CallEnded → NotePrompt → Idle; a note-only entry
// jumps straight to CallEnded with a zero duration.
package callsession

import (
	"fmt"
	"time"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
)

// Phase is the session's current state
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseCallStarted Phase = "call_started"
	PhaseCallEnded   Phase = "call_ended"
	PhaseNotePrompt  Phase = "note_prompt"
)

// Session is the call/note session state. It serializes to JSON so the CLI
// can persist an in-flight call between invocations.
type Session struct {
	Phase       Phase                `json:"phase"`
	ContactID   string               `json:"contact_id,omitempty"`
	ContactName string               `json:"contact_name,omitempty"`
	Direction   models.CallDirection `json:"direction,omitempty"`
	StartedAt   time.Time            `json:"started_at,omitzero"`
	EndedAt     time.Time            `json:"ended_at,omitzero"`
}

// New returns an idle session
func New() *Session {
	return &Session{Phase: PhaseIdle}
}

// Active reports whether a call or prompt is in flight
func (s *Session) Active() bool {
	return s.Phase != "" && s.Phase != PhaseIdle
}

// StartCall begins tracking a call with the given contact
func (s *Session) StartCall(contact *models.Contact, direction models.CallDirection, now time.Time) error {
	if s.Active() {
		return fmt.Errorf("a call with %s is already in progress", s.ContactName)
	}
	if !models.IsValidDirection(direction) {
		return fmt.Errorf("invalid call direction: %s", direction)
	}

	s.Phase = PhaseCallStarted
	s.ContactID = contact.ID
	s.ContactName = contact.Name
	s.Direction = direction
	s.StartedAt = now
	s.EndedAt = time.Time{}
	return nil
}

// EndCall records the end of the tracked call
func (s *Session) EndCall(now time.Time) error {
	if s.Phase != PhaseCallStarted {
		return fmt.Errorf("no call in progress")
	}
	s.Phase = PhaseCallEnded
	s.EndedAt = now
	return nil
}

// NoteOnly jumps straight to CallEnded with start=end=now, simulating an
// instantaneous note-only entry for a contact.
func (s *Session) NoteOnly(contact *models.Contact, now time.Time) error {
	if s.Active() {
		return fmt.Errorf("a call with %s is already in progress", s.ContactName)
	}
	s.Phase = PhaseCallEnded
	s.ContactID = contact.ID
	s.ContactName = contact.Name
	s.Direction = models.DirectionOutbound
	s.StartedAt = now
	s.EndedAt = now
	return nil
}

// OpenPrompt marks the note prompt open. Saving and skipping are accepted
// from either CallEnded or NotePrompt, so this transition is cosmetic for
// the CLI but kept for parity with the modal flow.
func (s *Session) OpenPrompt() error {
	if s.Phase != PhaseCallEnded {
		return fmt.Errorf("no ended call to note")
	}
	s.Phase = PhaseNotePrompt
	return nil
}

// Duration returns the tracked call's length
func (s *Session) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Save produces a note draft from the ended call and resets to idle
func (s *Session) Save(text string, status models.NoteStatus, statusCustom string) (store.NoteDraft, error) {
	if s.Phase != PhaseCallEnded && s.Phase != PhaseNotePrompt {
		return store.NoteDraft{}, fmt.Errorf("no ended call to save")
	}

	draft := store.NoteDraft{
		ContactID:     s.ContactID,
		ContactName:   s.ContactName,
		Text:          text,
		CallStartTime: s.StartedAt,
		CallEndTime:   s.EndedAt,
		Direction:     s.Direction,
		Status:        status,
		StatusCustom:  statusCustom,
	}

	s.reset()
	return draft, nil
}

// Skip produces an empty, auto-generated, closed note draft and resets to idle
func (s *Session) Skip() (store.NoteDraft, error) {
	if s.Phase != PhaseCallEnded && s.Phase != PhaseNotePrompt {
		return store.NoteDraft{}, fmt.Errorf("no ended call to skip")
	}

	draft := store.NoteDraft{
		ContactID:     s.ContactID,
		ContactName:   s.ContactName,
		CallStartTime: s.StartedAt,
		CallEndTime:   s.EndedAt,
		Direction:     s.Direction,
		Status:        models.StatusClosed,
		AutoGenerated: true,
	}

	s.reset()
	return draft, nil
}

func (s *Session) reset() {
	*s = Session{Phase: PhaseIdle}
}
