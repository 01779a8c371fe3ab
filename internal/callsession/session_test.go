package callsession

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/marcus/cn/internal/models"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

var contact = &models.Contact{ID: "ct-1", Name: "Maria Santos", Phone: "555"}

func TestStartEndSave(t *testing.T) {
	s := New()
	if s.Active() {
		t.Fatal("new session must be idle")
	}

	if err := s.StartCall(contact, models.DirectionInbound, testNow); err != nil {
		t.Fatalf("StartCall: %v", err)
	}
	if s.Phase != PhaseCallStarted {
		t.Errorf("phase = %s, want %s", s.Phase, PhaseCallStarted)
	}

	end := testNow.Add(3 * time.Minute)
	if err := s.EndCall(end); err != nil {
		t.Fatalf("EndCall: %v", err)
	}
	if got := s.Duration(); got != 3*time.Minute {
		t.Errorf("Duration = %v, want 3m", got)
	}

	draft, err := s.Save("discussed pricing", models.StatusFollowUp, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if draft.ContactID != "ct-1" || draft.ContactName != "Maria Santos" {
		t.Errorf("draft contact = %s/%s", draft.ContactID, draft.ContactName)
	}
	if !draft.CallStartTime.Equal(testNow) || !draft.CallEndTime.Equal(end) {
		t.Errorf("draft times = %v..%v", draft.CallStartTime, draft.CallEndTime)
	}
	if draft.Direction != models.DirectionInbound {
		t.Errorf("draft direction = %s", draft.Direction)
	}
	if s.Active() {
		t.Error("session must reset to idle after save")
	}
}

func TestStartWhileActive(t *testing.T) {
	s := New()
	if err := s.StartCall(contact, models.DirectionOutbound, testNow); err != nil {
		t.Fatalf("StartCall: %v", err)
	}
	if err := s.StartCall(contact, models.DirectionOutbound, testNow); err == nil {
		t.Error("second StartCall should fail")
	}
}

func TestStartInvalidDirection(t *testing.T) {
	s := New()
	if err := s.StartCall(contact, "sideways", testNow); err == nil {
		t.Error("invalid direction should fail")
	}
	if s.Active() {
		t.Error("failed start must leave the session idle")
	}
}

func TestEndWithoutStart(t *testing.T) {
	s := New()
	if err := s.EndCall(testNow); err == nil {
		t.Error("EndCall on idle session should fail")
	}
}

func TestSaveWithoutEnd(t *testing.T) {
	s := New()
	if _, err := s.Save("text", models.StatusFollowUp, ""); err == nil {
		t.Error("Save on idle session should fail")
	}

	if err := s.StartCall(contact, models.DirectionOutbound, testNow); err != nil {
		t.Fatalf("StartCall: %v", err)
	}
	if _, err := s.Save("text", models.StatusFollowUp, ""); err == nil {
		t.Error("Save on an in-progress call should fail")
	}
}

func TestNoteOnly(t *testing.T) {
	s := New()
	if err := s.NoteOnly(contact, testNow); err != nil {
		t.Fatalf("NoteOnly: %v", err)
	}
	if s.Phase != PhaseCallEnded {
		t.Errorf("phase = %s, want %s", s.Phase, PhaseCallEnded)
	}
	if s.Duration() != 0 {
		t.Errorf("note-only duration = %v, want 0", s.Duration())
	}

	draft, err := s.Save("quick note", models.StatusClosed, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !draft.CallStartTime.Equal(draft.CallEndTime) {
		t.Error("note-only draft must have start == end")
	}
	if draft.Direction != models.DirectionOutbound {
		t.Errorf("note-only direction = %s, want outbound", draft.Direction)
	}
}

func TestSkipProducesAutoGeneratedClosedDraft(t *testing.T) {
	s := New()
	if err := s.StartCall(contact, models.DirectionOutbound, testNow); err != nil {
		t.Fatalf("StartCall: %v", err)
	}
	if err := s.EndCall(testNow.Add(time.Minute)); err != nil {
		t.Fatalf("EndCall: %v", err)
	}

	draft, err := s.Skip()
	if err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if draft.Text != "" {
		t.Errorf("skip draft text = %q, want empty", draft.Text)
	}
	if draft.Status != models.StatusClosed {
		t.Errorf("skip draft status = %s, want closed", draft.Status)
	}
	if !draft.AutoGenerated {
		t.Error("skip draft must be marked auto-generated")
	}
	if s.Active() {
		t.Error("session must reset to idle after skip")
	}
}

func TestOpenPrompt(t *testing.T) {
	s := New()
	if err := s.OpenPrompt(); err == nil {
		t.Error("OpenPrompt on idle session should fail")
	}

	if err := s.StartCall(contact, models.DirectionOutbound, testNow); err != nil {
		t.Fatalf("StartCall: %v", err)
	}
	if err := s.EndCall(testNow.Add(time.Minute)); err != nil {
		t.Fatalf("EndCall: %v", err)
	}
	if err := s.OpenPrompt(); err != nil {
		t.Fatalf("OpenPrompt: %v", err)
	}

	// Saving from the prompt phase works too
	if _, err := s.Save("text", models.StatusFollowUp, ""); err != nil {
		t.Errorf("Save from prompt: %v", err)
	}
}

func TestSessionSurvivesJSON(t *testing.T) {
	s := New()
	if err := s.StartCall(contact, models.DirectionInbound, testNow); err != nil {
		t.Fatalf("StartCall: %v", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Session
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Phase != PhaseCallStarted || restored.ContactID != "ct-1" {
		t.Errorf("restored session = %+v", restored)
	}
	if err := restored.EndCall(testNow.Add(time.Minute)); err != nil {
		t.Errorf("EndCall after restore: %v", err)
	}
}
