package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/config"
	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/suggest"
)

var callCmd = &cobra.Command{
	Use:     "call",
	Short:   "Track a call and capture the note afterwards",
	Long:    `Start and end calls, then save or skip the follow-up note.`,
	GroupID: "notes",
}

var callStartCmd = &cobra.Command{
	Use:   "start <contact>",
	Short: "Start tracking a call",
	Long: `Start tracking a call with a contact.

Examples:
  cn call start "Maria Santos"
  cn call start ct-1756712345678 --direction in`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		contact, err := s.FindContact(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		dirFlag, _ := cmd.Flags().GetString("direction")
		direction := models.NormalizeDirection(dirFlag)
		if !models.IsValidDirection(direction) {
			err := suggest.Hint("direction", dirFlag, []string{"inbound", "outbound"})
			output.Error("%v", err)
			return err
		}

		session, err := config.LoadSession(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if err := session.StartCall(contact, direction, time.Now()); err != nil {
			output.Error("%v", err)
			return err
		}
		if err := config.SaveSession(getDataDir(), session); err != nil {
			output.Error("failed to save session: %v", err)
			return err
		}

		fmt.Printf("CALL STARTED %s %s\n", output.FormatDirection(direction), contact.Name)
		return nil
	},
}

var callEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the tracked call",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := config.LoadSession(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if err := session.EndCall(time.Now()); err != nil {
			output.Error("%v", err)
			return err
		}
		if err := config.SaveSession(getDataDir(), session); err != nil {
			output.Error("failed to save session: %v", err)
			return err
		}

		secs := int(session.Duration().Seconds())
		fmt.Printf("CALL ENDED %s (%s)\n", session.ContactName, output.FormatDuration(secs))
		fmt.Println(output.Subtle("Save a note with 'cn call save' or discard with 'cn call skip'"))
		return nil
	},
}

var callStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the tracked call, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := config.LoadSession(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if !session.Active() {
			fmt.Println("No call in progress")
			return nil
		}
		fmt.Printf("%s call with %s, started %s\n",
			session.Phase, session.ContactName, output.FormatTimeAgo(session.StartedAt))
		return nil
	},
}

var callSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a note for the ended call",
	Long: `Save a note for the call that just ended. Without --text an interactive
form opens, pre-filled from the note template.

Clock times mentioned in the note ("call back at 3pm") become reminder
suggestions; pass --no-remind to skip them.

Examples:
  cn call save --text "Wants a quote for 20 units" --status follow_up
  cn call save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		session, err := config.LoadSession(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		text, _ := cmd.Flags().GetString("text")
		statusFlag, _ := cmd.Flags().GetString("status")
		statusCustom, _ := cmd.Flags().GetString("status-custom")

		status := models.NormalizeStatus(statusFlag)
		if !models.IsValidStatus(status) {
			err := suggest.Hint("status", statusFlag, models.ValidStatuses())
			output.Error("%v", err)
			return err
		}

		if !cmd.Flags().Changed("text") {
			filled, chosenStatus, err := runNoteForm(s, session.ContactName, int(session.Duration().Seconds()))
			if err != nil {
				output.Error("%v", err)
				return err
			}
			text = filled
			status = chosenStatus
		}

		draft, err := session.Save(text, status, statusCustom)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		note, err := s.AddNote(draft)
		if err != nil {
			output.Error("failed to save note: %v", err)
			return err
		}
		if err := config.SaveSession(getDataDir(), session); err != nil {
			output.Error("failed to save session: %v", err)
			return err
		}

		fmt.Printf("SAVED %s for %s\n", note.ID, note.ContactName)

		if noRemind, _ := cmd.Flags().GetBool("no-remind"); !noRemind {
			suggestFollowUps(s, note)
		}
		return nil
	},
}

var callSkipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Discard the note prompt for the ended call",
	Long: `Skip the note for the call that just ended. An empty, auto-generated
note is still recorded so the call shows up in the history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		session, err := config.LoadSession(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		draft, err := session.Skip()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		note, err := s.AddNote(draft)
		if err != nil {
			output.Error("failed to record call: %v", err)
			return err
		}
		if err := config.SaveSession(getDataDir(), session); err != nil {
			output.Error("failed to save session: %v", err)
			return err
		}

		fmt.Printf("SKIPPED note, call recorded as %s\n", note.ID)
		return nil
	},
}

// runNoteForm opens the interactive note prompt, pre-filled from the template
func runNoteForm(s *store.Store, contactName string, durationSecs int) (string, models.NoteStatus, error) {
	tpl, err := s.NoteTemplate()
	if err != nil {
		return "", "", err
	}
	text := strings.NewReplacer(
		"{contact}", contactName,
		"{duration}", output.FormatDuration(durationSecs),
	).Replace(tpl)

	status := string(models.StatusFollowUp)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("Note for %s", contactName)).
				Value(&text),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Follow up", string(models.StatusFollowUp)),
					huh.NewOption("Waiting reply", string(models.StatusWaitingReply)),
					huh.NewOption("Closed", string(models.StatusClosed)),
					huh.NewOption("Other", string(models.StatusOther)),
				).
				Value(&status),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return text, models.NoteStatus(status), nil
}

// suggestFollowUps reports the reminders created from clock times detected in
// the note's text.
func suggestFollowUps(s *store.Store, note *models.CallNote) {
	for _, r := range s.SuggestFollowUps(note, time.Now()) {
		output.Info("Reminder %s set for %s", r.ID, r.DueDate.Format("Mon 15:04"))
	}
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.AddCommand(callStartCmd)
	callCmd.AddCommand(callEndCmd)
	callCmd.AddCommand(callStatusCmd)
	callCmd.AddCommand(callSaveCmd)
	callCmd.AddCommand(callSkipCmd)

	callStartCmd.Flags().StringP("direction", "d", "outbound", "Call direction (inbound, outbound)")

	callSaveCmd.Flags().StringP("text", "t", "", "Note text (opens a form if omitted)")
	callSaveCmd.Flags().StringP("status", "s", "follow_up", "Note status (follow_up, waiting_reply, closed, other)")
	callSaveCmd.Flags().String("status-custom", "", "Custom status text when --status other")
	callSaveCmd.Flags().Bool("no-remind", false, "Skip reminder suggestions from detected times")
}
