package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/callsession"
	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/suggest"
	"github.com/marcus/cn/internal/views"
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Short:   "Manage call notes",
	Long:    `Add, list, edit, file, and remove call notes.`,
	GroupID: "notes",
	Aliases: []string{"notes"},
}

var noteAddCmd = &cobra.Command{
	Use:   "add <contact> <text>",
	Short: "Add a note without tracking a call",
	Long: `Add a note for a contact without a tracked call. The note is recorded
with a zero-length call at the current time. Clock times mentioned in the
text become reminder suggestions, same as notes saved after a call.

Examples:
  cn note add "Maria Santos" "Asked about bulk pricing" --status waiting_reply
  cn note add ct-1756712345678 "Paid invoice" --status closed --tags payment`,
	Args: cobra.ExactArgs(2),
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

		statusFlag, _ := cmd.Flags().GetString("status")
		status := models.NormalizeStatus(statusFlag)
		if !models.IsValidStatus(status) {
			err := suggest.Hint("status", statusFlag, models.ValidStatuses())
			output.Error("%v", err)
			return err
		}
		statusCustom, _ := cmd.Flags().GetString("status-custom")

		priorityFlag, _ := cmd.Flags().GetString("priority")
		priority := models.Priority(strings.ToLower(priorityFlag))
		if !models.IsValidPriority(priority) {
			err := suggest.Hint("priority", priorityFlag, models.ValidPriorities())
			output.Error("%v", err)
			return err
		}

		session := callsession.New()
		if err := session.NoteOnly(contact, time.Now()); err != nil {
			output.Error("%v", err)
			return err
		}
		draft, err := session.Save(args[1], status, statusCustom)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		draft.Priority = priority
		draft.Category, _ = cmd.Flags().GetString("category")
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			draft.Tags = tags
		}
		if folderArg, _ := cmd.Flags().GetString("folder"); folderArg != "" {
			folder, err := s.FindFolder(folderArg)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			draft.FolderID = folder.ID
		}

		note, err := s.AddNote(draft)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED %s for %s\n", note.ID, note.ContactName)

		if noRemind, _ := cmd.Flags().GetBool("no-remind"); !noRemind {
			suggestFollowUps(s, note)
		}
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List notes, filtered and grouped",
	Aliases: []string{"ls"},
	Long: `List call notes. Facet filters are combined with AND; the free-text
search matches contact names, note text, status labels, tags, categories,
and phone numbers.

Examples:
  cn note list
  cn note list --status follow_up --since week
  cn note list --search "quote" --group folder
  cn note list --group month`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		filter, err := noteFilterFromFlags(cmd, s)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		groupFlag, _ := cmd.Flags().GetString("group")
		grouping := views.Grouping(strings.ToLower(groupFlag))
		if !views.IsValidGrouping(grouping) {
			err := suggest.Hint("grouping", groupFlag, views.ValidGroupings())
			output.Error("%v", err)
			return err
		}

		notes, err := s.Notes()
		if err != nil {
			output.Error("failed to list notes: %v", err)
			return err
		}
		contacts, err := s.Contacts()
		if err != nil {
			return err
		}
		folders, err := s.Folders()
		if err != nil {
			return err
		}

		filtered := views.FilterNotes(notes, contacts, filter, time.Now())

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(filtered)
		}

		if len(filtered) == 0 {
			fmt.Println("No notes match.")
			return nil
		}

		display, _ := s.NoteDisplay()
		printNoteGroups(views.GroupNotes(filtered, folders, grouping), display, 0)
		fmt.Printf("\n%d note(s)\n", len(filtered))
		return nil
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		note, err := s.GetNote(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(note)
		}

		fmt.Printf("%s  %s %s  %s %s\n", output.Bold(note.ID),
			output.FormatDirection(note.Direction), note.ContactName,
			output.FormatStatus(note.Status), output.FormatPriority(note.Priority))
		fmt.Printf("Call: %s, %s\n",
			note.CallStartTime.Format("2006-01-02 15:04"), output.FormatDuration(note.DurationSecs))
		if len(note.Tags) > 0 {
			fmt.Printf("Tags: #%s\n", strings.Join(note.Tags, " #"))
		}
		if note.Category != "" {
			fmt.Printf("Category: %s\n", note.Category)
		}
		if !note.UpdatedAt.IsZero() {
			fmt.Printf("Edited: %s\n", output.FormatTimeAgo(note.UpdatedAt))
		}

		if note.Text == "" {
			fmt.Println(output.Subtle("(no text)"))
			return nil
		}

		if rendered, _ := cmd.Flags().GetBool("rendered"); rendered {
			md, err := output.RenderMarkdown(note.Text)
			if err != nil {
				// Fall back to plain text if the renderer chokes
				fmt.Println("\n" + note.Text)
				return nil
			}
			fmt.Print(md)
			return nil
		}

		fmt.Println("\n" + note.Text)
		return nil
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note's text, status, or priority",
	Long: `Edit a note. Only the flags you pass are changed; the edit timestamp
is refreshed either way.

Examples:
  cn note edit cn-1756712345678 --status closed
  cn note edit cn-1756712345678 --text "Updated after second call" --priority high`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		var patch store.NotePatch
		if cmd.Flags().Changed("text") {
			text, _ := cmd.Flags().GetString("text")
			patch.Text = &text
		}
		if cmd.Flags().Changed("status") {
			statusFlag, _ := cmd.Flags().GetString("status")
			status := models.NormalizeStatus(statusFlag)
			if !models.IsValidStatus(status) {
				err := suggest.Hint("status", statusFlag, models.ValidStatuses())
				output.Error("%v", err)
				return err
			}
			patch.Status = &status
		}
		if cmd.Flags().Changed("status-custom") {
			custom, _ := cmd.Flags().GetString("status-custom")
			patch.StatusCustom = &custom
		}
		if cmd.Flags().Changed("priority") {
			priorityFlag, _ := cmd.Flags().GetString("priority")
			priority := models.Priority(strings.ToLower(priorityFlag))
			if !models.IsValidPriority(priority) {
				err := suggest.Hint("priority", priorityFlag, models.ValidPriorities())
				output.Error("%v", err)
				return err
			}
			patch.Priority = &priority
		}
		if cmd.Flags().Changed("category") {
			category, _ := cmd.Flags().GetString("category")
			patch.Category = &category
		}

		if patch == (store.NotePatch{}) {
			err := fmt.Errorf("nothing to change: pass --text, --status, --priority, or --category")
			output.Error("%v", err)
			return err
		}

		if err := s.UpdateNote(args[0], patch); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("UPDATED %s\n", args[0])
		return nil
	},
}

var noteTagCmd = &cobra.Command{
	Use:   "tag <id> <tags...>",
	Short: "Replace a note's tags",
	Long: `Replace a note's tags with the given list. Pass no tags to clear them.

Examples:
  cn note tag cn-1756712345678 urgent quote
  cn note tag cn-1756712345678`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		tags := args[1:]
		if err := s.UpdateNote(args[0], store.NotePatch{Tags: &tags}); err != nil {
			output.Error("%v", err)
			return err
		}

		if len(tags) == 0 {
			fmt.Printf("CLEARED tags on %s\n", args[0])
		} else {
			fmt.Printf("TAGGED %s #%s\n", args[0], strings.Join(tags, " #"))
		}
		return nil
	},
}

var noteMoveCmd = &cobra.Command{
	Use:   "move <id> <folder|none>",
	Short: "Move a note into a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		folderID := ""
		label := "Unfiled"
		if !strings.EqualFold(args[1], "none") {
			folder, err := s.FindFolder(args[1])
			if err != nil {
				output.Error("%v", err)
				return err
			}
			folderID = folder.ID
			label = folder.Name
		}

		if err := s.UpdateNote(args[0], store.NotePatch{FolderID: &folderID}); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("MOVED %s -> %s\n", args[0], label)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if err := s.DeleteNote(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("DELETED %s\n", args[0])
		return nil
	},
}

// noteFilterFromFlags builds a NoteFilter from the list command's flags,
// resolving folder names to ids.
func noteFilterFromFlags(cmd *cobra.Command, s *store.Store) (views.NoteFilter, error) {
	var f views.NoteFilter
	f.Search, _ = cmd.Flags().GetString("search")

	if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
		status := models.NormalizeStatus(statusFlag)
		if !models.IsValidStatus(status) {
			return f, suggest.Hint("status", statusFlag, models.ValidStatuses())
		}
		f.Status = status
	}
	if priorityFlag, _ := cmd.Flags().GetString("priority"); priorityFlag != "" {
		priority := models.Priority(strings.ToLower(priorityFlag))
		if !models.IsValidPriority(priority) {
			return f, suggest.Hint("priority", priorityFlag, models.ValidPriorities())
		}
		f.Priority = priority
	}
	if dirFlag, _ := cmd.Flags().GetString("direction"); dirFlag != "" {
		direction := models.NormalizeDirection(dirFlag)
		if !models.IsValidDirection(direction) {
			return f, suggest.Hint("direction", dirFlag, []string{"inbound", "outbound"})
		}
		f.Direction = direction
	}
	if folderArg, _ := cmd.Flags().GetString("folder"); folderArg != "" {
		folder, err := s.FindFolder(folderArg)
		if err != nil {
			return f, err
		}
		f.FolderID = folder.ID
	}
	if sinceFlag, _ := cmd.Flags().GetString("since"); sinceFlag != "" {
		bucket := views.DateBucket(strings.ToLower(sinceFlag))
		switch bucket {
		case views.BucketToday, views.BucketWeek, views.BucketMonth:
			f.Bucket = bucket
		default:
			return f, suggest.Hint("window", sinceFlag, []string{"today", "week", "month"})
		}
	}
	return f, nil
}

func printNoteGroups(groups []views.NoteGroup, display models.NoteDisplay, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, g := range groups {
		fmt.Println(indent + output.Bold(g.Title))
		for i := range g.Notes {
			fmt.Println(indent + "  " + output.FormatNoteShort(&g.Notes[i], display))
		}
		printNoteGroups(g.Subgroups, display, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteTagCmd)
	noteCmd.AddCommand(noteMoveCmd)
	noteCmd.AddCommand(noteDeleteCmd)

	noteAddCmd.Flags().StringP("status", "s", "follow_up", "Note status (follow_up, waiting_reply, closed, other)")
	noteAddCmd.Flags().String("status-custom", "", "Custom status text when --status other")
	noteAddCmd.Flags().StringP("priority", "p", "", "Priority (high, medium, low)")
	noteAddCmd.Flags().String("category", "", "Free-form category")
	noteAddCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	noteAddCmd.Flags().StringP("folder", "f", "", "Folder id or name")
	noteAddCmd.Flags().Bool("no-remind", false, "Skip reminder suggestions from detected times")

	noteListCmd.Flags().String("search", "", "Free-text search")
	noteListCmd.Flags().StringP("status", "s", "", "Filter by status")
	noteListCmd.Flags().StringP("priority", "p", "", "Filter by priority")
	noteListCmd.Flags().StringP("folder", "f", "", "Filter by folder id or name")
	noteListCmd.Flags().StringP("direction", "d", "", "Filter by call direction")
	noteListCmd.Flags().String("since", "", "Limit to a window (today, week, month)")
	noteListCmd.Flags().StringP("group", "g", "contact", "Group by contact, day, week, month, year, or folder")
	noteListCmd.Flags().Bool("json", false, "JSON output")

	noteShowCmd.Flags().Bool("json", false, "JSON output")
	noteShowCmd.Flags().BoolP("rendered", "r", false, "Render the note text as markdown")

	noteEditCmd.Flags().StringP("text", "t", "", "Replacement text")
	noteEditCmd.Flags().StringP("status", "s", "", "New status")
	noteEditCmd.Flags().String("status-custom", "", "Custom status text when --status other")
	noteEditCmd.Flags().StringP("priority", "p", "", "New priority")
	noteEditCmd.Flags().String("category", "", "New category")
}
