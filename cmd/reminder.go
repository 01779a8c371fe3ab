package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/timeparse"
	"github.com/marcus/cn/internal/views"
)

var reminderCmd = &cobra.Command{
	Use:     "reminder",
	Short:   "Manage reminders",
	GroupID: "notes",
	Aliases: []string{"reminders", "rem"},
}

var reminderAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a reminder",
	Long: `Add a reminder. The due date accepts YYYY-MM-DD, natural shorthands
(today, tomorrow, next-week, next-month), relative offsets (+3d, +2w, +1m),
and weekday names.

Examples:
  cn reminder add "Send the quote" --due tomorrow --contact "Maria Santos"
  cn reminder add "Chase the invoice" --due +1w`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		dueFlag, _ := cmd.Flags().GetString("due")
		due, err := timeparse.ParseDueDate(dueFlag)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		var contactID, contactName string
		if contactArg, _ := cmd.Flags().GetString("contact"); contactArg != "" {
			contact, err := s.FindContact(contactArg)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			contactID = contact.ID
			contactName = contact.Name
		}

		desc, _ := cmd.Flags().GetString("description")
		reminder, err := s.AddReminder(contactID, contactName, args[0], desc, due, "")
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED %s due %s\n", reminder.ID, reminder.DueDate.Format("2006-01-02"))
		return nil
	},
}

var reminderListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List reminders, soonest first",
	Aliases: []string{"ls"},
	Long: `List reminders sorted by due date. Archived reminders are hidden
unless --archived is passed; completed ones are hidden unless --all is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		reminders, err := s.Reminders()
		if err != nil {
			output.Error("failed to list reminders: %v", err)
			return err
		}

		showArchived, _ := cmd.Flags().GetBool("archived")
		showAll, _ := cmd.Flags().GetBool("all")

		var shown []models.Reminder
		for _, r := range reminders {
			if r.Archived != showArchived {
				continue
			}
			if r.Completed && !showAll && !showArchived {
				continue
			}
			shown = append(shown, r)
		}
		sort.Slice(shown, func(i, j int) bool { return shown[i].DueDate.Before(shown[j].DueDate) })

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(shown)
		}

		if len(shown) == 0 {
			fmt.Println("No reminders.")
			return nil
		}

		now := time.Now()
		for i := range shown {
			fmt.Println(output.FormatReminderShort(&shown[i], now))
		}

		stats := views.ReminderCounts(reminders, now)
		fmt.Printf("\n%d pending, %d overdue, %d due today, %d completed\n",
			stats.Pending, stats.Overdue, stats.DueToday, stats.Completed)
		return nil
	},
}

var reminderDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Short:   "Mark a reminder completed",
	Aliases: []string{"complete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if err := s.CompleteReminder(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("DONE %s", args[0])
		return nil
	},
}

var reminderSnoozeCmd = &cobra.Command{
	Use:   "snooze <id> <due>",
	Short: "Push a reminder's due date",
	Long: `Move a reminder's due date. Accepts the same forms as 'reminder add
--due', resolved from the current due date for relative offsets.

Examples:
  cn reminder snooze rm-1756712345678 tomorrow
  cn reminder snooze rm-1756712345678 +2d`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		reminder, err := s.GetReminder(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		due, err := timeparse.ParseDueDateFrom(args[1], reminder.DueDate)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if err := s.UpdateReminder(reminder.ID, store.ReminderPatch{DueDate: &due}); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("SNOOZED %s until %s\n", reminder.ID, due.Format("2006-01-02"))
		return nil
	},
}

var reminderArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if err := s.ArchiveReminder(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ARCHIVED %s\n", args[0])
		return nil
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if err := s.DeleteReminder(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("DELETED %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reminderCmd)
	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderDoneCmd)
	reminderCmd.AddCommand(reminderSnoozeCmd)
	reminderCmd.AddCommand(reminderArchiveCmd)
	reminderCmd.AddCommand(reminderDeleteCmd)

	reminderAddCmd.Flags().StringP("due", "d", "today", "Due date (YYYY-MM-DD, tomorrow, +3d, friday, ...)")
	reminderAddCmd.Flags().StringP("contact", "c", "", "Contact id, name, or phone")
	reminderAddCmd.Flags().String("description", "", "Longer description")

	reminderListCmd.Flags().Bool("all", false, "Include completed reminders")
	reminderListCmd.Flags().Bool("archived", false, "Show archived reminders instead")
	reminderListCmd.Flags().Bool("json", false, "JSON output")
}
