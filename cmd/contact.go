package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/importer"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/views"
)

var contactCmd = &cobra.Command{
	Use:     "contact",
	Short:   "Manage contacts",
	Long:    `Add, list, rename, and remove contacts.`,
	GroupID: "contacts",
	Aliases: []string{"contacts"},
}

var contactAddCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a contact",
	Long: `Add a contact with a name and phone number.

Examples:
  cn contact add "Maria Santos" "+55 11 98765 4321"
  cn contact add "Corner Bakery" 5551234`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		contact, err := s.AddContact(args[0], args[1])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED %s %s (%s)\n", contact.ID, contact.Name, contact.Phone)
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List contacts in alphabetical sections",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		contacts, err := s.Contacts()
		if err != nil {
			output.Error("failed to list contacts: %v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(contacts)
		}

		if len(contacts) == 0 {
			fmt.Println("No contacts yet. Add one with 'cn contact add' or import with 'cn contact import'.")
			return nil
		}

		for _, section := range views.ContactSections(contacts) {
			fmt.Println(output.Bold(section.Title))
			for _, c := range section.Contacts {
				line := fmt.Sprintf("  %s  %-24s %s", c.ID, c.Name, c.Phone)
				if c.CardImage != "" {
					line += "  " + output.Subtle("[card]")
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

var contactShowCmd = &cobra.Command{
	Use:   "show <id|name|phone>",
	Short: "Show a contact and its recent activity",
	Args:  cobra.ExactArgs(1),
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

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(contact)
		}

		fmt.Printf("%s: %s\n", contact.ID, output.Bold(contact.Name))
		fmt.Printf("Phone: %s\n", contact.Phone)
		if contact.CardImage != "" {
			fmt.Printf("Business card: %s\n", contact.CardImage)
		}
		fmt.Printf("Added: %s\n", output.FormatTimeAgo(contact.CreatedAt))

		notes, err := s.Notes()
		if err != nil {
			return err
		}
		display, _ := s.NoteDisplay()
		var count int
		for i := range notes {
			if notes[i].ContactID == contact.ID {
				if count == 0 {
					fmt.Print(output.SectionHeader("recent notes"))
				}
				fmt.Println("  " + output.FormatNoteShort(&notes[i], display))
				count++
				if count == 5 {
					break
				}
			}
		}
		return nil
	},
}

var contactRenameCmd = &cobra.Command{
	Use:   "rename <id|name|phone> <new-name>",
	Short: "Rename a contact",
	Long: `Rename a contact. Existing notes, reminders, and orders keep the name
they were created with.`,
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

		name := args[1]
		if err := s.UpdateContact(contact.ID, store.ContactPatch{Name: &name}); err != nil {
			output.Error("failed to rename contact: %v", err)
			return err
		}

		fmt.Printf("RENAMED %s -> %s\n", contact.Name, name)
		return nil
	},
}

var contactSetCardCmd = &cobra.Command{
	Use:   "set-card <id|name|phone> <image-path>",
	Short: "Attach a business-card image",
	Args:  cobra.ExactArgs(2),
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

		path := args[1]
		if _, err := os.Stat(path); err != nil {
			output.Error("cannot read image: %v", err)
			return err
		}

		if err := s.UpdateContact(contact.ID, store.ContactPatch{CardImage: &path}); err != nil {
			output.Error("failed to attach card: %v", err)
			return err
		}

		fmt.Printf("ATTACHED card to %s\n", contact.Name)
		return nil
	},
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if err := s.DeleteContact(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("DELETED %s\n", args[0])
		return nil
	},
}

var contactImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import contacts from a CSV file or Google Contacts",
	Long: `Import contacts, de-duplicated by phone number.

CSV import reads name,phone rows:
  cn contact import --csv contacts.csv

Google import needs GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET (a .env file is
honored) and a granted token file:
  cn contact import --google --token ~/.config/cn/google-token.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, _ := cmd.Flags().GetString("csv")
		useGoogle, _ := cmd.Flags().GetBool("google")
		tokenPath, _ := cmd.Flags().GetString("token")

		if csvPath == "" && !useGoogle {
			err := fmt.Errorf("specify --csv <file> or --google")
			output.Error("%v", err)
			return err
		}

		var records []importer.Record
		switch {
		case csvPath != "":
			f, err := os.Open(csvPath)
			if err != nil {
				output.Error("cannot open %s: %v", csvPath, err)
				return err
			}
			defer f.Close()
			if records, err = importer.ReadCSV(f); err != nil {
				output.Error("%v", err)
				return err
			}
		case useGoogle:
			token, err := importer.LoadToken(tokenPath)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if records, err = importer.FetchGoogleContacts(cmd.Context(), token); err != nil {
				output.Error("%v", err)
				return err
			}
		}

		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		result, err := importer.Import(s, records)
		if err != nil {
			output.Error("import failed: %v", err)
			return err
		}

		output.Success("Imported %d contact(s), skipped %d duplicate(s)", result.Added, result.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactRenameCmd)
	contactCmd.AddCommand(contactSetCardCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactImportCmd)

	contactListCmd.Flags().Bool("json", false, "JSON output")
	contactShowCmd.Flags().Bool("json", false, "JSON output")

	contactImportCmd.Flags().String("csv", "", "CSV file with name,phone rows")
	contactImportCmd.Flags().Bool("google", false, "Import from Google Contacts")
	contactImportCmd.Flags().String("token", "", "OAuth token file for Google import")
}
