package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
)

var folderCmd = &cobra.Command{
	Use:     "folder",
	Short:   "Manage note folders",
	GroupID: "notes",
	Aliases: []string{"folders"},
}

var folderAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a folder",
	Long: `Add a note folder.

Examples:
  cn folder add "Hot leads" --color "#EF4444"
  cn folder add Archive --description "Old conversations"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		color, _ := cmd.Flags().GetString("color")
		desc, _ := cmd.Flags().GetString("description")

		folder, err := s.AddFolder(args[0], color, desc)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED %s %s\n", folder.ID, folder.Name)
		return nil
	},
}

var folderListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List folders with note counts",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		folders, err := s.Folders()
		if err != nil {
			output.Error("failed to list folders: %v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(folders)
		}

		notes, err := s.Notes()
		if err != nil {
			return err
		}
		counts := make(map[string]int)
		var unfiled int
		for _, n := range notes {
			if n.FolderID == "" {
				unfiled++
			} else {
				counts[n.FolderID]++
			}
		}

		for _, f := range folders {
			line := fmt.Sprintf("%s  %-16s %d note(s)", f.ID, f.Name, counts[f.ID])
			if f.Description != "" {
				line += "  " + output.Subtle(f.Description)
			}
			fmt.Println(line)
		}
		if unfiled > 0 {
			fmt.Printf("%s %d note(s)\n", output.Subtle("unfiled          "), unfiled)
		}
		return nil
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a folder",
	Long: `Delete a folder. Notes filed in it are kept and become unfiled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		folder, err := s.FindFolder(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if err := s.DeleteFolder(folder.ID); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("DELETED %s (its notes are now unfiled)\n", folder.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderAddCmd)
	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderDeleteCmd)

	folderAddCmd.Flags().String("color", "", "Display color, e.g. #3B82F6")
	folderAddCmd.Flags().String("description", "", "Folder description")

	folderListCmd.Flags().Bool("json", false, "JSON output")
}
