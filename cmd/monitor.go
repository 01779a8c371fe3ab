package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/tui/monitor"
)

var monitorCmd = &cobra.Command{
	Use:     "monitor",
	Short:   "Live dashboard of notes, reminders, and orders",
	GroupID: "system",
	Aliases: []string{"mon"},
	Long: `Open a full-screen dashboard that refreshes as data changes.

Keys: / search, s cycle status filter, g cycle grouping, tab switch panel,
j/k scroll, r refresh, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		return monitor.Run(s, getDataDir())
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
