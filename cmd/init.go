package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Initialize the local data store",
	Long:    `Create the data store and seed the default note folders.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Initialize(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		output.Success("Initialized data store in %s", getDataDir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
