package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/export"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/suggest"
)

var exportCmd = &cobra.Command{
	Use:     "export [collections...]",
	Short:   "Export collections as JSON or plain text",
	GroupID: "system",
	Long: `Export data as JSON or a plain-text report. With no arguments every
collection is exported.

Examples:
  cn export
  cn export contacts notes --format text
  cn export orders --out orders.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		format = strings.ToLower(format)
		if format != "json" && format != "text" {
			err := suggest.Hint("format", format, []string{"json", "text"})
			output.Error("%v", err)
			return err
		}

		valid := export.CollectionNames()
		for _, name := range args {
			ok := false
			for _, v := range valid {
				if strings.EqualFold(name, v) {
					ok = true
					break
				}
			}
			if !ok {
				err := suggest.Hint("collection", name, valid)
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

		bundle, err := export.Collect(s, args)
		if err != nil {
			output.Error("export failed: %v", err)
			return err
		}

		var w io.Writer = os.Stdout
		outPath, _ := cmd.Flags().GetString("out")
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				output.Error("cannot write %s: %v", outPath, err)
				return err
			}
			defer f.Close()
			w = f
		}

		if format == "text" {
			err = export.WriteText(w, bundle)
		} else {
			err = export.WriteJSON(w, bundle)
		}
		if err != nil {
			output.Error("export failed: %v", err)
			return err
		}

		if outPath != "" {
			fmt.Printf("Exported to %s\n", outPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "json", "Output format (json, text)")
	exportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}
