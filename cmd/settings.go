package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/suggest"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Short:   "Tune note templates, tags, and display options",
	GroupID: "system",
	Aliases: []string{"config"},
}

var settingsTemplateCmd = &cobra.Command{
	Use:   "template [text]",
	Short: "Show or set the note template",
	Long: `Show or set the template pre-filled into the note prompt after a call.
{contact} and {duration} are replaced when the prompt opens.

Examples:
  cn settings template
  cn settings template "Call with {contact} ({duration}):\n- "`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if len(args) == 0 {
			tpl, err := s.NoteTemplate()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			fmt.Println(tpl)
			return nil
		}

		// Allow literal \n in shell arguments
		tpl := strings.ReplaceAll(args[0], `\n`, "\n")
		if err := s.SetNoteTemplate(tpl); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("Template updated")
		return nil
	},
}

var settingsTagsCmd = &cobra.Command{
	Use:   "tags [tags...]",
	Short: "Show or set the preset tag list",
	Long: `Show or replace the quick-pick tags offered when saving a note.

Examples:
  cn settings tags
  cn settings tags urgent quote payment delivery`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if len(args) == 0 {
			tags, err := s.PresetTags()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			fmt.Println(strings.Join(tags, " "))
			return nil
		}

		if err := s.SetPresetTags(args); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("Preset tags updated")
		return nil
	},
}

var settingsDisplayCmd = &cobra.Command{
	Use:   "display",
	Short: "Show or toggle note list display options",
	Long: `Show the note list display options, or toggle them with flags.

Examples:
  cn settings display
  cn settings display --duration=false --tags=true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		display, err := s.NoteDisplay()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		changed := false
		if cmd.Flags().Changed("duration") {
			display.ShowDuration, _ = cmd.Flags().GetBool("duration")
			changed = true
		}
		if cmd.Flags().Changed("direction") {
			display.ShowDirection, _ = cmd.Flags().GetBool("direction")
			changed = true
		}
		if cmd.Flags().Changed("tags") {
			display.ShowTags, _ = cmd.Flags().GetBool("tags")
			changed = true
		}

		if changed {
			if err := s.SetNoteDisplay(display); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("Display options updated")
		}

		fmt.Printf("duration: %v\ndirection: %v\ntags: %v\n",
			display.ShowDuration, display.ShowDirection, display.ShowTags)
		return nil
	},
}

// premiumFeatures are the gated feature switches kept in local settings
var premiumFeatures = []string{"extract", "google_import", "export"}

var settingsPremiumCmd = &cobra.Command{
	Use:   "premium [feature] [on|off]",
	Short: "Show or set premium feature flags",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if len(args) == 0 {
			for _, name := range premiumFeatures {
				enabled, _, err := s.PremiumFlag(name)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				state := "off"
				if enabled {
					state = "on"
				}
				fmt.Printf("%-16s %s\n", name, state)
			}
			return nil
		}

		name := strings.ToLower(args[0])
		valid := false
		for _, f := range premiumFeatures {
			if f == name {
				valid = true
				break
			}
		}
		if !valid {
			err := suggest.Hint("feature", args[0], premiumFeatures)
			output.Error("%v", err)
			return err
		}

		if len(args) == 1 {
			enabled, _, err := s.PremiumFlag(name)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			fmt.Println(map[bool]string{true: "on", false: "off"}[enabled])
			return nil
		}

		var enabled bool
		switch strings.ToLower(args[1]) {
		case "on", "true", "1":
			enabled = true
		case "off", "false", "0":
			enabled = false
		default:
			err := fmt.Errorf("invalid state %q (want on or off)", args[1])
			output.Error("%v", err)
			return err
		}

		if err := s.SetPremiumFlag(name, enabled); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("%s is now %s", name, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsTemplateCmd)
	settingsCmd.AddCommand(settingsTagsCmd)
	settingsCmd.AddCommand(settingsDisplayCmd)
	settingsCmd.AddCommand(settingsPremiumCmd)

	settingsDisplayCmd.Flags().Bool("duration", true, "Show call durations in lists")
	settingsDisplayCmd.Flags().Bool("direction", true, "Show call direction arrows in lists")
	settingsDisplayCmd.Flags().Bool("tags", true, "Show tags in lists")
}
