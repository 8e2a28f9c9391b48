package cmd

import (
	"fmt"

	"feedcli/term"
	"feedcli/theme"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the display theme",
	Args:  cobra.MaximumNArgs(1),
	Run:   themeRun,
}

func themeRun(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		current := theme.Current()
		for _, name := range theme.Themes {
			if name == current {
				color.New(color.Bold, theme.Accent()).Printf("* %s\n", name)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
		return
	}

	if err := theme.Set(args[0]); err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	color.New(color.Bold, theme.Accent()).Printf("🎨 Theme set to %s\n", args[0])
}
