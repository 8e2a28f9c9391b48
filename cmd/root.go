package cmd

import (
	"feedcli/auth"
	"feedcli/lib"
	"feedcli/term"
	"feedcli/types"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `feedcli [command] [flags]`,
	Short: "feedcli: browse the social feed from your terminal",
	Run:   home,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

func init() {
	addFeedFlags(RootCmd)
}

// home is the default view: the recent-posts feed plus the tag cloud.
func home(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	if browseFlag {
		runFeedView(types.FeedFilter{})
		return
	}

	runFeedView(types.FeedFilter{})
	lib.ShowTagCloud()
}
