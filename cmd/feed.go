package cmd

import (
	"feedcli/auth"
	"feedcli/types"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(feedCmd)
	addFeedFlags(feedCmd)
}

var feedCmd = &cobra.Command{
	Use:     "feed",
	Aliases: []string{"f"},
	Short:   "Browse the feed",
	Run:     feedRun,
}

func feedRun(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	runFeedView(types.FeedFilter{})
}
