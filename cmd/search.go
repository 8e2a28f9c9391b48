package cmd

import (
	"strings"

	"feedcli/auth"
	"feedcli/types"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(searchCmd)
	addFeedFlags(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Aliases: []string{"s"},
	Short:   "Search posts",
	Args:    cobra.MinimumNArgs(1),
	Run:     searchRun,
}

func searchRun(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	runFeedView(types.FeedFilter{Search: strings.Join(args, " ")})
}
