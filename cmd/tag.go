package cmd

import (
	"feedcli/auth"
	"feedcli/lib"
	"feedcli/types"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(tagCmd)
	RootCmd.AddCommand(tagsCmd)
	addFeedFlags(tagCmd)
}

var tagCmd = &cobra.Command{
	Use:     "tag [label]",
	Aliases: []string{"t"},
	Short:   "Browse posts by tag",
	Args:    cobra.ExactArgs(1),
	Run:     tagRun,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show popular tags",
	Run:   tagsRun,
}

func tagRun(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	runFeedView(types.FeedFilter{Tag: args[0]})
}

func tagsRun(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	lib.ShowTagCloud()
}
