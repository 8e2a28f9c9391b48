package cmd

import (
	"strconv"

	"feedcli/auth"
	"feedcli/lib"
	"feedcli/term"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(postCmd)
	postCmd.Flags().BoolVarP(&browseFlag, "browse", "b", false, "browse interactively when falling back to the feed")
}

var postCmd = &cobra.Command{
	Use:     "post [id]",
	Aliases: []string{"p"},
	Short:   "View a post with its comments",
	Args:    cobra.ExactArgs(1),
	Run:     postRun,
}

func postRun(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	postId, err := strconv.Atoi(args[0])
	if err != nil || postId < 1 {
		term.OutputErrorAndExit("Post id must be a positive integer")
	}

	lib.ShowPost(postId, browseFlag)
}
