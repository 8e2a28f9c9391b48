package cmd

import (
	"strconv"

	"feedcli/auth"
	"feedcli/lib"
	"feedcli/term"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(userCmd)
	userCmd.Flags().BoolVarP(&browseFlag, "browse", "b", false, "browse the user's posts interactively")
}

var userCmd = &cobra.Command{
	Use:     "user [id]",
	Aliases: []string{"u"},
	Short:   "View a user profile and their posts",
	Args:    cobra.ExactArgs(1),
	Run:     userRun,
}

func userRun(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	userId, err := strconv.Atoi(args[0])
	if err != nil || userId < 1 {
		term.OutputErrorAndExit("User id must be a positive integer")
	}

	lib.ShowUser(userId, browseFlag)
}
