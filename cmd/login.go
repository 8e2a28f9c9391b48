package cmd

import (
	"fmt"

	"feedcli/auth"
	"feedcli/term"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(loginCmd)
	RootCmd.AddCommand(logoutCmd)
	RootCmd.AddCommand(whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	Run:   loginRun,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Run:   logoutRun,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run:   whoamiRun,
}

func loginRun(cmd *cobra.Command, args []string) {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error reading username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error reading password: %v", err)
	}

	if err := auth.SignIn(username, password); err != nil {
		term.OutputErrorAndExit("%v", err)
	}
}

func logoutRun(cmd *cobra.Command, args []string) {
	auth.SignOut()

	fmt.Println("👋 Signed out")
}

func whoamiRun(cmd *cobra.Command, args []string) {
	auth.Resolve()

	if auth.Current == nil {
		fmt.Println("Not signed in")
		term.PrintCmds("", "login")
		return
	}

	fmt.Printf("%s (@%s)\n", auth.Current.FullName(), auth.Current.Username)
	fmt.Println(auth.Current.Email)
}
