package auth

import (
	"fmt"

	"feedcli/term"
	"feedcli/types"

	"github.com/fatih/color"
)

// Resolve loads the persisted session at process start. It does not
// re-validate the token against the remote source.
func Resolve() {
	session, err := loadSession()
	if err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}

	Current = session
}

// MustResolveAuth is the guard in front of every protected view. When no
// session is present it drops into an interactive sign-in instead of
// rendering.
func MustResolveAuth() {
	Resolve()

	if Current != nil {
		return
	}

	color.New(color.Bold, term.ColorHiYellow).Println("🔒 Please sign in first")

	if err := promptSignIn(); err != nil {
		term.OutputErrorAndExit("error signing in: %v", err)
	}
}

func promptSignIn() error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return err
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return err
	}

	return SignIn(username, password)
}

// SignIn posts credentials to the remote auth endpoint and persists the
// session on success. On failure the session is left unset.
func SignIn(username, password string) error {
	if apiClient == nil {
		return fmt.Errorf("api client not set")
	}

	term.StartSpinner("")
	session, apiErr := apiClient.Login(types.LoginRequest{Username: username, Password: password})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("%s", apiErr.Msg)
	}

	err := setSession(session)
	if err != nil {
		return fmt.Errorf("error storing session: %v", err)
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Signed in as @%s\n", session.Username)

	return nil
}

// SignOut clears the persisted session unconditionally.
func SignOut() {
	clearSession()
}
