package fs

import (
	"os"
	"path/filepath"

	"feedcli/term"
)

var HomeDir string
var HomeFeedDir string
var HomeSessionPath string
var HomeThemePath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("FEEDCLI_ENV") == "development" {
		HomeFeedDir = filepath.Join(home, ".feedcli-home-dev")
	} else {
		HomeFeedDir = filepath.Join(home, ".feedcli-home")
	}

	err = os.MkdirAll(HomeFeedDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeSessionPath = filepath.Join(HomeFeedDir, "session.json")
	HomeThemePath = filepath.Join(HomeFeedDir, "theme.json")
}
