package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"feedcli/fs"
	"feedcli/types"
)

var Current *types.Session

// loadSession reads the persisted session, if any. A missing file just means
// no one is signed in.
func loadSession() (*types.Session, error) {
	bytes, err := os.ReadFile(fs.HomeSessionPath)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading session.json: %v", err)
	}

	var session types.Session
	err = json.Unmarshal(bytes, &session)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling session.json: %v", err)
	}

	return &session, nil
}

func setSession(session *types.Session) error {
	Current = session

	bytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshalling session: %v", err)
	}

	err = os.WriteFile(fs.HomeSessionPath, bytes, os.ModePerm)
	if err != nil {
		return fmt.Errorf("error writing session: %v", err)
	}

	return nil
}

// clearSession removes the persisted session unconditionally. It never
// reports a failure to the caller; a leftover file just means logout again.
func clearSession() {
	Current = nil

	err := os.Remove(fs.HomeSessionPath)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error removing session file: %v\n", err)
	}
}
