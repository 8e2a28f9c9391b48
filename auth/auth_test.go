package auth

import (
	"os"
	"path/filepath"
	"testing"

	"feedcli/fs"
	"feedcli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	types.ApiClient
	session  *types.Session
	loginErr *types.ApiError
}

func (f *fakeClient) Login(req types.LoginRequest) (*types.Session, *types.ApiError) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func useTempSessionPath(t *testing.T) {
	t.Helper()

	oldPath := fs.HomeSessionPath
	fs.HomeSessionPath = filepath.Join(t.TempDir(), "session.json")

	t.Cleanup(func() {
		fs.HomeSessionPath = oldPath
		Current = nil
		apiClient = nil
	})
}

func TestSignInPersistsSession(t *testing.T) {
	useTempSessionPath(t)
	SetApiClient(&fakeClient{session: &types.Session{
		User:  types.User{Id: 1, Username: "emilys"},
		Token: "tok123",
	}})

	err := SignIn("emilys", "pass")

	require.NoError(t, err)
	require.NotNil(t, Current)
	assert.Equal(t, "emilys", Current.Username)

	// a fresh resolve reads the session back from disk
	Current = nil
	Resolve()
	require.NotNil(t, Current)
	assert.Equal(t, "tok123", Current.Token)
}

func TestSignInRejectedLeavesSessionAbsent(t *testing.T) {
	useTempSessionPath(t)
	SetApiClient(&fakeClient{loginErr: &types.ApiError{
		Type: types.ApiErrorTypeAuth,
		Msg:  "Invalid credentials",
	}})

	err := SignIn("emilys", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Nil(t, Current)

	_, statErr := os.Stat(fs.HomeSessionPath)
	assert.True(t, os.IsNotExist(statErr), "no session file after rejected login")

	Resolve()
	assert.Nil(t, Current)
}

func TestSignOutClearsSession(t *testing.T) {
	useTempSessionPath(t)
	SetApiClient(&fakeClient{session: &types.Session{
		User:  types.User{Id: 1, Username: "emilys"},
		Token: "tok123",
	}})

	require.NoError(t, SignIn("emilys", "pass"))
	require.NotNil(t, Current)

	SignOut()

	assert.Nil(t, Current)
	Resolve()
	assert.Nil(t, Current)
}

func TestSignOutWithoutSessionNeverFails(t *testing.T) {
	useTempSessionPath(t)

	SignOut()
	SignOut()

	assert.Nil(t, Current)
}

func TestResolveWithNoStoredSession(t *testing.T) {
	useTempSessionPath(t)

	Resolve()

	assert.Nil(t, Current)
}
