package auth

import (
	"net/http"

	"feedcli/types"
)

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// SetAuthHeader attaches the session token when a session is present. The
// token is trusted as-is until the remote rejects it.
func SetAuthHeader(req *http.Request) {
	if Current == nil {
		return
	}

	req.Header.Set("Authorization", "Bearer "+Current.Token)
}
