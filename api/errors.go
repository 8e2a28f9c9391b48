package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"feedcli/types"
)

// remoteErrorBody is the shape the remote API uses for error responses.
type remoteErrorBody struct {
	Message string `json:"message"`
}

// HandleApiError maps a non-success response to a typed ApiError. 404 means
// the primary entity is absent; everything else is a transport-level failure.
func HandleApiError(r *http.Response, errBody []byte) *types.ApiError {
	errType := types.ApiErrorTypeNetwork
	if r.StatusCode == http.StatusNotFound {
		errType = types.ApiErrorTypeNotFound
	}

	msg := strings.TrimSpace(string(errBody))

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body remoteErrorBody
		if err := json.Unmarshal(errBody, &body); err != nil {
			log.Printf("Error unmarshalling error body: %v\n", err)
		} else if body.Message != "" {
			msg = body.Message
		}
	}

	if msg == "" {
		msg = r.Status
	}

	return &types.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}
