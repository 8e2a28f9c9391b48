package types

type ApiErrorType string

const (
	// transport failure or non-success status on a data fetch
	ApiErrorTypeNetwork ApiErrorType = "network"

	// primary entity absent (404)
	ApiErrorTypeNotFound ApiErrorType = "not_found"

	// login rejected, Msg carries the remote-provided message
	ApiErrorTypeAuth ApiErrorType = "auth"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

func (e *ApiError) IsNotFound() bool {
	return e != nil && e.Type == ApiErrorTypeNotFound
}

func (e *ApiError) IsAuth() bool {
	return e != nil && e.Type == ApiErrorTypeAuth
}
