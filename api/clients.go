package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"feedcli/auth"
	"feedcli/types"
)

const dialTimeout = 10 * time.Second
const reqTimeout = 30 * time.Second

type Api struct{}

var apiHost string

var Client types.ApiClient = (*Api)(nil)

// resolved lazily so a .env loaded at startup is honored
func GetApiHost() string {
	if apiHost == "" {
		apiHost = os.Getenv("FEEDCLI_API_HOST")
		if apiHost == "" {
			apiHost = "https://dummyjson.com"
		}
	}

	return apiHost
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and attaches the session token
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: reqTimeout,
}

var authenticatedClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: reqTimeout,
}
