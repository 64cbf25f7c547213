// Package teststubs holds shared test doubles for the upstream MLB Stats
// API: a function round-tripper and canned JSON responses, so tests drive
// the real client against scripted payloads instead of the network.
package teststubs

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripper adapts a function to http.RoundTripper.
type RoundTripper func(req *http.Request) (*http.Response, error)

func (f RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds a response with a JSON string body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// HTTPClient wraps a RoundTripper in an http.Client.
func HTTPClient(rt RoundTripper) *http.Client {
	return &http.Client{Transport: rt}
}
