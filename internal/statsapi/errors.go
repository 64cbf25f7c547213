package statsapi

import (
	"errors"
	"fmt"
)

// StatusError captures a non-200 response from the MLB Stats API.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("statsapi: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("statsapi: %s returned status %d", e.Endpoint, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsClientError reports whether err is a 4xx upstream response.
func IsClientError(err error) bool {
	statusErr, ok := AsStatusError(err)
	return ok && statusErr.StatusCode >= 400 && statusErr.StatusCode <= 499
}
