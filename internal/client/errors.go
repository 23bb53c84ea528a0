package client

import (
	"errors"
	"fmt"
)

// ErrUnreachable is returned when the daemon cannot be reached at all.
var ErrUnreachable = errors.New("control API unreachable")

// APIError is a non-2xx answer of the control API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("control API: http %d", e.StatusCode)
	}
	return fmt.Sprintf("control API: http %d: %s", e.StatusCode, e.Message)
}
