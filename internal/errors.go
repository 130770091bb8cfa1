package internal

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store.Get for missing keys.
var ErrNotFound = errors.New("not found")

// APIError is a well-formed response signaling a server-side rejection,
// e.g. a bad key, missing permission or unknown calendar.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("calendar api: status %d", e.StatusCode)
	}
	return "calendar api: " + e.Message
}

// NetworkError is a transport failure: unreachable endpoint, timeout, or a
// response that never produced an API-level payload.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
