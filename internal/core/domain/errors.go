package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a slug lookup returned no record.
var ErrNotFound = errors.New("listing not found")

// RequestFailedError is returned when the backend answers a read or write
// with a non-success status. Message carries the backend-supplied error text
// verbatim when the body was parseable, so the admin UI can surface it as-is.
type RequestFailedError struct {
	StatusCode int
	Message    string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("backend request failed with status %d: %s", e.StatusCode, e.Message)
}

// AsRequestFailed unwraps err into a *RequestFailedError if one is in the
// chain.
func AsRequestFailed(err error) (*RequestFailedError, bool) {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
