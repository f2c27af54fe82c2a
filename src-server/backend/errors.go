package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyUserID = errors.New("backend: user id is empty")

// The backend refused to store a timezone.
type SetError struct {
	StatusCode int
	Message    string // the server's "error" field, may be empty
}

func (e *SetError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: set timezone failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend: set timezone failed with status %d: %s", e.StatusCode, e.Message)
}

// Reason is what the user gets to see.
func (e *SetError) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}
