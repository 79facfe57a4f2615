// internal/api/errors.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is a response the backend answered with a non-2xx status.
// Network-level failures (no response received) are never an *Error.
type Error struct {
	Status  int
	Message string
	Body    []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// StatusOf returns the HTTP status carried by err, or 0 if the error is
// not an *Error (i.e. no response was received).
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the backend-provided message carried by err, if any.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// messageFrom extracts a {"message": ...} field from an error body.
func messageFrom(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
