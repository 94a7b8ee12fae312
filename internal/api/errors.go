package api

import (
	"errors"
	"fmt"
)

// Failure classes reported by the client. Match them with errors.Is.
var (
	ErrNetwork  = errors.New("network failure")
	ErrStatus   = errors.New("unexpected status")
	ErrNotFound = errors.New("contact not found")
	ErrDecode   = errors.New("invalid response body")
)

// Error describes one failed backend call.
type Error struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
