package deezer

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the API has no resource for the
// requested id.
var ErrNotFound = errors.New("resource not found")

// StatusError is returned when the API answers with a non-success
// status other than 404.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a response body cannot be decoded into
// the expected record.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
