// Package apperr defines the error taxonomy shared across handlers and the
// db layer: validation failures map to 4xx, auth failures to 401/403, and
// storage failures to 5xx.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrTokenMissing = errors.New("missing token")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrBadCredentials = errors.New("invalid credentials")
)

// ValidationError marks client-fault input problems, including uniqueness
// conflicts surfaced by the storage layer.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError wraps infrastructure failures. The cause is kept for logs;
// clients only ever see an opaque failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err is a client-fault error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage reports whether err is an infrastructure failure.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
