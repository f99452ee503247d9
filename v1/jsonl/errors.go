package jsonl

import "errors"

// Common JSONL exporter errors
var (
	// ErrEmptySessionID is returned by the constructors when no session
	// identifier is supplied. This is a configuration error and is never
	// swallowed.
	ErrEmptySessionID = errors.New("jsonl: session id must not be empty")

	// ErrShutdown is returned by export and flush calls made after the
	// exporter has been shut down. No I/O is attempted in that case.
	ErrShutdown = errors.New("jsonl: exporter is shut down")
)

// IsShutdownError checks if the error is a "exporter is shut down" error.
func IsShutdownError(err error) bool {
	return errors.Is(err, ErrShutdown)
}
