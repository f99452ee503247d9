package cloudlog

import "errors"

// Common Cloud Logging exporter errors
var (
	// ErrEmptyProjectID is returned by the constructors when no project
	// identifier is supplied. This is a configuration error and is never
	// swallowed.
	ErrEmptyProjectID = errors.New("cloudlog: project id must not be empty")

	// ErrShutdown is returned by export and flush calls made after the
	// exporter has been shut down. No remote call is attempted in that case.
	ErrShutdown = errors.New("cloudlog: exporter is shut down")
)

// IsShutdownError checks if the error is a "exporter is shut down" error.
func IsShutdownError(err error) bool {
	return errors.Is(err, ErrShutdown)
}
