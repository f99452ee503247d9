package session

import "errors"

// ErrInvalidBackend is returned when a backend string is not one of
// console, jsonl, cloudlogging or disabled.
var ErrInvalidBackend = errors.New("session: invalid backend")

// IsInvalidBackendError checks if the error is an invalid backend error
func IsInvalidBackendError(err error) bool {
	return errors.Is(err, ErrInvalidBackend)
}
