package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Event errors
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidEventID = errors.New("invalid event id")

	// Store errors
	ErrStoreUnavailable = errors.New("event store unavailable")
)

// ValidationError describes a rejected event payload. It names the offending
// field so callers and logs can pinpoint the failure; the HTTP layer never
// exposes it directly.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
