package domain

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---

// Sentinel errors for lookups and structural conflicts. Handlers map these
// to 404/409 responses, distinct from validation failures.
var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrPrimaryGoalConflict = errors.New("cannot delete the primary goal while other goals exist; set another goal as primary first")
)

// ValidationError reports client input that is malformed or outside the
// allowed domain range. The message always names the offending field or
// values. Handlers map it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError builds a ValidationError with a formatted message.
func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
