package analytics

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed request parameters: non-positive day
// counts, overlapping time windows, unknown filter or group-by fields. It is
// raised before any rows are fetched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
