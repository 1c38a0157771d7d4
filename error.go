package wimey

import (
	"github.com/agilira/go-errors"
)

// Error codes attached to every error returned by this package. Hosts can branch on them with
// [CodeOf] without string-matching error messages.
const (
	// ErrCodeInvalidDescriptor reports a command or argument descriptor that cannot be
	// registered as declared (empty key, missing callback, wrong destination type, ...).
	ErrCodeInvalidDescriptor = "WIMEY_INVALID_DESCRIPTOR"

	// ErrCodeInsufficientArgs reports an argument vector too short to contain a command while
	// commands are registered.
	ErrCodeInsufficientArgs = "WIMEY_INSUFFICIENT_ARGS"

	// ErrCodeMissingValue reports a required value missing at the end of the argument vector.
	ErrCodeMissingValue = "WIMEY_MISSING_VALUE"

	// ErrCodeUnknownValueType reports a destination whose value kind is unrecognized at bind
	// time. This is an internal-consistency failure, not user input error.
	ErrCodeUnknownValueType = "WIMEY_UNKNOWN_VALUE_TYPE"

	// ErrCodeConversion reports a token that failed to parse as the requested type.
	ErrCodeConversion = "WIMEY_CONVERSION_FAILED"
)

// CodeOf returns the wimey error code carried by err, or the empty string if err carries none.
func CodeOf(err error) string {
	if coder, ok := err.(errors.ErrorCoder); ok {
		return string(coder.ErrorCode())
	}
	return ""
}
