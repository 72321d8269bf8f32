package contract

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a caller-supplied value outside its
// accepted domain. Surfaced before any store work happens.
type InvalidParameterError struct {
	Msg string
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string { return e.Msg }

// NewInvalidParameter builds an InvalidParameterError with a formatted message.
func NewInvalidParameter(format string, args ...any) error {
	return &InvalidParameterError{Msg: fmt.Sprintf(format, args...)}
}

// MissingFieldError reports a required write-payload field that is absent
// or empty. Surfaced before any store interaction.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field '%s'", e.Field)
}

// Sentinel errors for the classifier and the identifier generator.
var (
	// ErrMalformedTimestamp marks a timestamp the classifier cannot parse.
	// Rows carrying one are excluded from temporal aggregation, never
	// silently misclassified.
	ErrMalformedTimestamp = errors.New("malformed incident timestamp")

	// ErrIdentifierExhausted means every generation attempt collided with
	// an existing identifier. The write fails loudly; a null key is never
	// inserted.
	ErrIdentifierExhausted = errors.New("identifier generation exhausted retry budget")
)

// IsInvalidParameter reports whether err is an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

// IsMissingField reports whether err is a MissingFieldError.
func IsMissingField(err error) bool {
	var mfe *MissingFieldError
	return errors.As(err, &mfe)
}
