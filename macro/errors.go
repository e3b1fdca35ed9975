package macro

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGender is returned when gender is not exactly "male" or "female".
	ErrInvalidGender = errors.New("macro: invalid gender")

	// ErrInvalidActivityLevel is returned when no multiplier exists for the level.
	ErrInvalidActivityLevel = errors.New("macro: invalid activity level")

	// ErrInvalidNumericInput is returned when height, weight or age is not a
	// positive finite number no larger than one million.
	ErrInvalidNumericInput = errors.New("macro: invalid numeric input")

	// ErrMissingField is returned by ParseProfile when a form field is blank.
	ErrMissingField = errors.New("macro: missing field")
)

// IsInvalidGender reports whether err wraps ErrInvalidGender.
func IsInvalidGender(err error) bool { return errors.Is(err, ErrInvalidGender) }

// IsInvalidActivityLevel reports whether err wraps ErrInvalidActivityLevel.
func IsInvalidActivityLevel(err error) bool { return errors.Is(err, ErrInvalidActivityLevel) }

// IsInvalidNumericInput reports whether err wraps ErrInvalidNumericInput.
func IsInvalidNumericInput(err error) bool { return errors.Is(err, ErrInvalidNumericInput) }

// IsMissingField reports whether err wraps ErrMissingField.
func IsMissingField(err error) bool { return errors.Is(err, ErrMissingField) }

// InputError ties a sentinel error to the field and value that caused it, so
// callers can match with errors.Is and still tell the user which input to fix.
type InputError struct {
	Sentinel error
	Field    string
	Value    string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Sentinel, e.Field)
	}
	return fmt.Sprintf("%s: %s=%q", e.Sentinel, e.Field, e.Value)
}

func (e *InputError) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *InputError) Unwrap() error        { return e.Sentinel }

func inputError(sentinel error, field, value string) error {
	return &InputError{Sentinel: sentinel, Field: field, Value: value}
}
