package bpm

import "fmt"

// InvalidInputError indicates the caller handed the calculator something it
// refuses to compute with: negative CO2, an unrecognized fuel type, or a
// registration date in the future. The calculator never clamps bad input.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidInput(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
