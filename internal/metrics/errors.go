package metrics

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError reports a numeric input the calculator refuses to work with.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func requireFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ValidationError{Field: field, Value: value, Reason: "must be a finite number"}
	}
	return nil
}

func requireNonNegative(field string, value float64) error {
	if err := requireFinite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return &ValidationError{Field: field, Value: value, Reason: "cannot be negative"}
	}
	return nil
}

func requirePositive(field string, value float64) error {
	if err := requireFinite(field, value); err != nil {
		return err
	}
	if value <= 0 {
		return &ValidationError{Field: field, Value: value, Reason: "must be greater than zero"}
	}
	return nil
}
