package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrMissingVariable = errors.New("variable not found in dataset")
	ErrNotCategorical  = errors.New("variable is not categorical")
	ErrMissingValue    = errors.New("missing value where none is allowed")

	// Analysis errors
	ErrAnalysis = errors.New("analysis failed")

	// Rendering errors
	ErrSchema = errors.New("record set missing required fields")

	// Lookup errors
	ErrNotFound         = errors.New("resource not found")
	ErrAnalysisNotFound = fmt.Errorf("%w: analysis", ErrNotFound)
)

// Error constructors with context

func NewMissingVariableError(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingVariable, name)
}

func NewTypeError(name string, value string) error {
	return fmt.Errorf("%w: %q holds non-string value %q", ErrNotCategorical, name, value)
}

func NewMissingValueError(name string, row int) error {
	return fmt.Errorf("%w: column %q, row %d", ErrMissingValue, name, row)
}

func NewAnalysisError(reason string) error {
	return fmt.Errorf("%w: %s", ErrAnalysis, reason)
}

func NewSchemaError(field string) error {
	return fmt.Errorf("%w: %s", ErrSchema, field)
}

// Error checking helpers

func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingVariable) ||
		errors.Is(err, ErrNotCategorical) ||
		errors.Is(err, ErrMissingValue)
}

func IsAnalysisError(err error) bool {
	return errors.Is(err, ErrAnalysis)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
