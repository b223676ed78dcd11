package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Validation rule names. They double as message catalog keys ("validation." + rule).
const (
	RuleRequired  = "required"
	RuleUnique    = "unique"
	RuleAlphaDash = "alpha_dash"
	RuleEmail     = "email"
	RuleMin       = "min"
	RuleIn        = "in"
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HasRule reports whether any field failed the given rule.
func (e *ValidationError) HasRule(field, rule string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field && fe.Rule == rule {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewRuleError creates a ValidationError for a single field that failed a named rule.
func NewRuleError(field, rule, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Rule: rule, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UniqueViolationError reports a write rejected by a unique index.
// It wraps ErrAlreadyExists.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s: %v", e.Constraint, ErrAlreadyExists)
}

func (e *UniqueViolationError) Unwrap() error { return ErrAlreadyExists }
