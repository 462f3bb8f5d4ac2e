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

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
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

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StageRejectedError is a stage-gate policy rejection. It is expected
// control flow, returned as data up to the transport boundary and never
// logged as an error.
type StageRejectedError struct {
	From   Stage
	Target Stage
	Reason string
}

func (e *StageRejectedError) Error() string {
	return fmt.Sprintf("cannot advance stage %s → %s: %s", e.From, e.Target, e.Reason)
}

func (e *StageRejectedError) Unwrap() error { return ErrValidation }

// AuditBootstrapError reports that the presence-audit record could not be
// created after the stage write succeeded. The stage change has been rolled
// back when this error is returned.
type AuditBootstrapError struct {
	CaseID string
	Err    error
}

func (e *AuditBootstrapError) Error() string {
	return fmt.Sprintf("presence audit bootstrap failed for case %s (stage rolled back): %v", e.CaseID, e.Err)
}

func (e *AuditBootstrapError) Unwrap() error { return e.Err }
