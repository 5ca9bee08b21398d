package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewInvalidIdentifier flags a malformed ticket or project identifier.
// Checked before any store access.
func NewInvalidIdentifier(field, value string) error {
	return NewDomainError("INVALID_IDENTIFIER", fmt.Sprintf("invalid %s format", field), http.StatusBadRequest, map[string]any{
		field: value,
	})
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewMissingProject signals a ticket without a project reference; the
// guarantee policy is project-scoped and cannot be resolved without it.
func NewMissingProject(ticketID string) error {
	return NewDomainError("MISSING_PROJECT", "ticket has no project - cannot determine guarantee period", http.StatusUnprocessableEntity, map[string]any{
		"ticket_id": ticketID,
	})
}

// NewPolicyNotConfigured signals a project without a guarantee period on
// the strict read path. The get-or-create path never returns this.
func NewPolicyNotConfigured(projectID string) error {
	return NewDomainError("POLICY_NOT_CONFIGURED", "guarantee period not configured for project", http.StatusNotFound, map[string]any{
		"project_id": projectID,
	})
}

// NewPersistenceFailure wraps a failed store write. No retry is attempted
// here; retry policy belongs to the caller or the store client.
func NewPersistenceFailure(err error) error {
	return &DomainError{
		Code:       "PERSISTENCE_FAILURE",
		Message:    "failed to persist classification",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
