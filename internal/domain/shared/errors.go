package shared

import "errors"

// Error kinds. Every DomainError belongs to exactly one kind; anything that is
// not a DomainError is treated as an upstream failure.
const (
	KindValidation = "validation"
	KindAuth       = "auth"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
)

// DomainError represents a domain-level error whose message is safe to show to callers
type DomainError struct {
	Code    string `json:"code"`
	Kind    string `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Kind:    kindForCode(code),
		Message: message,
	}
}

// NewValidationError creates a validation error with a descriptive message
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: "VALIDATION_ERROR", Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a not-found error naming the missing resource
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Code: "NOT_FOUND", Kind: KindNotFound, Message: resource + " not found"}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthenticated = NewDomainError("UNAUTHORIZED", "Authentication required")
	ErrForbidden       = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrConflict        = NewDomainError("CONFLICT", "Resource was modified by another process")
)

func kindForCode(code string) string {
	switch code {
	case "UNAUTHORIZED", "FORBIDDEN":
		return KindAuth
	case "NOT_FOUND":
		return KindNotFound
	case "CONFLICT":
		return KindConflict
	default:
		return KindValidation
	}
}

// IsNotFound reports whether err is a not-found domain error
func IsNotFound(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Kind == KindNotFound
}
