package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeMissingField ErrorCode = "MISSING_FIELD"
	CodeInvalidValue ErrorCode = "INVALID_VALUE"
	CodeOutOfRange   ErrorCode = "OUT_OF_RANGE"

	// Auth errors
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeTokenMalformed     ErrorCode = "TOKEN_MALFORMED"
	CodeTokenNotYetValid   ErrorCode = "TOKEN_NOT_YET_VALID"
	CodeInvalidTokenType   ErrorCode = "INVALID_TOKEN_TYPE"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeDuplicate          ErrorCode = "DUPLICATE_ERROR"

	// Server-side failures
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	CodePersistence   ErrorCode = "PERSISTENCE_ERROR"
	CodeUpstream      ErrorCode = "UPSTREAM_ERROR"

	// Quiz specific errors
	CodeInvalidCategory ErrorCode = "INVALID_CATEGORY"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is rendered in the error response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(code ErrorCode, message string) *DomainError {
	return NewError(code, message, nil)
}

func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

func NewDuplicateError(message string, cause error) *DomainError {
	return NewError(CodeDuplicate, message, cause)
}

func NewPersistenceError(message string, cause error) *DomainError {
	return NewError(CodePersistence, message, cause)
}

func NewUpstreamError(cause error) *DomainError {
	return NewError(CodeUpstream, "Recommendation engine unavailable", cause)
}

func NewInvalidCategoryError(category string) *DomainError {
	return NewError(CodeInvalidCategory,
		fmt.Sprintf("Invalid quiz category %q. Must be one of: %s", category, strings.Join(CategoryAliases(), ", ")),
		nil).WithContext("category", category)
}

// ErrorCodeOf returns the code of the first DomainError in err's chain, or "" if there is none.
func ErrorCodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// ValidationError describes a single invalid field of a request.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidationErrors is a list of field-level validation failures.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidValueError(field string, value interface{}, reason string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidValue,
		Message: fmt.Sprintf("%s %s", field, reason),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, length, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
		Value:   length,
	}
}
