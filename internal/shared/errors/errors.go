// Package errors provides application-level error types and utilities.
// The taxonomy mirrors the failure classes of the dashboard: client input
// validation, missing service-account configuration, upstream login and
// session assembly failures, and upstream transport failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeConfiguration  ErrorType = "configuration_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeSession        ErrorType = "session_error"
	ErrorTypeUpstream       ErrorType = "upstream_error"
	ErrorTypeInternal       ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewConfigurationError creates a configuration error. These are fatal for
// the request and never retried.
func NewConfigurationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConfiguration, http.StatusInternalServerError, message, details)
}

// NewAuthenticationError creates an upstream login failure error
func NewAuthenticationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAuthentication, http.StatusBadGateway, message, details)
}

// NewSessionError creates an error for a login that produced no usable session
func NewSessionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeSession, http.StatusBadGateway, message, details)
}

// NewUpstreamError creates an error for a non-success upstream HTTP status
func NewUpstreamError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUpstream, http.StatusBadGateway, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// GetAppError extracts an *AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is reports whether the error chain contains an AppError of the given type.
func Is(err error, errType ErrorType) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Type == errType
	}
	return false
}
