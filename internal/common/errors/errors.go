// Package errors provides the standardized error taxonomy for the search API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeSearchAPIError covers any network or HTTP failure talking to
	// the upstream search provider. Surfaced to the caller as a 500.
	ErrCodeSearchAPIError ErrorCode = "SEARCH_API_ERROR"

	// ErrCodeInvalidRequest covers malformed inbound query parameters.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ServiceError represents a structured application error. No error in
// this service is retried anywhere; Retryable is kept for callers that
// want to make their own decision.
type ServiceError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError[%s]: %s", e.Code, e.Message)
}

// Detail returns the caller-facing description, message plus the
// underlying error text when present.
func (e *ServiceError) Detail() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

// NewSearchAPIError creates a non-retryable upstream search failure.
func NewSearchAPIError(err error) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeSearchAPIError,
		Message:   "Google Search API error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request binding error.
func NewInvalidRequestError(details string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request parameters",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatusMapping maps internal error codes to HTTP response codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeSearchAPIError: http.StatusInternalServerError,
	ErrCodeInvalidRequest: http.StatusBadRequest,
	ErrCodeInternal:       http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, exists := HTTPStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}
