package errors

import (
	"fmt"
	"net/http"
)

// AppError carries both the technical detail we log and the short label +
// message we return to callers.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.TechnicalMessage, e.OriginalError)
	}
	return e.TechnicalMessage
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Error labels, returned verbatim in the "error" field of failure responses.
// The frontend matches on these strings.
const (
	ErrCodeUnauthorized    = "Unauthorized"
	ErrCodeInvalidData     = "Invalid data"
	ErrCodeUpstreamFailure = "Failed to fetch properties"
	ErrCodeServerError     = "Server error"
)

// NewValidationError reports a missing or malformed request field. Not
// retryable.
func NewValidationError(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeInvalidData,
		HTTPStatus:       http.StatusBadRequest,
	}
}

// NewAuthorizationError reports a missing or mismatched bearer credential.
func NewAuthorizationError(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeUnauthorized,
		HTTPStatus:       http.StatusUnauthorized,
	}
}

// NewUpstreamError reports a failed call to the scraping service. The
// stored snapshot is untouched; the scheduler decides whether to retry on a
// later run.
func NewUpstreamError(message string, err error) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeUpstreamFailure,
		HTTPStatus:       http.StatusBadGateway,
		OriginalError:    err,
	}
}

// NewStoreError reports a failed snapshot write. Writes are all-or-nothing,
// so the prior snapshot remains authoritative.
func NewStoreError(message string, err error) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      "Failed to save properties",
		Code:             ErrCodeServerError,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}
