package errors

import (
	"net/http"
	"strings"
)

// MapError converts an arbitrary error into an AppError with a
// caller-presentable label and status.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case strings.Contains(technicalMessage, "scraper returned"),
		strings.Contains(technicalMessage, "scraper request failed"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      technicalMessage,
			Code:             ErrCodeUpstreamFailure,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "snapshot write failed"),
		strings.Contains(technicalMessage, "snapshot read failed"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      "Failed to save properties",
			Code:             ErrCodeServerError,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      "An unexpected error occurred",
			Code:             ErrCodeServerError,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
