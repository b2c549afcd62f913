// Package response renders the uniform JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "warden/internal/delivery/context"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"

	"github.com/labstack/echo/v4"
)

// HeaderRetryAfter tells a throttled client how many seconds to wait.
const HeaderRetryAfter = "Retry-After"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data    any       `json:"data"`
	Message string    `json:"message,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// SuccessWithMessage returns a successful response carrying a human-readable note.
func SuccessWithMessage(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: message,
		Meta:    &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), message, nil)
}

// Unauthorized returns a 401 error and asks for a bearer token.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// TooManyRequests returns a 429 error with a Retry-After hint in seconds.
func TooManyRequests(c echo.Context, retryAfterSeconds string) error {
	c.Response().Header().Set(HeaderRetryAfter, retryAfterSeconds)
	rateErr := domainerrors.ErrTooManyRequests

	return Error(c, rateErr.HTTPCode(), rateErr.ErrorCode(), rateErr.Message(), nil)
}

// HandleAppError renders err when it is part of the error taxonomy and returns it unchanged otherwise,
// leaving the centralized handler to log it as an internal error.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := PublicError(err)
	if !ok {
		return errors.WithStack(err)
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}
	if appErr.HTTPCode() == http.StatusUnauthorized {
		return Unauthorized(c, appErr.ErrorCode(), appErr.Message())
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// PublicError resolves err to the taxonomy entry a client is allowed to see.
// Replayed single-use tokens look the same as unknown ones and storage failures surface with one code.
func PublicError(err error) (domainerrors.AppError, bool) {
	switch {
	case errors.Is(err, domainerrors.ErrTokenAlreadyUsed):
		return domainerrors.ErrInvalidCredentials, true
	case errors.Is(err, domainerrors.ErrStorageUnavailable):
		return domainerrors.ErrStorageUnavailable, true
	}

	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return nil, false
	}

	return appErr, true
}
