package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/delivery/http/response"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := response.PublicError(err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}
		m.write(c, logger, response.HandleAppError(c, err))

		return
	}

	// Middleware such as the access logger wraps foreign errors as a 500 with the cause kept internal.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal == nil {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.write(c, logger, response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil))

		return
	}

	// Anything outside the taxonomy is logged with its cause and returned as a generic error.
	cause := err
	if httpErr != nil && httpErr.Internal != nil {
		cause = httpErr.Internal
	}
	logger.Error("Unhandled error",
		slog.Any("error", cause),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternalError
	m.write(c, logger, response.Error(c, internal.HTTPCode(), internal.ErrorCode(), internal.Message(), nil))
}

func (m *ErrorMiddleware) write(c echo.Context, logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
	}
}
