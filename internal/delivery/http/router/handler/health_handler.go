package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/delivery/http/response"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the credential store is reachable.
type HealthHandler struct {
	checker repository.HealthChecker
	logger  *slog.Logger
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Checker repository.HealthChecker
	Logger  *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		checker: params.Checker,
		logger:  params.Logger,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Health check failed", slog.Any("error", err))
		unavailable := domainerrors.ErrStorageUnavailable

		return response.Error(c, unavailable.HTTPCode(), unavailable.ErrorCode(), unavailable.Message(), nil)
	}

	return response.Success(c, http.StatusOK, &HealthResponse{Status: "ok"})
}
