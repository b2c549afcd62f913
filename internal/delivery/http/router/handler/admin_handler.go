package handler

import (
	"log/slog"
	"net/http"

	"warden/internal/delivery/http/middleware"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandler serves account administration endpoints.
type AdminHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		uc:     params.AccountUC,
		logger: params.Logger,
	}
}

// AccountStatusRequest is the body of PATCH /admin/accounts/:id/status.
type AccountStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SetAccountStatus activates or deactivates an account. Deactivation revokes every credential it holds.
func (h *AdminHandler) SetAccountStatus(c echo.Context) error {
	admin, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	accountID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req AccountStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.uc.SetAccountActive(c.Request().Context(), admin, accountID, *req.Active); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Account status changed",
		slog.Any("adminID", admin.AccountID),
		slog.Any("accountID", accountID),
		slog.Bool("active", *req.Active),
	)

	return c.NoContent(http.StatusNoContent)
}
