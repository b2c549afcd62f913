package handler

import (
	"log/slog"
	"net/http"

	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/response"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FederatedHandler signs users in with an identity asserted by an external provider.
type FederatedHandler struct {
	uc     usecase.FederatedUsecase
	logger *slog.Logger
}

// FederatedHandlerParams holds dependencies for FederatedHandler, injected by Fx.
type FederatedHandlerParams struct {
	fx.In

	FederatedUC usecase.FederatedUsecase
	Logger      *slog.Logger
}

// NewFederatedHandler is the constructor for FederatedHandler.
func NewFederatedHandler(params FederatedHandlerParams) *FederatedHandler {
	return &FederatedHandler{
		uc:     params.FederatedUC,
		logger: params.Logger,
	}
}

// FederatedLoginRequest carries the provider's ID token and the optional grants obtained alongside it.
type FederatedLoginRequest struct {
	IDToken      string `json:"id_token" validate:"required"`
	AccessGrant  string `json:"access_grant"`
	RefreshGrant string `json:"refresh_grant"`
}

const defaultProviderFilesPageSize = 10

// ProviderFilesRequest is the query of GET /auth/federated/files.
type ProviderFilesRequest struct {
	PageSize int64 `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProviderFileResponse is one file held at the identity provider.
type ProviderFileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProviderFilesResponse is one page of provider files.
type ProviderFilesResponse struct {
	Provider entity.ProviderType    `json:"provider"`
	Files    []ProviderFileResponse `json:"files"`
}

// ProvidersResponse lists the providers this deployment accepts.
type ProvidersResponse struct {
	Providers []entity.ProviderType `json:"providers"`
}

// Login handles POST /auth/federated/:provider.
func (h *FederatedHandler) Login(c echo.Context) error {
	var req FederatedLoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.uc.FederatedLogin(c.Request().Context(), &usecase.FederatedLoginInput{
		Provider:     entity.ProviderType(c.Param("provider")),
		IDToken:      req.IDToken,
		AccessGrant:  req.AccessGrant,
		RefreshGrant: req.RefreshGrant,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Providers handles GET /auth/federated.
func (h *FederatedHandler) Providers(c echo.Context) error {
	return response.Success(c, http.StatusOK, &ProvidersResponse{Providers: h.uc.Providers()})
}

// ListFiles handles GET /auth/federated/files with the grants stored at federated sign-in.
func (h *FederatedHandler) ListFiles(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	var req ProviderFilesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if req.PageSize == 0 {
		req.PageSize = defaultProviderFilesPageSize
	}

	output, err := h.uc.ListProviderFiles(c.Request().Context(), principal, req.PageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	files := make([]ProviderFileResponse, 0, len(output.Files))
	for _, f := range output.Files {
		files = append(files, ProviderFileResponse{ID: f.ID, Name: f.Name})
	}

	return response.Success(c, http.StatusOK, &ProviderFilesResponse{Provider: output.Provider, Files: files})
}
