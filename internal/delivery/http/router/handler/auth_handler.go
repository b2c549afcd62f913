package handler

import (
	"log/slog"
	"net/http"

	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/response"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	messageVerificationPending = "Account created. The verification email could not be sent; request a new one."
	messageResetRequested      = "If the email belongs to an account, a reset link has been sent."
	messageVerificationResent  = "If the email belongs to an unconfirmed account, a new verification link has been sent."
)

// AuthHandler serves the local account and session endpoints.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:     params.AccountUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required"`
	Name      string `json:"name" validate:"omitempty,max=100"`
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,max=50"`
}

// TokenRequest carries a single-use token in the body.
type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// EmailRequest carries only an email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest is the body of POST /auth/logout. The access token may come from the Authorization header instead.
type LogoutRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// ChangePasswordRequest is the body of POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Register creates a local account. 202 means the account exists but the verification email failed.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.RequiresConfirmation && !output.VerificationEmailSent {
		return response.SuccessWithMessage(c, http.StatusAccepted, toAccountResponse(output.Account), messageVerificationPending)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output.Account))
}

// VerifyEmail accepts the token from the query string (email links) or the body.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if c.Request().Method == http.MethodPost {
		var req TokenRequest
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
		token = req.Token
	}
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	account, err := h.uc.ConfirmEmail(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ResendVerification always answers 202.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req EmailRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.uc.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, &MessageResponse{Message: messageVerificationResent})
}

// Login exchanges email and password for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Refresh mints a new access token from a refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	pair, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(pair))
}

// Logout revokes the presented credentials. It runs behind OptionalAuthenticate so the bearer token is revoked too.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if principal, ok := middleware.GetPrincipal(c); ok && req.AccessToken == "" {
		req.AccessToken = principal.AccessToken
	}

	err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Logged out"})
}

// LogoutAll revokes every credential of the caller.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if err := h.uc.LogoutAll(c.Request().Context(), principal); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Logged out from every session"})
}

// ForgotPassword always answers 202 so the response never reveals whether the email is registered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req EmailRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, &MessageResponse{Message: messageResetRequested})
}

// ResetPassword sets a new password from a reset token and signs the account out everywhere.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Password has been reset"})
}

// ChangePassword keeps the current session and revokes the others.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), principal, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Password changed"})
}

// Me returns the caller's account.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	account, err := h.uc.Me(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ListSessions lists the caller's live refresh credentials.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponses(sessions))
}

// RevokeSession revokes one of the caller's sessions by id.
func (h *AuthHandler) RevokeSession(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RevokeSession(c.Request().Context(), principal, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
