package middleware

import (
	"log/slog"
	"strings"

	"warden/internal/delivery/http/response"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware authenticates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	credentials usecase.CredentialUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(credentials usecase.CredentialUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{credentials: credentials, logger: logger}
}

// Authenticate rejects the request unless it carries a valid access token for an active account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			invalid := domainerrors.ErrInvalidCredentials
			return response.Unauthorized(c, invalid.ErrorCode(), "Authorization header must carry a Bearer token")
		}

		principal, err := m.credentials.VerifyAccess(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

// OptionalAuthenticate attaches a principal when a valid token is present and never rejects.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		principal, err := m.credentials.VerifyAccess(c.Request().Context(), token)
		if err == nil {
			c.Set(principalKey, principal)
		} else if domainerrors.IsFatal(err) {
			return errors.WithStack(err)
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok || !principal.HasRole(role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + string(role))
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the principal attached by Authenticate or OptionalAuthenticate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(*entity.Principal)

	return principal, ok && principal != nil
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
