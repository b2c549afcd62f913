package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"warden/config"
	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/response"
	"warden/internal/delivery/http/router"
	"warden/internal/delivery/http/router/handler"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/errors"
	"warden/internal/infra/cache"
	mockRepo "warden/internal/mocks/repository"
	mockUsecase "warden/internal/mocks/usecase"
	"warden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    *response.MetaInfo  `json:"meta"`
}

type fakeLimiter struct {
	decision *cache.Decision
	err      error
	keys     []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (*cache.Decision, error) {
	f.keys = append(f.keys, key)

	return f.decision, f.err
}

type apiFixture struct {
	echo        *echo.Echo
	accounts    *mockUsecase.MockAccountUsecase
	federated   *mockUsecase.MockFederatedUsecase
	credentials *mockUsecase.MockCredentialUsecase
	health      *mockRepo.MockHealthChecker
}

func newAPIFixture(t *testing.T, limiter cache.Limiter) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		accounts:    mockUsecase.NewMockAccountUsecase(t),
		federated:   mockUsecase.NewMockFederatedUsecase(t),
		credentials: mockUsecase.NewMockCredentialUsecase(t),
		health:      mockRepo.NewMockHealthChecker(t),
	}

	f.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: f.accounts, Logger: logger}),
		FederatedHandler:    handler.NewFederatedHandler(handler.FederatedHandlerParams{FederatedUC: f.federated, Logger: logger}),
		AdminHandler:        handler.NewAdminHandler(handler.AdminHandlerParams{AccountUC: f.accounts, Logger: logger}),
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{Checker: f.health, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(f.credentials, logger),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(limiter, logger),
	})

	return f
}

func (f *apiFixture) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	out := &envelope{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec, out
}

func (f *apiFixture) expectPrincipal(token string, role entity.Role) *entity.Principal {
	principal := &entity.Principal{
		AccountID:   uuid.New(),
		Email:       "alice@example.com",
		Role:        role,
		Active:      true,
		AccessToken: token,
	}
	f.credentials.EXPECT().VerifyAccess(mock.Anything, token).Return(principal, nil)

	return principal
}

func TestServer_Health(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.health.EXPECT().Ping(mock.Anything).Return(nil)

		rec, body := f.do(t, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	})

	t.Run("store unreachable", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.health.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))

		rec, body := f.do(t, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "STORAGE_UNAVAILABLE", body.Error.Code)
	})
}

func TestServer_Register(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "bob@example.com", PasswordHash: "$2a$secret", Role: entity.RoleUser}
	payload := `{"email":"bob@example.com","password":"Sup3r-secret!","first_name":"Bob","last_name":"Builder"}`
	matchesInput := mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Email == "bob@example.com" && in.FirstName == "Bob" && in.LastName == "Builder"
	})

	t.Run("created", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().Register(mock.Anything, matchesInput).Return(&usecase.RegisterOutput{
			Account:               account,
			RequiresConfirmation:  true,
			VerificationEmailSent: true,
		}, nil)

		rec, body := f.do(t, http.MethodPost, "/auth/register", payload)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(body.Data), `"email":"bob@example.com"`)
		assert.NotContains(t, rec.Body.String(), "$2a$secret")
	})

	t.Run("verification email failed", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().Register(mock.Anything, matchesInput).Return(&usecase.RegisterOutput{
			Account:              account,
			RequiresConfirmation: true,
		}, nil)

		rec, body := f.do(t, http.MethodPost, "/auth/register", payload)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("invalid body", func(t *testing.T) {
		f := newAPIFixture(t, nil)

		rec, body := f.do(t, http.MethodPost, "/auth/register", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"email": "email", "password": "required"}, body.Error.Details)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().Register(mock.Anything, matchesInput).Return(nil, domainerrors.ErrAccountAlreadyExists)

		rec, body := f.do(t, http.MethodPost, "/auth/register", payload)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", body.Error.Code)
	})
}

func TestServer_LoginRejection(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.accounts.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec, body := f.do(t, http.MethodPost, "/auth/login", `{"email":"carol@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestServer_LoginIssuesTokens(t *testing.T) {
	f := newAPIFixture(t, nil)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	f.accounts.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "carol@example.com", Password: "Sup3r-secret!", RememberMe: true}).
		Return(&usecase.AuthOutput{
			Account: &entity.Account{ID: uuid.New(), Email: "carol@example.com"},
			Tokens: &usecase.TokenPair{
				AccessToken:      "access",
				AccessExpiresAt:  expires,
				RefreshToken:     "refresh",
				RefreshExpiresAt: expires,
			},
		}, nil)

	rec, body := f.do(t, http.MethodPost, "/auth/login", `{"email":"carol@example.com","password":"Sup3r-secret!","remember_me":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var auth handler.AuthResponse
	require.NoError(t, json.Unmarshal(body.Data, &auth))
	assert.Equal(t, "access", auth.Tokens.AccessToken)
	assert.Equal(t, "refresh", auth.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", auth.Tokens.TokenType)
}

func TestServer_VerifyEmail(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "dave@example.com", Active: true}

	t.Run("link from email", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().ConfirmEmail(mock.Anything, "tok").Return(account, nil)

		rec, _ := f.do(t, http.MethodGet, "/auth/verify-email?token=tok", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("replayed token looks unknown", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().ConfirmEmail(mock.Anything, "tok").Return(nil, domainerrors.ErrTokenAlreadyUsed)

		rec, body := f.do(t, http.MethodPost, "/auth/verify-email", `{"token":"tok"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newAPIFixture(t, nil)

		rec, body := f.do(t, http.MethodGet, "/auth/verify-email", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}

func TestServer_ForgotPasswordIsUninformative(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.accounts.EXPECT().ForgotPassword(mock.Anything, "nobody@example.com").Return(nil)
	f.accounts.EXPECT().ForgotPassword(mock.Anything, "erin@example.com").Return(nil)

	recUnknown, _ := f.do(t, http.MethodPost, "/auth/forgot-password", `{"email":"nobody@example.com"}`)
	recKnown, _ := f.do(t, http.MethodPost, "/auth/forgot-password", `{"email":"erin@example.com"}`)

	assert.Equal(t, http.StatusAccepted, recUnknown.Code)
	assert.Equal(t, recKnown.Code, recUnknown.Code)
}

func TestServer_AuthenticatedRoutes(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		f := newAPIFixture(t, nil)

		rec, body := f.do(t, http.MethodGet, "/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.credentials.EXPECT().VerifyAccess(mock.Anything, "old").Return(nil, domainerrors.ErrTokenExpired)

		rec, body := f.do(t, http.MethodGet, "/auth/me", "", echo.HeaderAuthorization, "Bearer old")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_EXPIRED", body.Error.Code)
	})

	t.Run("principal reaches the usecase", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		principal := f.expectPrincipal("good", entity.RoleUser)
		f.accounts.EXPECT().Me(mock.Anything, principal).
			Return(&entity.Account{ID: principal.AccountID, Email: principal.Email}, nil)

		rec, body := f.do(t, http.MethodGet, "/auth/me", "", echo.HeaderAuthorization, "bearer good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body.Data), principal.AccountID.String())
	})

	t.Run("revoke session by id", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		principal := f.expectPrincipal("good", entity.RoleUser)
		sessionID := uuid.New()
		f.accounts.EXPECT().RevokeSession(mock.Anything, principal, sessionID).Return(nil)

		rec, _ := f.do(t, http.MethodDelete, "/auth/sessions/"+sessionID.String(), "", echo.HeaderAuthorization, "Bearer good")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed session id", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.expectPrincipal("good", entity.RoleUser)

		rec, body := f.do(t, http.MethodDelete, "/auth/sessions/nope", "", echo.HeaderAuthorization, "Bearer good")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}

func TestServer_LogoutRevokesBearerToken(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.expectPrincipal("access-1", entity.RoleUser)
	f.accounts.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{AccessToken: "access-1", RefreshToken: "refresh-1"}).
		Return(nil)

	rec, _ := f.do(t, http.MethodPost, "/auth/logout", `{"refresh_token":"refresh-1"}`, echo.HeaderAuthorization, "Bearer access-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_LogoutWithStaleBearerToken(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.credentials.EXPECT().VerifyAccess(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenExpired)
	f.accounts.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh-1"}).
		Return(nil)

	rec, _ := f.do(t, http.MethodPost, "/auth/logout", `{"refresh_token":"refresh-1"}`, echo.HeaderAuthorization, "Bearer stale")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AdminRoutes(t *testing.T) {
	target := uuid.New()
	path := "/admin/accounts/" + target.String() + "/status"

	t.Run("requires admin role", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.expectPrincipal("user-token", entity.RoleUser)

		rec, body := f.do(t, http.MethodPatch, path, `{"active":false}`, echo.HeaderAuthorization, "Bearer user-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("deactivates account", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		admin := f.expectPrincipal("admin-token", entity.RoleAdmin)
		f.accounts.EXPECT().SetAccountActive(mock.Anything, admin, target, false).Return(nil)

		rec, _ := f.do(t, http.MethodPatch, path, `{"active":false}`, echo.HeaderAuthorization, "Bearer admin-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("active flag is required", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.expectPrincipal("admin-token", entity.RoleAdmin)

		rec, _ := f.do(t, http.MethodPatch, path, `{}`, echo.HeaderAuthorization, "Bearer admin-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_FederatedLogin(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.federated.EXPECT().
		FederatedLogin(mock.Anything, &usecase.FederatedLoginInput{Provider: "firebase", IDToken: "id-token"}).
		Return(nil, domainerrors.ErrUnsupportedProvider.WithDetails("firebase"))

	rec, body := f.do(t, http.MethodPost, "/auth/federated/firebase", `{"id_token":"id-token"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_PROVIDER", body.Error.Code)
	assert.Equal(t, "firebase", body.Error.Details)
}

func TestServer_ProviderFiles(t *testing.T) {
	t.Run("lists with default page size", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		principal := f.expectPrincipal("token", entity.RoleUser)
		f.federated.EXPECT().ListProviderFiles(mock.Anything, principal, int64(10)).Return(&usecase.ProviderFilesOutput{
			Provider: entity.ProviderTypeGoogle,
			Files:    []service.ProviderFile{{ID: "f1", Name: "budget.xlsx"}},
		}, nil)

		rec, body := f.do(t, http.MethodGet, "/auth/federated/files", "", echo.HeaderAuthorization, "Bearer token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"provider":"google","files":[{"id":"f1","name":"budget.xlsx"}]}`, string(body.Data))
	})

	t.Run("page size is bounded", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.expectPrincipal("token", entity.RoleUser)

		rec, body := f.do(t, http.MethodGet, "/auth/federated/files?page_size=500", "", echo.HeaderAuthorization, "Bearer token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("stale grant", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		principal := f.expectPrincipal("token", entity.RoleUser)
		f.federated.EXPECT().ListProviderFiles(mock.Anything, principal, int64(25)).Return(nil, domainerrors.ErrProviderGrantInvalid)

		rec, body := f.do(t, http.MethodGet, "/auth/federated/files?page_size=25", "", echo.HeaderAuthorization, "Bearer token")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PROVIDER_GRANT_INVALID", body.Error.Code)
	})

	t.Run("requires a bearer token", func(t *testing.T) {
		f := newAPIFixture(t, nil)

		rec, _ := f.do(t, http.MethodGet, "/auth/federated/files", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_FailuresDoNotLeakCauses(t *testing.T) {
	t.Run("storage", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().Refresh(mock.Anything, "r").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: connection reset"), "find credential"))

		rec, body := f.do(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"r"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "STORAGE_UNAVAILABLE", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})

	t.Run("unexpected", func(t *testing.T) {
		f := newAPIFixture(t, nil)
		f.accounts.EXPECT().Refresh(mock.Anything, "r").Return(nil, errors.New("boom"))

		rec, body := f.do(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"r"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestServer_RateLimit(t *testing.T) {
	t.Run("denied", func(t *testing.T) {
		limiter := &fakeLimiter{decision: &cache.Decision{Allowed: false, Limit: 5, Remaining: 0, RetryAfter: 9500 * time.Millisecond}}
		f := newAPIFixture(t, limiter)

		rec, body := f.do(t, http.MethodPost, "/auth/login", `{"email":"frank@example.com","password":"x"}`,
			echo.HeaderXRealIP, "203.0.113.7")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "10", rec.Header().Get(response.HeaderRetryAfter))
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "TOO_MANY_REQUESTS", body.Error.Code)
		assert.Equal(t, []string{"login:203.0.113.7"}, limiter.keys)
	})

	t.Run("limiter outage fails open", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		f := newAPIFixture(t, limiter)
		f.accounts.EXPECT().ResendVerification(mock.Anything, "grace@example.com").Return(nil)

		rec, _ := f.do(t, http.MethodPost, "/auth/resend-verification", `{"email":"grace@example.com"}`)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unthrottled routes skip the limiter", func(t *testing.T) {
		limiter := &fakeLimiter{decision: &cache.Decision{Allowed: false}}
		f := newAPIFixture(t, limiter)
		f.accounts.EXPECT().Refresh(mock.Anything, "r").Return(&usecase.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

		rec, _ := f.do(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"r"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, limiter.keys)
	})
}

func TestServer_RequestID(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.health.EXPECT().Ping(mock.Anything).Return(nil).Times(2)

	rec, body := f.do(t, http.MethodGet, "/health", "", echo.HeaderXRequestID, "client-id-1")
	assert.Equal(t, "client-id-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "client-id-1", body.Meta.RequestID)

	rec, body = f.do(t, http.MethodGet, "/health", "", echo.HeaderXRequestID, "bad id with spaces")
	assert.NotEqual(t, "bad id with spaces", body.Meta.RequestID)
	assert.Equal(t, body.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}
