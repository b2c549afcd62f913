// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"warden/internal/delivery/http/response"
	"warden/internal/delivery/http/validator"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountResponse is the public view of an account. Password hashes and provider grants never leave the service.
type AccountResponse struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Role      entity.Role         `json:"role"`
	Active    bool                `json:"active"`
	Provider  entity.ProviderType `json:"provider"`
	CreatedAt time.Time           `json:"created_at"`
}

// TokenResponse carries a freshly issued access/refresh pair.
type TokenResponse struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	TokenType        string    `json:"token_type"`
}

// AuthResponse is returned by every flow that signs a user in.
type AuthResponse struct {
	Account *AccountResponse `json:"account"`
	Tokens  *TokenResponse   `json:"tokens"`
}

// SessionResponse describes one live refresh credential.
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse is used where the outcome is deliberately uninformative.
type MessageResponse struct {
	Message string `json:"message"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	if account == nil {
		return nil
	}

	return &AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		Active:    account.Active,
		Provider:  account.Provider,
		CreatedAt: account.CreatedAt,
	}
}

func toTokenResponse(pair *usecase.TokenPair) *TokenResponse {
	if pair == nil {
		return nil
	}

	return &TokenResponse{
		AccessToken:      pair.AccessToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshToken:     pair.RefreshToken,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		TokenType:        "Bearer",
	}
}

func toAuthResponse(output *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Account: toAccountResponse(output.Account),
		Tokens:  toTokenResponse(output.Tokens),
	}
}

func toSessionResponses(sessions []*entity.Session) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, &SessionResponse{ID: s.ID, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt})
	}

	return out
}

// bindAndValidate binds the request body and runs struct validation.
// On failure the error response is already written and the returned bool is false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		validationErr := domainerrors.ErrValidationFailed
		return false, response.BadRequestWithDetails(c, validationErr.ErrorCode(), validationErr.Message(), validator.FieldErrors(err))
	}

	return true, nil
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
