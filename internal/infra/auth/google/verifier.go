// Package google verifies Google-issued ID tokens for federated sign-in.
package google

import (
	"context"
	"log/slog"
	"strings"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier implements service.IdentityVerifier for Google ID tokens.
type Verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier creates a Google verifier bound to the configured OAuth client ID.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required")
	}

	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}, nil
}

// Provider returns the provider handled by this verifier.
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// Verify checks signature, audience and issuer of a Google ID token.
func (v *Verifier) Verify(ctx context.Context, credential string) (*service.FederatedIdentity, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("empty ID token")
	}

	payload, err := v.validate(ctx, credential, v.clientID)
	if err != nil {
		v.logger.Debug("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails(err.Error())
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("unexpected issuer " + payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("token has no subject")
	}

	identity := &service.FederatedIdentity{
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: payload.Subject,
		Email:          stringClaim(payload.Claims, "email"),
		EmailVerified:  boolClaim(payload.Claims, "email_verified"),
		Name:           stringClaim(payload.Claims, "name"),
	}
	if identity.Email == "" {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("token has no email claim")
	}

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

// boolClaim accepts both JSON booleans and the "true" string some tokens carry.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
