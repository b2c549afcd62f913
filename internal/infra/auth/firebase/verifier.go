// Package firebase verifies Firebase Authentication ID tokens for federated sign-in.
package firebase

import (
	"context"
	"log/slog"
	"strings"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// tokenVerifier is the subset of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier implements service.IdentityVerifier on top of the Firebase Admin SDK.
type Verifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewVerifier initializes a Firebase app and its auth client.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &Verifier{client: client, logger: logger}, nil
}

// Provider returns the provider handled by this verifier.
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeFirebase
}

// Verify checks a Firebase ID token and extracts the identity claims.
func (v *Verifier) Verify(ctx context.Context, credential string) (*service.FederatedIdentity, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("empty ID token")
	}

	token, err := v.client.VerifyIDToken(ctx, credential)
	if err != nil {
		v.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails(err.Error())
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("token has no email claim")
	}
	verified, _ := token.Claims["email_verified"].(bool)
	name, _ := token.Claims["name"].(string)

	return &service.FederatedIdentity{
		Provider:       entity.ProviderTypeFirebase,
		ProviderUserID: token.UID,
		Email:          email,
		EmailVerified:  verified,
		Name:           name,
	}, nil
}
