package service

import (
	"context"

	"warden/internal/domain/entity"
)

// FederatedIdentity is an identity asserted and verified by an external provider.
type FederatedIdentity struct {
	Provider       entity.ProviderType
	ProviderUserID string
	Email          string
	EmailVerified  bool
	Name           string
}

// IdentityVerifier checks a provider-issued credential (for example an ID token)
// and returns the identity it asserts.
type IdentityVerifier interface {
	Provider() entity.ProviderType
	Verify(ctx context.Context, credential string) (*FederatedIdentity, error)
}
