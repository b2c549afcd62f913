package usecase

import (
	"context"

	"warden/internal/domain/entity"
	"warden/internal/domain/service"
)

// FederatedLoginInput carries a provider-issued ID token and optional provider grants.
type FederatedLoginInput struct {
	Provider     entity.ProviderType
	IDToken      string
	AccessGrant  string
	RefreshGrant string
}

// ProviderGrants are the provider-issued access and refresh grants stored on the account.
type ProviderGrants struct {
	AccessGrant  string
	RefreshGrant string
}

// ProviderFilesOutput is one page of files held at the account's provider.
type ProviderFilesOutput struct {
	Provider entity.ProviderType
	Files    []service.ProviderFile
}

// FederatedUsecase bridges externally verified identities into local accounts and sessions.
type FederatedUsecase interface {
	// FederatedLogin verifies the ID token with the provider's verifier, then calls Bridge.
	FederatedLogin(ctx context.Context, input *FederatedLoginInput) (*AuthOutput, error)

	// Bridge finds or creates the account for an already verified identity and issues a pair.
	Bridge(ctx context.Context, identity *service.FederatedIdentity, grants ProviderGrants) (*AuthOutput, error)

	// Providers lists the providers with a configured verifier.
	Providers() []entity.ProviderType

	// ListProviderFiles lists files the principal's federated account keeps at its provider, using the stored
	// grants. A refreshed access grant is written back to the account.
	ListProviderFiles(ctx context.Context, principal *entity.Principal, pageSize int64) (*ProviderFilesOutput, error)
}
