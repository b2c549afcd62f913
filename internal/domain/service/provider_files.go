package service

import (
	"context"

	"warden/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrGrantRejected is returned when the provider no longer accepts the stored grant and it cannot be refreshed.
var ErrGrantRejected = errors.New("provider grant rejected")

// ProviderGrant is the OAuth grant stored with a federated account.
type ProviderGrant struct {
	AccessGrant  string
	RefreshGrant string
}

// ProviderFile is one entry of a provider file listing.
type ProviderFile struct {
	ID   string
	Name string
}

// ProviderFileListing is one page of files. AccessGrant is set only when the grant was refreshed on the way.
type ProviderFileListing struct {
	Files       []ProviderFile
	AccessGrant string
}

// ProviderFileLister lists the files a federated account keeps at its provider, acting with the stored grant.
type ProviderFileLister interface {
	Provider() entity.ProviderType
	ListFiles(ctx context.Context, grant ProviderGrant, pageSize int64) (*ProviderFileListing, error)
}
