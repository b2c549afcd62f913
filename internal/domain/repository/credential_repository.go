package repository

import (
	"context"
	"time"

	"warden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCredentialNotFound is the normal negative result for lookups and conditional updates.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialLookup identifies a credential record. A zero AccountID matches any owner.
type CredentialLookup struct {
	TokenHash string
	Kind      entity.CredentialKind
	AccountID uuid.UUID
}

// CredentialRepository is the credential store. Every read re-checks current state;
// nothing is cached between calls. Revocations are idempotent.
type CredentialRepository interface {
	// Create inserts a new unrevoked record.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindValid returns the record only if it matches the lookup, is unrevoked and expires after now.
	FindValid(ctx context.Context, lookup CredentialLookup, now time.Time) (*entity.Credential, error)

	// Consume atomically revokes a record that is still valid at now and returns it.
	// Exactly one concurrent caller can consume a given record; the rest get ErrCredentialNotFound.
	Consume(ctx context.Context, lookup CredentialLookup, now time.Time) (*entity.Credential, error)

	// Revoke blacklists a single record by token hash.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeMany blacklists every listed record.
	RevokeMany(ctx context.Context, tokenHashes []string) error

	// RevokeAll blacklists all records of an account, optionally limited to the given kinds.
	RevokeAll(ctx context.Context, accountID uuid.UUID, kinds ...entity.CredentialKind) error

	// RevokeAllExcept blacklists all records of an account except the one with keepTokenHash.
	RevokeAllExcept(ctx context.Context, accountID uuid.UUID, keepTokenHash string) error

	// RevokeByID blacklists one record owned by the account. Returns ErrCredentialNotFound when
	// no unrevoked record of that kind with that ID belongs to the account.
	RevokeByID(ctx context.Context, accountID, id uuid.UUID, kind entity.CredentialKind) error

	// ListActive returns the account's usable records of a kind, newest first.
	ListActive(ctx context.Context, accountID uuid.UUID, kind entity.CredentialKind, now time.Time) ([]*entity.Credential, error)

	// PurgeExpiredOrRevoked deletes records that can never be used again and returns how many were removed.
	PurgeExpiredOrRevoked(ctx context.Context, now time.Time) (int64, error)
}
