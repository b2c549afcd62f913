// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"warden/internal/domain/entity"
	"warden/internal/domain/repository"

	"github.com/google/uuid"
)

// TokenPair is an ACCESS and REFRESH credential issued together.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// CredentialUsecase is the credential lifecycle engine. It issues, verifies, rotates and revokes
// every credential kind. Expected negative outcomes are returned as domain rejections
// (ErrInvalidCredentials, ErrTokenExpired, ErrTokenAlreadyUsed, ErrAccountInactive); storage
// failures surface as ErrStorageUnavailable.
type CredentialUsecase interface {
	// IssuePair mints and persists an ACCESS and a REFRESH credential as one unit.
	IssuePair(ctx context.Context, accountID uuid.UUID) (*TokenPair, error)

	// VerifyAccess checks signature, store state and account activity of an access token.
	VerifyAccess(ctx context.Context, accessToken string) (*entity.Principal, error)

	// RotateAccess mints a new access token from a refresh token. When refresh rotation is
	// enabled the refresh token is consumed and a new one is returned as well; otherwise the
	// returned RefreshToken is the one presented. An inactive owner has all credentials revoked.
	RotateAccess(ctx context.Context, refreshToken string) (*TokenPair, error)

	RevokeOne(ctx context.Context, token string) error
	RevokeMany(ctx context.Context, tokens []string) error
	RevokeAllForAccount(ctx context.Context, accountID uuid.UUID) error

	// RevokeAllExcept revokes every credential of the account except keepToken.
	RevokeAllExcept(ctx context.Context, accountID uuid.UUID, keepToken string) error

	// IssueSingleUse creates a VERIFY_EMAIL or RESET_PASSWORD token. A ttl <= 0 uses the configured lifetime.
	IssueSingleUse(ctx context.Context, accountID uuid.UUID, kind entity.CredentialKind, ttl time.Duration) (string, error)

	// RedeemSingleUse validates and consumes a single-use token atomically. accountID may be uuid.Nil.
	RedeemSingleUse(ctx context.Context, token string, kind entity.CredentialKind, accountID uuid.UUID) (*entity.Credential, error)

	// ListSessions returns the account's active refresh credentials, newest first.
	ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// RevokeSession revokes one refresh credential owned by the account.
	RevokeSession(ctx context.Context, accountID, sessionID uuid.UUID) error

	// WithRepositories returns an engine bound to an open transaction, so a flow can make
	// redemption and its side effect commit or fail together.
	WithRepositories(factory repository.RepositoryFactory) CredentialUsecase
}
