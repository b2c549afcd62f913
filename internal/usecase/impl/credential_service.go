// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"warden/config"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/errors"
	"warden/internal/usecase"
	"warden/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	credentialRepo repository.CredentialRepository
	// bound is set when the engine runs inside a caller's transaction.
	bound   repository.RepositoryFactory
	issuers service.TokenIssuers
	tokens  config.TokensConfig
	now     func() time.Time
	logger  *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	CredentialRepo repository.CredentialRepository
	Issuers        service.TokenIssuers
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		credentialRepo: params.CredentialRepo,
		issuers:        params.Issuers,
		tokens:         params.Config.Tokens,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// WithRepositories returns a copy of the engine whose store calls go through factory.
func (srv *credentialService) WithRepositories(factory repository.RepositoryFactory) usecase.CredentialUsecase {
	bound := *srv
	bound.bound = factory
	bound.accountRepo = factory.AccountRepo()
	bound.credentialRepo = factory.CredentialRepo()

	return &bound
}

// inTx runs fn in the bound transaction, or opens a new one.
func (srv *credentialService) inTx(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if srv.bound != nil {
		return fn(srv.bound)
	}

	return srv.txManager.Execute(ctx, fn)
}

func (srv *credentialService) ttlFor(kind entity.CredentialKind) time.Duration {
	switch kind {
	case entity.CredentialKindAccess:
		return srv.tokens.AccessTTL
	case entity.CredentialKindRefresh:
		return srv.tokens.RefreshTTL
	case entity.CredentialKindVerifyEmail:
		return srv.tokens.VerifyEmailTTL
	case entity.CredentialKindResetPassword:
		return srv.tokens.ResetPasswordTTL
	default:
		return 0
	}
}

// mint issues a token of kind and stores its hash. The raw token is returned once and never persisted.
func (srv *credentialService) mint(
	ctx context.Context,
	credentials repository.CredentialRepository,
	accountID uuid.UUID,
	kind entity.CredentialKind,
	ttl time.Duration,
) (string, time.Time, error) {
	issuer := srv.issuers.For(kind)
	if issuer == nil {
		return "", time.Time{}, errors.Errorf("no issuer configured for %s", kind)
	}

	token, err := issuer.Issue(accountID, kind, ttl)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to issue %s token", kind)
	}

	expiresAt := srv.now().Add(ttl)
	record := &entity.Credential{
		AccountID: accountID,
		TokenHash: util.HashToken(token),
		Kind:      kind,
		ExpiresAt: expiresAt,
	}
	if err := credentials.Create(ctx, record); err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to store %s credential", kind)
	}

	return token, expiresAt, nil
}

func (srv *credentialService) issuePairWith(ctx context.Context, credentials repository.CredentialRepository, accountID uuid.UUID) (*usecase.TokenPair, error) {
	access, accessExp, err := srv.mint(ctx, credentials, accountID, entity.CredentialKindAccess, srv.tokens.AccessTTL)
	if err != nil {
		return nil, err
	}

	refresh, refreshExp, err := srv.mint(ctx, credentials, accountID, entity.CredentialKindRefresh, srv.tokens.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &usecase.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// IssuePair writes both records in one transaction so a pair is never half-stored.
func (srv *credentialService) IssuePair(ctx context.Context, accountID uuid.UUID) (*usecase.TokenPair, error) {
	var pair *usecase.TokenPair
	err := srv.inTx(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		pair, err = srv.issuePairWith(ctx, factory.CredentialRepo(), accountID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token pair", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	return pair, nil
}

// parse validates structure and, for signed tokens, signature, expiry and kind.
func (srv *credentialService) parse(token string, kind entity.CredentialKind) (*service.TokenClaims, error) {
	issuer := srv.issuers.For(kind)
	if issuer == nil {
		return nil, errors.Errorf("no issuer configured for %s", kind)
	}

	claims, err := issuer.Parse(token)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTokenExpired):
		return nil, domainerrors.ErrTokenExpired
	case errors.IsAny(err, service.ErrTokenMalformed, service.ErrTokenSignature):
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
	default:
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if claims.SelfDescribing() && claims.Kind != kind {
		return nil, errors.Wrapf(domainerrors.ErrInvalidCredentials, "expected %s token, got %s", kind, claims.Kind)
	}

	return claims, nil
}

// rejectMissing turns the store's normal negative result into a rejection and leaves faults alone.
func rejectMissing(err error) error {
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return domainerrors.ErrInvalidCredentials
	}

	return err
}

// VerifyAccess re-checks the store and the account on every call; nothing is cached.
func (srv *credentialService) VerifyAccess(ctx context.Context, accessToken string) (*entity.Principal, error) {
	claims, err := srv.parse(accessToken, entity.CredentialKindAccess)
	if err != nil {
		return nil, err
	}

	record, err := srv.credentialRepo.FindValid(ctx, repository.CredentialLookup{
		TokenHash: util.HashToken(accessToken),
		Kind:      entity.CredentialKindAccess,
		AccountID: claims.Subject,
	}, srv.now())
	if err != nil {
		return nil, rejectMissing(err)
	}

	account, err := srv.accountRepo.FindByID(ctx, record.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for access token")
	}

	if !account.Active {
		return nil, domainerrors.ErrAccountInactive
	}

	return account.Principal(accessToken), nil
}

// RotateAccess refreshes the access token. Discovering an inactive owner revokes every
// credential of the account before rejecting, and that revocation is committed.
func (srv *credentialService) RotateAccess(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.parse(refreshToken, entity.CredentialKindRefresh)
	if err != nil {
		return nil, err
	}

	lookup := repository.CredentialLookup{
		TokenHash: util.HashToken(refreshToken),
		Kind:      entity.CredentialKindRefresh,
		AccountID: claims.Subject,
	}

	var (
		pair     *usecase.TokenPair
		rejected error
	)
	err = srv.inTx(ctx, func(factory repository.RepositoryFactory) error {
		credentials := factory.CredentialRepo()
		now := srv.now()

		var record *entity.Credential
		var err error
		if srv.tokens.RotateRefreshOnUse {
			record, err = credentials.Consume(ctx, lookup, now)
		} else {
			record, err = credentials.FindValid(ctx, lookup, now)
		}
		if err != nil {
			return rejectMissing(err)
		}

		account, err := factory.AccountRepo().FindByID(ctx, record.AccountID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account for refresh")
		}

		if !account.Active {
			if err := credentials.RevokeAll(ctx, account.ID); err != nil {
				return errors.Wrap(err, "failed to revoke credentials of inactive account")
			}
			rejected = domainerrors.ErrAccountInactive

			return nil
		}

		if srv.tokens.RotateRefreshOnUse {
			pair, err = srv.issuePairWith(ctx, credentials, account.ID)

			return err
		}

		access, accessExp, err := srv.mint(ctx, credentials, account.ID, entity.CredentialKindAccess, srv.tokens.AccessTTL)
		if err != nil {
			return err
		}
		pair = &usecase.TokenPair{
			AccessToken:      access,
			AccessExpiresAt:  accessExp,
			RefreshToken:     refreshToken,
			RefreshExpiresAt: record.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		if domainerrors.IsFatal(err) {
			srv.log(ctx).Error("Failed to rotate access token", slog.Any("error", err))
		}

		return nil, err
	}
	if rejected != nil {
		srv.log(ctx).Warn("Refresh rejected for inactive account, credentials revoked", slog.Any("accountID", claims.Subject))

		return nil, rejected
	}

	return pair, nil
}

// RevokeOne is idempotent; unknown tokens are ignored.
func (srv *credentialService) RevokeOne(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return errors.Wrap(srv.credentialRepo.Revoke(ctx, util.HashToken(token)), "failed to revoke credential")
}

// RevokeMany skips empty tokens.
func (srv *credentialService) RevokeMany(ctx context.Context, tokens []string) error {
	hashes := util.HashTokens(tokens...)
	if len(hashes) == 0 {
		return nil
	}

	return errors.Wrap(srv.credentialRepo.RevokeMany(ctx, hashes), "failed to revoke credentials")
}

func (srv *credentialService) RevokeAllForAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := srv.credentialRepo.RevokeAll(ctx, accountID); err != nil {
		return errors.Wrap(err, "failed to revoke all credentials")
	}
	srv.log(ctx).Info("Revoked all credentials", slog.Any("accountID", accountID))

	return nil
}

func (srv *credentialService) RevokeAllExcept(ctx context.Context, accountID uuid.UUID, keepToken string) error {
	if err := srv.credentialRepo.RevokeAllExcept(ctx, accountID, util.HashToken(keepToken)); err != nil {
		return errors.Wrap(err, "failed to revoke other credentials")
	}

	return nil
}

func (srv *credentialService) IssueSingleUse(ctx context.Context, accountID uuid.UUID, kind entity.CredentialKind, ttl time.Duration) (string, error) {
	if !kind.IsSingleUse() {
		return "", errors.Errorf("%s is not a single-use credential kind", kind)
	}
	if ttl <= 0 {
		ttl = srv.ttlFor(kind)
	}

	token, _, err := srv.mint(ctx, srv.credentialRepo, accountID, kind, ttl)
	if err != nil {
		srv.log(ctx).Error("Failed to issue single-use token", slog.Any("kind", kind), slog.Any("accountID", accountID), slog.Any("error", err))

		return "", err
	}

	return token, nil
}

// RedeemSingleUse consumes the token through the store's atomic conditional update, so of
// concurrent redeemers exactly one succeeds.
func (srv *credentialService) RedeemSingleUse(ctx context.Context, token string, kind entity.CredentialKind, accountID uuid.UUID) (*entity.Credential, error) {
	if !kind.IsSingleUse() {
		return nil, errors.Errorf("%s is not a single-use credential kind", kind)
	}

	claims, err := srv.parse(token, kind)
	if err != nil {
		return nil, err
	}

	if claims.SelfDescribing() {
		if accountID != uuid.Nil && accountID != claims.Subject {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token subject does not match account")
		}
		accountID = claims.Subject
	}

	record, err := srv.credentialRepo.Consume(ctx, repository.CredentialLookup{
		TokenHash: util.HashToken(token),
		Kind:      kind,
		AccountID: accountID,
	}, srv.now())
	if errors.Is(err, repository.ErrCredentialNotFound) {
		// A signed token that still parses was minted here, so a missing record means it was spent.
		if claims.SelfDescribing() {
			return nil, domainerrors.ErrTokenAlreadyUsed
		}

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume single-use credential")
	}

	srv.log(ctx).Debug("Single-use credential redeemed", slog.Any("kind", kind), slog.Any("accountID", record.AccountID))

	return record, nil
}

func (srv *credentialService) ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	records, err := srv.credentialRepo.ListActive(ctx, accountID, entity.CredentialKindRefresh, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*entity.Session, 0, len(records))
	for _, record := range records {
		sessions = append(sessions, &entity.Session{
			ID:        record.ID,
			CreatedAt: record.CreatedAt,
			ExpiresAt: record.ExpiresAt,
		})
	}

	return sessions, nil
}

func (srv *credentialService) RevokeSession(ctx context.Context, accountID, sessionID uuid.UUID) error {
	err := srv.credentialRepo.RevokeByID(ctx, accountID, sessionID, entity.CredentialKindRefresh)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return domainerrors.ErrNotFound.WithDetails("session not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}
