package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	"warden/internal/infra/auth"
	mockRepo "warden/internal/mocks/repository"
	"warden/internal/usecase"
	"warden/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCredentialService_IssuePairAndVerifyAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "alice@example.com", true)

	pair, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.WithinDuration(t, env.clock.Now().Add(env.cfg.Tokens.AccessTTL), pair.AccessExpiresAt, time.Second)
	assert.WithinDuration(t, env.clock.Now().Add(env.cfg.Tokens.RefreshTTL), pair.RefreshExpiresAt, time.Second)

	principal, err := env.engine.VerifyAccess(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, principal.AccountID)
	assert.Equal(t, account.Email, principal.Email)
	assert.Equal(t, entity.RoleUser, principal.Role)
	assert.Equal(t, pair.AccessToken, principal.AccessToken)

	// Only the digest is stored.
	stored, err := env.credentials.FindValid(ctx, repository.CredentialLookup{
		TokenHash: util.HashToken(pair.AccessToken),
		Kind:      entity.CredentialKindAccess,
	}, env.clock.Now())
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, stored.TokenHash)
	assert.Len(t, stored.TokenHash, 64)
}

func TestCredentialService_VerifyAccess_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		prepare func(t *testing.T, env *testEnv, account *entity.Account, pair *usecase.TokenPair) string
		wantErr error
	}{
		{
			name: "malformed token",
			prepare: func(_ *testing.T, _ *testEnv, _ *entity.Account, _ *usecase.TokenPair) string {
				return "not-a-token"
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "refresh token presented as access",
			prepare: func(_ *testing.T, _ *testEnv, _ *entity.Account, pair *usecase.TokenPair) string {
				return pair.RefreshToken
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "revoked",
			prepare: func(t *testing.T, env *testEnv, _ *entity.Account, pair *usecase.TokenPair) string {
				require.NoError(t, env.engine.RevokeOne(ctx, pair.AccessToken))

				return pair.AccessToken
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "expired in store while signature still valid",
			prepare: func(_ *testing.T, env *testEnv, _ *entity.Account, pair *usecase.TokenPair) string {
				env.clock.Advance(env.cfg.Tokens.AccessTTL + time.Second)

				return pair.AccessToken
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "inactive account",
			prepare: func(t *testing.T, env *testEnv, account *entity.Account, pair *usecase.TokenPair) string {
				require.NoError(t, env.accounts.SetActive(ctx, account.ID, false))

				return pair.AccessToken
			},
			wantErr: domainerrors.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			account := env.createAccount(t, "bob@example.com", true)
			pair, err := env.engine.IssuePair(ctx, account.ID)
			require.NoError(t, err)

			token := tt.prepare(t, env, account, pair)

			principal, err := env.engine.VerifyAccess(ctx, token)
			assert.Nil(t, principal)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, domainerrors.IsRejection(err))
		})
	}
}

func TestCredentialService_RotateAccess_KeepsRefreshByDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "carol@example.com", true)

	pair, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)

	rotated, err := env.engine.RotateAccess(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, rotated.AccessToken)
	assert.Equal(t, pair.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, pair.RefreshExpiresAt.Unix(), rotated.RefreshExpiresAt.Unix())

	_, err = env.engine.VerifyAccess(ctx, rotated.AccessToken)
	require.NoError(t, err)

	again, err := env.engine.RotateAccess(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, rotated.AccessToken, again.AccessToken)
}

func TestCredentialService_RotateAccess_RotatesRefreshWhenEnabled(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Tokens.RotateRefreshOnUse = true })
	ctx := context.Background()
	account := env.createAccount(t, "dave@example.com", true)

	pair, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)

	rotated, err := env.engine.RotateAccess(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	_, err = env.engine.RotateAccess(ctx, pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = env.engine.RotateAccess(ctx, rotated.RefreshToken)
	require.NoError(t, err)
}

func TestCredentialService_RotateAccess_InactiveAccountRevokesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "erin@example.com", true)

	first, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)
	second, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)

	require.NoError(t, env.accounts.SetActive(ctx, account.ID, false))

	_, err = env.engine.RotateAccess(ctx, first.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))

	// The revocation is committed even though the call was rejected.
	active, err := env.credentials.ListActive(ctx, account.ID, entity.CredentialKindRefresh, env.clock.Now())
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = env.credentials.FindValid(ctx, repository.CredentialLookup{
		TokenHash: util.HashToken(second.AccessToken),
		Kind:      entity.CredentialKindAccess,
	}, env.clock.Now())
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialService_RotateAccess_ExpiredRefresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "frank@example.com", true)

	pair, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)

	env.clock.Advance(env.cfg.Tokens.RefreshTTL)

	_, err = env.engine.RotateAccess(ctx, pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_SingleUse(t *testing.T) {
	tests := []struct {
		name        string
		style       string
		secondError error
	}{
		{name: "opaque", style: config.IssuerOpaque, secondError: domainerrors.ErrInvalidCredentials},
		{name: "signed", style: config.IssuerSigned, secondError: domainerrors.ErrTokenAlreadyUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, func(cfg *config.Config) {
				cfg.Tokens.VerifyEmailIssuer = tt.style
				cfg.Tokens.ResetPasswordIssuer = tt.style
			})
			ctx := context.Background()
			account := env.createAccount(t, "grace@example.com", true)

			token, err := env.engine.IssueSingleUse(ctx, account.ID, entity.CredentialKindResetPassword, 0)
			require.NoError(t, err)

			_, err = env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, uuid.Nil)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials), "wrong kind must be rejected, got %v", err)

			record, err := env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindResetPassword, uuid.Nil)
			require.NoError(t, err)
			assert.Equal(t, account.ID, record.AccountID)

			_, err = env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindResetPassword, uuid.Nil)
			assert.True(t, errors.Is(err, tt.secondError), "got %v", err)
		})
	}
}

func TestCredentialService_RedeemSingleUse_WrongAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createAccount(t, "heidi@example.com", true)
	other := env.createAccount(t, "ivan@example.com", true)

	token, err := env.engine.IssueSingleUse(ctx, owner.ID, entity.CredentialKindVerifyEmail, 0)
	require.NoError(t, err)

	_, err = env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, other.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, owner.ID)
	require.NoError(t, err)
}

func TestCredentialService_RedeemSingleUse_Expired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "judy@example.com", true)

	token, err := env.engine.IssueSingleUse(ctx, account.ID, entity.CredentialKindVerifyEmail, time.Minute)
	require.NoError(t, err)

	env.clock.Advance(time.Minute)

	_, err = env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, uuid.Nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_RedeemSingleUse_ConcurrentExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "mallory@example.com", true)

	token, err := env.engine.IssueSingleUse(ctx, account.ID, entity.CredentialKindResetPassword, 0)
	require.NoError(t, err)

	const workers = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		start     = make(chan struct{})
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindResetPassword, uuid.Nil); err == nil {
				successes.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestCredentialService_IssueSingleUse_RejectsSessionKinds(t *testing.T) {
	env := newTestEnv(t)
	account := env.createAccount(t, "niaj@example.com", true)

	_, err := env.engine.IssueSingleUse(context.Background(), account.ID, entity.CredentialKindAccess, 0)
	require.Error(t, err)
}

func TestCredentialService_WithRepositories_RollsBackRedemption(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "olivia@example.com", true)

	token, err := env.engine.IssueSingleUse(ctx, account.ID, entity.CredentialKindVerifyEmail, 0)
	require.NoError(t, err)

	sideEffect := errors.New("side effect failed")
	err = env.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := env.engine.WithRepositories(factory).RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, uuid.Nil); err != nil {
			return err
		}

		return sideEffect
	})
	require.ErrorIs(t, err, sideEffect)

	// The token was not spent because its side effect did not commit.
	_, err = env.engine.RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, uuid.Nil)
	require.NoError(t, err)
}

func TestCredentialService_Revocations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "peggy@example.com", true)

	keep, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)
	other, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)

	require.NoError(t, env.engine.RevokeAllExcept(ctx, account.ID, keep.AccessToken))

	_, err = env.engine.VerifyAccess(ctx, keep.AccessToken)
	require.NoError(t, err)
	_, err = env.engine.VerifyAccess(ctx, other.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	_, err = env.engine.RotateAccess(ctx, keep.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	// Revoking twice, or revoking unknown tokens, is not an error.
	require.NoError(t, env.engine.RevokeMany(ctx, []string{keep.AccessToken, "", "unknown"}))
	require.NoError(t, env.engine.RevokeMany(ctx, []string{keep.AccessToken}))
	require.NoError(t, env.engine.RevokeOne(ctx, ""))

	_, err = env.engine.VerifyAccess(ctx, keep.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_Sessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createAccount(t, "rupert@example.com", true)
	stranger := env.createAccount(t, "sybil@example.com", true)

	_, err := env.engine.IssuePair(ctx, owner.ID)
	require.NoError(t, err)
	second, err := env.engine.IssuePair(ctx, owner.ID)
	require.NoError(t, err)

	sessions, err := env.engine.ListSessions(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	err = env.engine.RevokeSession(ctx, stranger.ID, sessions[0].ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	require.NoError(t, env.engine.RevokeSession(ctx, owner.ID, sessions[0].ID))

	remaining, err := env.engine.ListSessions(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, sessions[1].ID, remaining[0].ID)

	// The newest session was revoked, so its refresh token no longer works.
	_, err = env.engine.RotateAccess(ctx, second.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_StorageFailureIsFatal(t *testing.T) {
	env := newTestEnv(t)
	issuers, err := auth.NewTokenIssuers(env.cfg)
	require.NoError(t, err)

	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	engine := NewCredentialService(CredentialServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		AccountRepo:    mockRepo.NewMockAccountRepository(t),
		CredentialRepo: credentialRepo,
		Issuers:        issuers,
		Config:         env.cfg,
		Logger:         newDiscardLogger(),
	})

	account := env.createAccount(t, "trent@example.com", true)
	pair, err := env.engine.IssuePair(context.Background(), account.ID)
	require.NoError(t, err)

	credentialRepo.EXPECT().
		FindValid(mock.Anything, mock.AnythingOfType("repository.CredentialLookup"), mock.AnythingOfType("time.Time")).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find credential"))

	_, err = engine.VerifyAccess(context.Background(), pair.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
	assert.True(t, domainerrors.IsFatal(err))
}

func TestCredentialService_IssuePair_PartialFailure(t *testing.T) {
	env := newTestEnv(t)
	issuers, err := auth.NewTokenIssuers(env.cfg)
	require.NoError(t, err)

	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	credentialRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool { return c.Kind == entity.CredentialKindAccess })).
		Return(nil).Once()
	credentialRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool { return c.Kind == entity.CredentialKindRefresh })).
		Return(errors.New("disk full")).Once()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CredentialRepo().Return(credentialRepo)

	// The transaction must see the failure so the stored access record is rolled back.
	var txErr error
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			txErr = fn(factory)
			return txErr
		}).Once()

	engine := NewCredentialService(CredentialServiceParams{
		TxManager:      txManager,
		AccountRepo:    mockRepo.NewMockAccountRepository(t),
		CredentialRepo: mockRepo.NewMockCredentialRepository(t),
		Issuers:        issuers,
		Config:         env.cfg,
		Logger:         newDiscardLogger(),
	})

	pair, err := engine.IssuePair(context.Background(), uuid.New())
	assert.Nil(t, pair)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store REFRESH credential")
	assert.Contains(t, err.Error(), "disk full")
	require.Error(t, txErr)
}
