package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, store *Store, email string) *entity.Account {
	t.Helper()

	account := &entity.Account{Email: email, PasswordHash: "hash", Role: entity.RoleUser, Active: true}
	require.NoError(t, NewAccountRepository(store).Create(context.Background(), account))

	return account
}

func seedCredential(t *testing.T, store *Store, accountID uuid.UUID, hash string, kind entity.CredentialKind, expiresAt time.Time) *entity.Credential {
	t.Helper()

	credential := &entity.Credential{AccountID: accountID, TokenHash: hash, Kind: kind, ExpiresAt: expiresAt}
	require.NoError(t, NewCredentialRepository(store).Create(context.Background(), credential))

	return credential
}

func TestAccountRepository_UniqueEmail(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	first := seedAccount(t, store, "alice@example.com")
	assert.Equal(t, entity.ProviderTypeLocal, first.Provider)

	err := repo.Create(ctx, &entity.Account{Email: "alice@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	account := seedAccount(t, store, "copy@example.com")

	found, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	found.Active = false

	again, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, again.Active)
}

func TestAccountRepository_UpdateAndSetActive(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()
	account := seedAccount(t, store, "bob@example.com")
	seedAccount(t, store, "taken@example.com")

	require.NoError(t, repo.SetActive(ctx, account.ID, false))
	require.NoError(t, repo.UpdatePassword(ctx, account.ID, "new-hash"))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, found.Active)
	assert.Equal(t, "new-hash", found.PasswordHash)

	found.Email = "taken@example.com"
	assert.ErrorIs(t, repo.Update(ctx, found), domainerrors.ErrAccountAlreadyExists)

	found.Email = "robert@example.com"
	require.NoError(t, repo.Update(ctx, found))
	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	assert.ErrorIs(t, repo.SetActive(ctx, uuid.New(), true), repository.ErrAccountNotFound)
}

func TestAccountRepository_UpdateProviderAccessGrant(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()
	account := seedAccount(t, store, "grace@example.com")
	require.NoError(t, repo.SetActive(ctx, account.ID, false))

	require.NoError(t, repo.UpdateProviderAccessGrant(ctx, account.ID, "access-2"))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "access-2", found.ProviderAccessGrant)
	assert.False(t, found.Active)

	assert.ErrorIs(t, repo.UpdateProviderAccessGrant(ctx, uuid.New(), "x"), repository.ErrAccountNotFound)
}

func TestCredentialRepository_FindValid(t *testing.T) {
	store := NewStore()
	repo := NewCredentialRepository(store)
	ctx := context.Background()
	now := time.Now()

	owner := seedAccount(t, store, "owner@example.com")
	seedCredential(t, store, owner.ID, "live", entity.CredentialKindAccess, now.Add(time.Minute))
	seedCredential(t, store, owner.ID, "expired", entity.CredentialKindAccess, now.Add(-time.Second))

	_, err := repo.FindValid(ctx, repository.CredentialLookup{TokenHash: "live", Kind: entity.CredentialKindAccess}, now)
	require.NoError(t, err)

	tests := []struct {
		name   string
		lookup repository.CredentialLookup
	}{
		{"wrong kind", repository.CredentialLookup{TokenHash: "live", Kind: entity.CredentialKindRefresh}},
		{"wrong owner", repository.CredentialLookup{TokenHash: "live", Kind: entity.CredentialKindAccess, AccountID: uuid.New()}},
		{"expired", repository.CredentialLookup{TokenHash: "expired", Kind: entity.CredentialKindAccess}},
		{"unknown", repository.CredentialLookup{TokenHash: "missing", Kind: entity.CredentialKindAccess}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindValid(ctx, tt.lookup, now)
			assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
		})
	}

	// Expiry is exclusive: a record is dead at its expiry instant.
	_, err = repo.FindValid(ctx, repository.CredentialLookup{TokenHash: "live", Kind: entity.CredentialKindAccess}, now.Add(time.Minute))
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_CreateRequiresAccount(t *testing.T) {
	store := NewStore()

	err := NewCredentialRepository(store).Create(context.Background(), &entity.Credential{
		AccountID: uuid.New(),
		TokenHash: "orphan",
		Kind:      entity.CredentialKindAccess,
		ExpiresAt: time.Now().Add(time.Minute),
	})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestCredentialRepository_ConsumeIsExclusive(t *testing.T) {
	store := NewStore()
	repo := NewCredentialRepository(store)
	now := time.Now()

	owner := seedAccount(t, store, "race@example.com")
	seedCredential(t, store, owner.ID, "single", entity.CredentialKindResetPassword, now.Add(time.Minute))

	const workers = 64
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
	)
	lookup := repository.CredentialLookup{TokenHash: "single", Kind: entity.CredentialKindResetPassword}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			credential, err := repo.Consume(context.Background(), lookup, now)
			if err == nil {
				winners.Add(1)
				assert.True(t, credential.Blacklisted)

				return
			}
			assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, winners.Load())
}

func TestCredentialRepository_Revocations(t *testing.T) {
	store := NewStore()
	repo := NewCredentialRepository(store)
	ctx := context.Background()
	now := time.Now()
	later := now.Add(time.Hour)

	alice := seedAccount(t, store, "alice@example.com")
	bob := seedAccount(t, store, "bob@example.com")
	seedCredential(t, store, alice.ID, "a-access", entity.CredentialKindAccess, later)
	seedCredential(t, store, alice.ID, "a-refresh", entity.CredentialKindRefresh, later)
	seedCredential(t, store, alice.ID, "a-verify", entity.CredentialKindVerifyEmail, later)
	seedCredential(t, store, bob.ID, "b-access", entity.CredentialKindAccess, later)

	usable := func(hash string, kind entity.CredentialKind) bool {
		_, err := repo.FindValid(ctx, repository.CredentialLookup{TokenHash: hash, Kind: kind}, now)

		return err == nil
	}

	require.NoError(t, repo.RevokeAll(ctx, alice.ID, entity.CredentialKindVerifyEmail))
	assert.False(t, usable("a-verify", entity.CredentialKindVerifyEmail))
	assert.True(t, usable("a-access", entity.CredentialKindAccess))

	require.NoError(t, repo.RevokeAllExcept(ctx, alice.ID, "a-refresh"))
	assert.False(t, usable("a-access", entity.CredentialKindAccess))
	assert.True(t, usable("a-refresh", entity.CredentialKindRefresh))
	assert.True(t, usable("b-access", entity.CredentialKindAccess))

	// Idempotent, unknown hashes are ignored.
	require.NoError(t, repo.RevokeMany(ctx, []string{"a-refresh", "a-refresh", "unknown"}))
	require.NoError(t, repo.Revoke(ctx, "a-refresh"))
	assert.False(t, usable("a-refresh", entity.CredentialKindRefresh))
	assert.True(t, usable("b-access", entity.CredentialKindAccess))
}

func TestCredentialRepository_SessionsListAndRevokeByID(t *testing.T) {
	store := NewStore()
	repo := NewCredentialRepository(store)
	ctx := context.Background()
	now := time.Now()

	owner := seedAccount(t, store, "owner@example.com")
	stranger := seedAccount(t, store, "stranger@example.com")
	older := seedCredential(t, store, owner.ID, "r1", entity.CredentialKindRefresh, now.Add(time.Hour))
	newer := seedCredential(t, store, owner.ID, "r2", entity.CredentialKindRefresh, now.Add(time.Hour))
	seedCredential(t, store, owner.ID, "acc", entity.CredentialKindAccess, now.Add(time.Hour))

	sessions, err := repo.ListActive(ctx, owner.ID, entity.CredentialKindRefresh, now)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.ID, sessions[0].ID)
	assert.Equal(t, older.ID, sessions[1].ID)

	assert.ErrorIs(t, repo.RevokeByID(ctx, stranger.ID, older.ID, entity.CredentialKindRefresh), repository.ErrCredentialNotFound)
	require.NoError(t, repo.RevokeByID(ctx, owner.ID, older.ID, entity.CredentialKindRefresh))
	assert.ErrorIs(t, repo.RevokeByID(ctx, owner.ID, older.ID, entity.CredentialKindRefresh), repository.ErrCredentialNotFound)

	sessions, err = repo.ListActive(ctx, owner.ID, entity.CredentialKindRefresh, now)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestCredentialRepository_Purge(t *testing.T) {
	store := NewStore()
	repo := NewCredentialRepository(store)
	ctx := context.Background()
	now := time.Now()

	owner := seedAccount(t, store, "owner@example.com")
	seedCredential(t, store, owner.ID, "live", entity.CredentialKindAccess, now.Add(time.Minute))
	seedCredential(t, store, owner.ID, "expired", entity.CredentialKindAccess, now.Add(-time.Minute))
	seedCredential(t, store, owner.ID, "revoked", entity.CredentialKindRefresh, now.Add(time.Hour))
	require.NoError(t, repo.Revoke(ctx, "revoked"))

	purged, err := repo.PurgeExpiredOrRevoked(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, purged)

	purged, err = repo.PurgeExpiredOrRevoked(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, purged)

	_, err = repo.FindValid(ctx, repository.CredentialLookup{TokenHash: "live", Kind: entity.CredentialKindAccess}, now)
	assert.NoError(t, err)
}

func TestTransactionManager_RollbackRestoresState(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()
	now := time.Now()

	owner := seedAccount(t, store, "tx@example.com")
	seedCredential(t, store, owner.ID, "keep", entity.CredentialKindRefresh, now.Add(time.Hour))

	sentinel := errors.New("side effect failed")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.CredentialRepo().RevokeAll(ctx, owner.ID); err != nil {
			return err
		}
		if err := f.AccountRepo().SetActive(ctx, owner.ID, false); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	account, err := NewAccountRepository(store).FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, account.Active)

	_, err = NewCredentialRepository(store).FindValid(ctx, repository.CredentialLookup{TokenHash: "keep", Kind: entity.CredentialKindRefresh}, now)
	assert.NoError(t, err)
}

func TestTransactionManager_CommitAndPanic(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()
	owner := seedAccount(t, store, "commit@example.com")

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.AccountRepo().SetActive(ctx, owner.ID, false)
	}))

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.AccountRepo().SetActive(ctx, owner.ID, true)
			panic("boom")
		})
	})

	account, err := NewAccountRepository(store).FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.False(t, account.Active)

	assert.NoError(t, NewHealthChecker().Ping(ctx))
}
