package impl

import (
	"context"
	"testing"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	mockRepo "warden/internal/mocks/repository"
	"warden/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingService_Purge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	account := env.createAccount(t, "trent@example.com", true)

	kept, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)
	revoked, err := env.engine.IssuePair(ctx, account.ID)
	require.NoError(t, err)
	require.NoError(t, env.engine.RevokeMany(ctx, []string{revoked.AccessToken, revoked.RefreshToken}))
	_, err = env.engine.IssueSingleUse(ctx, account.ID, entity.CredentialKindVerifyEmail, time.Millisecond)
	require.NoError(t, err)

	housekeeping := NewHousekeepingService(HousekeepingServiceParams{
		CredentialRepo: env.credentials,
		Logger:         newDiscardLogger(),
	})
	housekeeping.(*housekeepingService).now = func() time.Time { return env.clock.Now().Add(time.Second) }

	removed, err := housekeeping.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	// Purging never changes what a check would accept.
	_, err = env.engine.VerifyAccess(ctx, kept.AccessToken)
	require.NoError(t, err)
	_, err = env.credentials.FindValid(ctx, repository.CredentialLookup{
		TokenHash: util.HashToken(kept.RefreshToken),
		Kind:      entity.CredentialKindRefresh,
	}, env.clock.Now())
	require.NoError(t, err)

	removed, err = housekeeping.Purge(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestHousekeepingService_Purge_StorageError(t *testing.T) {
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	credentialRepo.EXPECT().
		PurgeExpiredOrRevoked(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "purge"))

	housekeeping := NewHousekeepingService(HousekeepingServiceParams{
		CredentialRepo: credentialRepo,
		Logger:         newDiscardLogger(),
	})

	removed, err := housekeeping.Purge(context.Background())
	require.Error(t, err)
	assert.Zero(t, removed)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
}
