package impl

import (
	"context"
	"testing"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	mockSvc "warden/internal/mocks/service"
	"warden/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	seedAdminPassword = "Admin123!"
	seedUserPassword  = "User123!"
)

func newSeedService(env *testEnv, seed config.SeedConfig) usecase.SeedUsecase {
	cfg := *env.cfg
	cfg.Seed = seed

	return NewSeedService(SeedServiceParams{
		TxManager: env.txManager,
		Hasher:    env.hasher,
		Config:    &cfg,
		Logger:    newDiscardLogger(),
	})
}

func defaultSeed() config.SeedConfig {
	return config.SeedConfig{
		Admin: &config.SeedAccount{Email: "Admin@Example.com", Name: "Admin User", Password: seedAdminPassword},
		User:  &config.SeedAccount{Email: "user@example.com", Password: seedUserPassword},
	}
}

func TestSeedService_CreatesAdminAndUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	results, err := newSeedService(env, defaultSeed()).Seed(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	admin, user := results[0], results[1]
	assert.True(t, admin.Created)
	assert.Equal(t, "admin@example.com", admin.Account.Email)
	assert.Equal(t, entity.RoleAdmin, admin.Account.Role)
	assert.True(t, admin.Account.Active)
	assert.True(t, user.Created)
	assert.Equal(t, entity.RoleUser, user.Account.Role)
	assert.Equal(t, "user", user.Account.Name)

	// The seeded admin can sign in and use the admin flow against the seeded user.
	auth, err := env.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: seedAdminPassword})
	require.NoError(t, err)
	principal, err := env.engine.VerifyAccess(ctx, auth.Tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, principal.Role)

	require.NoError(t, env.service.SetAccountActive(ctx, principal, user.Account.ID, false))
	_, err = env.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: seedUserPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSeedService_LeavesExistingAccountsUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := newSeedService(env, defaultSeed()).Seed(ctx)
	require.NoError(t, err)

	changed := defaultSeed()
	changed.Admin.Password = "An0ther-password"
	results, err := newSeedService(env, changed).Seed(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Created)
	assert.False(t, results[1].Created)

	_, err = env.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: seedAdminPassword})
	require.NoError(t, err)
}

func TestSeedService_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("weak password stores nothing", func(t *testing.T) {
		env := newTestEnv(t)
		seed := defaultSeed()
		seed.User.Password = "short"

		_, err := newSeedService(env, seed).Seed(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

		_, err = env.accounts.FindByEmail(ctx, "admin@example.com")
		assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
	})

	t.Run("hash failure", func(t *testing.T) {
		env := newTestEnv(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		hasher.EXPECT().ValidatePasswordStrength(mock.AnythingOfType("string")).Return(nil)
		hasher.EXPECT().Hash(seedAdminPassword).Return("", errors.New("entropy exhausted"))

		cfg := *env.cfg
		cfg.Seed = defaultSeed()
		seeder := NewSeedService(SeedServiceParams{TxManager: env.txManager, Hasher: hasher, Config: &cfg, Logger: newDiscardLogger()})

		_, err := seeder.Seed(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entropy exhausted")
	})
}

func TestSeedService_NothingConfigured(t *testing.T) {
	env := newTestEnv(t)

	results, err := newSeedService(env, config.SeedConfig{User: &config.SeedAccount{Name: "Regular User"}}).Seed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
