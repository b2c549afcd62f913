package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"warden/config"
	"warden/internal/domain/entity"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/infra/auth"
	"warden/internal/infra/persistence/memory"
	mockSvc "warden/internal/mocks/service"
	"warden/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Sup3r-secret!"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(mutate ...func(*config.Config)) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = strings.Repeat("k", 48)
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.HTTP.PublicURL = "https://id.example.com"
	for _, fn := range mutate {
		fn(cfg)
	}
	cfg.ApplyDefaults()

	return cfg
}

// testClock lets tests move the engine's notion of now without touching token signatures.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now()}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv wires the real engine and flows on the in-memory store.
type testEnv struct {
	cfg         *config.Config
	clock       *testClock
	txManager   repository.TransactionManager
	accounts    repository.AccountRepository
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	engine      usecase.CredentialUsecase
	mailer      *mockSvc.MockEmailSender
	service     usecase.AccountUsecase
}

func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := newTestConfig(mutate...)
	store := memory.NewStore()
	issuers, err := auth.NewTokenIssuers(cfg)
	require.NoError(t, err)

	env := &testEnv{
		cfg:         cfg,
		clock:       newTestClock(),
		txManager:   memory.NewTransactionManager(store),
		accounts:    memory.NewAccountRepository(store),
		credentials: memory.NewCredentialRepository(store),
		hasher:      auth.NewBcryptHasher(cfg),
		mailer:      mockSvc.NewMockEmailSender(t),
	}

	engine := NewCredentialService(CredentialServiceParams{
		TxManager:      env.txManager,
		AccountRepo:    env.accounts,
		CredentialRepo: env.credentials,
		Issuers:        issuers,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})
	engine.(*credentialService).now = env.clock.Now
	env.engine = engine

	env.service = NewAccountService(AccountServiceParams{
		TxManager:   env.txManager,
		AccountRepo: env.accounts,
		Credentials: engine,
		Hasher:      env.hasher,
		Mailer:      env.mailer,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return env
}

// createAccount stores an account with testPassword directly, bypassing the flows.
func (env *testEnv) createAccount(t *testing.T, email string, active bool) *entity.Account {
	t.Helper()

	hash, err := env.hasher.Hash(testPassword)
	require.NoError(t, err)

	account := &entity.Account{
		Email:        entity.NormalizeEmail(email),
		Name:         "Test Account",
		PasswordHash: hash,
		Role:         entity.RoleUser,
		Active:       active,
	}
	require.NoError(t, env.accounts.Create(context.Background(), account))

	return account
}

// captureMail records every email handed to the mock sender.
func (env *testEnv) captureMail() *[]*service.ActionEmail {
	var (
		mu   sync.Mutex
		sent []*service.ActionEmail
	)
	env.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("*service.ActionEmail")).
		RunAndReturn(func(_ context.Context, email *service.ActionEmail) error {
			mu.Lock()
			defer mu.Unlock()
			sent = append(sent, email)

			return nil
		}).
		Maybe()

	return &sent
}

func tokenFromURL(t *testing.T, actionURL string) string {
	t.Helper()

	parsed, err := url.Parse(actionURL)
	require.NoError(t, err)
	token := parsed.Query().Get("token")
	require.NotEmpty(t, token)

	return token
}
