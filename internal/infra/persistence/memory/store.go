// Package memory is an in-process implementation of the persistence ports.
// It backs the "memory" storage driver and the engine and flow tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"warden/internal/domain/entity"
	"warden/internal/domain/repository"

	"github.com/google/uuid"
)

type credentialRecord struct {
	entity.Credential
	seq uint64
}

type state struct {
	accounts    map[uuid.UUID]entity.Account
	emails      map[string]uuid.UUID
	credentials map[uuid.UUID]credentialRecord
	byHash      map[string]uuid.UUID
	seq         uint64
}

func newState() *state {
	return &state{
		accounts:    make(map[uuid.UUID]entity.Account),
		emails:      make(map[string]uuid.UUID),
		credentials: make(map[uuid.UUID]credentialRecord),
		byHash:      make(map[string]uuid.UUID),
	}
}

// clone copies the maps. Values are stored by value, so this is a full snapshot.
func (s *state) clone() *state {
	return &state{
		accounts:    maps.Clone(s.accounts),
		emails:      maps.Clone(s.emails),
		credentials: maps.Clone(s.credentials),
		byHash:      maps.Clone(s.byHash),
		seq:         s.seq,
	}
}

// Store holds all accounts and credentials behind a single mutex.
// Every repository call is atomic; a transaction holds the mutex for its whole duration.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// run executes fn against the live state, taking the lock unless the caller already holds it.
func (s *Store) run(locked bool, fn func(st *state) error) error {
	if !locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn(s.st)
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager that serializes transactions on the store mutex.
// Calling Execute again from inside fn deadlocks; nested work must reuse the given factory.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute snapshots the state, runs fn and restores the snapshot if fn fails or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()

	if err := fn(&repositoryFactory{store: s, locked: true}); err != nil {
		return err
	}
	committed = true

	return nil
}

type repositoryFactory struct {
	store  *Store
	locked bool
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{store: f.store, locked: f.locked}
}

func (f *repositoryFactory) CredentialRepo() repository.CredentialRepository {
	return &credentialRepository{store: f.store, locked: f.locked}
}

type healthChecker struct{}

// NewHealthChecker always reports the in-process store as reachable.
func NewHealthChecker() repository.HealthChecker {
	return healthChecker{}
}

func (healthChecker) Ping(ctx context.Context) error {
	return ctx.Err()
}
