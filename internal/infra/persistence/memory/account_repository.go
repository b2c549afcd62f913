package memory

import (
	"context"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	store  *Store
	locked bool
}

// NewAccountRepository returns an AccountRepository backed by store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var found *entity.Account
	err := r.store.run(r.locked, func(st *state) error {
		account, ok := st.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		found = &account

		return nil
	})

	return found, err
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var found *entity.Account
	err := r.store.run(r.locked, func(st *state) error {
		id, ok := st.emails[email]
		if !ok {
			return repository.ErrAccountNotFound
		}
		account := st.accounts[id]
		found = &account

		return nil
	})

	return found, err
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.store.run(r.locked, func(st *state) error {
		if _, taken := st.emails[account.Email]; taken {
			return domainerrors.ErrAccountAlreadyExists
		}
		if account.ID == uuid.Nil {
			account.ID = uuid.New()
		}
		if _, taken := st.accounts[account.ID]; taken {
			return domainerrors.ErrAccountAlreadyExists
		}
		if account.Provider == "" {
			account.Provider = entity.ProviderTypeLocal
		}

		now := time.Now()
		account.CreatedAt = now
		account.UpdatedAt = now

		st.accounts[account.ID] = *account
		st.emails[account.Email] = account.ID

		return nil
	})
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.modify(account.ID, func(st *state, stored *entity.Account) error {
		if stored.Email != account.Email {
			if _, taken := st.emails[account.Email]; taken {
				return domainerrors.ErrAccountAlreadyExists
			}
			delete(st.emails, stored.Email)
			st.emails[account.Email] = stored.ID
		}

		createdAt := stored.CreatedAt
		*stored = *account
		stored.CreatedAt = createdAt
		if stored.Provider == "" {
			stored.Provider = entity.ProviderTypeLocal
		}

		return nil
	})
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.modify(id, func(_ *state, stored *entity.Account) error {
		stored.PasswordHash = passwordHash

		return nil
	})
}

func (r *accountRepository) UpdateProviderAccessGrant(ctx context.Context, id uuid.UUID, accessGrant string) error {
	return r.modify(id, func(_ *state, stored *entity.Account) error {
		stored.ProviderAccessGrant = accessGrant

		return nil
	})
}

func (r *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.modify(id, func(_ *state, stored *entity.Account) error {
		stored.Active = active

		return nil
	})
}

func (r *accountRepository) modify(id uuid.UUID, fn func(st *state, stored *entity.Account) error) error {
	return r.store.run(r.locked, func(st *state) error {
		stored, ok := st.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		if err := fn(st, &stored); err != nil {
			return err
		}
		stored.UpdatedAt = time.Now()
		st.accounts[id] = stored

		return nil
	})
}
