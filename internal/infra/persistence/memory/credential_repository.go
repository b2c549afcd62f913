package memory

import (
	"context"
	"slices"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"

	"github.com/google/uuid"
)

type credentialRepository struct {
	store  *Store
	locked bool
}

// NewCredentialRepository returns a CredentialRepository backed by store.
func NewCredentialRepository(store *Store) repository.CredentialRepository {
	return &credentialRepository{store: store}
}

func (r *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return r.store.run(r.locked, func(st *state) error {
		if _, ok := st.accounts[credential.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}
		if _, dup := st.byHash[credential.TokenHash]; dup {
			return domainerrors.NewDatabaseExecuteError(errors.New("duplicate token hash"), "failed to create credential")
		}
		if credential.ID == uuid.Nil {
			credential.ID = uuid.New()
		}
		if credential.CreatedAt.IsZero() {
			credential.CreatedAt = time.Now()
		}

		st.seq++
		st.credentials[credential.ID] = credentialRecord{Credential: *credential, seq: st.seq}
		st.byHash[credential.TokenHash] = credential.ID

		return nil
	})
}

// lookupLocked returns the stored record for lookup if it is usable at now.
func lookupLocked(st *state, lookup repository.CredentialLookup, now time.Time) (credentialRecord, bool) {
	id, ok := st.byHash[lookup.TokenHash]
	if !ok {
		return credentialRecord{}, false
	}
	record := st.credentials[id]
	if record.Kind != lookup.Kind || !record.IsUsableAt(now) {
		return credentialRecord{}, false
	}
	if lookup.AccountID != uuid.Nil && record.AccountID != lookup.AccountID {
		return credentialRecord{}, false
	}

	return record, true
}

func (r *credentialRepository) FindValid(ctx context.Context, lookup repository.CredentialLookup, now time.Time) (*entity.Credential, error) {
	var found *entity.Credential
	err := r.store.run(r.locked, func(st *state) error {
		record, ok := lookupLocked(st, lookup, now)
		if !ok {
			return repository.ErrCredentialNotFound
		}
		found = &record.Credential

		return nil
	})

	return found, err
}

func (r *credentialRepository) Consume(ctx context.Context, lookup repository.CredentialLookup, now time.Time) (*entity.Credential, error) {
	var consumed *entity.Credential
	err := r.store.run(r.locked, func(st *state) error {
		record, ok := lookupLocked(st, lookup, now)
		if !ok {
			return repository.ErrCredentialNotFound
		}
		record.Blacklisted = true
		st.credentials[record.ID] = record
		consumed = &record.Credential

		return nil
	})

	return consumed, err
}

func (r *credentialRepository) Revoke(ctx context.Context, tokenHash string) error {
	return r.RevokeMany(ctx, []string{tokenHash})
}

func (r *credentialRepository) RevokeMany(ctx context.Context, tokenHashes []string) error {
	return r.store.run(r.locked, func(st *state) error {
		for _, hash := range tokenHashes {
			if id, ok := st.byHash[hash]; ok {
				blacklistLocked(st, id)
			}
		}

		return nil
	})
}

func (r *credentialRepository) RevokeAll(ctx context.Context, accountID uuid.UUID, kinds ...entity.CredentialKind) error {
	return r.store.run(r.locked, func(st *state) error {
		for id, record := range st.credentials {
			if record.AccountID != accountID {
				continue
			}
			if len(kinds) > 0 && !slices.Contains(kinds, record.Kind) {
				continue
			}
			blacklistLocked(st, id)
		}

		return nil
	})
}

func (r *credentialRepository) RevokeAllExcept(ctx context.Context, accountID uuid.UUID, keepTokenHash string) error {
	return r.store.run(r.locked, func(st *state) error {
		for id, record := range st.credentials {
			if record.AccountID == accountID && record.TokenHash != keepTokenHash {
				blacklistLocked(st, id)
			}
		}

		return nil
	})
}

func (r *credentialRepository) RevokeByID(ctx context.Context, accountID, id uuid.UUID, kind entity.CredentialKind) error {
	return r.store.run(r.locked, func(st *state) error {
		record, ok := st.credentials[id]
		if !ok || record.AccountID != accountID || record.Kind != kind || record.Blacklisted {
			return repository.ErrCredentialNotFound
		}
		blacklistLocked(st, id)

		return nil
	})
}

func (r *credentialRepository) ListActive(ctx context.Context, accountID uuid.UUID, kind entity.CredentialKind, now time.Time) ([]*entity.Credential, error) {
	var records []credentialRecord
	_ = r.store.run(r.locked, func(st *state) error {
		for _, record := range st.credentials {
			if record.AccountID == accountID && record.Kind == kind && record.IsUsableAt(now) {
				records = append(records, record)
			}
		}

		return nil
	})

	slices.SortFunc(records, func(a, b credentialRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return int(b.seq) - int(a.seq)
	})

	credentials := make([]*entity.Credential, 0, len(records))
	for i := range records {
		credentials = append(credentials, &records[i].Credential)
	}

	return credentials, nil
}

func (r *credentialRepository) PurgeExpiredOrRevoked(ctx context.Context, now time.Time) (int64, error) {
	var purged int64
	err := r.store.run(r.locked, func(st *state) error {
		for id, record := range st.credentials {
			if record.IsUsableAt(now) {
				continue
			}
			delete(st.credentials, id)
			delete(st.byHash, record.TokenHash)
			purged++
		}

		return nil
	})

	return purged, err
}

func blacklistLocked(st *state, id uuid.UUID) {
	record := st.credentials[id]
	record.Blacklisted = true
	st.credentials[id] = record
}
