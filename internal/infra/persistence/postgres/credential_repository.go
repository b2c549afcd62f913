package postgres

import (
	"context"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	"warden/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements repository.CredentialRepository.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// usable restricts a query to the unrevoked, unexpired record matching lookup.
func usable(lookup repository.CredentialLookup, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("token_hash = ? AND kind = ? AND blacklisted = ? AND expires_at > ?",
			lookup.TokenHash, lookup.Kind.String(), false, now)
		if lookup.AccountID != uuid.Nil {
			db = db.Where("account_id = ?", lookup.AccountID)
		}

		return db
	}
}

func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	if credential.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate credential id")
		}
		credential.ID = id
	}

	credentialM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

func (repo *credentialRepository) FindValid(ctx context.Context, lookup repository.CredentialLookup, now time.Time) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	err := repo.db.WithContext(ctx).Scopes(usable(lookup, now)).Take(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find credential")
	}

	return toCredentialDomain(&credentialM), nil
}

// Consume flips blacklisted in a single conditional UPDATE ... RETURNING, so the row lock
// decides which of several concurrent redeemers wins.
func (repo *credentialRepository) Consume(ctx context.Context, lookup repository.CredentialLookup, now time.Time) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	result := repo.db.WithContext(ctx).
		Model(&credentialM).
		Clauses(clause.Returning{}).
		Scopes(usable(lookup, now)).
		Update("blacklisted", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume credential")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	return toCredentialDomain(&credentialM), nil
}

func (repo *credentialRepository) Revoke(ctx context.Context, tokenHash string) error {
	return repo.blacklist(ctx, "failed to revoke credential", func(db *gorm.DB) *gorm.DB {
		return db.Where("token_hash = ?", tokenHash)
	})
}

func (repo *credentialRepository) RevokeMany(ctx context.Context, tokenHashes []string) error {
	if len(tokenHashes) == 0 {
		return nil
	}

	return repo.blacklist(ctx, "failed to revoke credentials", func(db *gorm.DB) *gorm.DB {
		return db.Where("token_hash IN ?", tokenHashes)
	})
}

func (repo *credentialRepository) RevokeAll(ctx context.Context, accountID uuid.UUID, kinds ...entity.CredentialKind) error {
	return repo.blacklist(ctx, "failed to revoke account credentials", func(db *gorm.DB) *gorm.DB {
		db = db.Where("account_id = ?", accountID)
		if len(kinds) > 0 {
			names := make([]string, 0, len(kinds))
			for _, kind := range kinds {
				names = append(names, kind.String())
			}
			db = db.Where("kind IN ?", names)
		}

		return db
	})
}

func (repo *credentialRepository) RevokeAllExcept(ctx context.Context, accountID uuid.UUID, keepTokenHash string) error {
	return repo.blacklist(ctx, "failed to revoke account credentials", func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ? AND token_hash <> ?", accountID, keepTokenHash)
	})
}

func (repo *credentialRepository) RevokeByID(ctx context.Context, accountID, id uuid.UUID, kind entity.CredentialKind) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ? AND account_id = ? AND kind = ? AND blacklisted = ?", id, accountID, kind.String(), false).
		Update("blacklisted", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (repo *credentialRepository) ListActive(ctx context.Context, accountID uuid.UUID, kind entity.CredentialKind, now time.Time) ([]*entity.Credential, error) {
	var credentialModels []model.CredentialModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND kind = ? AND blacklisted = ? AND expires_at > ?", accountID, kind.String(), false, now).
		Order("created_at DESC").
		Find(&credentialModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list credentials")
	}

	credentials := make([]*entity.Credential, 0, len(credentialModels))
	for i := range credentialModels {
		credentials = append(credentials, toCredentialDomain(&credentialModels[i]))
	}

	return credentials, nil
}

func (repo *credentialRepository) PurgeExpiredOrRevoked(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("blacklisted = ? OR expires_at <= ?", true, now).
		Delete(&model.CredentialModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge credentials")
	}

	return result.RowsAffected, nil
}

// blacklist revokes every still-active record selected by scope. Already revoked rows are left alone.
func (repo *credentialRepository) blacklist(ctx context.Context, failure string, scope func(*gorm.DB) *gorm.DB) error {
	err := scope(repo.db.WithContext(ctx).Model(&model.CredentialModel{})).
		Where("blacklisted = ?", false).
		Update("blacklisted", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, failure)
	}

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:          data.ID,
		AccountID:   data.AccountID,
		TokenHash:   data.TokenHash,
		Kind:        entity.CredentialKind(data.Kind),
		ExpiresAt:   data.ExpiresAt,
		Blacklisted: data.Blacklisted,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		TokenHash:   data.TokenHash,
		Kind:        data.Kind.String(),
		ExpiresAt:   data.ExpiresAt,
		Blacklisted: data.Blacklisted,
		CreatedAt:   data.CreatedAt,
	}
}
