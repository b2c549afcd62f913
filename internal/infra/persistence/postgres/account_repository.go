package postgres

import (
	"context"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	"warden/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The ID is generated here when the caller left it empty.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update overwrites every mutable column, including zero values.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return repo.updateColumns(ctx, account.ID, map[string]any{
		"email":                  account.Email,
		"name":                   account.Name,
		"password_hash":          account.PasswordHash,
		"role":                   account.Role.String(),
		"active":                 account.Active,
		"provider":               providerOrLocal(account.Provider),
		"provider_user_id":       account.ProviderUserID,
		"provider_access_grant":  account.ProviderAccessGrant,
		"provider_refresh_grant": account.ProviderRefreshGrant,
	})
}

func (repo *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash})
}

func (repo *accountRepository) UpdateProviderAccessGrant(ctx context.Context, id uuid.UUID, accessGrant string) error {
	return repo.updateColumns(ctx, id, map[string]any{"provider_access_grant": accessGrant})
}

func (repo *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"active": active})
}

func (repo *accountRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAccountAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func providerOrLocal(p entity.ProviderType) string {
	if p == "" {
		return entity.ProviderTypeLocal.String()
	}

	return p.String()
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		PasswordHash:         data.PasswordHash,
		Role:                 entity.Role(data.Role),
		Active:               data.Active,
		Provider:             entity.ProviderType(data.Provider),
		ProviderUserID:       data.ProviderUserID,
		ProviderAccessGrant:  data.ProviderAccessGrant,
		ProviderRefreshGrant: data.ProviderRefreshGrant,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		PasswordHash:         data.PasswordHash,
		Role:                 data.Role.String(),
		Active:               data.Active,
		Provider:             providerOrLocal(data.Provider),
		ProviderUserID:       data.ProviderUserID,
		ProviderAccessGrant:  data.ProviderAccessGrant,
		ProviderRefreshGrant: data.ProviderRefreshGrant,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
