// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"warden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// Implementations return domainerrors.ErrAccountAlreadyExists when the normalized email is taken.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and fills in generated fields.
	Create(ctx context.Context, account *entity.Account) error

	// Update overwrites the mutable fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// UpdatePassword replaces the password hash of an account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateProviderAccessGrant replaces the stored provider access grant, leaving every other field alone.
	UpdateProviderAccessGrant(ctx context.Context, id uuid.UUID, accessGrant string) error

	// SetActive flips the active flag of an account.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
