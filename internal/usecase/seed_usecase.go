package usecase

import (
	"context"

	"warden/internal/domain/entity"
)

// SeedUsecase bootstraps the configured admin and user accounts.
type SeedUsecase interface {
	// Seed creates each configured account whose email is not taken yet. Existing accounts are not modified.
	Seed(ctx context.Context) ([]SeedResult, error)
}

// SeedResult reports one configured account after seeding.
type SeedResult struct {
	Account *entity.Account
	Created bool
}
