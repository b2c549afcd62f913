package impl

import (
	"context"
	"log/slog"
	"strings"

	"warden/config"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/errors"
	"warden/internal/usecase"

	"go.uber.org/fx"
)

type seedAccount struct {
	email    string
	name     string
	password string
	role     entity.Role
}

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	accounts  []seedAccount
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService. Entries without an email are skipped.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	configured := []struct {
		account *config.SeedAccount
		role    entity.Role
	}{
		{params.Config.Seed.Admin, entity.RoleAdmin},
		{params.Config.Seed.User, entity.RoleUser},
	}

	accounts := make([]seedAccount, 0, len(configured))
	for _, c := range configured {
		if c.account == nil {
			continue
		}
		email := entity.NormalizeEmail(c.account.Email)
		if email == "" {
			continue
		}
		name := strings.TrimSpace(c.account.Name)
		if name == "" {
			name, _, _ = strings.Cut(email, "@")
		}
		accounts = append(accounts, seedAccount{email: email, name: name, password: c.account.Password, role: c.role})
	}

	return &seedService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		accounts:  accounts,
		logger:    params.Logger,
	}
}

func (srv *seedService) Seed(ctx context.Context) ([]usecase.SeedResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if len(srv.accounts) == 0 {
		logger.Info("No seed accounts configured")

		return nil, nil
	}

	// Hashing happens before the transaction opens.
	hashes := make([]string, len(srv.accounts))
	for i, seed := range srv.accounts {
		if err := srv.hasher.ValidatePasswordStrength(seed.password); err != nil {
			return nil, errors.Wrapf(err, "seed account %s", seed.email)
		}
		hash, err := srv.hasher.Hash(seed.password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash password for seed account %s", seed.email)
		}
		hashes[i] = hash
	}

	var results []usecase.SeedResult
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		results = make([]usecase.SeedResult, 0, len(srv.accounts))
		accounts := factory.AccountRepo()

		for i, seed := range srv.accounts {
			existing, err := accounts.FindByEmail(ctx, seed.email)
			switch {
			case err == nil:
				results = append(results, usecase.SeedResult{Account: existing})

				continue
			case !errors.Is(err, repository.ErrAccountNotFound):
				return errors.Wrapf(err, "failed to look up seed account %s", seed.email)
			}

			account := &entity.Account{
				Email:        seed.email,
				Name:         seed.name,
				PasswordHash: hashes[i],
				Role:         seed.role,
				Active:       true,
				Provider:     entity.ProviderTypeLocal,
			}
			if err := accounts.Create(ctx, account); err != nil {
				return errors.Wrapf(err, "failed to create seed account %s", seed.email)
			}
			results = append(results, usecase.SeedResult{Account: account, Created: true})
		}

		return nil
	})
	if err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))

		return nil, err
	}

	for i, result := range results {
		if !result.Created && result.Account.Role != srv.accounts[i].role {
			logger.Warn("Seed account exists with a different role",
				slog.String("email", result.Account.Email),
				slog.Any("role", result.Account.Role),
				slog.Any("configuredRole", srv.accounts[i].role),
			)
		}
		logger.Info("Seed account ready",
			slog.Any("accountID", result.Account.ID),
			slog.String("email", result.Account.Email),
			slog.Any("role", result.Account.Role),
			slog.Bool("created", result.Created),
		)
	}

	return results, nil
}
