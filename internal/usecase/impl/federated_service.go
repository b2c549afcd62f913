package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/errors"
	"warden/internal/usecase"
	"warden/internal/util"

	"go.uber.org/fx"
)

// federatedService implements the FederatedUsecase interface.
type federatedService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	credentials usecase.CredentialUsecase
	hasher      service.PasswordHasher
	verifiers   map[entity.ProviderType]service.IdentityVerifier
	listers     map[entity.ProviderType]service.ProviderFileLister
	logger      *slog.Logger
}

// FederatedServiceParams holds dependencies for FederatedService, injected by Fx.
// Verifiers and Listers are value groups; unconfigured providers contribute nil and are skipped.
type FederatedServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Credentials usecase.CredentialUsecase
	Hasher      service.PasswordHasher
	Verifiers   []service.IdentityVerifier   `group:"identity_verifiers"`
	Listers     []service.ProviderFileLister `group:"provider_file_listers"`
	Logger      *slog.Logger
}

// NewFederatedService is the constructor for federatedService.
func NewFederatedService(params FederatedServiceParams) usecase.FederatedUsecase {
	verifiers := make(map[entity.ProviderType]service.IdentityVerifier, len(params.Verifiers))
	for _, verifier := range params.Verifiers {
		if verifier == nil {
			continue
		}
		verifiers[verifier.Provider()] = verifier
	}

	listers := make(map[entity.ProviderType]service.ProviderFileLister, len(params.Listers))
	for _, lister := range params.Listers {
		if lister == nil {
			continue
		}
		listers[lister.Provider()] = lister
	}

	return &federatedService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		credentials: params.Credentials,
		hasher:      params.Hasher,
		verifiers:   verifiers,
		listers:     listers,
		logger:      params.Logger,
	}
}

func (srv *federatedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *federatedService) Providers() []entity.ProviderType {
	providers := make([]entity.ProviderType, 0, len(srv.verifiers))
	for provider := range srv.verifiers {
		providers = append(providers, provider)
	}
	slices.Sort(providers)

	return providers
}

// FederatedLogin only trusts identities whose provider vouches for the email address.
func (srv *federatedService) FederatedLogin(ctx context.Context, input *usecase.FederatedLoginInput) (*usecase.AuthOutput, error) {
	verifier, ok := srv.verifiers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(input.Provider.String())
	}

	identity, err := verifier.Verify(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Federated token verification failed", slog.Any("provider", input.Provider), slog.Any("error", err))

		return nil, err
	}
	if !identity.EmailVerified {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("email is not verified by the provider")
	}

	return srv.Bridge(ctx, identity, usecase.ProviderGrants{
		AccessGrant:  input.AccessGrant,
		RefreshGrant: input.RefreshGrant,
	})
}

// Bridge links the identity to the account with the same email, creating an active account
// when none exists, stores the provider grants and issues a pair, all in one transaction.
func (srv *federatedService) Bridge(ctx context.Context, identity *service.FederatedIdentity, grants usecase.ProviderGrants) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(identity.Email)
	if email == "" || identity.ProviderUserID == "" {
		return nil, domainerrors.ErrFederatedIdentityInvalid.WithDetails("identity has no email or subject")
	}

	// The placeholder hash is only needed for a new account and is computed outside the transaction,
	// so a first login takes a second pass once the lookup misses.
	output, err := srv.bridge(ctx, email, identity, grants, "")
	if errors.Is(err, errPlaceholderRequired) {
		var placeholder string
		if placeholder, err = srv.placeholderHash(); err == nil {
			output, err = srv.bridge(ctx, email, identity, grants, placeholder)
		}
	}
	if err != nil {
		if domainerrors.IsFatal(err) {
			srv.log(ctx).Error("Federated login failed", slog.Any("provider", identity.Provider), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Federated login succeeded", slog.Any("provider", identity.Provider), slog.Any("accountID", output.Account.ID))

	return output, nil
}

var errPlaceholderRequired = errors.New("federated account needs a placeholder password")

func (srv *federatedService) bridge(
	ctx context.Context,
	email string,
	identity *service.FederatedIdentity,
	grants usecase.ProviderGrants,
	placeholder string,
) (*usecase.AuthOutput, error) {
	var output usecase.AuthOutput
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		accounts := factory.AccountRepo()

		account, err := accounts.FindByEmail(ctx, email)
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			if placeholder == "" {
				return errPlaceholderRequired
			}
			account, err = srv.createFederatedAccount(ctx, accounts, email, placeholder, identity, grants)
			if err != nil {
				return err
			}
		case err != nil:
			return errors.Wrap(err, "failed to find account for federated login")
		default:
			if err := srv.linkFederatedAccount(ctx, accounts, account, identity, grants); err != nil {
				return err
			}
		}

		pair, err := srv.credentials.WithRepositories(factory).IssuePair(ctx, account.ID)
		if err != nil {
			return err
		}
		output = usecase.AuthOutput{Account: account, Tokens: pair}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &output, nil
}

// placeholderHash hashes a secret nobody knows, so password login never matches a federated-only account.
func (srv *federatedService) placeholderHash() (string, error) {
	secret, err := util.RandomHex(32)
	if err != nil {
		return "", err
	}
	placeholder, err := srv.hasher.Hash(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash placeholder password")
	}

	return placeholder, nil
}

func (srv *federatedService) createFederatedAccount(
	ctx context.Context,
	accounts repository.AccountRepository,
	email string,
	placeholder string,
	identity *service.FederatedIdentity,
	grants usecase.ProviderGrants,
) (*entity.Account, error) {
	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	account := &entity.Account{
		Email:                email,
		Name:                 name,
		PasswordHash:         placeholder,
		Role:                 entity.RoleUser,
		Active:               true,
		Provider:             identity.Provider,
		ProviderUserID:       identity.ProviderUserID,
		ProviderAccessGrant:  grants.AccessGrant,
		ProviderRefreshGrant: grants.RefreshGrant,
	}
	if err := accounts.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create federated account")
	}

	srv.log(ctx).Info("Created federated account", slog.Any("provider", identity.Provider), slog.Any("accountID", account.ID))

	return account, nil
}

func (srv *federatedService) linkFederatedAccount(
	ctx context.Context,
	accounts repository.AccountRepository,
	account *entity.Account,
	identity *service.FederatedIdentity,
	grants usecase.ProviderGrants,
) error {
	if !account.Active {
		srv.log(ctx).Warn("Federated login for inactive account", slog.Any("accountID", account.ID))

		return domainerrors.ErrAccountInactive
	}

	if account.Provider == identity.Provider && account.ProviderUserID != "" && account.ProviderUserID != identity.ProviderUserID {
		srv.log(ctx).Warn("Provider subject mismatch", slog.Any("provider", identity.Provider), slog.Any("accountID", account.ID))

		return domainerrors.ErrFederatedIdentityInvalid.WithDetails("email is linked to a different provider account")
	}

	account.Provider = identity.Provider
	account.ProviderUserID = identity.ProviderUserID
	if grants.AccessGrant != "" {
		account.ProviderAccessGrant = grants.AccessGrant
	}
	if grants.RefreshGrant != "" {
		account.ProviderRefreshGrant = grants.RefreshGrant
	}
	if account.Name == "" {
		account.Name = strings.TrimSpace(identity.Name)
	}

	return errors.Wrap(accounts.Update(ctx, account), "failed to link federated identity")
}

func (srv *federatedService) ListProviderFiles(ctx context.Context, principal *entity.Principal, pageSize int64) (*usecase.ProviderFilesOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for provider files")
	}

	if !account.IsFederated() {
		return nil, domainerrors.ErrProviderGrantInvalid.WithDetails("account is not linked to an identity provider")
	}
	lister, ok := srv.listers[account.Provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(account.Provider.String())
	}

	listing, err := lister.ListFiles(ctx, service.ProviderGrant{
		AccessGrant:  account.ProviderAccessGrant,
		RefreshGrant: account.ProviderRefreshGrant,
	}, pageSize)
	switch {
	case errors.Is(err, service.ErrGrantRejected):
		srv.log(ctx).Info("Provider grant rejected", slog.Any("provider", account.Provider), slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrProviderGrantInvalid
	case err != nil:
		srv.log(ctx).Error("Provider file listing failed", slog.Any("provider", account.Provider), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}

	// A failed write-back only costs another refresh next time.
	if listing.AccessGrant != "" && listing.AccessGrant != account.ProviderAccessGrant {
		if err := srv.accountRepo.UpdateProviderAccessGrant(ctx, account.ID, listing.AccessGrant); err != nil {
			srv.log(ctx).Warn("Failed to store refreshed provider grant", slog.Any("accountID", account.ID), slog.Any("error", err))
		}
	}

	return &usecase.ProviderFilesOutput{Provider: account.Provider, Files: listing.Files}, nil
}
