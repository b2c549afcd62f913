package impl

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"warden/config"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/errors"
	"warden/internal/usecase"
	"warden/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager                repository.TransactionManager
	accountRepo              repository.AccountRepository
	credentials              usecase.CredentialUsecase
	hasher                   service.PasswordHasher
	mailer                   service.EmailSender
	requireEmailConfirmation bool
	verifyEmailURL           string
	resetPasswordURL         string
	logger                   *slog.Logger

	// dummyHash is compared against when no account matches a login, so both paths cost one bcrypt check.
	dummyHashOnce sync.Once
	dummyHash     string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Credentials usecase.CredentialUsecase
	Hasher      service.PasswordHasher
	Mailer      service.EmailSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:                params.TxManager,
		accountRepo:              params.AccountRepo,
		credentials:              params.Credentials,
		hasher:                   params.Hasher,
		mailer:                   params.Mailer,
		requireEmailConfirmation: params.Config.Auth.RequireEmailConfirmation,
		verifyEmailURL:           params.Config.Email.VerifyEmailURL,
		resetPasswordURL:         params.Config.Email.ResetPasswordURL,
		logger:                   params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account. When confirmation is required the account starts inactive
// and a verification token is issued in the same transaction; the email is sent after commit.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Email:        email,
		Name:         entity.DisplayName(input.Name, input.FirstName, input.LastName),
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		Active:       !srv.requireEmailConfirmation,
		Provider:     entity.ProviderTypeLocal,
	}

	var verifyToken string
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		if !srv.requireEmailConfirmation {
			return nil
		}

		var err error
		verifyToken, err = srv.credentials.WithRepositories(factory).
			IssueSingleUse(ctx, account.ID, entity.CredentialKindVerifyEmail, 0)

		return err
	})
	if err != nil {
		if domainerrors.IsFatal(err) {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))
		}

		return nil, err
	}

	output := &usecase.RegisterOutput{
		Account:              account,
		RequiresConfirmation: srv.requireEmailConfirmation,
	}
	if verifyToken != "" {
		// The account stays; the client can ask for another link.
		output.VerificationEmailSent = srv.sendAction(ctx, account, service.EmailPurposeVerifyEmail, srv.verifyEmailURL, verifyToken) == nil
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID), slog.Bool("active", account.Active))

	return output, nil
}

// ConfirmEmail redeems a verification token and activates its account in one transaction.
func (srv *accountService) ConfirmEmail(ctx context.Context, token string) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		record, err := srv.credentials.WithRepositories(factory).
			RedeemSingleUse(ctx, token, entity.CredentialKindVerifyEmail, uuid.Nil)
		if err != nil {
			return err
		}

		accounts := factory.AccountRepo()
		if err := accounts.SetActive(ctx, record.AccountID, true); err != nil {
			return errors.Wrap(err, "failed to activate account")
		}

		account, err = accounts.FindByID(ctx, record.AccountID)

		return errors.Wrap(err, "failed to reload confirmed account")
	})
	if err != nil {
		srv.log(ctx).Warn("Email confirmation failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Email confirmed", slog.Any("accountID", account.ID))

	return account, nil
}

// ResendVerification answers the same way whether or not the email belongs to a pending account.
// Mail failures are only logged.
func (srv *accountService) ResendVerification(ctx context.Context, email string) error {
	if !srv.requireEmailConfirmation {
		return nil
	}

	account, err := srv.accountRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up account for verification resend")
	}
	if account.Active {
		return nil
	}

	token, err := srv.reissue(ctx, account.ID, entity.CredentialKindVerifyEmail)
	if err != nil {
		return err
	}

	_ = srv.sendAction(ctx, account, service.EmailPurposeVerifyEmail, srv.verifyEmailURL, token)

	return nil
}

// reissue revokes outstanding tokens of kind and issues a fresh one, so only the newest link works.
func (srv *accountService) reissue(ctx context.Context, accountID uuid.UUID, kind entity.CredentialKind) (string, error) {
	var token string
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.CredentialRepo().RevokeAll(ctx, accountID, kind); err != nil {
			return errors.Wrapf(err, "failed to revoke previous %s tokens", kind)
		}

		var err error
		token, err = srv.credentials.WithRepositories(factory).IssueSingleUse(ctx, accountID, kind, 0)

		return err
	})

	return token, err
}

func (srv *accountService) sendAction(ctx context.Context, account *entity.Account, purpose service.EmailPurpose, baseURL, token string) error {
	actionURL, err := withToken(baseURL, token)
	if err != nil {
		srv.log(ctx).Error("Invalid action URL", slog.String("baseURL", baseURL), slog.Any("error", err))

		return err
	}

	err = srv.mailer.Send(ctx, &service.ActionEmail{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        account.Email,
		Name:      account.Name,
		Purpose:   purpose,
		ActionURL: actionURL,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send action email", slog.Any("purpose", purpose), slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send action email")
	}

	return nil
}

func withToken(baseURL, token string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse action URL")
	}

	query := parsed.Query()
	query.Set("token", token)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// Login verifies the password and issues a new pair. Unknown email, wrong password and
// inactive account are indistinguishable to the caller. Without RememberMe every other
// credential of the account is revoked first.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.hasher.Check(input.Password, srv.fallbackHash())
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !account.Active {
		srv.log(ctx).Warn("Login attempt for inactive account", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	var pair *usecase.TokenPair
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		engine := srv.credentials.WithRepositories(factory)
		if !input.RememberMe {
			if err := engine.RevokeAllForAccount(ctx, account.ID); err != nil {
				return err
			}
		}

		var err error
		pair, err = engine.IssuePair(ctx, account.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to complete login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", account.ID), slog.Bool("rememberMe", input.RememberMe))

	return &usecase.AuthOutput{Account: account, Tokens: pair}, nil
}

func (srv *accountService) fallbackHash() string {
	srv.dummyHashOnce.Do(func() {
		secret, err := util.RandomHex(16)
		if err != nil {
			return
		}
		srv.dummyHash, _ = srv.hasher.Hash(secret)
	})

	return srv.dummyHash
}

func (srv *accountService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	return srv.credentials.RotateAccess(ctx, refreshToken)
}

// Logout revokes the presented tokens. Unknown or already revoked tokens are not an error.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.AccessToken == "" && input.RefreshToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("an access or refresh token is required")
	}

	return srv.credentials.RevokeMany(ctx, []string{input.AccessToken, input.RefreshToken})
}

func (srv *accountService) LogoutAll(ctx context.Context, principal *entity.Principal) error {
	return srv.credentials.RevokeAllForAccount(ctx, principal.AccountID)
}

// ForgotPassword never reveals whether the email exists, and mail failures are only logged.
func (srv *accountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Debug("Password reset requested for unknown email")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up account for password reset")
	}

	token, err := srv.reissue(ctx, account.ID, entity.CredentialKindResetPassword)
	if err != nil {
		return err
	}

	_ = srv.sendAction(ctx, account, service.EmailPurposeResetPassword, srv.resetPasswordURL, token)

	return nil
}

// ResetPassword checks the new password before touching the token, then redeems it, sets the
// password and revokes every credential of the account in one transaction.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	var accountID uuid.UUID
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		engine := srv.credentials.WithRepositories(factory)

		record, err := engine.RedeemSingleUse(ctx, input.Token, entity.CredentialKindResetPassword, uuid.Nil)
		if err != nil {
			return err
		}
		accountID = record.AccountID

		if err := factory.AccountRepo().UpdatePassword(ctx, accountID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return engine.RevokeAllForAccount(ctx, accountID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset", slog.Any("accountID", accountID))

	return nil
}

// ChangePassword keeps the session that made the request and revokes every other credential.
func (srv *accountService) ChangePassword(ctx context.Context, principal *entity.Principal, input *usecase.ChangePasswordInput) error {
	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return errors.Wrap(err, "failed to load account")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.Any("accountID", account.ID))

		return domainerrors.ErrInvalidCredentials
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.AccountRepo().UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return srv.credentials.WithRepositories(factory).RevokeAllExcept(ctx, account.ID, principal.AccessToken)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return nil
}

func (srv *accountService) Me(ctx context.Context, principal *entity.Principal) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("account not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

func (srv *accountService) ListSessions(ctx context.Context, principal *entity.Principal) ([]*entity.Session, error) {
	return srv.credentials.ListSessions(ctx, principal.AccountID)
}

func (srv *accountService) RevokeSession(ctx context.Context, principal *entity.Principal, sessionID uuid.UUID) error {
	return srv.credentials.RevokeSession(ctx, principal.AccountID, sessionID)
}

func (srv *accountService) SetAccountActive(ctx context.Context, admin *entity.Principal, accountID uuid.UUID, active bool) error {
	if !admin.HasRole(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		err := factory.AccountRepo().SetActive(ctx, accountID, active)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound.WithDetails("account not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to update account status")
		}

		if active {
			return nil
		}

		return srv.credentials.WithRepositories(factory).RevokeAllForAccount(ctx, accountID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account status changed", slog.Any("accountID", accountID), slog.Bool("active", active), slog.Any("by", admin.AccountID))

	return nil
}
