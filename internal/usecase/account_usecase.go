package usecase

import (
	"context"

	"warden/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
// Name wins over FirstName/LastName when both are given.
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to log in with a password.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LogoutInput carries the tokens to revoke. Either may be empty, not both.
type LogoutInput struct {
	AccessToken  string
	RefreshToken string
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ChangePasswordInput changes the password of the authenticated account.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput describes the created account and whether a confirmation mail went out.
type RegisterOutput struct {
	Account               *entity.Account
	RequiresConfirmation  bool
	VerificationEmailSent bool
}

// AuthOutput is returned by every flow that logs an account in.
type AuthOutput struct {
	Account *entity.Account
	Tokens  *TokenPair
}

// AccountUsecase defines the identity flows built on the credential engine.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	ConfirmEmail(ctx context.Context, token string) (*entity.Account, error)
	ResendVerification(ctx context.Context, email string) error

	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAll(ctx context.Context, principal *entity.Principal) error

	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	ChangePassword(ctx context.Context, principal *entity.Principal, input *ChangePasswordInput) error

	Me(ctx context.Context, principal *entity.Principal) (*entity.Account, error)
	ListSessions(ctx context.Context, principal *entity.Principal) ([]*entity.Session, error)
	RevokeSession(ctx context.Context, principal *entity.Principal, sessionID uuid.UUID) error

	// SetAccountActive is restricted to ADMIN principals. Deactivation revokes every credential.
	SetAccountActive(ctx context.Context, admin *entity.Principal, accountID uuid.UUID, active bool) error
}
