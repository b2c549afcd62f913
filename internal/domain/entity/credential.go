package entity

import (
	"time"

	"github.com/google/uuid"
)

// CredentialKind distinguishes what a credential authorizes.
type CredentialKind string

const (
	CredentialKindAccess        CredentialKind = "ACCESS"
	CredentialKindRefresh       CredentialKind = "REFRESH"
	CredentialKindVerifyEmail   CredentialKind = "VERIFY_EMAIL"
	CredentialKindResetPassword CredentialKind = "RESET_PASSWORD"
)

// String returns the string representation of the CredentialKind.
func (k CredentialKind) String() string {
	return string(k)
}

// IsValid checks if the kind is one of the known kinds.
func (k CredentialKind) IsValid() bool {
	switch k {
	case CredentialKindAccess, CredentialKindRefresh, CredentialKindVerifyEmail, CredentialKindResetPassword:
		return true
	default:
		return false
	}
}

// IsSingleUse reports whether a credential of this kind is consumed by its first successful redemption.
func (k CredentialKind) IsSingleUse() bool {
	return k == CredentialKindVerifyEmail || k == CredentialKindResetPassword
}

// IsSession reports whether the kind belongs to a login session (access or refresh).
func (k CredentialKind) IsSession() bool {
	return k == CredentialKindAccess || k == CredentialKindRefresh
}

// Credential is one issued token of any kind.
// The raw token is never stored; TokenHash is its SHA-256 digest and acts as the lookup key.
type Credential struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	TokenHash   string
	Kind        CredentialKind
	ExpiresAt   time.Time
	Blacklisted bool
	CreatedAt   time.Time
}

// IsUsableAt reports whether the record is unrevoked and unexpired at t.
// Account activity is checked separately by the engine.
func (c *Credential) IsUsableAt(t time.Time) bool {
	return !c.Blacklisted && c.ExpiresAt.After(t)
}
