package service

import (
	"time"

	"warden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Parse failures reported by a TokenIssuer. No store access happens while parsing.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

// TokenStyle selects how a credential string is produced.
type TokenStyle string

const (
	// TokenStyleSigned produces self-describing HMAC-signed tokens.
	TokenStyleSigned TokenStyle = "signed"
	// TokenStyleOpaque produces random strings that only the store can resolve.
	TokenStyleOpaque TokenStyle = "opaque"
)

// IsValid checks if the style is known.
func (s TokenStyle) IsValid() bool {
	return s == TokenStyleSigned || s == TokenStyleOpaque
}

// TokenClaims is what a token says about itself.
// Opaque tokens carry no claims: Subject is uuid.Nil and Kind is empty.
type TokenClaims struct {
	Subject   uuid.UUID
	Kind      entity.CredentialKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SelfDescribing reports whether the claims came from a signed token.
func (c *TokenClaims) SelfDescribing() bool {
	return c != nil && c.Kind != ""
}

// TokenIssuer mints and parses credential strings of one style.
type TokenIssuer interface {
	Style() TokenStyle

	// Issue returns a new credential string for subject and kind valid for ttl.
	Issue(subject uuid.UUID, kind entity.CredentialKind, ttl time.Duration) (string, error)

	// Parse validates structure (and signature/expiry for signed tokens).
	Parse(token string) (*TokenClaims, error)
}

// TokenIssuers selects the issuer configured for each credential kind.
type TokenIssuers interface {
	For(kind entity.CredentialKind) TokenIssuer
}
