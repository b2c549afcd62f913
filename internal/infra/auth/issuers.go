package auth

import (
	"warden/config"
	"warden/internal/domain/entity"
	"warden/internal/domain/service"
)

// tokenIssuers maps each credential kind to the issuer configured for it.
type tokenIssuers struct {
	byKind map[entity.CredentialKind]service.TokenIssuer
}

// NewTokenIssuers builds the per-kind issuer table. ACCESS and REFRESH are always signed.
func NewTokenIssuers(cfg *config.Config) (service.TokenIssuers, error) {
	signed, err := NewSignedIssuer(cfg.SecretKey.Signing)
	if err != nil {
		return nil, err
	}
	opaque := NewOpaqueIssuer()

	pick := func(style string) service.TokenIssuer {
		if style == config.IssuerSigned {
			return signed
		}

		return opaque
	}

	return &tokenIssuers{
		byKind: map[entity.CredentialKind]service.TokenIssuer{
			entity.CredentialKindAccess:        signed,
			entity.CredentialKindRefresh:       signed,
			entity.CredentialKindVerifyEmail:   pick(cfg.Tokens.VerifyEmailIssuer),
			entity.CredentialKindResetPassword: pick(cfg.Tokens.ResetPasswordIssuer),
		},
	}, nil
}

// For returns the issuer for kind, or nil for an unknown kind.
func (t *tokenIssuers) For(kind entity.CredentialKind) service.TokenIssuer {
	return t.byKind[kind]
}
