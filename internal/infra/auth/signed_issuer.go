// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MinSigningSecretLength is the shortest HS256 secret accepted at startup.
const MinSigningSecretLength = 32

// signedClaims is the JWT payload of every signed credential.
type signedClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// signedIssuer mints HS256 JWTs carrying subject, kind, issued-at and expiry.
type signedIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewSignedIssuer is the constructor for signedIssuer.
// A missing or short secret is reported as ErrMisconfiguredSecret so startup fails.
func NewSignedIssuer(secret string) (service.TokenIssuer, error) {
	if len(secret) < MinSigningSecretLength {
		return nil, errors.Wrapf(domainerrors.ErrMisconfiguredSecret, "signing secret must be at least %d bytes", MinSigningSecretLength)
	}

	return &signedIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

func (s *signedIssuer) Style() service.TokenStyle {
	return service.TokenStyleSigned
}

// Issue signs a token for subject. The jti claim is random, so two tokens minted
// for the same subject and kind within one second still differ.
func (s *signedIssuer) Issue(subject uuid.UUID, kind entity.CredentialKind, ttl time.Duration) (string, error) {
	now := s.now()
	claims := signedClaims{
		Type: kind.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Parse verifies signature and expiry and decodes the claims.
func (s *signedIssuer) Parse(tokenString string) (*service.TokenClaims, error) {
	claims := &signedClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "subject is not a valid id")
	}

	kind := entity.CredentialKind(claims.Type)
	if !kind.IsValid() {
		return nil, errors.Wrapf(service.ErrTokenMalformed, "unknown token type %q", claims.Type)
	}

	result := &service.TokenClaims{
		Subject:   subject,
		Kind:      kind,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenSignature, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
