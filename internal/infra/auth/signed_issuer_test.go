package auth

import (
	"strings"
	"testing"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

func newTestSignedIssuer(t *testing.T) *signedIssuer {
	t.Helper()

	issuer, err := NewSignedIssuer(testSecret)
	require.NoError(t, err)

	return issuer.(*signedIssuer)
}

func TestSignedIssuer_IssueAndParse(t *testing.T) {
	issuer := newTestSignedIssuer(t)
	subject := uuid.New()

	token, err := issuer.Issue(subject, entity.CredentialKindAccess, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, service.TokenStyleSigned, issuer.Style())

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, entity.CredentialKindAccess, claims.Kind)
	assert.True(t, claims.SelfDescribing())
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 2*time.Second)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, 2*time.Second)
}

func TestSignedIssuer_SameSecondTokensDiffer(t *testing.T) {
	issuer := newTestSignedIssuer(t)
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }
	subject := uuid.New()

	first, err := issuer.Issue(subject, entity.CredentialKindRefresh, time.Hour)
	require.NoError(t, err)
	second, err := issuer.Issue(subject, entity.CredentialKindRefresh, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSignedIssuer_Expired(t *testing.T) {
	issuer := newTestSignedIssuer(t)

	token, err := issuer.Issue(uuid.New(), entity.CredentialKindAccess, -time.Minute)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired), "got %v", err)
}

func TestSignedIssuer_WrongSecret(t *testing.T) {
	issuer := newTestSignedIssuer(t)
	other, err := NewSignedIssuer(strings.Repeat("x", MinSigningSecretLength))
	require.NoError(t, err)

	token, err := other.Issue(uuid.New(), entity.CredentialKindAccess, time.Minute)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.True(t, errors.Is(err, service.ErrTokenSignature), "got %v", err)
}

func TestSignedIssuer_RejectsNoneAlgorithm(t *testing.T) {
	issuer := newTestSignedIssuer(t)

	claims := signedClaims{
		Type: entity.CredentialKindAccess.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.True(t, errors.Is(err, service.ErrTokenSignature), "got %v", err)
}

func TestSignedIssuer_Malformed(t *testing.T) {
	issuer := newTestSignedIssuer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "garbage segments", token: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Parse(tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, service.ErrTokenMalformed), "got %v", err)
		})
	}
}

func TestSignedIssuer_RejectsForeignClaims(t *testing.T) {
	issuer := newTestSignedIssuer(t)

	sign := func(claims signedClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		return token
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	badSubject := sign(signedClaims{Type: "ACCESS", RegisteredClaims: jwt.RegisteredClaims{Subject: "42", ExpiresAt: exp}})
	_, err := issuer.Parse(badSubject)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed), "got %v", err)

	badType := sign(signedClaims{Type: "SESSION", RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString(), ExpiresAt: exp}})
	_, err = issuer.Parse(badType)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed), "got %v", err)

	noExpiry := sign(signedClaims{Type: "ACCESS", RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}})
	_, err = issuer.Parse(noExpiry)
	assert.Error(t, err)
}

func TestNewSignedIssuer_ShortSecret(t *testing.T) {
	for _, secret := range []string{"", "short"} {
		issuer, err := NewSignedIssuer(secret)
		assert.Nil(t, issuer)
		assert.True(t, errors.Is(err, domainerrors.ErrMisconfiguredSecret), "got %v", err)
	}
}
