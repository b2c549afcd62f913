package firebase

import (
	"context"
	"log/slog"
	"testing"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	token *auth.Token
	err   error
}

func (s stubClient) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestNewVerifier_RequiresProject(t *testing.T) {
	_, err := NewVerifier(context.Background(), &config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestVerifier_Verify(t *testing.T) {
	verifier := &Verifier{
		client: stubClient{token: &auth.Token{
			UID: "fb-uid",
			Claims: map[string]any{
				"email":          "user@example.com",
				"email_verified": true,
				"name":           "Firebase User",
			},
		}},
		logger: slog.Default(),
	}

	identity, err := verifier.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTypeFirebase, identity.Provider)
	assert.Equal(t, "fb-uid", identity.ProviderUserID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Firebase User", identity.Name)
}

func TestVerifier_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		client stubClient
	}{
		{name: "empty", token: ""},
		{name: "sdk error", token: "t", client: stubClient{err: errors.New("ID token has expired")}},
		{name: "no email", token: "t", client: stubClient{token: &auth.Token{UID: "x", Claims: map[string]any{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &Verifier{client: tt.client, logger: slog.Default()}

			identity, err := verifier.Verify(context.Background(), tt.token)
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, domainerrors.ErrFederatedIdentityInvalid), "got %v", err)
		})
	}
}
