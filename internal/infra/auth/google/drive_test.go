package google

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"warden/config"
	"warden/internal/domain/entity"
	"warden/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGoogle serves the Drive files endpoint and the OAuth token endpoint.
type fakeGoogle struct {
	mu          sync.Mutex
	validGrant  string
	listStatus  int
	tokenStatus int
	authHeaders []string
	queries     []string
}

func (f *fakeGoogle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/token":
		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}
		_ = r.ParseForm()
		if r.PostForm.Get("refresh_token") != "refresh-1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "access-2", "token_type": "Bearer", "expires_in": 3600})
	case "/files":
		f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
		f.queries = append(f.queries, r.URL.RawQuery)
		if f.listStatus != 0 {
			w.WriteHeader(f.listStatus)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))

			return
		}
		if r.Header.Get("Authorization") != "Bearer "+f.validGrant {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":401,"message":"Invalid Credentials"}}`))

			return
		}
		_, _ = w.Write([]byte(`{"files":[{"id":"f1","name":"budget.xlsx"},{"id":"f2","name":"notes.txt"}]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestDriveLister(t *testing.T, fake *fakeGoogle, clientSecret string) *DriveLister {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id", ClientSecret: clientSecret}}
	l, err := NewDriveLister(cfg, slog.Default())
	require.NoError(t, err)

	lister := l.(*DriveLister)
	lister.endpoint = server.URL + "/"
	lister.base = server.Client().Transport
	if lister.oauth != nil {
		lister.oauth.Endpoint.TokenURL = server.URL + "/token"
	}

	return lister
}

func TestNewDriveLister_RequiresClientID(t *testing.T) {
	_, err := NewDriveLister(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestDriveLister_ListsWithAccessGrant(t *testing.T) {
	fake := &fakeGoogle{validGrant: "access-1"}
	lister := newTestDriveLister(t, fake, "")

	listing, err := lister.ListFiles(context.Background(), service.ProviderGrant{AccessGrant: "access-1"}, 10)
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderTypeGoogle, lister.Provider())
	assert.Equal(t, []service.ProviderFile{{ID: "f1", Name: "budget.xlsx"}, {ID: "f2", Name: "notes.txt"}}, listing.Files)
	assert.Empty(t, listing.AccessGrant)
	require.Len(t, fake.queries, 1)
	assert.Contains(t, fake.queries[0], "pageSize=10")
	assert.Equal(t, []string{"Bearer access-1"}, fake.authHeaders)
}

func TestDriveLister_RefreshesExpiredGrant(t *testing.T) {
	fake := &fakeGoogle{validGrant: "access-2"}
	lister := newTestDriveLister(t, fake, "test_secret")

	listing, err := lister.ListFiles(context.Background(), service.ProviderGrant{AccessGrant: "access-1", RefreshGrant: "refresh-1"}, 5)
	require.NoError(t, err)

	assert.Len(t, listing.Files, 2)
	assert.Equal(t, "access-2", listing.AccessGrant)
	assert.Equal(t, []string{"Bearer access-1", "Bearer access-2"}, fake.authHeaders)
}

func TestDriveLister_RefreshesWhenOnlyRefreshGrantStored(t *testing.T) {
	fake := &fakeGoogle{validGrant: "access-2"}
	lister := newTestDriveLister(t, fake, "test_secret")

	listing, err := lister.ListFiles(context.Background(), service.ProviderGrant{RefreshGrant: "refresh-1"}, 5)
	require.NoError(t, err)
	assert.Equal(t, "access-2", listing.AccessGrant)
}

func TestDriveLister_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("expired grant without client secret", func(t *testing.T) {
		lister := newTestDriveLister(t, &fakeGoogle{validGrant: "access-2"}, "")

		_, err := lister.ListFiles(ctx, service.ProviderGrant{AccessGrant: "access-1", RefreshGrant: "refresh-1"}, 5)
		assert.True(t, errors.Is(err, service.ErrGrantRejected))
	})

	t.Run("no grant at all", func(t *testing.T) {
		lister := newTestDriveLister(t, &fakeGoogle{}, "test_secret")

		_, err := lister.ListFiles(ctx, service.ProviderGrant{}, 5)
		assert.True(t, errors.Is(err, service.ErrGrantRejected))
	})

	t.Run("refresh grant revoked", func(t *testing.T) {
		lister := newTestDriveLister(t, &fakeGoogle{validGrant: "access-2", tokenStatus: http.StatusBadRequest}, "test_secret")

		_, err := lister.ListFiles(ctx, service.ProviderGrant{AccessGrant: "access-1", RefreshGrant: "refresh-1"}, 5)
		assert.True(t, errors.Is(err, service.ErrGrantRejected))
	})

	t.Run("drive outage is not a grant problem", func(t *testing.T) {
		lister := newTestDriveLister(t, &fakeGoogle{validGrant: "access-1", listStatus: http.StatusInternalServerError}, "")

		_, err := lister.ListFiles(ctx, service.ProviderGrant{AccessGrant: "access-1"}, 5)
		require.Error(t, err)
		assert.False(t, errors.Is(err, service.ErrGrantRejected))
	})
}
