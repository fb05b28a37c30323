package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newExchangeServer(t *testing.T, status int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "app-id", r.URL.Query().Get("client_id"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`)
			return
		}

		fmt.Fprintf(w, `{"access_token":"long-%s","token_type":"bearer","expires_in":5184000}`,
			r.URL.Query().Get("fb_exchange_token"))
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestTokenManager(serverURL, accessToken string, store ConnectionStore) *TokenManager {
	tm := NewTokenManager(config.Meta{
		URL:         serverURL,
		AppID:       "app-id",
		AppSecret:   "app-secret",
		AccessToken: accessToken,
		Timeout:     5 * time.Second,
	}, store)
	tm.now = func() time.Time { return fixedNow }
	return tm
}

func TestTokenManager_BootstrapsFromConfiguredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)
	server := newExchangeServer(t, http.StatusOK)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(nil, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, conn *domain.PlatformConnection) error {
		assert.NotEmpty(t, conn.ID)
		assert.Equal(t, domain.PlatformMeta, conn.Platform)
		assert.Equal(t, "long-short", conn.AccessToken)
		assert.Equal(t, fixedNow.Add(60*24*time.Hour), conn.ExpiresAt)
		return nil
	})

	tm := newTestTokenManager(server.URL, "short", store)

	token, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "long-short", token)

	// a conexão fica em memória após a primeira chamada
	token, err = tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "long-short", token)
}

func TestTokenManager_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(nil, nil)

	tm := newTestTokenManager("http://unused", "", store)

	_, err := tm.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestTokenManager_UsesStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(&domain.PlatformConnection{
		ID:          "conn01",
		Platform:    domain.PlatformMeta,
		AccessToken: "stored",
		ExpiresAt:   fixedNow.Add(30 * 24 * time.Hour),
	}, nil)

	tm := newTestTokenManager("http://unused", "", store)

	token, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stored", token)
}

func TestTokenManager_RefreshesNearExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)
	server := newExchangeServer(t, http.StatusOK)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(&domain.PlatformConnection{
		ID:          "conn01",
		Platform:    domain.PlatformMeta,
		AccessToken: "stored",
		ExpiresAt:   fixedNow.Add(2 * time.Hour),
	}, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, conn *domain.PlatformConnection) error {
		assert.Equal(t, "conn01", conn.ID)
		assert.Equal(t, "long-stored", conn.AccessToken)
		return nil
	})

	tm := newTestTokenManager(server.URL, "", store)

	token, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "long-stored", token)
}

func TestTokenManager_KeepsCurrentTokenWhenRefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)
	server := newExchangeServer(t, http.StatusBadRequest)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(&domain.PlatformConnection{
		ID:          "conn01",
		Platform:    domain.PlatformMeta,
		AccessToken: "stored",
		ExpiresAt:   fixedNow.Add(2 * time.Hour),
	}, nil)

	tm := newTestTokenManager(server.URL, "", store)

	token, err := tm.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stored", token)
}

func TestTokenManager_ExpiredTokenRequiresReauthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)
	server := newExchangeServer(t, http.StatusBadRequest)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(&domain.PlatformConnection{
		ID:          "conn01",
		Platform:    domain.PlatformMeta,
		AccessToken: "stored",
		ExpiresAt:   fixedNow.Add(-time.Hour),
	}, nil)

	tm := newTestTokenManager(server.URL, "", store)

	_, err := tm.Token(context.Background())
	assert.ErrorIs(t, err, ErrReauthorizationRequired)

	err = tm.HandleExpired(context.Background())
	assert.ErrorIs(t, err, ErrReauthorizationRequired)
}

func TestTokenManager_SaveLongLivedPropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConnectionRepository(ctrl)
	server := newExchangeServer(t, http.StatusOK)

	store.EXPECT().GetByPlatform(gomock.Any(), domain.PlatformMeta).Return(nil, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	tm := newTestTokenManager(server.URL, "", store)

	_, err := tm.SaveLongLived(context.Background(), "oauth-code-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestTokenManager_StartAutoRefreshStopsOnCancel(t *testing.T) {
	tm := newTestTokenManager("http://unused", "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tm.StartAutoRefresh(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("auto refresh did not stop")
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "60 dias, 0 horas e 0 minutos", FormatDuration(5184000))
	assert.Equal(t, "0 dias, 1 horas e 30 minutos", FormatDuration(5400))
}
