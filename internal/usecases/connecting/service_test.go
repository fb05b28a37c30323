package connecting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	repomocks "github.com/vfg2006/ads-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/connecting/mocks"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/cache"
)

type fixture struct {
	cache          *cache.MemoryCache
	connectionRepo *repomocks.MockConnectionRepository
	metaTokens     *mocks.MockLongLivedTokenSaver
	googleTokens   *mocks.MockTokenSourceResetter
	service        *Service
}

func newTokenServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func oauthConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/callback",
		Scopes:       []string{"ads_read"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://auth.example.com/authorize",
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func newFixture(t *testing.T, tokenURL string) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		cache:          cache.NewMemoryCache(),
		connectionRepo: repomocks.NewMockConnectionRepository(ctrl),
		metaTokens:     mocks.NewMockLongLivedTokenSaver(ctrl),
		googleTokens:   mocks.NewMockTokenSourceResetter(ctrl),
	}

	configs := map[domain.Platform]*oauth2.Config{
		domain.PlatformMeta:   oauthConfig(tokenURL),
		domain.PlatformGoogle: oauthConfig(tokenURL),
	}

	f.service = NewService(f.cache, configs, f.connectionRepo, f.metaTokens, f.googleTokens)
	return f
}

func stateFrom(t *testing.T, authURL string) string {
	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	return parsed.Query().Get("state")
}

func TestService_AuthorizeURL(t *testing.T) {
	f := newFixture(t, "http://unused")

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformMeta)
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "auth.example.com", parsed.Host)
	assert.Equal(t, "client-id", parsed.Query().Get("client_id"))
	assert.Empty(t, parsed.Query().Get("access_type"))

	state := parsed.Query().Get("state")
	require.Len(t, state, 21)

	value, ok, err := f.cache.Get(context.Background(), statePrefix+state)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "meta", string(value))
}

func TestService_AuthorizeURLGoogleOffline(t *testing.T) {
	f := newFixture(t, "http://unused")

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformGoogle)
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "offline", parsed.Query().Get("access_type"))
	assert.Equal(t, "consent", parsed.Query().Get("prompt"))
}

func TestService_AuthorizeURLNotConfigured(t *testing.T) {
	service := NewService(cache.NewMemoryCache(), map[domain.Platform]*oauth2.Config{
		domain.PlatformMeta: {},
	}, nil, nil, nil)

	_, err := service.AuthorizeURL(context.Background(), domain.PlatformMeta)
	assert.ErrorIs(t, err, ErrPlatformNotSupported)

	_, err = service.AuthorizeURL(context.Background(), domain.PlatformGoogle)
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, connErr.Code)
}

func TestService_HandleCallbackMeta(t *testing.T) {
	server := newTokenServer(t, http.StatusOK, `{"access_token":"short-token","token_type":"bearer","expires_in":3600}`)
	f := newFixture(t, server.URL)

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformMeta)
	require.NoError(t, err)
	state := stateFrom(t, authURL)

	f.metaTokens.EXPECT().SaveLongLived(gomock.Any(), "short-token").Return(&domain.PlatformConnection{
		ID:          "con001",
		Platform:    domain.PlatformMeta,
		AccessToken: "long-token",
	}, nil)

	connection, err := f.service.HandleCallback(context.Background(), domain.PlatformMeta, state, "the-code")
	require.NoError(t, err)
	assert.Equal(t, "long-token", connection.AccessToken)

	// o state é de uso único
	_, err = f.service.HandleCallback(context.Background(), domain.PlatformMeta, state, "the-code")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_HandleCallbackGoogle(t *testing.T) {
	server := newTokenServer(t, http.StatusOK, `{"access_token":"access","refresh_token":"refresh","token_type":"Bearer","expires_in":3599}`)
	f := newFixture(t, server.URL)

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformGoogle)
	require.NoError(t, err)

	f.connectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, connection *domain.PlatformConnection) error {
		assert.Len(t, connection.ID, 6)
		assert.Equal(t, domain.PlatformGoogle, connection.Platform)
		assert.Equal(t, "access", connection.AccessToken)
		assert.Equal(t, "refresh", connection.RefreshToken)
		assert.Equal(t, "Bearer", connection.TokenType)
		assert.False(t, connection.ExpiresAt.IsZero())
		return nil
	})
	f.googleTokens.EXPECT().Reset()

	connection, err := f.service.HandleCallback(context.Background(), domain.PlatformGoogle, stateFrom(t, authURL), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "refresh", connection.RefreshToken)
}

func TestService_HandleCallbackGoogleSaveError(t *testing.T) {
	server := newTokenServer(t, http.StatusOK, `{"access_token":"access","refresh_token":"refresh","token_type":"Bearer","expires_in":3599}`)
	f := newFixture(t, server.URL)

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformGoogle)
	require.NoError(t, err)

	f.connectionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err = f.service.HandleCallback(context.Background(), domain.PlatformGoogle, stateFrom(t, authURL), "the-code")
	assert.ErrorIs(t, err, ErrSaveConnection)
}

func TestService_HandleCallbackInvalidState(t *testing.T) {
	f := newFixture(t, "http://unused")

	_, err := f.service.HandleCallback(context.Background(), domain.PlatformMeta, "", "the-code")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = f.service.HandleCallback(context.Background(), domain.PlatformMeta, "unknown", "the-code")
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, apiErrors.ErrInvalidOAuthState, connErr.Code)
}

func TestService_HandleCallbackStateFromOtherPlatform(t *testing.T) {
	f := newFixture(t, "http://unused")

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformGoogle)
	require.NoError(t, err)

	_, err = f.service.HandleCallback(context.Background(), domain.PlatformMeta, stateFrom(t, authURL), "the-code")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_HandleCallbackMissingCode(t *testing.T) {
	f := newFixture(t, "http://unused")

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformMeta)
	require.NoError(t, err)

	_, err = f.service.HandleCallback(context.Background(), domain.PlatformMeta, stateFrom(t, authURL), "")
	assert.ErrorIs(t, err, ErrMissingCode)
}

func TestService_HandleCallbackExchangeError(t *testing.T) {
	server := newTokenServer(t, http.StatusBadRequest, `{"error":"invalid_grant"}`)
	f := newFixture(t, server.URL)

	authURL, err := f.service.AuthorizeURL(context.Background(), domain.PlatformMeta)
	require.NoError(t, err)

	_, err = f.service.HandleCallback(context.Background(), domain.PlatformMeta, stateFrom(t, authURL), "the-code")
	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, apiErrors.ErrExternalService, connErr.Code)
	assert.ErrorIs(t, err, ErrExchangeCode)
}
