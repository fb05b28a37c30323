package googleclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// AdWordsScope é o escopo OAuth exigido pela API do Google Ads
const AdWordsScope = "https://www.googleapis.com/auth/adwords"

// OAuthConfig monta a configuração OAuth2 do Google Ads
func OAuthConfig(cfg config.Google) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{AdWordsScope},
		Endpoint:     google.Endpoint,
	}
}

// ConnectionStore persiste a conexão com o Google
type ConnectionStore interface {
	GetByPlatform(ctx context.Context, platform domain.Platform) (*domain.PlatformConnection, error)
	Save(ctx context.Context, connection *domain.PlatformConnection) error
}

type TokenProvider interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// ConnectionTokens cria o TokenSource a partir da conexão salva. Tokens renovados pelo
// oauth2 voltam para o banco.
type ConnectionTokens struct {
	oauthConfig *oauth2.Config
	store       ConnectionStore
	mu          sync.Mutex
	source      oauth2.TokenSource
}

func NewConnectionTokens(oauthConfig *oauth2.Config, store ConnectionStore) *ConnectionTokens {
	return &ConnectionTokens{
		oauthConfig: oauthConfig,
		store:       store,
	}
}

func (t *ConnectionTokens) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.source != nil {
		return t.source, nil
	}

	connection, err := t.store.GetByPlatform(ctx, domain.PlatformGoogle)
	if err != nil {
		return nil, fmt.Errorf("googleclient: erro ao carregar conexão: %w", err)
	}
	if connection == nil || (connection.AccessToken == "" && connection.RefreshToken == "") {
		return nil, ErrNotConnected
	}

	token := &oauth2.Token{
		AccessToken:  connection.AccessToken,
		RefreshToken: connection.RefreshToken,
		TokenType:    connection.TokenType,
		Expiry:       connection.ExpiresAt,
	}

	// o TokenSource sobrevive à requisição atual, por isso não herda ctx
	base := t.oauthConfig.TokenSource(context.Background(), token)
	t.source = oauth2.ReuseTokenSource(token, &persistingSource{
		base:       base,
		store:      t.store,
		connection: *connection,
		last:       token.AccessToken,
	})

	return t.source, nil
}

// Reset descarta o TokenSource em memória; usado após uma nova autorização
func (t *ConnectionTokens) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.source = nil
}

type persistingSource struct {
	base       oauth2.TokenSource
	store      ConnectionStore
	mu         sync.Mutex
	connection domain.PlatformConnection
	last       string
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	token, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if token.AccessToken == p.last {
		return token, nil
	}

	p.connection.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		p.connection.RefreshToken = token.RefreshToken
	}
	p.connection.TokenType = token.TokenType
	p.connection.ExpiresAt = token.Expiry
	p.last = token.AccessToken

	if err := p.store.Save(context.Background(), &p.connection); err != nil {
		logrus.WithError(err).Error("googleclient: falha ao salvar token renovado")
	} else {
		logrus.WithField("expires_at", token.Expiry).Info("googleclient: token do Google renovado")
	}

	return token, nil
}
