// Package connecting conduz o login OAuth das plataformas de anúncios e guarda as
// credenciais obtidas.
package connecting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/cache"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

const (
	statePrefix = "oauth_state:"
	stateTTL    = 10 * time.Minute
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Connector interface {
	AuthorizeURL(ctx context.Context, platform domain.Platform) (string, error)
	HandleCallback(ctx context.Context, platform domain.Platform, state, code string) (*domain.PlatformConnection, error)
}

// LongLivedTokenSaver troca o token curto do Meta por um de longa duração e o persiste
type LongLivedTokenSaver interface {
	SaveLongLived(ctx context.Context, shortToken string) (*domain.PlatformConnection, error)
}

// TokenSourceResetter descarta o TokenSource memorizado após uma nova conexão
type TokenSourceResetter interface {
	Reset()
}

type Service struct {
	cache          cache.Cache
	oauthConfigs   map[domain.Platform]*oauth2.Config
	connectionRepo repository.ConnectionRepository
	metaTokens     LongLivedTokenSaver
	googleTokens   TokenSourceResetter
}

func NewService(
	c cache.Cache,
	oauthConfigs map[domain.Platform]*oauth2.Config,
	connectionRepo repository.ConnectionRepository,
	metaTokens LongLivedTokenSaver,
	googleTokens TokenSourceResetter,
) *Service {
	return &Service{
		cache:          c,
		oauthConfigs:   oauthConfigs,
		connectionRepo: connectionRepo,
		metaTokens:     metaTokens,
		googleTokens:   googleTokens,
	}
}

// AuthorizeURL gera a URL de consentimento com um state de uso único
func (s *Service) AuthorizeURL(ctx context.Context, platform domain.Platform) (string, error) {
	oauthConfig, err := s.config(platform)
	if err != nil {
		return "", err
	}

	state, err := utils.GenerateToken()
	if err != nil {
		return "", NewConnectionError(err, apiErrors.ErrInternalServer, string(platform), "Falha ao gerar state")
	}

	if err := s.cache.Set(ctx, statePrefix+state, []byte(platform), stateTTL); err != nil {
		return "", NewConnectionError(err, apiErrors.ErrInternalServer, string(platform), "Falha ao guardar state")
	}

	opts := []oauth2.AuthCodeOption{}
	if platform == domain.PlatformGoogle {
		// o refresh token só é emitido com acesso offline e consentimento explícito
		opts = append(opts, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	}

	return oauthConfig.AuthCodeURL(state, opts...), nil
}

// HandleCallback valida o state, troca o código por tokens e salva a conexão
func (s *Service) HandleCallback(ctx context.Context, platform domain.Platform, state, code string) (*domain.PlatformConnection, error) {
	oauthConfig, err := s.config(platform)
	if err != nil {
		return nil, err
	}

	if err := s.consumeState(ctx, platform, state); err != nil {
		return nil, err
	}

	if code == "" {
		return nil, NewConnectionError(ErrMissingCode, apiErrors.ErrMissingRequiredData, string(platform), "")
	}

	logger := logrus.WithField("platform", platform)

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.WithError(err).Error("Erro ao trocar código de autorização")
		return nil, NewConnectionError(ErrExchangeCode, apiErrors.ErrExternalService, string(platform), err.Error())
	}

	var connection *domain.PlatformConnection
	switch platform {
	case domain.PlatformMeta:
		connection, err = s.metaTokens.SaveLongLived(ctx, token.AccessToken)
	default:
		connection, err = s.saveGoogle(ctx, token)
	}
	if err != nil {
		logger.WithError(err).Error("Erro ao salvar conexão da plataforma")
		return nil, NewConnectionError(ErrSaveConnection, apiErrors.ErrDatabaseOperation, string(platform), err.Error())
	}

	logger.WithField("expires_at", connection.ExpiresAt).Info("Plataforma conectada com sucesso")

	return connection, nil
}

func (s *Service) saveGoogle(ctx context.Context, token *oauth2.Token) (*domain.PlatformConnection, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	connection := &domain.PlatformConnection{
		ID:           id,
		Platform:     domain.PlatformGoogle,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.Type(),
		ExpiresAt:    token.Expiry,
	}

	if err := s.connectionRepo.Save(ctx, connection); err != nil {
		return nil, err
	}

	s.googleTokens.Reset()

	return connection, nil
}

func (s *Service) config(platform domain.Platform) (*oauth2.Config, error) {
	oauthConfig, ok := s.oauthConfigs[platform]
	if !ok || oauthConfig == nil || oauthConfig.ClientID == "" {
		return nil, NewConnectionError(ErrPlatformNotSupported, apiErrors.ErrInvalidRequest, string(platform), "")
	}
	return oauthConfig, nil
}

// consumeState aceita o state uma única vez e apenas para a plataforma que o gerou
func (s *Service) consumeState(ctx context.Context, platform domain.Platform, state string) error {
	if state == "" {
		return NewConnectionError(ErrInvalidState, apiErrors.ErrInvalidOAuthState, string(platform), "")
	}

	key := statePrefix + state
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		return NewConnectionError(err, apiErrors.ErrInternalServer, string(platform), "Falha ao ler state")
	}

	if !ok || domain.Platform(value) != platform {
		return NewConnectionError(ErrInvalidState, apiErrors.ErrInvalidOAuthState, string(platform), "")
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		logrus.WithError(err).Warn("Falha ao remover state do cache")
	}

	return nil
}
