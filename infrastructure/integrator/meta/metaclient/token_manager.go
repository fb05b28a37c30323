package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

const (
	refreshWindow        = 24 * time.Hour
	autoRefreshInterval  = 23 * time.Hour
	retryRefreshInterval = time.Hour
)

// ConnectionStore persiste a conexão com o Meta
type ConnectionStore interface {
	GetByPlatform(ctx context.Context, platform domain.Platform) (*domain.PlatformConnection, error)
	Save(ctx context.Context, connection *domain.PlatformConnection) error
}

// TokenManager gerencia o token de longa duração da API do Meta. O token fica
// salvo (cifrado) no banco e é renovado antes de expirar.
type TokenManager struct {
	cfg        config.Meta
	store      ConnectionStore
	httpClient *http.Client
	mu         sync.Mutex
	connection *domain.PlatformConnection
	now        func() time.Time
}

func NewTokenManager(cfg config.Meta, store ConnectionStore) *TokenManager {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &TokenManager{
		cfg:        cfg,
		store:      store,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Token retorna o token atual, renovando quando estiver perto de expirar
func (tm *TokenManager) Token(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := tm.load(ctx); err != nil {
		return "", err
	}

	if tm.connection == nil {
		if tm.cfg.AccessToken == "" {
			return "", ErrNotConnected
		}

		logrus.Info("Token de longa duração não encontrado. Iniciando processo de obtenção...")
		if _, err := tm.exchangeAndSave(ctx, tm.cfg.AccessToken); err != nil {
			return "", fmt.Errorf("erro ao inicializar token de longa duração: %w", err)
		}
		return tm.connection.AccessToken, nil
	}

	if tm.connection.ExpiresWithin(refreshWindow, tm.now()) {
		if _, err := tm.exchangeAndSave(ctx, tm.connection.AccessToken); err != nil {
			if tm.connection.ExpiresWithin(0, tm.now()) {
				return "", fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
			}
			logrus.WithError(err).Warn("Falha ao renovar token, usando o token atual até a expiração")
		}
	}

	return tm.connection.AccessToken, nil
}

// RefreshToken troca o token atual por um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := tm.load(ctx); err != nil {
		return err
	}

	token := tm.cfg.AccessToken
	if tm.connection != nil {
		token = tm.connection.AccessToken
	}
	if token == "" {
		return ErrNotConnected
	}

	logrus.Info("Iniciando renovação do token...")
	_, err := tm.exchangeAndSave(ctx, token)
	return err
}

// HandleExpired é chamado quando a API rejeita o token por expiração
func (tm *TokenManager) HandleExpired(ctx context.Context) error {
	if err := tm.RefreshToken(ctx); err != nil {
		logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
		return fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
	}
	return nil
}

// SaveLongLived troca um token de curta duração, obtido no fluxo OAuth, e o persiste
func (tm *TokenManager) SaveLongLived(ctx context.Context, shortToken string) (*domain.PlatformConnection, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := tm.load(ctx); err != nil {
		return nil, err
	}

	return tm.exchangeAndSave(ctx, shortToken)
}

// StartAutoRefresh renova o token periodicamente até o contexto ser cancelado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	ticker := time.NewTicker(autoRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(retryRefreshInterval)
				continue
			}
			logrus.Info("Renovação periódica do token concluída com sucesso")
			ticker.Reset(autoRefreshInterval)
		case <-ctx.Done():
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// load busca a conexão salva na primeira chamada. Deve ser chamado com mu travado.
func (tm *TokenManager) load(ctx context.Context) error {
	if tm.connection != nil {
		return nil
	}

	connection, err := tm.store.GetByPlatform(ctx, domain.PlatformMeta)
	if err != nil {
		return fmt.Errorf("erro ao carregar conexão do Meta: %w", err)
	}
	tm.connection = connection

	return nil
}

func (tm *TokenManager) exchangeAndSave(ctx context.Context, token string) (*domain.PlatformConnection, error) {
	tokenResponse, err := ExchangeToken(ctx, tm.httpClient, tm.cfg.URL, tm.cfg.AppID, tm.cfg.AppSecret, token)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	var connection *domain.PlatformConnection
	if tm.connection != nil {
		copied := *tm.connection
		connection = &copied
	} else {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id da conexão: %w", err)
		}
		connection = &domain.PlatformConnection{ID: id, Platform: domain.PlatformMeta}
	}
	connection.AccessToken = tokenResponse.AccessToken
	connection.TokenType = tokenResponse.TokenType
	connection.ExpiresAt = tokenResponse.ExpiresAt(tm.now())

	if err := tm.store.Save(ctx, connection); err != nil {
		return nil, fmt.Errorf("erro ao salvar token: %w", err)
	}
	tm.connection = connection

	logrus.WithFields(logrus.Fields{
		"expires_at": connection.ExpiresAt.Format(time.RFC3339),
	}).Info("Token de longa duração salvo com sucesso")

	return connection, nil
}
