package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/google"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/api"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/gaps"
	"github.com/vfg2006/ads-insights-api/internal/scheduler"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-insights-api/pkg/cache"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/secure"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	log.SetEnvironment(cfg.App.Env)

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	appCache := newCache(ctx, cfg)

	cipher, err := secure.NewCipher(cfg.Encryption.Key)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cifra de tokens")
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)
	syncJobRepo := repository.NewSyncJobRepository(pgConn)
	connectionRepo := repository.NewConnectionRepository(pgConn, cipher)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	tokenManager := metaclient.NewTokenManager(cfg.Meta, connectionRepo)
	go tokenManager.StartAutoRefresh(ctx)

	googleOAuth := googleclient.OAuthConfig(cfg.Google)
	googleTokens := googleclient.NewConnectionTokens(googleOAuth, connectionRepo)

	metaIntegrator := meta.New(metaclient.NewClient(cfg.Meta, tokenManager))
	googleIntegrator := google.New(googleclient.NewClient(cfg.Google, googleTokens))

	detector := gaps.NewDetector(insightRepo, appCache, cfg.Cache.GapsTTL)

	accountService := account.NewService(accountRepo, metaIntegrator, googleIntegrator)
	insightService := insighting.NewService(accountRepo, insightRepo, detector)
	syncService := syncing.NewService(accountRepo, insightRepo, syncJobRepo, detector, cfg.InsightSync, metaIntegrator, googleIntegrator)

	connector := connecting.NewService(
		appCache,
		map[domain.Platform]*oauth2.Config{
			domain.PlatformMeta:   metaclient.OAuthConfig(cfg.Meta),
			domain.PlatformGoogle: googleOAuth,
		},
		connectionRepo,
		tokenManager,
		googleTokens,
	)

	insightSyncService := scheduler.NewInsightSyncService(syncService, cfg.InsightSync)
	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights")
	} else {
		logrus.Info("Agendador de sincronização de insights iniciado com sucesso")
	}
	defer insightSyncService.Stop()

	server, err := api.New(
		cfg,
		authenticator,
		accountService,
		insightService,
		syncService,
		connector,
		insightSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newCache usa o Redis quando REDIS_ADDR está definido e o cache em memória caso contrário
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.Redis.Addr == "" {
		logrus.Info("REDIS_ADDR vazio, usando cache em memória")
		return cache.NewMemoryCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		return cache.NewMemoryCache()
	}

	logrus.WithField("addr", cfg.Redis.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return cache.NewRedisCache(client, cfg.Cache.Namespace)
}
