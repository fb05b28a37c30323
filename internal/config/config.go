package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Encryption  Encryption  `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	InsightSync InsightSync `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	AccessToken       string        `mapstructure:"meta_access_token"`
	AppID             string        `mapstructure:"meta_app_id"`
	AppSecret         string        `mapstructure:"meta_app_secret"`
	RedirectURL       string        `mapstructure:"meta_redirect_url"`
	RequestsPerMinute int           `mapstructure:"meta_requests_per_minute"`
	Timeout           time.Duration `mapstructure:"meta_timeout"`
}

type Google struct {
	BaseURL           string        `mapstructure:"google_ads_base_url"`
	ClientID          string        `mapstructure:"google_client_id"`
	ClientSecret      string        `mapstructure:"google_client_secret"`
	DeveloperToken    string        `mapstructure:"google_developer_token"`
	LoginCustomerID   string        `mapstructure:"google_login_customer_id"`
	RedirectURL       string        `mapstructure:"google_redirect_url"`
	RequestsPerMinute int           `mapstructure:"google_requests_per_minute"`
	Timeout           time.Duration `mapstructure:"google_timeout"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Cache struct {
	Namespace string        `mapstructure:"cache_namespace"`
	GapsTTL   time.Duration `mapstructure:"cache_gaps_ttl"`
}

type Encryption struct {
	Key string `mapstructure:"encryption_key"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type InsightSync struct {
	CronSchedule        string `mapstructure:"insight_sync_cron"`
	LookbackDays        int    `mapstructure:"insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"insight_sync_max_concurrent_jobs"`
	MaxRetries          int    `mapstructure:"insight_sync_max_retries"`
	Enabled             bool   `mapstructure:"insight_sync_enabled"`
}

// Tamanho exigido pela chave do chacha20poly1305
const encryptionKeySize = 32

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_REDIRECT_URL", "http://localhost:8000/v1/connections/meta/callback")
	viper.SetDefault("META_REQUESTS_PER_MINUTE", 200)
	viper.SetDefault("META_TIMEOUT", "30s")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:8000/v1/connections/google/callback")
	viper.SetDefault("GOOGLE_REQUESTS_PER_MINUTE", 60)
	viper.SetDefault("GOOGLE_TIMEOUT", "30s")

	viper.SetDefault("REDIS_ADDR", "") // vazio usa o cache em memória
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("CACHE_NAMESPACE", "ads-insights")
	viper.SetDefault("CACHE_GAPS_TTL", "15m")

	viper.SetDefault("ENCRYPTION_KEY", "")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	// Defaults para sincronização de insights
	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("INSIGHT_SYNC_MAX_RETRIES", 3)           // tentativas por requisição
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica a configuração uma única vez na inicialização
func (c *Config) Validate() error {
	var problems []string

	if c.Auth.Secret == "" {
		problems = append(problems, "AUTH_SECRET é obrigatório")
	}

	if len(c.Encryption.Key) != encryptionKeySize {
		problems = append(problems, fmt.Sprintf("ENCRYPTION_KEY deve ter %d caracteres", encryptionKeySize))
	}

	if c.Meta.RequestsPerMinute <= 0 {
		problems = append(problems, "META_REQUESTS_PER_MINUTE deve ser maior que zero")
	}

	if c.Google.RequestsPerMinute <= 0 {
		problems = append(problems, "GOOGLE_REQUESTS_PER_MINUTE deve ser maior que zero")
	}

	if c.InsightSync.Enabled {
		if c.InsightSync.CronSchedule == "" {
			problems = append(problems, "INSIGHT_SYNC_CRON é obrigatório com a sincronização habilitada")
		}
		if c.InsightSync.LookbackDays <= 0 {
			problems = append(problems, "INSIGHT_SYNC_LOOKBACK_DAYS deve ser maior que zero")
		}
		if c.InsightSync.MaxConcurrentJobs <= 0 {
			problems = append(problems, "INSIGHT_SYNC_MAX_CONCURRENT_JOBS deve ser maior que zero")
		}
	}

	if c.InsightSync.MaxRetries < 0 {
		problems = append(problems, "INSIGHT_SYNC_MAX_RETRIES não pode ser negativo")
	}

	if len(problems) > 0 {
		return errors.Errorf("config: configuração inválida: %s", strings.Join(problems, "; "))
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
