package googleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	googledomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/resilience"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetInsights(ctx context.Context, customerID string, level domain.InsightLevel, since, until time.Time) ([]googledomain.Row, error)
	ListAccessibleCustomers(ctx context.Context) ([]string, error)
	GetCustomer(ctx context.Context, customerID string) (*googledomain.Customer, error)
}

type GoogleClient struct {
	baseURL         string
	developerToken  string
	loginCustomerID string
	timeout         time.Duration
	limiter         *rate.Limiter
	breaker         *gobreaker.CircuitBreaker[[]byte]
	tokens          TokenProvider
}

func NewClient(cfg config.Google, tokens TokenProvider) *GoogleClient {
	return &GoogleClient{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		developerToken:  cfg.DeveloperToken,
		loginCustomerID: NormalizeCustomerID(cfg.LoginCustomerID),
		timeout:         cfg.Timeout,
		limiter:         resilience.NewLimiter(cfg.RequestsPerMinute),
		breaker:         resilience.NewBreaker("google-ads-api"),
		tokens:          tokens,
	}
}

// GetInsights executa a consulta GAQL do nível com segmentação diária
func (c *GoogleClient) GetInsights(ctx context.Context, customerID string, level domain.InsightLevel, since, until time.Time) ([]googledomain.Row, error) {
	query := BuildInsightsQuery(level, since, until)

	rows, err := c.searchStream(ctx, customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": customerID,
			"level":      level,
			"error":      err.Error(),
		}).Error("insights: failed to get google ads insights from API")
		return nil, err
	}

	return rows, nil
}

func (c *GoogleClient) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/customers:listAccessibleCustomers", nil)
	if err != nil {
		return nil, err
	}

	var response googledomain.ListAccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("googleclient: erro ao decodificar JSON: %w", err)
	}

	ids := make([]string, 0, len(response.ResourceNames))
	for _, name := range response.ResourceNames {
		ids = append(ids, strings.TrimPrefix(name, "customers/"))
	}

	return ids, nil
}

// GetCustomer retorna nil, nil quando a conta não devolve linhas
func (c *GoogleClient) GetCustomer(ctx context.Context, customerID string) (*googledomain.Customer, error) {
	rows, err := c.searchStream(ctx, customerID, customerQuery)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Customer != nil {
			return row.Customer, nil
		}
	}

	return nil, nil
}

func (c *GoogleClient) searchStream(ctx context.Context, customerID, query string) ([]googledomain.Row, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.baseURL, NormalizeCustomerID(customerID))

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("googleclient: erro ao serializar consulta: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var batches []googledomain.SearchStreamBatch
	if err := json.Unmarshal(body, &batches); err != nil {
		return nil, fmt.Errorf("googleclient: erro ao decodificar JSON: %w", err)
	}

	rows := make([]googledomain.Row, 0)
	for _, batch := range batches {
		rows = append(rows, batch.Results...)
	}

	return rows, nil
}

func (c *GoogleClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("googleclient: aguardando limite de requisições: %w", err)
	}

	source, err := c.tokens.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: source,
			Base:   http.DefaultTransport,
		},
	}

	return c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, fmt.Errorf("googleclient: erro ao criar a requisição: %w", err)
		}

		req.Header.Set("developer-token", c.developerToken)
		if c.loginCustomerID != "" {
			req.Header.Set("login-customer-id", c.loginCustomerID)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("googleclient: erro ao fazer a requisição: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("googleclient: erro ao ler resposta: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Response:   parseErrorResponse(body),
				Body:       string(body),
			}
		}

		return body, nil
	})
}

// NormalizeCustomerID remove os hífens do formato exibido no painel (123-456-7890)
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
}
