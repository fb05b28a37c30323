package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/resilience"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de páginas seguidas por listagem
const maxPages = 1000

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetInsights(ctx context.Context, accountID string, level domain.InsightLevel, since, until time.Time) ([]metadomain.Insight, error)
	GetBusinesses(ctx context.Context) ([]metadomain.Business, error)
	GetAdAccountsByBusinessID(ctx context.Context, businessID string) ([]metadomain.AdAccount, error)
}

// TokenSource fornece o token de acesso e trata tokens expirados
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	HandleExpired(ctx context.Context) error
}

type MetaClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	tokens     TokenSource
}

func NewClient(cfg config.Meta, tokens TokenSource) *MetaClient {
	return &MetaClient{
		baseURL:    cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    resilience.NewLimiter(cfg.RequestsPerMinute),
		breaker:    resilience.NewBreaker("meta-graph-api"),
		tokens:     tokens,
	}
}

// get executa um GET autenticado, repetindo uma única vez quando o token foi renovado
func (c *MetaClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := c.getOnce(ctx, rawURL)
	if errors.Is(err, ErrTokenRenewed) {
		return c.getOnce(ctx, rawURL)
	}
	return body, err
}

func (c *MetaClient) getOnce(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("metaclient: aguardando limite de requisições: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("metaclient: erro ao obter token: %w", err)
	}

	requestURL, err := withAccessToken(rawURL, token)
	if err != nil {
		return nil, err
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, requestURL)
	})
	if err == nil {
		return body, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":    apiErr.Response.Error.Code,
			"subcode": apiErr.Response.Error.ErrorSubcode,
		}).Warn("metaclient: token expirado detectado pela API Meta")

		if refreshErr := c.tokens.HandleExpired(ctx); refreshErr != nil {
			return nil, fmt.Errorf("metaclient: erro ao renovar token expirado: %w", refreshErr)
		}
		return nil, ErrTokenRenewed
	}

	return nil, err
}

func (c *MetaClient) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("metaclient: erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metaclient: erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metaclient: erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, &APIError{
		StatusCode: resp.StatusCode,
		Response:   parseErrorResponse(body),
		Body:       string(body),
	}
}

func parseErrorResponse(body []byte) *metadomain.ErrorResponse {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Code == 0 {
		return nil
	}
	return &errorResp
}

func (c *MetaClient) endpoint(path string, params url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())
}

// withAccessToken substitui o access_token da URL, inclusive nas URLs paging.next
func withAccessToken(rawURL, token string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("metaclient: URL inválida: %w", err)
	}

	query := parsed.Query()
	query.Set("access_token", token)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// getAllPages segue paging.next até a última página
func getAllPages[T any](ctx context.Context, c *MetaClient, firstURL string) ([]T, error) {
	items := make([]T, 0)
	next := firstURL

	for page := 0; next != "" && page < maxPages; page++ {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var response metadomain.Page[T]
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("metaclient: erro ao decodificar JSON: %w", err)
		}

		items = append(items, response.Data...)
		next = response.Paging.Next
	}

	return items, nil
}
