package gaps

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/cache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cachePrefix = "gaps:"

//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks

// DatesProvider lista as datas (YYYY-MM-DD) que possuem insights sincronizados
type DatesProvider interface {
	ListDatesWithData(ctx context.Context, accountID string, from, to time.Time) ([]string, error)
}

// Detector executa Analyze sobre as datas persistidas e memoriza o resultado no cache
type Detector struct {
	provider DatesProvider
	cache    cache.Cache
	ttl      time.Duration
	now      func() time.Time
}

func NewDetector(provider DatesProvider, c cache.Cache, ttl time.Duration) *Detector {
	return &Detector{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado para determinar o dia de hoje
func (d *Detector) WithClock(now func() time.Time) *Detector {
	d.now = now
	return d
}

// Today retorna o dia corrente segundo o relógio do detector
func (d *Detector) Today() time.Time {
	return noonUTC(d.now())
}

// Detect nunca retorna erro: falhas na consulta resultam em um resultado zerado
func (d *Detector) Detect(ctx context.Context, accountID, dateFrom, dateTo string) domain.GapDetectionResult {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date_from":  dateFrom,
		"date_to":    dateTo,
	})

	from, errFrom := ParseDate(dateFrom)
	to, errTo := ParseDate(dateTo)
	if errFrom != nil || errTo != nil || from.After(to) {
		logger.Warn("gaps: janela de análise inválida")
		return emptyResult()
	}

	today := d.Today()
	key := cacheKey(accountID, dateFrom, dateTo, today)

	if cached, ok := d.readCache(ctx, key, logger); ok {
		return cached
	}

	dates, err := d.provider.ListDatesWithData(ctx, accountID, from, to)
	if err != nil {
		logger.WithError(err).Error("gaps: falha ao consultar datas com dados")
		return emptyResult()
	}

	result := Analyze(dates, dateFrom, dateTo, today)

	d.writeCache(ctx, key, result, logger)

	return result
}

// Invalidate remove os resultados memorizados de uma conta, chamado após cada sincronização
func (d *Detector) Invalidate(ctx context.Context, accountID string) error {
	if err := d.cache.Clear(ctx, cachePrefix+accountID+":"); err != nil {
		return fmt.Errorf("gaps: erro ao invalidar cache da conta %s: %w", accountID, err)
	}
	return nil
}

func (d *Detector) readCache(ctx context.Context, key string, logger *logrus.Entry) (domain.GapDetectionResult, bool) {
	raw, ok, err := d.cache.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("gaps: falha ao ler cache")
		return domain.GapDetectionResult{}, false
	}
	if !ok {
		return domain.GapDetectionResult{}, false
	}

	var result domain.GapDetectionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.WithError(err).Warn("gaps: resultado inválido no cache")
		return domain.GapDetectionResult{}, false
	}

	if result.Gaps == nil {
		result.Gaps = []domain.DataGap{}
	}

	return result, true
}

func (d *Detector) writeCache(ctx context.Context, key string, result domain.GapDetectionResult, logger *logrus.Entry) {
	raw, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).Warn("gaps: falha ao serializar resultado")
		return
	}

	if err := d.cache.Set(ctx, key, raw, d.ttl); err != nil {
		logger.WithError(err).Warn("gaps: falha ao gravar cache")
	}
}

// A data de hoje faz parte da chave porque muda quais dias contam como faltantes
func cacheKey(accountID, dateFrom, dateTo string, today time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", cachePrefix, accountID, dateFrom, dateTo, today.Format(DateLayout))
}
