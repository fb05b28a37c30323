package syncing

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/resilience"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/metrics"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

// run busca os níveis em paralelo e só grava quando todos responderam
func (s *Service) run(ctx context.Context, account *domain.AdAccount, integrator PlatformIntegrator, from, to time.Time) (int, int, error) {
	results := make([][]domain.RawInsight, len(domain.InsightLevels))

	g, gctx := errgroup.WithContext(ctx)
	for i, level := range domain.InsightLevels {
		g.Go(func() error {
			rows, err := s.fetchWithRetry(gctx, integrator, account, level, from, to)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, 0, NewSyncError(err, apiErrors.ErrExternalService, account.ID, "Falha ao buscar insights na plataforma")
	}

	entries := make([]*domain.AdInsightEntry, 0)
	warnings := 0
	for i, level := range domain.InsightLevels {
		levelEntries, levelWarnings := buildEntries(account, level, results[i])
		entries = append(entries, levelEntries...)
		warnings += levelWarnings
	}

	saved, err := s.insightRepo.SaveBatch(ctx, entries)
	if err != nil {
		return saved, warnings, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, err.Error())
	}

	return saved, warnings, nil
}

// fetchWithRetry repete apenas falhas transitórias, com backoff exponencial
func (s *Service) fetchWithRetry(ctx context.Context, integrator PlatformIntegrator, account *domain.AdAccount, level domain.InsightLevel, from, to time.Time) ([]domain.RawInsight, error) {
	var rows []domain.RawInsight
	attempt := 0

	operation := func() error {
		attempt++

		result, err := integrator.GetRawInsights(ctx, account.ExternalID, level, from, to)
		if err != nil {
			if !resilience.IsRetryable(err) {
				return backoff.Permanent(err)
			}

			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"level":      level,
				"attempt":    attempt,
				"error":      err.Error(),
			}).Warn("Falha transitória ao buscar insights, tentando novamente")
			return err
		}

		rows = result
		return nil
	}

	retries := max(s.cfg.MaxRetries, 0)
	policy := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), uint64(retries)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return rows, nil
}

type entryKey struct {
	entityID string
	date     string
}

// buildEntries extrai as métricas de cada linha. Linhas sem entidade ou data são
// descartadas e avisos do validador são apenas registrados.
func buildEntries(account *domain.AdAccount, level domain.InsightLevel, rows []domain.RawInsight) ([]*domain.AdInsightEntry, int) {
	entries := make([]*domain.AdInsightEntry, 0, len(rows))
	index := make(map[entryKey]int, len(rows))
	warnings := 0

	for i := range rows {
		raw := rows[i]

		entityID := raw.EntityID(level)
		date, err := time.Parse(time.DateOnly, raw.Date)
		if entityID == "" || err != nil {
			warnings++
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"level":      level,
				"date":       raw.Date,
			}).Warn("Linha de insight sem entidade ou data válida, ignorada")
			continue
		}

		extracted := metrics.Extract(raw)
		if problems := metrics.Validate(extracted); len(problems) > 0 {
			warnings++
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"level":      level,
				"entity_id":  entityID,
				"date":       raw.Date,
				"warnings":   problems,
			}).Warn("Métricas com inconsistências")
		}

		entry := &domain.AdInsightEntry{
			AccountID:  account.ID,
			Platform:   account.Platform,
			Level:      level,
			EntityID:   entityID,
			EntityName: raw.EntityName(level),
			CampaignID: raw.CampaignID,
			AdsetID:    raw.AdsetID,
			Date:       date,
			Metrics:    extracted,
		}

		// a mesma entidade e dia não podem se repetir no upsert; a última linha vence
		key := entryKey{entityID: entityID, date: raw.Date}
		if pos, exists := index[key]; exists {
			entries[pos] = entry
			continue
		}
		index[key] = len(entries)
		entries = append(entries, entry)
	}

	return entries, warnings
}
