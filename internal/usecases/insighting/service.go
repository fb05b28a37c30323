// Package insighting monta as consultas do dashboard sobre os insights já sincronizados.
package insighting

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/gaps"
	"github.com/vfg2006/ads-insights-api/internal/metrics"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Insighter interface {
	GetInsights(ctx context.Context, accountID string, level domain.InsightLevel, from, to time.Time) (*domain.AdAccountInsightsResponse, error)
	GetDailySeries(ctx context.Context, accountID string, level domain.InsightLevel, from, to time.Time) (*domain.DailyInsightsResponse, error)
	GetGaps(ctx context.Context, accountID string, from, to time.Time) (*domain.GapReport, error)
}

// GapDetector é a parte do detector de lacunas usada nos relatórios
type GapDetector interface {
	Detect(ctx context.Context, accountID, dateFrom, dateTo string) domain.GapDetectionResult
	Today() time.Time
}

type Service struct {
	accountRepo repository.AccountRepository
	insightRepo repository.InsightRepository
	detector    GapDetector
}

func NewService(accountRepo repository.AccountRepository, insightRepo repository.InsightRepository, detector GapDetector) *Service {
	return &Service{
		accountRepo: accountRepo,
		insightRepo: insightRepo,
		detector:    detector,
	}
}

// GetInsights agrega o período por entidade, ordenando pelo maior gasto, e calcula os totais da conta
func (s *Service) GetInsights(ctx context.Context, accountID string, level domain.InsightLevel, from, to time.Time) (*domain.AdAccountInsightsResponse, error) {
	account, rows, err := s.load(ctx, accountID, level, from, to)
	if err != nil {
		return nil, err
	}

	byEntity := make(map[string][]domain.ExtractedMetrics)
	names := make(map[string]string)
	dates := make(map[string]struct{})
	all := make([]domain.ExtractedMetrics, 0, len(rows))
	order := make([]string, 0)

	for _, row := range rows {
		if _, ok := byEntity[row.EntityID]; !ok {
			order = append(order, row.EntityID)
		}
		byEntity[row.EntityID] = append(byEntity[row.EntityID], row.Metrics)
		if row.EntityName != "" {
			names[row.EntityID] = row.EntityName
		}
		dates[row.Date.Format(time.DateOnly)] = struct{}{}
		all = append(all, row.Metrics)
	}

	entities := make([]*domain.EntityInsight, 0, len(order))
	for _, entityID := range order {
		entities = append(entities, &domain.EntityInsight{
			EntityID:   entityID,
			EntityName: names[entityID],
			Level:      level,
			Metrics:    metrics.Round(metrics.Aggregate(byEntity[entityID])),
		})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Metrics.Spend > entities[j].Metrics.Spend
	})

	totals := metrics.Aggregate(all)
	totals.Days = len(dates)

	return &domain.AdAccountInsightsResponse{
		AccountID: account.ID,
		Platform:  account.Platform,
		Level:     level,
		StartDate: from.Format(time.DateOnly),
		EndDate:   to.Format(time.DateOnly),
		Totals:    metrics.Round(totals),
		Entities:  entities,
	}, nil
}

// GetDailySeries agrega todas as entidades do nível em um ponto por dia, em ordem cronológica
func (s *Service) GetDailySeries(ctx context.Context, accountID string, level domain.InsightLevel, from, to time.Time) (*domain.DailyInsightsResponse, error) {
	account, rows, err := s.load(ctx, accountID, level, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]domain.ExtractedMetrics)
	for _, row := range rows {
		date := row.Date.Format(time.DateOnly)
		byDate[date] = append(byDate[date], row.Metrics)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]*domain.DailyInsight, 0, len(dates))
	for _, date := range dates {
		point := metrics.Aggregate(byDate[date])
		point.Days = 1
		series = append(series, &domain.DailyInsight{
			Date:    date,
			Metrics: metrics.Round(point),
		})
	}

	return &domain.DailyInsightsResponse{
		AccountID: account.ID,
		Level:     level,
		StartDate: from.Format(time.DateOnly),
		EndDate:   to.Format(time.DateOnly),
		Series:    series,
	}, nil
}

// GetGaps roda o detector de lacunas e descreve o resultado para o dashboard
func (s *Service) GetGaps(ctx context.Context, accountID string, from, to time.Time) (*domain.GapReport, error) {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return nil, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, accountID, "Data inicial posterior à data final")
	}

	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	startDate, endDate := from.Format(gaps.DateLayout), to.Format(gaps.DateLayout)
	result := s.detector.Detect(ctx, account.ID, startDate, endDate)

	return &domain.GapReport{
		AccountID:      account.ID,
		StartDate:      startDate,
		EndDate:        endDate,
		Result:         &result,
		Summary:        gaps.Summary(result.Gaps),
		DaysToBackfill: gaps.DaysToBackfill(result.Gaps, s.detector.Today()),
	}, nil
}

func (s *Service) load(ctx context.Context, accountID string, level domain.InsightLevel, from, to time.Time) (*domain.AdAccount, []*domain.AdInsightEntry, error) {
	if !level.IsValid() {
		return nil, nil, NewInsightError(ErrInvalidLevel, apiErrors.ErrInvalidRequest, accountID, string(level))
	}

	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return nil, nil, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, accountID, "Data inicial posterior à data final")
	}

	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.insightRepo.ListByPeriod(ctx, account.ID, level, from, to)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"level":      level,
			"error":      err.Error(),
		}).Error("Erro ao buscar insights no banco")
		return nil, nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	return account, rows, nil
}

func (s *Service) getAccount(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if account == nil {
		return nil, NewInsightError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "Conta não encontrada")
	}

	return account, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
