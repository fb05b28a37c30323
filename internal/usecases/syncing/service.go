// Package syncing busca os insights nas plataformas de anúncios, extrai as métricas e
// grava uma linha por entidade e dia.
package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

const defaultJobsLimit = 20

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SyncService interface {
	SyncAccount(ctx context.Context, accountID string, from, to time.Time) (*domain.SyncJob, error)
	SyncAll(ctx context.Context) (*domain.SyncSummary, error)
	BackfillGaps(ctx context.Context, accountID string, from, to time.Time) (*domain.BackfillResult, error)
	ListJobs(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error)
}

// PlatformIntegrator busca as linhas brutas de insights de uma plataforma
type PlatformIntegrator interface {
	Platform() domain.Platform
	GetRawInsights(ctx context.Context, externalAccountID string, level domain.InsightLevel, since, until time.Time) ([]domain.RawInsight, error)
}

// GapDetector é a parte do detector de lacunas usada pela sincronização
type GapDetector interface {
	Detect(ctx context.Context, accountID, dateFrom, dateTo string) domain.GapDetectionResult
	Invalidate(ctx context.Context, accountID string) error
}

type Service struct {
	accountRepo repository.AccountRepository
	insightRepo repository.InsightRepository
	jobRepo     repository.SyncJobRepository
	integrators map[domain.Platform]PlatformIntegrator
	detector    GapDetector
	cfg         config.InsightSync
	running     sync.Map
	now         func() time.Time
	newBackOff  func() backoff.BackOff
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewService(
	accountRepo repository.AccountRepository,
	insightRepo repository.InsightRepository,
	jobRepo repository.SyncJobRepository,
	detector GapDetector,
	cfg config.InsightSync,
	integrators ...PlatformIntegrator,
) *Service {
	byPlatform := make(map[domain.Platform]PlatformIntegrator, len(integrators))
	for _, integrator := range integrators {
		byPlatform[integrator.Platform()] = integrator
	}

	return &Service{
		accountRepo: accountRepo,
		insightRepo: insightRepo,
		jobRepo:     jobRepo,
		integrators: byPlatform,
		detector:    detector,
		cfg:         cfg,
		now:         time.Now,
		newBackOff:  defaultBackOff,
		sleep:       sleepContext,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 2 * time.Minute
	return b
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SyncAccount sincroniza os três níveis da conta no período [from, to]
func (s *Service) SyncAccount(ctx context.Context, accountID string, from, to time.Time) (*domain.SyncJob, error) {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return nil, NewSyncError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, accountID, "Data inicial posterior à data final")
	}

	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return s.syncAccount(ctx, account, from, to)
}

func (s *Service) ListJobs(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error) {
	if limit <= 0 {
		limit = defaultJobsLimit
	}

	jobs, err := s.jobRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	return jobs, nil
}

func (s *Service) getAccount(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if account == nil {
		return nil, NewSyncError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "Conta não encontrada")
	}

	return account, nil
}

func (s *Service) syncAccount(ctx context.Context, account *domain.AdAccount, from, to time.Time) (*domain.SyncJob, error) {
	integrator, ok := s.integrators[account.Platform]
	if !ok {
		return nil, NewSyncError(ErrPlatformNotSupported, apiErrors.ErrPlatformNotConnected, account.ID, string(account.Platform))
	}

	if _, loaded := s.running.LoadOrStore(account.ID, struct{}{}); loaded {
		return nil, NewSyncError(ErrSyncInProgress, apiErrors.ErrSyncInProgress, account.ID, "")
	}
	defer s.running.Delete(account.ID)

	jobID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSyncError(err, apiErrors.ErrInternalServer, account.ID, "Falha ao gerar identificador do job")
	}

	job := &domain.SyncJob{
		ID:        jobID,
		AccountID: account.ID,
		Platform:  account.Platform,
		StartDate: from,
		EndDate:   to,
		Status:    domain.SyncJobStatusRunning,
		StartedAt: s.now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, err.Error())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":      job.ID,
		"account_id":  account.ID,
		"external_id": account.ExternalID,
		"platform":    account.Platform,
		"start_date":  from.Format(time.DateOnly),
		"end_date":    to.Format(time.DateOnly),
	})
	logger.Info("Iniciando sincronização de insights da conta")

	records, warnings, syncErr := s.run(ctx, account, integrator, from, to)

	job.RecordsSynced = records
	job.WarningsCount = warnings
	job.Finish(syncErr, s.now())

	// o job é fechado mesmo que a requisição tenha sido cancelada
	if err := s.jobRepo.Update(context.WithoutCancel(ctx), job); err != nil {
		logger.WithError(err).Error("Erro ao atualizar job de sincronização")
	}

	if records > 0 {
		if err := s.detector.Invalidate(context.WithoutCancel(ctx), account.ID); err != nil {
			logger.WithError(err).Warn("Erro ao invalidar cache de lacunas")
		}
	}

	if syncErr != nil {
		logger.WithError(syncErr).Error("Sincronização de insights da conta falhou")
		return job, syncErr
	}

	logger.WithFields(log.Fields{
		"records_synced": records,
		"warnings":       warnings,
	}).Info("Sincronização de insights da conta concluída")

	return job, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
