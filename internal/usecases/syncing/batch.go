package syncing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/gaps"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

// SyncAll sincroniza todas as contas ativas na janela de LookbackDays que termina ontem
func (s *Service) SyncAll(ctx context.Context) (*domain.SyncSummary, error) {
	startTime := s.now()
	from, to := s.lookbackWindow()

	summary := &domain.SyncSummary{
		StartDate: from.Format(time.DateOnly),
		EndDate:   to.Format(time.DateOnly),
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return summary, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(accounts),
		"start_date":      summary.StartDate,
		"end_date":        summary.EndDate,
	}).Info("Iniciando sincronização de insights para todas as contas ativas")

	sem := semaphore.NewWeighted(int64(max(s.cfg.MaxConcurrentJobs, 1)))
	delay := time.Duration(s.cfg.RequestDelaySeconds) * time.Second

	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		if _, ok := s.integrators[account.Platform]; !ok {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"platform":   account.Platform,
			}).Warn("Plataforma sem integração configurada. Pulando.")
			continue
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		wg.Add(1)
		go func(acc *domain.AdAccount) {
			defer wg.Done()
			defer sem.Release(1)

			job, err := s.syncAccount(ctx, acc, from, to)

			mu.Lock()
			defer mu.Unlock()

			summary.Accounts++
			if job != nil {
				summary.RecordsSynced += job.RecordsSynced
			}
			if err != nil {
				summary.Failed++
				return
			}
			summary.Succeeded++
		}(account)

		// intervalo entre contas para não sobrecarregar as APIs
		if i < len(accounts)-1 {
			if err := s.sleep(ctx, delay); err != nil {
				break
			}
		}
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"duration":       s.now().Sub(startTime).String(),
		"accounts":       summary.Accounts,
		"failed":         summary.Failed,
		"records_synced": summary.RecordsSynced,
	}).Info("Sincronização de insights concluída")

	return summary, ctx.Err()
}

// BackfillGaps detecta as lacunas do período e sincroniza cada uma delas
func (s *Service) BackfillGaps(ctx context.Context, accountID string, from, to time.Time) (*domain.BackfillResult, error) {
	from, to = dateOnly(from), dateOnly(to)
	if to.Before(from) {
		return nil, NewSyncError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, accountID, "Data inicial posterior à data final")
	}

	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	detection := s.detector.Detect(ctx, account.ID, from.Format(gaps.DateLayout), to.Format(gaps.DateLayout))

	result := &domain.BackfillResult{
		AccountID: account.ID,
		GapsFound: len(detection.Gaps),
		Jobs:      make([]*domain.SyncJob, 0, len(detection.Gaps)),
	}

	for _, gap := range detection.Gaps {
		gapFrom, errFrom := gaps.ParseDate(gap.DateFrom)
		gapTo, errTo := gaps.ParseDate(gap.DateTo)
		if errFrom != nil || errTo != nil {
			continue
		}

		job, err := s.syncAccount(ctx, account, dateOnly(gapFrom), dateOnly(gapTo))
		if job != nil {
			result.Jobs = append(result.Jobs, job)
			result.RecordsSynced += job.RecordsSynced
		}

		if err != nil {
			if errors.Is(err, ErrSyncInProgress) || ctx.Err() != nil {
				return result, err
			}
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"date_from":  gap.DateFrom,
				"date_to":    gap.DateTo,
				"error":      err.Error(),
			}).Error("Falha ao preencher lacuna")
			continue
		}

		result.GapsSynced++
	}

	return result, nil
}

// lookbackWindow começa em ontem e volta LookbackDays dias
func (s *Service) lookbackWindow() (time.Time, time.Time) {
	days := max(s.cfg.LookbackDays, 1)
	to := dateOnly(s.now()).AddDate(0, 0, -1)
	from := to.AddDate(0, 0, -(days - 1))
	return from, to
}
