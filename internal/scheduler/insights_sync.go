package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// InsightSyncer executa a sincronização de todas as contas ativas
type InsightSyncer interface {
	SyncAll(ctx context.Context) (*domain.SyncSummary, error)
}

// InsightSyncService agenda a sincronização diária dos insights
type InsightSyncService struct {
	scheduler *gocron.Scheduler
	config    config.InsightSync
	syncer    InsightSyncer

	// contexto herdado de Start, usado também nas execuções manuais
	ctx context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.SyncSummary
	lastError           string
	now                 func() time.Time
}

func NewInsightSyncService(syncer InsightSyncer, cfg config.InsightSync) *InsightSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":         cfg.CronSchedule,
		"lookback_days":         cfg.LookbackDays,
		"request_delay_seconds": cfg.RequestDelaySeconds,
		"max_concurrent_jobs":   cfg.MaxConcurrentJobs,
		"sync_enabled":          cfg.Enabled,
	}).Info("Configuração do agendador de insights carregada")

	return &InsightSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		syncer:    syncer,
		ctx:       context.Background(),
		now:       time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *InsightSyncService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.Enabled {
		logrus.Info("Sincronização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights")

	if _, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncAllInsights); err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *InsightSyncService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador de sincronização de insights")
		s.scheduler.Stop()
	}
}

// TriggerManualSync dispara uma sincronização fora do horário. Retorna false quando já
// existe uma em andamento.
func (s *InsightSyncService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Sincronização de insights já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de insights")
	go s.run()

	return true
}

func (s *InsightSyncService) syncAllInsights() {
	if !s.begin() {
		logrus.Info("Sincronização de insights já em andamento, ignorando")
		return
	}

	s.run()
}

func (s *InsightSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *InsightSyncService) run() {
	summary, err := s.syncer.SyncAll(s.ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSummary = summary
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na sincronização de insights")
	}
}

// GetStatus retorna o estado atual do agendador
func (s *InsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
		"last_error":             s.lastError,
	}
}
