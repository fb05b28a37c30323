package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	syncJobsTable   = "sync_jobs"
	defaultJobLimit = 20
)

//go:generate mockgen -source=sync_job.go -destination=mocks/mock_sync_job.go -package=mocks

type SyncJobRepository interface {
	Create(ctx context.Context, job *domain.SyncJob) error
	Update(ctx context.Context, job *domain.SyncJob) error
	ListByAccount(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error)
}

type syncJobRepository struct {
	conn *postgres.Connection
}

func NewSyncJobRepository(conn *postgres.Connection) SyncJobRepository {
	return &syncJobRepository{
		conn: conn,
	}
}

func (r *syncJobRepository) Create(ctx context.Context, job *domain.SyncJob) error {
	query, args, err := squirrel.
		Insert(syncJobsTable).
		Columns("id", "account_id", "platform", "start_date", "end_date", "status", "started_at").
		Values(job.ID, job.AccountID, job.Platform, job.StartDate.Format(dateLayout), job.EndDate.Format(dateLayout), job.Status, job.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *syncJobRepository) Update(ctx context.Context, job *domain.SyncJob) error {
	query, args, err := squirrel.
		Update(syncJobsTable).
		Set("status", job.Status).
		Set("records_synced", job.RecordsSynced).
		Set("warnings_count", job.WarningsCount).
		Set("error_message", job.ErrorMessage).
		Set("finished_at", job.FinishedAt).
		Where(squirrel.Eq{"id": job.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListByAccount retorna os jobs mais recentes primeiro
func (r *syncJobRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error) {
	if limit <= 0 {
		limit = defaultJobLimit
	}

	query, args, err := squirrel.
		Select("id, account_id, platform, start_date, end_date, status, records_synced, warnings_count, error_message, started_at, finished_at").
		From(syncJobsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.SyncJob, 0)
	for rows.Next() {
		job := &domain.SyncJob{}
		if err := rows.Scan(
			&job.ID,
			&job.AccountID,
			&job.Platform,
			&job.StartDate,
			&job.EndDate,
			&job.Status,
			&job.RecordsSynced,
			&job.WarningsCount,
			&job.ErrorMessage,
			&job.StartedAt,
			&job.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return jobs, nil
}
