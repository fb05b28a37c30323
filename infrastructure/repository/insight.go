package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	insightsTable   = "insights"
	insightsColumns = "i.id, i.account_id, i.platform, i.level, i.entity_id, i.entity_name, i.campaign_id, i.adset_id, i.date, i.metrics, i.created_at, i.updated_at"
	dateLayout      = "2006-01-02"

	// Limite de linhas por INSERT, abaixo do máximo de parâmetros do Postgres
	insightsBatchSize = 500
)

//go:generate mockgen -source=insight.go -destination=mocks/mock_insight.go -package=mocks

type InsightRepository interface {
	SaveBatch(ctx context.Context, insights []*domain.AdInsightEntry) (int, error)
	ListByPeriod(ctx context.Context, accountID string, level domain.InsightLevel, startDate, endDate time.Time) ([]*domain.AdInsightEntry, error)
	ListDatesWithData(ctx context.Context, accountID string, from, to time.Time) ([]string, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

// SaveBatch faz o upsert das linhas por (conta, nível, entidade, data) e retorna quantas foram gravadas.
// Todos os lotes rodam na mesma transação: em erro nada é gravado.
func (r *insightRepository) SaveBatch(ctx context.Context, insights []*domain.AdInsightEntry) (int, error) {
	if len(insights) == 0 {
		return 0, nil
	}

	saved := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(insights); start += insightsBatchSize {
			end := min(start+insightsBatchSize, len(insights))

			n, err := r.saveChunk(ctx, tx, insights[start:end])
			if err != nil {
				return err
			}
			saved += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return saved, nil
}

func (r *insightRepository) saveChunk(ctx context.Context, q postgres.Queryer, insights []*domain.AdInsightEntry) (int, error) {
	query := squirrel.StatementBuilder.
		Insert(insightsTable).
		Columns("account_id", "platform", "level", "entity_id", "entity_name", "campaign_id", "adset_id", "date", "metrics").
		PlaceholderFormat(squirrel.Dollar)

	for _, insight := range insights {
		metricsJSON, err := json.Marshal(insight.Metrics)
		if err != nil {
			return 0, fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}

		query = query.Values(
			insight.AccountID,
			insight.Platform,
			insight.Level,
			insight.EntityID,
			insight.EntityName,
			insight.CampaignID,
			insight.AdsetID,
			insight.Date.Format(dateLayout),
			metricsJSON,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (account_id, level, entity_id, date) DO UPDATE SET
				entity_name = EXCLUDED.entity_name,
				campaign_id = EXCLUDED.campaign_id,
				adset_id = EXCLUDED.adset_id,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return int(affected), nil
}

func (r *insightRepository) ListByPeriod(ctx context.Context, accountID string, level domain.InsightLevel, startDate, endDate time.Time) ([]*domain.AdInsightEntry, error) {
	query, args, err := squirrel.
		Select(insightsColumns).
		From(insightsTable+" i").
		Where(squirrel.Eq{"i.account_id": accountID, "i.level": level}).
		Where(squirrel.GtOrEq{"i.date": startDate.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"i.date": endDate.Format(dateLayout)}).
		OrderBy("i.date ASC", "i.entity_id ASC").
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

	insights := make([]*domain.AdInsightEntry, 0)
	for rows.Next() {
		insight, err := r.scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

// ListDatesWithData retorna as datas (YYYY-MM-DD) com ao menos uma linha, em qualquer nível
func (r *insightRepository) ListDatesWithData(ctx context.Context, accountID string, from, to time.Time) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT TO_CHAR(i.date, 'YYYY-MM-DD') AS day").
		From(insightsTable+" i").
		Where(squirrel.Eq{"i.account_id": accountID}).
		Where(squirrel.GtOrEq{"i.date": from.Format(dateLayout)}).
		Where(squirrel.LtOrEq{"i.date": to.Format(dateLayout)}).
		OrderBy("day ASC").
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

	dates := make([]string, 0)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("erro ao escanear data: %w", err)
		}
		dates = append(dates, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dates, nil
}

func (r *insightRepository) scanInsight(row rowScanner) (*domain.AdInsightEntry, error) {
	insight := &domain.AdInsightEntry{}
	var metricsJSON []byte

	err := row.Scan(
		&insight.ID,
		&insight.AccountID,
		&insight.Platform,
		&insight.Level,
		&insight.EntityID,
		&insight.EntityName,
		&insight.CampaignID,
		&insight.AdsetID,
		&insight.Date,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &insight.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar métricas: %w", err)
		}
	}

	return insight, nil
}
