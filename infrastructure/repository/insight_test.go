package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestInsightRepository_SaveBatch(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	insights := []*domain.AdInsightEntry{
		{
			AccountID:  "acc-1",
			Platform:   domain.PlatformMeta,
			Level:      domain.InsightLevelCampaign,
			EntityID:   "c-1",
			EntityName: "Campanha 1",
			CampaignID: "c-1",
			Date:       date,
			Metrics:    domain.ExtractedMetrics{Impressions: 100, Clicks: 5, Spend: 10},
		},
		{
			AccountID:  "acc-1",
			Platform:   domain.PlatformMeta,
			Level:      domain.InsightLevelAd,
			EntityID:   "ad-1",
			EntityName: "Anúncio 1",
			CampaignID: "c-1",
			AdsetID:    "as-1",
			Date:       date,
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO insights \(account_id,platform,level,entity_id,entity_name,campaign_id,adset_id,date,metrics\) VALUES`).
		WithArgs(
			"acc-1", "meta", "campaign", "c-1", "Campanha 1", "c-1", "", "2024-01-03", sqlmock.AnyArg(),
			"acc-1", "meta", "ad", "ad-1", "Anúncio 1", "c-1", "as-1", "2024-01-03", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	saved, err := repo.SaveBatch(context.Background(), insights)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_SaveBatchChunks(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	insights := make([]*domain.AdInsightEntry, insightsBatchSize+1)
	for i := range insights {
		insights[i] = &domain.AdInsightEntry{AccountID: "acc-1", Level: domain.InsightLevelAd, Date: time.Now()}
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO insights").WillReturnResult(sqlmock.NewResult(0, insightsBatchSize))
	mock.ExpectExec("INSERT INTO insights").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.SaveBatch(context.Background(), insights)
	require.NoError(t, err)
	assert.Equal(t, insightsBatchSize+1, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_SaveBatchRollsBackOnChunkError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	insights := make([]*domain.AdInsightEntry, insightsBatchSize+1)
	for i := range insights {
		insights[i] = &domain.AdInsightEntry{AccountID: "acc-1", Level: domain.InsightLevelAd, Date: time.Now()}
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO insights").WillReturnResult(sqlmock.NewResult(0, insightsBatchSize))
	mock.ExpectExec("INSERT INTO insights").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	saved, err := repo.SaveBatch(context.Background(), insights)
	assert.Error(t, err)
	assert.Equal(t, 0, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_SaveBatchEmpty(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	saved, err := repo.SaveBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_ListByPeriod(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "account_id", "platform", "level", "entity_id", "entity_name",
		"campaign_id", "adset_id", "date", "metrics", "created_at", "updated_at",
	}).AddRow(
		int64(1), "acc-1", "meta", "campaign", "c-1", "Campanha 1",
		"c-1", "", date, []byte(`{"impressions":100,"clicks":5,"spend":10.5,"roas":2}`), now, now,
	)

	mock.ExpectQuery(`SELECT (.+) FROM insights i WHERE`).
		WithArgs("acc-1", "campaign", "2024-01-01", "2024-01-31").
		WillReturnRows(rows)

	insights, err := repo.ListByPeriod(
		context.Background(),
		"acc-1",
		domain.InsightLevelCampaign,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, insights, 1)

	assert.Equal(t, domain.PlatformMeta, insights[0].Platform)
	assert.Equal(t, domain.InsightLevelCampaign, insights[0].Level)
	assert.Equal(t, int64(100), insights[0].Metrics.Impressions)
	assert.Equal(t, 10.5, insights[0].Metrics.Spend)
	assert.Equal(t, 2.0, insights[0].Metrics.ROAS)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_ListDatesWithData(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	mock.ExpectQuery(`SELECT DISTINCT TO_CHAR\(i\.date, 'YYYY-MM-DD'\) AS day FROM insights i`).
		WithArgs("acc-1", "2024-01-01", "2024-01-05").
		WillReturnRows(sqlmock.NewRows([]string{"day"}).
			AddRow("2024-01-01").
			AddRow("2024-01-02").
			AddRow("2024-01-05"))

	dates, err := repo.ListDatesWithData(
		context.Background(),
		"acc-1",
		time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-05"}, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightRepository_ListDatesWithDataError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewInsightRepository(conn)

	mock.ExpectQuery("SELECT DISTINCT").WillReturnError(errors.New("timeout"))

	dates, err := repo.ListDatesWithData(context.Background(), "acc-1", time.Now(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, dates)
}
