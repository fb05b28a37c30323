package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestAggregate(t *testing.T) {
	rows := []domain.ExtractedMetrics{
		{Impressions: 1000, Clicks: 10, Spend: 20, Reach: 800, Conversions: 1, ConversionValue: 60, CTR: 99},
		{Impressions: 3000, Clicks: 30, Spend: 60, Reach: 1200, Conversions: 3, ConversionValue: 180},
	}

	agg := Aggregate(rows)

	assert.Equal(t, 2, agg.Days)
	assert.Equal(t, int64(4000), agg.Impressions)
	assert.Equal(t, int64(40), agg.Clicks)
	assert.Equal(t, 80.0, agg.Spend)
	assert.Equal(t, int64(2000), agg.Reach)
	assert.InDelta(t, 1.0, agg.CTR, 1e-9)
	assert.Equal(t, 2.0, agg.CPC)
	assert.InDelta(t, 20.0, agg.CPM, 1e-9)
	assert.Equal(t, 2.0, agg.Frequency)
	assert.Equal(t, 3.0, agg.ROAS)
	assert.Equal(t, 20.0, agg.CostPerResult)
}

func TestAggregate_ZeroGuards(t *testing.T) {
	agg := Aggregate(nil)
	assert.Equal(t, domain.AggregatedMetrics{}, agg)

	agg = Aggregate([]domain.ExtractedMetrics{{Spend: 10, Conversions: 2}})
	assert.Zero(t, agg.CTR)
	assert.Zero(t, agg.CPC)
	assert.Zero(t, agg.CPM)
	assert.Zero(t, agg.Frequency)
	assert.Zero(t, agg.ROAS)
	assert.Equal(t, 5.0, agg.CostPerResult)
}

func TestRound(t *testing.T) {
	agg := Round(domain.AggregatedMetrics{Spend: 10.456, CostPerResult: 16.6666, ROAS: 2.999})

	assert.Equal(t, 10.46, agg.Spend)
	assert.Equal(t, 16.67, agg.CostPerResult)
	assert.Equal(t, 3.0, agg.ROAS)
}
