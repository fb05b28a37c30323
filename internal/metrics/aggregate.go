package metrics

import (
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// Aggregate soma as linhas e recalcula as taxas sobre os totais. O ROAS usa somente o
// valor real de conversão informado pela plataforma.
func Aggregate(rows []domain.ExtractedMetrics) domain.AggregatedMetrics {
	agg := domain.AggregatedMetrics{Days: len(rows)}

	for _, row := range rows {
		agg.Impressions += row.Impressions
		agg.Clicks += row.Clicks
		agg.Spend += row.Spend
		agg.Reach += row.Reach
		agg.Conversions += row.Conversions
		agg.ConversionValue += row.ConversionValue
		agg.VideoViews += row.VideoViews
	}

	if agg.Impressions > 0 {
		agg.CTR = float64(agg.Clicks) / float64(agg.Impressions) * 100
		agg.CPM = agg.Spend / float64(agg.Impressions) * 1000
	}

	if agg.Clicks > 0 {
		agg.CPC = agg.Spend / float64(agg.Clicks)
	}

	if agg.Reach > 0 {
		agg.Frequency = float64(agg.Impressions) / float64(agg.Reach)
	}

	if agg.Spend > 0 && agg.ConversionValue > 0 {
		agg.ROAS = agg.ConversionValue / agg.Spend
	}

	if agg.Conversions > 0 {
		agg.CostPerResult = agg.Spend / agg.Conversions
	}

	return agg
}

// Round arredonda os campos monetários e taxas para exibição
func Round(agg domain.AggregatedMetrics) domain.AggregatedMetrics {
	agg.Spend = utils.RoundWithTwoDecimalPlace(agg.Spend)
	agg.Frequency = utils.RoundWithTwoDecimalPlace(agg.Frequency)
	agg.CTR = utils.RoundWithTwoDecimalPlace(agg.CTR)
	agg.CPC = utils.RoundWithTwoDecimalPlace(agg.CPC)
	agg.CPM = utils.RoundWithTwoDecimalPlace(agg.CPM)
	agg.ConversionValue = utils.RoundWithTwoDecimalPlace(agg.ConversionValue)
	agg.ROAS = utils.RoundWithTwoDecimalPlace(agg.ROAS)
	agg.CostPerResult = utils.RoundWithTwoDecimalPlace(agg.CostPerResult)
	return agg
}
