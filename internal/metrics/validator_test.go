package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		metrics  domain.ExtractedMetrics
		expected int
		contains string
	}{
		{
			name: "linha consistente",
			metrics: domain.ExtractedMetrics{
				Impressions:     1000,
				Clicks:          10,
				Spend:           20,
				CTR:             1,
				Conversions:     1,
				ConversionValue: 50,
				Actions:         []domain.Action{{ActionType: "purchase", Value: "1"}},
			},
			expected: 0,
		},
		{
			name:     "cliques maiores que impressões",
			metrics:  domain.ExtractedMetrics{Impressions: 5, Clicks: 6},
			expected: 1,
			contains: "cliques (6) maiores que impressões (5)",
		},
		{
			name:     "gasto sem impressões",
			metrics:  domain.ExtractedMetrics{Spend: 12.5},
			expected: 1,
			contains: "gasto de 12.50 sem impressões",
		},
		{
			name: "conversões sem valor",
			metrics: domain.ExtractedMetrics{
				Impressions: 100,
				Conversions: 2,
				Actions:     []domain.Action{{ActionType: "purchase", Value: "2"}},
			},
			expected: 1,
			contains: "2 conversões sem valor de conversão",
		},
		{
			name: "conversões sem ações",
			metrics: domain.ExtractedMetrics{
				Impressions:     100,
				Conversions:     2,
				ConversionValue: 10,
			},
			expected: 1,
			contains: "conversões informadas sem lista de ações",
		},
		{
			name:     "ctr acima de 100",
			metrics:  domain.ExtractedMetrics{Impressions: 10, Clicks: 5, CTR: 150},
			expected: 1,
			contains: "CTR acima de 100% (150.00%)",
		},
		{
			name:     "vários problemas",
			metrics:  domain.ExtractedMetrics{Clicks: 3, Spend: 1, Conversions: 1, CTR: 101},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := Validate(tt.metrics)
			assert.Len(t, warnings, tt.expected)
			if tt.contains != "" {
				assert.Contains(t, warnings, tt.contains)
			}
		})
	}
}
