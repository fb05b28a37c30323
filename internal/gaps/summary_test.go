package gaps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		gaps     []domain.DataGap
		expected string
	}{
		{
			name:     "sem lacunas",
			gaps:     nil,
			expected: "Nenhuma lacuna de dados encontrada",
		},
		{
			name:     "um único dia",
			gaps:     []domain.DataGap{{DateFrom: "2024-01-03", DateTo: "2024-01-03", Days: 1}},
			expected: "1 dia sem dados em 03/01/2024",
		},
		{
			name: "várias lacunas",
			gaps: []domain.DataGap{
				{DateFrom: "2024-01-03", DateTo: "2024-01-09", Days: 7},
				{DateFrom: "2024-01-10", DateTo: "2024-01-15", Days: 6},
			},
			expected: "13 dias sem dados entre 03/01/2024 e 15/01/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summary(tt.gaps))
		})
	}
}

func TestDaysToBackfill(t *testing.T) {
	today := time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysToBackfill(nil, today))

	gaps := []domain.DataGap{
		{DateFrom: "2024-01-15", DateTo: "2024-01-16", Days: 2},
		{DateFrom: "2024-01-05", DateTo: "2024-01-06", Days: 2},
	}
	assert.Equal(t, 15, DaysToBackfill(gaps, today))

	future := []domain.DataGap{{DateFrom: "2024-02-01", DateTo: "2024-02-01", Days: 1}}
	assert.Equal(t, 0, DaysToBackfill(future, today))
}
