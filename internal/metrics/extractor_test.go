package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestExtract_PurchaseExample(t *testing.T) {
	raw := domain.RawInsight{
		Date:         "2024-01-10",
		Spend:        "50",
		Actions:      []domain.Action{{ActionType: "purchase", Value: "3"}},
		ActionValues: []domain.Action{{ActionType: "purchase", Value: "150.00"}},
	}

	m := Extract(raw)

	assert.Equal(t, 3.0, m.Conversions)
	assert.Equal(t, 150.0, m.ConversionValue)
	assert.Equal(t, 3.0, m.ROAS)
	assert.InDelta(t, 16.667, m.CostPerResult, 0.001)
}

func TestExtract_EmptyActionsYieldZeros(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.RawInsight
	}{
		{
			name: "sem ações",
			raw:  domain.RawInsight{Spend: "100", Impressions: "1000"},
		},
		{
			name: "listas vazias",
			raw: domain.RawInsight{
				Spend:        "100",
				Actions:      []domain.Action{},
				ActionValues: []domain.Action{},
			},
		},
		{
			name: "ações sem tipo conhecido",
			raw: domain.RawInsight{
				Spend:        "100",
				Actions:      []domain.Action{{ActionType: "link_click", Value: "40"}},
				ActionValues: []domain.Action{{ActionType: "link_click", Value: "10"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.raw)
			assert.Zero(t, m.Conversions)
			assert.Zero(t, m.ConversionValue)
			assert.Zero(t, m.ROAS)
			assert.Zero(t, m.CostPerResult)
		})
	}
}

func TestExtract_ActionPriority(t *testing.T) {
	raw := domain.RawInsight{
		Spend: "10",
		Actions: []domain.Action{
			{ActionType: "omni_purchase", Value: "9"},
			{ActionType: "purchase", Value: "5"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "4"},
		},
		ActionValues: []domain.Action{
			{ActionType: "purchase", Value: "80"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "60"},
		},
	}

	m := Extract(raw)

	assert.Equal(t, 4.0, m.Conversions)
	assert.Equal(t, 60.0, m.ConversionValue)
	assert.Equal(t, 6.0, m.ROAS)
	assert.Equal(t, 2.5, m.CostPerResult)
}

func TestExtract_RatesArePassedThrough(t *testing.T) {
	raw := domain.RawInsight{
		Impressions: "1000",
		Clicks:      "10",
		Spend:       "20",
		CTR:         "1.7",
		CPC:         "3.33",
		CPM:         "12.5",
		CPP:         "40",
	}

	m := Extract(raw)

	assert.Equal(t, 1.7, m.CTR)
	assert.Equal(t, 3.33, m.CPC)
	assert.Equal(t, 12.5, m.CPM)
	assert.Equal(t, 40.0, m.CPP)
}

func TestExtract_MalformedNumbersDefaultToZero(t *testing.T) {
	raw := domain.RawInsight{
		Impressions: "abc",
		Clicks:      "",
		Spend:       "NaN",
		Reach:       "12x",
		Frequency:   "1.5.6",
		Actions:     []domain.Action{{ActionType: "video_view", Value: "??"}},
	}

	m := Extract(raw)

	assert.Zero(t, m.Impressions)
	assert.Zero(t, m.Clicks)
	assert.Zero(t, m.Spend)
	assert.Equal(t, int64(12), m.Reach)
	assert.Equal(t, 1.5, m.Frequency)
	assert.Zero(t, m.VideoViews)
}

func TestExtract_AcceptsJSONStringsAndNumbers(t *testing.T) {
	payload := `{
		"date": "2024-03-01",
		"impressions": 2500,
		"clicks": "75",
		"spend": 120.5,
		"reach": "2000",
		"actions": [{"action_type": "video_view", "value": 300}, {"action_type": "purchase", "value": "2"}],
		"action_values": [{"action_type": "purchase", "value": 241}]
	}`

	var raw domain.RawInsight
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	m := Extract(raw)

	assert.Equal(t, int64(2500), m.Impressions)
	assert.Equal(t, int64(75), m.Clicks)
	assert.Equal(t, 120.5, m.Spend)
	assert.Equal(t, int64(2000), m.Reach)
	assert.Equal(t, 300.0, m.VideoViews)
	assert.Equal(t, 2.0, m.Conversions)
	assert.Equal(t, 241.0, m.ConversionValue)
	assert.Equal(t, 2.0, m.ROAS)
}

func TestExtract_RoasUsesRealConversionValue(t *testing.T) {
	raw := domain.RawInsight{
		Spend:        "33.3",
		Actions:      []domain.Action{{ActionType: "purchase", Value: "7"}},
		ActionValues: []domain.Action{{ActionType: "purchase", Value: "99.9"}},
	}

	m := Extract(raw)

	assert.Equal(t, 99.9/33.3, m.ROAS)
}

func TestExtract_ConversionsWithoutValueKeepRoasZero(t *testing.T) {
	raw := domain.RawInsight{
		Spend:   "100",
		Actions: []domain.Action{{ActionType: "purchase", Value: "4"}},
	}

	m := Extract(raw)

	assert.Equal(t, 4.0, m.Conversions)
	assert.Zero(t, m.ConversionValue)
	assert.Zero(t, m.ROAS)
	assert.Equal(t, 25.0, m.CostPerResult)
}

func TestExtract_PreservesRawActions(t *testing.T) {
	actions := []domain.Action{{ActionType: "purchase", Value: "1"}, {ActionType: "link_click", Value: "8"}}
	values := []domain.Action{{ActionType: "purchase", Value: "10"}}

	m := Extract(domain.RawInsight{Actions: actions, ActionValues: values})

	assert.Equal(t, actions, m.Actions)
	assert.Equal(t, values, m.ActionValues)
}

func TestExtract_IsIdempotent(t *testing.T) {
	raw := domain.RawInsight{
		Date:         "2024-01-10",
		Impressions:  "1000",
		Clicks:       "20",
		Spend:        "45.67",
		CTR:          "2",
		Actions:      []domain.Action{{ActionType: "purchase", Value: "3"}},
		ActionValues: []domain.Action{{ActionType: "purchase", Value: "150.00"}},
	}

	first, err := json.Marshal(Extract(raw))
	require.NoError(t, err)
	second, err := json.Marshal(Extract(raw))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   domain.FlexNumber
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"10", 10},
		{"10.25", 10.25},
		{" 3.5 ", 3.5},
		{"-2.5", -2.5},
		{"1e3", 1000},
		{"12abc", 12},
		{".5", 0.5},
		{"abc", 0},
		{"-", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFloat(tt.in), "entrada %q", tt.in)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   domain.FlexNumber
		want int64
	}{
		{"", 0},
		{"42", 42},
		{"42.9", 42},
		{"7 cliques", 7},
		{"x", 0},
		{"1e30", 0},
		{"1e19", 0},
		{"9223372036854775808", 0},
		{"9223372036854775807.5", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseInt(tt.in), "entrada %q", tt.in)
	}
}
