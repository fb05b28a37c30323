package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	googledomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/googleclient/mocks"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/metrics"
)

func TestToRawInsight(t *testing.T) {
	row := &googledomain.Row{
		Campaign: &googledomain.Campaign{ID: "10", Name: "Campanha"},
		AdGroup:  &googledomain.AdGroup{ID: "20", Name: "Grupo"},
		Metrics: &googledomain.Metrics{
			Impressions:      "1000",
			Clicks:           "50",
			CostMicros:       "12500000",
			Ctr:              "0.05",
			AverageCpc:       "250000",
			AverageCpm:       "12500000",
			Conversions:      "2",
			ConversionsValue: "150.5",
			VideoViews:       "30",
		},
		Segments: &googledomain.Segments{Date: "2024-01-02"},
	}

	raw := ToRawInsight(row, "123-456-7890")

	assert.Equal(t, "2024-01-02", raw.Date)
	assert.Equal(t, "1234567890", raw.AccountID)
	assert.Equal(t, "20", raw.EntityID(domain.InsightLevelAdset))
	assert.Equal(t, "Campanha", raw.CampaignName)

	extracted := metrics.Extract(raw)
	assert.Equal(t, int64(1000), extracted.Impressions)
	assert.Equal(t, int64(50), extracted.Clicks)
	assert.InDelta(t, 12.5, extracted.Spend, 0.0001)
	assert.InDelta(t, 5.0, extracted.CTR, 0.0001)
	assert.InDelta(t, 0.25, extracted.CPC, 0.0001)
	assert.InDelta(t, 12.5, extracted.CPM, 0.0001)
	assert.InDelta(t, 2.0, extracted.Conversions, 0.0001)
	assert.InDelta(t, 150.5, extracted.ConversionValue, 0.0001)
	assert.InDelta(t, 30.0, extracted.VideoViews, 0.0001)
	assert.InDelta(t, 12.04, extracted.ROAS, 0.0001)
	assert.InDelta(t, 6.25, extracted.CostPerResult, 0.0001)
}

func TestToRawInsight_NoMetrics(t *testing.T) {
	raw := ToRawInsight(&googledomain.Row{
		Campaign: &googledomain.Campaign{ID: "10"},
		Segments: &googledomain.Segments{Date: "2024-01-02"},
	}, "1")

	assert.Empty(t, raw.Actions)
	assert.Equal(t, domain.FlexNumber(""), raw.Spend)

	extracted := metrics.Extract(raw)
	assert.Zero(t, extracted.Spend)
	assert.Zero(t, extracted.ROAS)
}

func TestGoogleIntegrator_GetRawInsightsSkipsRowsWithoutDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetInsights(gomock.Any(), "1", domain.InsightLevelCampaign, gomock.Any(), gomock.Any()).Return([]googledomain.Row{
		{Campaign: &googledomain.Campaign{ID: "10"}, Segments: &googledomain.Segments{Date: "2024-01-01"}},
		{Campaign: &googledomain.Campaign{ID: "11"}},
	}, nil)

	rows, err := New(client).GetRawInsights(context.Background(), "1", domain.InsightLevelCampaign, time.Now(), time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10", rows[0].CampaignID)
}

func TestGoogleIntegrator_DiscoverAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().ListAccessibleCustomers(gomock.Any()).Return([]string{"1", "2", "3", "4"}, nil)
	client.EXPECT().GetCustomer(gomock.Any(), "1").Return(&googledomain.Customer{ID: "1", DescriptiveName: "Loja", CurrencyCode: "BRL", Status: "ENABLED"}, nil)
	client.EXPECT().GetCustomer(gomock.Any(), "2").Return(&googledomain.Customer{ID: "2", Manager: true, Status: "ENABLED"}, nil)
	client.EXPECT().GetCustomer(gomock.Any(), "3").Return(nil, errors.New("permission denied"))
	client.EXPECT().GetCustomer(gomock.Any(), "4").Return(&googledomain.Customer{ID: "4", Status: "CANCELED"}, nil)

	accounts, err := New(client).DiscoverAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "1", accounts[0].ExternalID)
	assert.Equal(t, "Loja", accounts[0].Name)
	assert.Equal(t, domain.PlatformGoogle, accounts[0].Platform)
	assert.Equal(t, domain.AdAccountStatusActive, accounts[0].Status)

	assert.Equal(t, "4", accounts[1].Name)
	assert.Equal(t, domain.AdAccountStatusInactive, accounts[1].Status)
}
