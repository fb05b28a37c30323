package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestMetaIntegrator_GetRawInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	client.EXPECT().GetInsights(gomock.Any(), "123", domain.InsightLevelAdset, since, until).Return([]metadomain.Insight{
		{
			DateStart:  "2024-01-02",
			DateStop:   "2024-01-02",
			CampaignID: "c1",
			AdsetID:    "as1",
			AdsetName:  "Conjunto",
			Spend:      "12.30",
			Actions: []domain.Action{
				{ActionType: "purchase", Value: "2"},
			},
		},
	}, nil)

	integrator := New(client)

	rows, err := integrator.GetRawInsights(context.Background(), "123", domain.InsightLevelAdset, since, until)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "2024-01-02", rows[0].Date)
	assert.Equal(t, "123", rows[0].AccountID)
	assert.Equal(t, "as1", rows[0].EntityID(domain.InsightLevelAdset))
	assert.Equal(t, "Conjunto", rows[0].EntityName(domain.InsightLevelAdset))
	assert.Equal(t, domain.FlexNumber("12.30"), rows[0].Spend)
	assert.Len(t, rows[0].Actions, 1)
}

func TestMetaIntegrator_GetRawInsightsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetInsights(gomock.Any(), "123", domain.InsightLevelAd, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	_, err := New(client).GetRawInsights(context.Background(), "123", domain.InsightLevelAd, time.Now(), time.Now())
	assert.EqualError(t, err, "boom")
}

func TestMetaIntegrator_DiscoverAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetBusinesses(gomock.Any()).Return([]metadomain.Business{
		{ID: "bm1", Name: "Loja Centro"},
		{ID: "bm2", Name: "Loja Norte"},
	}, nil)
	client.EXPECT().GetAdAccountsByBusinessID(gomock.Any(), "bm1").Return([]metadomain.AdAccount{
		{ID: "act_1", AccountID: "1", Name: "Conta 1", Currency: "BRL", AccountStatus: 1},
		{ID: "act_2", AccountID: "2", Name: "Conta 2", Currency: "BRL", AccountStatus: 2},
	}, nil)
	client.EXPECT().GetAdAccountsByBusinessID(gomock.Any(), "bm2").Return(nil, errors.New("permission denied"))

	accounts, err := New(client).DiscoverAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "1", accounts[0].ExternalID)
	assert.Equal(t, domain.PlatformMeta, accounts[0].Platform)
	assert.Equal(t, domain.AdAccountStatusActive, accounts[0].Status)
	assert.Equal(t, "bm1", accounts[0].BusinessManagerID)
	assert.Equal(t, "Loja Centro", accounts[0].BusinessManagerName)
	require.NotNil(t, accounts[0].Nickname)
	assert.Equal(t, "Conta 1", *accounts[0].Nickname)

	assert.Equal(t, domain.AdAccountStatusInactive, accounts[1].Status)
	assert.Equal(t, "Conta 2", *accounts[1].Nickname)
}

func TestMetaIntegrator_DiscoverAccountsBusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetBusinesses(gomock.Any()).Return(nil, errors.New("unauthorized"))

	_, err := New(client).DiscoverAccounts(context.Background())
	assert.Error(t, err)
}
