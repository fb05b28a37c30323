package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

// GetRawInsights busca as linhas diárias do nível informado para a conta externa
func (s *MetaIntegrator) GetRawInsights(ctx context.Context, externalAccountID string, level domain.InsightLevel, since, until time.Time) ([]domain.RawInsight, error) {
	insights, err := s.Client.GetInsights(ctx, externalAccountID, level, since, until)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RawInsight, 0, len(insights))
	for i := range insights {
		rows = append(rows, ToRawInsight(&insights[i], externalAccountID))
	}

	return rows, nil
}

// ToRawInsight converte uma linha da Graph API. Os números seguem como texto bruto.
func ToRawInsight(insight *metadomain.Insight, externalAccountID string) domain.RawInsight {
	accountID := insight.AccountID
	if accountID == "" {
		accountID = externalAccountID
	}

	return domain.RawInsight{
		Date:         insight.DateStart,
		AccountID:    accountID,
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		AdsetID:      insight.AdsetID,
		AdsetName:    insight.AdsetName,
		AdID:         insight.AdID,
		AdName:       insight.AdName,
		Impressions:  insight.Impressions,
		Clicks:       insight.Clicks,
		Spend:        insight.Spend,
		Reach:        insight.Reach,
		Frequency:    insight.Frequency,
		CTR:          insight.CTR,
		CPC:          insight.CPC,
		CPM:          insight.CPM,
		CPP:          insight.CPP,
		Actions:      insight.Actions,
		ActionValues: insight.ActionValues,
	}
}

// DiscoverAccounts lista as contas de anúncio de todos os Business Managers do usuário.
// Falhas em um Business Manager não interrompem os demais.
func (s *MetaIntegrator) DiscoverAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	businesses, err := s.Client.GetBusinesses(ctx)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get business managers")
		return nil, err
	}

	allAdAccounts := make([]*domain.AdAccount, 0)

	for _, b := range businesses {
		adAccounts, err := s.Client.GetAdAccountsByBusinessID(ctx, b.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"error":       err.Error(),
			}).Error("insights: failed to get ad accounts for business")
			continue
		}

		for i := range adAccounts {
			adAccount := adAccounts[i]

			status := domain.AdAccountStatusInactive
			if adAccount.IsActive() {
				status = domain.AdAccountStatusActive
			}

			allAdAccounts = append(allAdAccounts, &domain.AdAccount{
				ExternalID:          adAccount.AccountID,
				Name:                adAccount.Name,
				Nickname:            &adAccount.Name,
				Currency:            adAccount.Currency,
				Platform:            domain.PlatformMeta,
				Status:              status,
				BusinessManagerID:   b.ID,
				BusinessManagerName: b.Name,
			})
		}
	}

	logrus.WithField("total_accounts", len(allAdAccounts)).Info("insights: successfully retrieved all ad accounts")

	return allAdAccounts, nil
}
