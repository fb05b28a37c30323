package google

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	googledomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/metrics"
)

const microsPerUnit = 1_000_000

// Tipos de ação usados para que o extrator trate Google e Meta da mesma forma
const (
	purchaseActionType  = "purchase"
	videoViewActionType = "video_view"
)

type GoogleIntegrator struct {
	Client googleclient.Client
}

func New(client googleclient.Client) *GoogleIntegrator {
	return &GoogleIntegrator{
		Client: client,
	}
}

func (s *GoogleIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (s *GoogleIntegrator) GetRawInsights(ctx context.Context, customerID string, level domain.InsightLevel, since, until time.Time) ([]domain.RawInsight, error) {
	rows, err := s.Client.GetInsights(ctx, customerID, level, since, until)
	if err != nil {
		return nil, err
	}

	insights := make([]domain.RawInsight, 0, len(rows))
	for i := range rows {
		if rows[i].Segments == nil || rows[i].Segments.Date == "" {
			continue
		}
		insights = append(insights, ToRawInsight(&rows[i], customerID))
	}

	return insights, nil
}

// ToRawInsight converte uma linha GAQL: micros viram moeda, ctr fracionário vira
// percentual e conversões viram ações "purchase".
func ToRawInsight(row *googledomain.Row, customerID string) domain.RawInsight {
	raw := domain.RawInsight{
		AccountID: googleclient.NormalizeCustomerID(customerID),
	}

	if row.Segments != nil {
		raw.Date = row.Segments.Date
	}
	if row.Campaign != nil {
		raw.CampaignID = row.Campaign.ID
		raw.CampaignName = row.Campaign.Name
	}
	if row.AdGroup != nil {
		raw.AdsetID = row.AdGroup.ID
		raw.AdsetName = row.AdGroup.Name
	}
	if row.AdGroupAd != nil {
		raw.AdID = row.AdGroupAd.Ad.ID
		raw.AdName = row.AdGroupAd.Ad.Name
	}

	m := row.Metrics
	if m == nil {
		return raw
	}

	raw.Impressions = m.Impressions
	raw.Clicks = m.Clicks
	raw.Spend = fromMicros(m.CostMicros)
	raw.CTR = formatFloat(metrics.ParseFloat(m.Ctr) * 100)
	raw.CPC = fromMicros(m.AverageCpc)
	raw.CPM = fromMicros(m.AverageCpm)

	if conversions := metrics.ParseFloat(m.Conversions); conversions > 0 {
		raw.Actions = append(raw.Actions, domain.Action{ActionType: purchaseActionType, Value: formatFloat(conversions)})
	}
	if videoViews := metrics.ParseFloat(m.VideoViews); videoViews > 0 {
		raw.Actions = append(raw.Actions, domain.Action{ActionType: videoViewActionType, Value: formatFloat(videoViews)})
	}
	if value := metrics.ParseFloat(m.ConversionsValue); value > 0 {
		raw.ActionValues = append(raw.ActionValues, domain.Action{ActionType: purchaseActionType, Value: formatFloat(value)})
	}

	return raw
}

// DiscoverAccounts lista os clientes acessíveis. Contas de administrador (MCC) não
// têm métricas próprias e ficam de fora.
func (s *GoogleIntegrator) DiscoverAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	customerIDs, err := s.Client.ListAccessibleCustomers(ctx)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list google ads customers")
		return nil, err
	}

	accounts := make([]*domain.AdAccount, 0, len(customerIDs))

	for _, customerID := range customerIDs {
		customer, err := s.Client.GetCustomer(ctx, customerID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("insights: failed to get google ads customer")
			continue
		}
		if customer == nil || customer.Manager {
			continue
		}

		status := domain.AdAccountStatusInactive
		if customer.IsEnabled() {
			status = domain.AdAccountStatusActive
		}

		name := customer.DescriptiveName
		if name == "" {
			name = customerID
		}

		accounts = append(accounts, &domain.AdAccount{
			ExternalID: customerID,
			Name:       name,
			Nickname:   &name,
			Currency:   customer.CurrencyCode,
			Platform:   domain.PlatformGoogle,
			Status:     status,
		})
	}

	logrus.WithField("total_accounts", len(accounts)).Info("insights: successfully retrieved google ads accounts")

	return accounts, nil
}

func fromMicros(v domain.FlexNumber) domain.FlexNumber {
	if v == "" {
		return ""
	}
	return formatFloat(metrics.ParseFloat(v) / microsPerUnit)
}

func formatFloat(f float64) domain.FlexNumber {
	return domain.FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
}
