package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var insightFields = []string{
	"account_id",
	"campaign_id",
	"campaign_name",
	"adset_id",
	"adset_name",
	"ad_id",
	"ad_name",
	"impressions",
	"clicks",
	"spend",
	"reach",
	"frequency",
	"ctr",
	"cpc",
	"cpm",
	"cpp",
	"actions",
	"action_values",
}

// GetInsights retorna uma linha por entidade do nível e por dia do período
func (c *MetaClient) GetInsights(ctx context.Context, accountID string, level domain.InsightLevel, since, until time.Time) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Set("level", string(level))
	params.Set("fields", strings.Join(insightFields, ","))
	params.Set("time_increment", "1")
	params.Set("limit", "500")
	params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, since.Format(time.DateOnly), until.Format(time.DateOnly)))

	insights, err := getAllPages[metadomain.Insight](ctx, c, c.endpoint(actPath(accountID)+"/insights", params))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
			"error":      err.Error(),
		}).Error("insights: failed to get insights from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"level":      level,
		"rows":       len(insights),
	}).Debug("insights: successfully retrieved insights")

	return insights, nil
}

// A Graph API endereça contas como act_{id}; aceitamos o id com ou sem o prefixo
func actPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
