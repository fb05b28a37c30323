package googleclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const customerQuery = "SELECT customer.id, customer.descriptive_name, customer.currency_code, customer.status, customer.manager FROM customer LIMIT 1"

var metricFields = []string{
	"metrics.impressions",
	"metrics.clicks",
	"metrics.cost_micros",
	"metrics.ctr",
	"metrics.average_cpc",
	"metrics.average_cpm",
	"metrics.conversions",
	"metrics.conversions_value",
	"metrics.video_views",
	"segments.date",
}

// BuildInsightsQuery monta a consulta GAQL do nível. Conjuntos de anúncios são ad_group
// e anúncios são ad_group_ad no Google Ads.
func BuildInsightsQuery(level domain.InsightLevel, since, until time.Time) string {
	var resource string
	var entityFields []string

	switch level {
	case domain.InsightLevelAd:
		resource = "ad_group_ad"
		entityFields = []string{"campaign.id", "campaign.name", "ad_group.id", "ad_group.name", "ad_group_ad.ad.id", "ad_group_ad.ad.name"}
	case domain.InsightLevelAdset:
		resource = "ad_group"
		entityFields = []string{"campaign.id", "campaign.name", "ad_group.id", "ad_group.name"}
	default:
		resource = "campaign"
		entityFields = []string{"campaign.id", "campaign.name"}
	}

	fields := append(entityFields, metricFields...)

	return fmt.Sprintf("SELECT %s FROM %s WHERE segments.date BETWEEN '%s' AND '%s'",
		strings.Join(fields, ", "),
		resource,
		since.Format(time.DateOnly),
		until.Format(time.DateOnly),
	)
}
