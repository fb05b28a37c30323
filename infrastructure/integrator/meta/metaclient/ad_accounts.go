package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetBusinesses(ctx context.Context) ([]metadomain.Business, error) {
	params := url.Values{}
	params.Set("fields", "id,name")
	params.Set("limit", "100")

	return getAllPages[metadomain.Business](ctx, c, c.endpoint("me/businesses", params))
}

func (c *MetaClient) GetAdAccountsByBusinessID(ctx context.Context, businessID string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", "id,account_id,name,currency,account_status")
	params.Set("limit", "100")

	return getAllPages[metadomain.AdAccount](ctx, c, c.endpoint(url.PathEscape(businessID)+"/owned_ad_accounts", params))
}
