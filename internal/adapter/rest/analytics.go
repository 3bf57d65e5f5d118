package rest

import (
	"context"
	"net/url"

	"sonic-miniapp/internal/core/domain"
)

// PerformanceSummary fetches the aggregated account metrics for a period
// such as "last30".
func (c *Client) PerformanceSummary(ctx context.Context, period string) (*domain.PerformanceSummary, error) {
	path := "/api/advertiser/performance/summary/"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	var out domain.PerformanceSummary
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Performance fetches the per-day delivery rows.
func (c *Client) Performance(ctx context.Context, period string) ([]domain.PerformanceRow, error) {
	path := "/api/advertiser/performance/"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	var out []domain.PerformanceRow
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PerformanceByGroup fetches delivery broken down by "category" or
// "language".
func (c *Client) PerformanceByGroup(ctx context.Context, groupBy string) ([]domain.GroupPerformance, error) {
	var out []domain.GroupPerformance
	if err := c.get(ctx, "/api/advertiser/performance/summary/?group_by="+url.QueryEscape(groupBy), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CampaignPerformance fetches the per-day rows for one campaign.
func (c *Client) CampaignPerformance(ctx context.Context, id string) ([]domain.PerformanceRow, error) {
	q := url.Values{"ad_placement__ad__campaign": {id}}
	var out []domain.PerformanceRow
	if err := c.get(ctx, "/api/advertiser/performance/?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Languages fetches the targetable language catalog.
func (c *Client) Languages(ctx context.Context) ([]domain.Language, error) {
	var out []domain.Language
	if err := c.get(ctx, "/api/languages/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories fetches the targetable category catalog.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.get(ctx, "/api/categories/", &out); err != nil {
		return nil, err
	}
	return out, nil
}
