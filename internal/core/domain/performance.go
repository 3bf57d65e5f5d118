package domain

// PerformanceSummary aggregates account-wide delivery metrics for a period.
type PerformanceSummary struct {
	ActiveCampaigns  int     `json:"active_campaigns"`
	TotalCost        float64 `json:"total_cost"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	CTR              float64 `json:"ctr"`
}

// PerformanceRow is one day of delivery for the performance chart.
type PerformanceRow struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
}

// GroupPerformance breaks delivery down by category or language.
type GroupPerformance struct {
	Group            string  `json:"group"`
	TotalImpressions int64   `json:"total_impressions"`
	CTR              float64 `json:"ctr"`
	EngagementRate   float64 `json:"engagement_rate"`
}
