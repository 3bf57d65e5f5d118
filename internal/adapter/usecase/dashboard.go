package usecase

import (
	"context"
	"sync"

	"sonic-miniapp/internal/core/domain"
)

// DashboardData bundles everything the dashboard renders in one payload.
type DashboardData struct {
	Summary             domain.PerformanceSummary
	Performance         []domain.PerformanceRow
	Campaigns           []domain.Campaign
	CategoryPerformance []domain.GroupPerformance
	LanguagePerformance []domain.GroupPerformance
	Balance             domain.BalanceSummary
	Languages           []domain.Language
}

// loadDashboard fans out the dashboard fetches concurrently. Each section
// degrades to its zero value on failure so one broken endpoint never
// blanks the whole dashboard; failures are logged and the partial payload
// is rendered.
func (t *Tabs) loadDashboard(ctx context.Context) *DashboardData {
	data := &DashboardData{}
	var wg sync.WaitGroup
	run := func(name string, f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(); err != nil {
				t.logger.Warn("dashboard section load failed", "section", name, "err", err)
			}
		}()
	}

	run("summary", func() error {
		s, err := t.gw.PerformanceSummary(ctx, "last30")
		if err == nil {
			data.Summary = *s
		}
		return err
	})
	run("performance", func() error {
		rows, err := t.gw.Performance(ctx, "")
		if err == nil {
			data.Performance = rows
		}
		return err
	})
	run("campaigns", func() error {
		list, err := t.gw.ListCampaigns(ctx)
		if err == nil {
			data.Campaigns = list
		}
		return err
	})
	run("category performance", func() error {
		rows, err := t.gw.PerformanceByGroup(ctx, "category")
		if err == nil {
			data.CategoryPerformance = rows
		}
		return err
	})
	run("language performance", func() error {
		rows, err := t.gw.PerformanceByGroup(ctx, "language")
		if err == nil {
			data.LanguagePerformance = rows
		}
		return err
	})
	run("balance", func() error {
		b, err := t.gw.BalanceSummary(ctx)
		if err == nil {
			data.Balance = *b
		}
		return err
	})
	run("languages", func() error {
		langs, err := t.gw.Languages(ctx)
		if err == nil {
			data.Languages = langs
		}
		return err
	})

	wg.Wait()
	return data
}
