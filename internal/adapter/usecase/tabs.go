package usecase

import (
	"context"
	"log/slog"
	"sync"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Tabs owns the current-tab state and the per-tab payload cache. A tab's
// payload is fetched on first visit and replayed from cache afterwards;
// the dashboard is the exception and refetches on every visit so returning
// to it acts as pull-to-refresh.
//
// Fetches run in the caller's goroutine, so two switches in quick
// succession race. Each fetch carries a generation number taken under the
// lock; a result whose generation is no longer the latest for its tab is
// discarded, so a stale response can neither overwrite fresher data nor
// render into a tab the user already left.
type Tabs struct {
	gw     port.Gateway
	view   port.View
	notify port.Notifier
	logger *slog.Logger

	mu         sync.Mutex
	current    domain.Tab
	cache      map[domain.Tab]any
	generation map[domain.Tab]uint64
}

// NewTabs creates the tab controller with the dashboard as the landing tab.
func NewTabs(gw port.Gateway, view port.View, notify port.Notifier, logger *slog.Logger) *Tabs {
	return &Tabs{
		gw:         gw,
		view:       view,
		notify:     notify,
		logger:     logger,
		current:    domain.TabDashboard,
		cache:      make(map[domain.Tab]any),
		generation: make(map[domain.Tab]uint64),
	}
}

// Current returns the visible tab.
func (t *Tabs) Current() domain.Tab {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Cached returns the cached payload for a tab, if any.
func (t *Tabs) Cached(tab domain.Tab) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.cache[tab]
	return p, ok
}

// SwitchTab makes tab current. Re-selecting the current tab is a no-op
// except for the dashboard, which always refetches. Cached tabs render
// immediately without a network call.
func (t *Tabs) SwitchTab(ctx context.Context, tab domain.Tab) {
	t.mu.Lock()
	if t.current == tab && tab != domain.TabDashboard {
		t.mu.Unlock()
		return
	}
	t.current = tab
	if payload, ok := t.cache[tab]; ok && tab != domain.TabDashboard {
		t.mu.Unlock()
		t.view.ShowTab(tab)
		t.view.RenderTab(tab, payload)
		return
	}
	gen := t.generation[tab] + 1
	t.generation[tab] = gen
	t.mu.Unlock()

	t.view.ShowTab(tab)
	t.fetch(ctx, tab, gen)
}

// RefreshCurrentTab drops the visible tab's cache and refetches it.
func (t *Tabs) RefreshCurrentTab(ctx context.Context) {
	t.mu.Lock()
	tab := t.current
	delete(t.cache, tab)
	gen := t.generation[tab] + 1
	t.generation[tab] = gen
	t.mu.Unlock()
	t.fetch(ctx, tab, gen)
}

// Invalidate drops the cached payloads so the next visit refetches.
func (t *Tabs) Invalidate(tabs ...domain.Tab) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tab := range tabs {
		delete(t.cache, tab)
	}
}

// ReloadAfterMutation drops every cache derived from campaign or wallet
// state and refetches whatever tab is visible. Called after any mutation
// that changes server state.
func (t *Tabs) ReloadAfterMutation(ctx context.Context) {
	t.Invalidate(domain.TabDashboard, domain.TabCampaigns, domain.TabPayments)
	t.RefreshCurrentTab(ctx)
}

func (t *Tabs) fetch(ctx context.Context, tab domain.Tab, gen uint64) {
	t.view.SetTabLoading(tab, true)
	payload, err := t.load(ctx, tab)

	t.mu.Lock()
	if t.generation[tab] != gen {
		// superseded by a newer fetch for the same tab; that fetch owns
		// the loading flag and any error reporting now
		t.mu.Unlock()
		return
	}
	if err != nil {
		t.mu.Unlock()
		t.view.SetTabLoading(tab, false)
		t.logger.Error("tab load failed", "tab", tab, "err", err)
		t.notify.Error("Failed to load " + tab.Title() + " data: " + err.Error())
		return
	}
	t.cache[tab] = payload
	current := t.current
	t.mu.Unlock()

	t.view.SetTabLoading(tab, false)
	if current == tab {
		t.view.RenderTab(tab, payload)
	}
}

// load fetches the payload for one tab.
func (t *Tabs) load(ctx context.Context, tab domain.Tab) (any, error) {
	switch tab {
	case domain.TabDashboard:
		return t.loadDashboard(ctx), nil
	case domain.TabCampaigns:
		return t.gw.ListCampaigns(ctx)
	case domain.TabChannels:
		return t.gw.ListChannels(ctx)
	case domain.TabPayments:
		return t.loadPayments(ctx)
	case domain.TabAds:
		return t.gw.ListAdPlacements(ctx)
	case domain.TabSettings:
		return t.gw.Profile(ctx)
	default:
		return nil, nil
	}
}

// PaymentsData is the payments tab payload.
type PaymentsData struct {
	Balance *domain.BalanceSummary
	Methods []domain.PaymentMethod
}

func (t *Tabs) loadPayments(ctx context.Context) (*PaymentsData, error) {
	balance, err := t.gw.BalanceSummary(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := t.gw.ListPaymentMethods(ctx)
	if err != nil {
		// the wallet is still useful without payout methods
		t.logger.Warn("payment methods load failed", "err", err)
		methods = nil
	}
	return &PaymentsData{Balance: balance, Methods: methods}, nil
}
