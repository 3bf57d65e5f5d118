package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTabs(t *testing.T) (*Tabs, *mocks.MockGateway, *mocks.MockView, *mocks.MockNotifier) {
	gw := mocks.NewMockGateway(t)
	view := mocks.NewMockView(t)
	notifier := mocks.NewMockNotifier(t)
	view.EXPECT().ShowTab(mock.Anything).Return().Maybe()
	view.EXPECT().SetTabLoading(mock.Anything, mock.Anything).Return().Maybe()
	view.EXPECT().RenderTab(mock.Anything, mock.Anything).Return().Maybe()
	return NewTabs(gw, view, notifier, testLogger()), gw, view, notifier
}

// TestCachedTabDoesNotRefetch ensures returning to a visited tab replays the
// cache instead of hitting the network again.
func TestCachedTabDoesNotRefetch(t *testing.T) {
	tabs, gw, _, _ := newTestTabs(t)

	gw.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{{ID: "1"}}, nil).Once()
	gw.EXPECT().ListChannels(mock.Anything).Return(nil, nil).Once()

	ctx := context.Background()
	tabs.SwitchTab(ctx, domain.TabCampaigns)
	tabs.SwitchTab(ctx, domain.TabChannels)
	tabs.SwitchTab(ctx, domain.TabCampaigns)

	if tabs.Current() != domain.TabCampaigns {
		t.Fatalf("expected campaigns tab current, got %s", tabs.Current())
	}
	payload, ok := tabs.Cached(domain.TabCampaigns)
	if !ok {
		t.Fatalf("expected cached campaigns payload")
	}
	if list := payload.([]domain.Campaign); len(list) != 1 || list[0].ID != "1" {
		t.Fatalf("unexpected cached payload: %+v", payload)
	}
}

// TestReselectCurrentTabIsNoOp ensures pressing the active tab again does
// nothing for non-dashboard tabs.
func TestReselectCurrentTabIsNoOp(t *testing.T) {
	tabs, gw, _, _ := newTestTabs(t)

	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Once()

	ctx := context.Background()
	tabs.SwitchTab(ctx, domain.TabCampaigns)
	tabs.SwitchTab(ctx, domain.TabCampaigns)
	tabs.SwitchTab(ctx, domain.TabCampaigns)
}

// TestDashboardAlwaysRefetches ensures the dashboard ignores its cache so
// re-entering it acts as a refresh.
func TestDashboardAlwaysRefetches(t *testing.T) {
	tabs, gw, _, _ := newTestTabs(t)

	var summaryCalls int32
	gw.EXPECT().PerformanceSummary(mock.Anything, "last30").RunAndReturn(
		func(context.Context, string) (*domain.PerformanceSummary, error) {
			atomic.AddInt32(&summaryCalls, 1)
			return &domain.PerformanceSummary{ActiveCampaigns: 2}, nil
		})
	gw.EXPECT().Performance(mock.Anything, "").Return(nil, nil)
	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)
	gw.EXPECT().PerformanceByGroup(mock.Anything, "category").Return(nil, nil)
	gw.EXPECT().PerformanceByGroup(mock.Anything, "language").Return(nil, nil)
	gw.EXPECT().BalanceSummary(mock.Anything).Return(&domain.BalanceSummary{Available: 10}, nil)
	gw.EXPECT().Languages(mock.Anything).Return(nil, nil)

	ctx := context.Background()
	tabs.SwitchTab(ctx, domain.TabDashboard)
	tabs.SwitchTab(ctx, domain.TabDashboard)

	if got := atomic.LoadInt32(&summaryCalls); got != 2 {
		t.Fatalf("expected 2 summary fetches, got %d", got)
	}
	payload, ok := tabs.Cached(domain.TabDashboard)
	if !ok {
		t.Fatalf("expected dashboard payload cached")
	}
	data := payload.(*DashboardData)
	if data.Summary.ActiveCampaigns != 2 || data.Balance.Available != 10 {
		t.Fatalf("unexpected dashboard payload: %+v", data)
	}
}

// TestStaleFetchDiscarded ensures a fetch that finishes after a newer fetch
// for the same tab can not overwrite the fresher payload.
func TestStaleFetchDiscarded(t *testing.T) {
	tabs, gw, _, _ := newTestTabs(t)

	release := make(chan struct{})
	var calls int32
	gw.EXPECT().ListCampaigns(mock.Anything).RunAndReturn(
		func(context.Context) ([]domain.Campaign, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				<-release
				return []domain.Campaign{{ID: "stale"}}, nil
			}
			return []domain.Campaign{{ID: "fresh"}}, nil
		})

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tabs.SwitchTab(ctx, domain.TabCampaigns)
	}()
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	// a refresh supersedes the in-flight fetch, then the old one completes
	tabs.RefreshCurrentTab(ctx)
	close(release)
	wg.Wait()

	payload, ok := tabs.Cached(domain.TabCampaigns)
	if !ok {
		t.Fatalf("expected cached payload")
	}
	if list := payload.([]domain.Campaign); list[0].ID != "fresh" {
		t.Fatalf("stale fetch overwrote fresh payload: %+v", list)
	}
}

// TestStaleFetchErrorSwallowed ensures a superseded fetch that fails does
// not toast its error; the newer fetch owns all reporting for the tab.
func TestStaleFetchErrorSwallowed(t *testing.T) {
	tabs, gw, _, _ := newTestTabs(t)

	release := make(chan struct{})
	var calls int32
	gw.EXPECT().ListCampaigns(mock.Anything).RunAndReturn(
		func(context.Context) ([]domain.Campaign, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				<-release
				return nil, errors.New("boom")
			}
			return []domain.Campaign{{ID: "fresh"}}, nil
		})

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tabs.SwitchTab(ctx, domain.TabCampaigns)
	}()
	for atomic.LoadInt32(&calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	// the refresh supersedes the in-flight fetch, whose failure must stay
	// silent; the notifier mock rejects any unexpected Error call
	tabs.RefreshCurrentTab(ctx)
	close(release)
	wg.Wait()

	payload, ok := tabs.Cached(domain.TabCampaigns)
	if !ok {
		t.Fatalf("expected cached payload from the fresh fetch")
	}
	if list := payload.([]domain.Campaign); list[0].ID != "fresh" {
		t.Fatalf("unexpected payload: %+v", list)
	}
}

// TestFetchErrorNotifies ensures a failed tab load surfaces a toast and
// leaves the cache empty.
func TestFetchErrorNotifies(t *testing.T) {
	tabs, gw, _, notifier := newTestTabs(t)

	gw.EXPECT().ListChannels(mock.Anything).Return(nil, errors.New("boom")).Once()
	notifier.EXPECT().Error("Failed to load Channels data: boom").Return().Once()

	tabs.SwitchTab(context.Background(), domain.TabChannels)

	if _, ok := tabs.Cached(domain.TabChannels); ok {
		t.Fatalf("failed load must not be cached")
	}
}

// TestReloadAfterMutation ensures campaign- and wallet-derived caches are
// dropped and the visible tab is refetched.
func TestReloadAfterMutation(t *testing.T) {
	tabs, gw, _, _ := newTestTabs(t)

	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Once()
	gw.EXPECT().ListChannels(mock.Anything).Return(nil, nil).Twice()

	ctx := context.Background()
	tabs.SwitchTab(ctx, domain.TabCampaigns)
	tabs.SwitchTab(ctx, domain.TabChannels)

	tabs.ReloadAfterMutation(ctx)

	if _, ok := tabs.Cached(domain.TabCampaigns); ok {
		t.Fatalf("campaigns cache should be invalidated")
	}
	if _, ok := tabs.Cached(domain.TabChannels); !ok {
		t.Fatalf("channels tab should have been refetched")
	}
}
