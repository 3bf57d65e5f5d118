package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/config/configs"
	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port/mocks"
)

func newTestActions(t *testing.T) (*Actions, *TopUp, *mocks.MockGateway, *mocks.MockNotifier, *Tabs) {
	gw := mocks.NewMockGateway(t)
	view := mocks.NewMockView(t)
	notifier := mocks.NewMockNotifier(t)
	view.EXPECT().ShowTab(mock.Anything).Return().Maybe()
	view.EXPECT().SetTabLoading(mock.Anything, mock.Anything).Return().Maybe()
	view.EXPECT().RenderTab(mock.Anything, mock.Anything).Return().Maybe()

	tabs := NewTabs(gw, view, notifier, testLogger())
	topup := NewTopUp(gw, notifier, testLogger(), configs.Topup{PollInterval: time.Millisecond, PollAttempts: 1})
	return NewActions(gw, tabs, topup, notifier, testLogger()), topup, gw, notifier, tabs
}

// switchToCampaigns parks the tab controller on the campaigns tab so a
// reload only refetches the campaign list.
func switchToCampaigns(t *testing.T, tabs *Tabs, gw *mocks.MockGateway, fetches int) {
	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Times(fetches)
	tabs.SwitchTab(context.Background(), domain.TabCampaigns)
}

// TestSubmitWithSufficientBalance submits directly when the wallet covers
// the budget.
func TestSubmitWithSufficientBalance(t *testing.T) {
	a, topup, gw, notifier, tabs := newTestActions(t)
	switchToCampaigns(t, tabs, gw, 2)

	gw.EXPECT().GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", InitialBudget: 500}, nil).Once()
	gw.EXPECT().BalanceSummary(mock.Anything).
		Return(&domain.BalanceSummary{Available: 800}, nil).Once()
	gw.EXPECT().SubmitCampaign(mock.Anything, "c1").Return(nil).Once()
	notifier.EXPECT().Success("Campaign submitted for review successfully!").Return().Once()

	a.Submit(context.Background(), "c1")

	if topup.State() != TopUpClosed {
		t.Fatalf("top-up must stay closed when the balance suffices")
	}
}

// TestSubmitOpensTopUpOnShortfall hands over to the top-up flow with the
// missing amount and submits once the deposit is confirmed.
func TestSubmitOpensTopUpOnShortfall(t *testing.T) {
	a, topup, gw, notifier, tabs := newTestActions(t)
	switchToCampaigns(t, tabs, gw, 2)

	gw.EXPECT().GetCampaign(mock.Anything, "c2").
		Return(&domain.Campaign{ID: "c2", InitialBudget: 1000}, nil).Once()
	gw.EXPECT().BalanceSummary(mock.Anything).
		Return(&domain.BalanceSummary{Available: 600}, nil).Once()

	a.Submit(context.Background(), "c2")

	if topup.State() != TopUpEntry {
		t.Fatalf("expected top-up dialog open, got state %d", topup.State())
	}
	amount, _, _ := topup.Form()
	if amount != "400.00" {
		t.Fatalf("expected shortfall prefilled, got %q", amount)
	}

	// the deposit must settle before the confirm is accepted
	topup.SetMobile("0911234567")
	gw.EXPECT().RequestDeposit(mock.Anything, 400.0, "0911234567", domain.PayTelebirr).
		Return(&domain.DepositReceipt{Reference: "DEP-10"}, nil).Once()
	gw.EXPECT().DepositStatus(mock.Anything, "DEP-10").
		Return(&domain.DepositStatus{Status: "success", Credited: true, Message: "Payment completed successfully! Your balance has been updated."}, nil).Once()
	notifier.EXPECT().Success("Payment completed successfully! Your balance has been updated.").Return().Once()
	topup.Proceed(context.Background())

	if topup.State() != TopUpResolved {
		t.Fatalf("expected resolved after settle, got state %d", topup.State())
	}

	// confirming the deposit resumes the submission
	gw.EXPECT().BalanceSummary(mock.Anything).
		Return(&domain.BalanceSummary{Available: 1000}, nil).Once()
	notifier.EXPECT().Success("Your current balance is ETB 1000.00.").Return().Once()
	gw.EXPECT().SubmitCampaign(mock.Anything, "c2").Return(nil).Once()
	notifier.EXPECT().Success("Campaign submitted for review successfully!").Return().Once()

	topup.Confirm(context.Background())

	if topup.State() != TopUpClosed {
		t.Fatalf("top-up should close after the resumed submit")
	}
}

// TestSubmitNoEligibleChannels maps the backend's eligibility error onto
// the dedicated message.
func TestSubmitNoEligibleChannels(t *testing.T) {
	a, _, gw, notifier, _ := newTestActions(t)

	gw.EXPECT().GetCampaign(mock.Anything, "c3").
		Return(&domain.Campaign{ID: "c3", InitialBudget: 100}, nil).Once()
	gw.EXPECT().BalanceSummary(mock.Anything).
		Return(&domain.BalanceSummary{Available: 500}, nil).Once()
	gw.EXPECT().SubmitCampaign(mock.Anything, "c3").
		Return(bodyErr{code: 400, body: `{"error": "No eligible channels found for campaign Test"}`}).Once()
	notifier.EXPECT().Error("No eligible channels found for campaign").Return().Once()

	a.Submit(context.Background(), "c3")
}

// TestTransitions drives pause, resume and stop through the gateway.
func TestTransitions(t *testing.T) {
	a, _, gw, notifier, tabs := newTestActions(t)
	switchToCampaigns(t, tabs, gw, 4)

	gw.EXPECT().PauseCampaign(mock.Anything, "c4").Return(nil).Once()
	notifier.EXPECT().Success("Campaign paused successfully!").Return().Once()
	a.Pause(context.Background(), "c4")

	gw.EXPECT().ResumeCampaign(mock.Anything, "c4").Return(nil).Once()
	notifier.EXPECT().Success("Campaign resumed successfully!").Return().Once()
	a.Resume(context.Background(), "c4")

	gw.EXPECT().StopCampaign(mock.Anything, "c4").Return(nil).Once()
	notifier.EXPECT().Success("Campaign stopped successfully!").Return().Once()
	a.Stop(context.Background(), "c4")
}

// TestTransitionFailure surfaces the error and leaves the cache alone.
func TestTransitionFailure(t *testing.T) {
	a, _, gw, notifier, tabs := newTestActions(t)
	switchToCampaigns(t, tabs, gw, 1)

	gw.EXPECT().PauseCampaign(mock.Anything, "c5").Return(errors.New("boom")).Once()
	notifier.EXPECT().Error("pause failed: boom").Return().Once()

	a.Pause(context.Background(), "c5")

	if _, ok := tabs.Cached(domain.TabCampaigns); !ok {
		t.Fatalf("failed transition must not drop the cache")
	}
}

// TestDelete removes a campaign and reloads.
func TestDelete(t *testing.T) {
	a, _, gw, notifier, tabs := newTestActions(t)
	switchToCampaigns(t, tabs, gw, 2)

	gw.EXPECT().DeleteCampaign(mock.Anything, "c6").Return(nil).Once()
	notifier.EXPECT().Success("Campaign deleted successfully!").Return().Once()

	a.Delete(context.Background(), "c6")
}

// TestPerformanceDrilldown loads the campaign and its per-day rows.
func TestPerformanceDrilldown(t *testing.T) {
	a, _, gw, _, _ := newTestActions(t)

	gw.EXPECT().GetCampaign(mock.Anything, "c7").
		Return(&domain.Campaign{ID: "c7", Name: "Drill"}, nil).Once()
	gw.EXPECT().CampaignPerformance(mock.Anything, "c7").
		Return([]domain.PerformanceRow{{Date: "2026-08-01", Impressions: 12}}, nil).Once()

	campaign, rows, err := a.Performance(context.Background(), "c7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if campaign.Name != "Drill" || len(rows) != 1 {
		t.Fatalf("unexpected drilldown data: %+v %+v", campaign, rows)
	}
}
