package usecase

import (
	"context"
	"log/slog"
	"strings"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Actions executes campaign lifecycle transitions. Submission goes through
// a balance check first and hands over to the top-up flow when the wallet
// cannot cover the campaign budget.
type Actions struct {
	gw     port.Gateway
	tabs   *Tabs
	topup  *TopUp
	notify port.Notifier
	logger *slog.Logger
}

// NewActions wires the lifecycle executor.
func NewActions(gw port.Gateway, tabs *Tabs, topup *TopUp, notify port.Notifier, logger *slog.Logger) *Actions {
	return &Actions{gw: gw, tabs: tabs, topup: topup, notify: notify, logger: logger}
}

// Submit fetches the campaign and submits it for review, topping up the
// balance first when it cannot cover the campaign budget.
func (a *Actions) Submit(ctx context.Context, id string) {
	campaign, err := a.gw.GetCampaign(ctx, id)
	if err != nil {
		a.submitError("Submit failed", err)
		return
	}
	a.submitWithBalanceCheck(ctx, campaign)
}

func (a *Actions) submitWithBalanceCheck(ctx context.Context, campaign *domain.Campaign) {
	balance, err := a.gw.BalanceSummary(ctx)
	if err != nil {
		a.submitError("Submit failed", err)
		return
	}
	needed := campaign.InitialBudget
	if balance.Available < needed {
		shortfall := needed - balance.Available
		a.logger.Info("submission needs top-up", "campaign", campaign.ID, "shortfall", shortfall)
		id := campaign.ID
		a.topup.Open(shortfall, func(ctx context.Context, _ float64) {
			a.submitCampaign(ctx, id, "Submit after top-up failed")
		})
		return
	}
	a.submitCampaign(ctx, campaign.ID, "Submit failed")
}

func (a *Actions) submitCampaign(ctx context.Context, id, failPrefix string) {
	if err := a.gw.SubmitCampaign(ctx, id); err != nil {
		a.submitError(failPrefix, err)
		return
	}
	a.topup.Cancel()
	a.notify.Success("Campaign submitted for review successfully!")
	a.tabs.ReloadAfterMutation(ctx)
}

// submitError surfaces a failed submission. The no-eligible-channels case
// gets its own message so the friendly mapping can explain the targeting
// mismatch.
func (a *Actions) submitError(prefix string, err error) {
	a.logger.Error("campaign submit failed", "err", err)
	if apiErr, ok := port.ParseAPIError(err); ok &&
		strings.Contains(apiErr.ErrorMsg, "No eligible channels found for campaign") {
		a.notify.Error("No eligible channels found for campaign")
		return
	}
	a.notify.Error(prefix + ": " + err.Error())
}

// Pause suspends an active campaign.
func (a *Actions) Pause(ctx context.Context, id string) { a.transition(ctx, id, "pause") }

// Resume reactivates a paused campaign.
func (a *Actions) Resume(ctx context.Context, id string) { a.transition(ctx, id, "resume") }

// Stop ends a campaign permanently.
func (a *Actions) Stop(ctx context.Context, id string) { a.transition(ctx, id, "stop") }

func (a *Actions) transition(ctx context.Context, id, action string) {
	var err error
	switch action {
	case "pause":
		err = a.gw.PauseCampaign(ctx, id)
	case "resume":
		err = a.gw.ResumeCampaign(ctx, id)
	case "stop":
		err = a.gw.StopCampaign(ctx, id)
	}
	if err != nil {
		a.logger.Error("campaign transition failed", "action", action, "campaign", id, "err", err)
		a.notify.Error(action + " failed: " + err.Error())
		return
	}
	a.tabs.ReloadAfterMutation(ctx)
	a.notify.Success("Campaign " + action + "d successfully!")
}

// Delete removes a campaign.
func (a *Actions) Delete(ctx context.Context, id string) {
	if err := a.gw.DeleteCampaign(ctx, id); err != nil {
		a.logger.Error("campaign delete failed", "campaign", id, "err", err)
		a.notify.Error("Failed to delete: " + err.Error())
		return
	}
	a.notify.Success("Campaign deleted successfully!")
	a.tabs.ReloadAfterMutation(ctx)
}

// Performance loads the per-day delivery rows for one campaign together
// with its detail record, for the performance drill-down.
func (a *Actions) Performance(ctx context.Context, id string) (*domain.Campaign, []domain.PerformanceRow, error) {
	campaign, err := a.gw.GetCampaign(ctx, id)
	if err != nil {
		a.notify.Error("Failed to load campaign performance: " + err.Error())
		return nil, nil, err
	}
	rows, err := a.gw.CampaignPerformance(ctx, id)
	if err != nil {
		a.notify.Error("Failed to load campaign performance: " + err.Error())
		return nil, nil, err
	}
	return campaign, rows, nil
}
