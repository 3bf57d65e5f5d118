package usecase

import (
	"context"
	"log/slog"

	"sonic-miniapp/internal/core/port"
)

// Placements moderates the ads proposed to a creator's channels.
type Placements struct {
	gw     port.Gateway
	tabs   *Tabs
	notify port.Notifier
	logger *slog.Logger
}

// NewPlacements wires the placement moderator.
func NewPlacements(gw port.Gateway, tabs *Tabs, notify port.Notifier, logger *slog.Logger) *Placements {
	return &Placements{gw: gw, tabs: tabs, notify: notify, logger: logger}
}

// Approve accepts a proposed placement, making the ad live on the channel.
func (p *Placements) Approve(ctx context.Context, id string) {
	if err := p.gw.ApproveAdPlacement(ctx, id); err != nil {
		p.logger.Error("placement approve failed", "placement", id, "err", err)
		p.notify.Error(placementFailure(err, "Failed to approve the ad placement"))
		return
	}
	p.notify.Success("Ad placement approved successfully!")
	p.tabs.RefreshCurrentTab(ctx)
}

// Reject declines a proposed placement so it will not run.
func (p *Placements) Reject(ctx context.Context, id string) {
	if err := p.gw.RejectAdPlacement(ctx, id); err != nil {
		p.logger.Error("placement reject failed", "placement", id, "err", err)
		p.notify.Error(placementFailure(err, "Failed to reject the ad placement"))
		return
	}
	p.notify.Success("Ad placement rejected.")
	p.tabs.RefreshCurrentTab(ctx)
}

func placementFailure(err error, fallback string) string {
	if apiErr, ok := port.ParseAPIError(err); ok {
		if msgs := apiErr.Fields["message"]; len(msgs) > 0 {
			return msgs[0]
		}
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	return fallback
}

// StatusMessage explains a placement status to the creator.
func StatusMessage(status string) string {
	switch status {
	case "pending":
		return "Ad placement is waiting for your approval. Approve and start earning."
	case "approved":
		return "Ad placement has been approved and is ready to run. Your channel will start earning shortly."
	case "rejected":
		return "Ad placement was rejected and will not run."
	case "paused":
		return "Ad placement is paused and will not be shown."
	default:
		return ""
	}
}
