package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port/mocks"
)

func newTestPlacements(t *testing.T) (*Placements, *mocks.MockGateway, *mocks.MockNotifier, *Tabs) {
	gw := mocks.NewMockGateway(t)
	view := mocks.NewMockView(t)
	notifier := mocks.NewMockNotifier(t)
	view.EXPECT().ShowTab(mock.Anything).Return().Maybe()
	view.EXPECT().SetTabLoading(mock.Anything, mock.Anything).Return().Maybe()
	view.EXPECT().RenderTab(mock.Anything, mock.Anything).Return().Maybe()

	tabs := NewTabs(gw, view, notifier, testLogger())
	return NewPlacements(gw, tabs, notifier, testLogger()), gw, notifier, tabs
}

// TestApprovePlacement approves and reloads the ads tab.
func TestApprovePlacement(t *testing.T) {
	p, gw, notifier, tabs := newTestPlacements(t)

	gw.EXPECT().ListAdPlacements(mock.Anything).Return(nil, nil).Twice()
	tabs.SwitchTab(context.Background(), domain.TabAds)

	gw.EXPECT().ApproveAdPlacement(mock.Anything, "p1").Return(nil).Once()
	notifier.EXPECT().Success("Ad placement approved successfully!").Return().Once()

	p.Approve(context.Background(), "p1")
}

// TestRejectPlacement rejects and reloads the ads tab.
func TestRejectPlacement(t *testing.T) {
	p, gw, notifier, tabs := newTestPlacements(t)

	gw.EXPECT().ListAdPlacements(mock.Anything).Return(nil, nil).Twice()
	tabs.SwitchTab(context.Background(), domain.TabAds)

	gw.EXPECT().RejectAdPlacement(mock.Anything, "p2").Return(nil).Once()
	notifier.EXPECT().Success("Ad placement rejected.").Return().Once()

	p.Reject(context.Background(), "p2")
}

// TestPlacementFailureMessages picks the backend message when one exists.
func TestPlacementFailureMessages(t *testing.T) {
	p, gw, notifier, _ := newTestPlacements(t)
	ctx := context.Background()

	gw.EXPECT().ApproveAdPlacement(mock.Anything, "p3").
		Return(bodyErr{code: 400, body: `{"message": ["Only pending placements can be decided."]}`}).Once()
	notifier.EXPECT().Error("Only pending placements can be decided.").Return().Once()
	p.Approve(ctx, "p3")

	gw.EXPECT().RejectAdPlacement(mock.Anything, "p4").Return(errors.New("boom")).Once()
	notifier.EXPECT().Error("Failed to reject the ad placement").Return().Once()
	p.Reject(ctx, "p4")
}

// TestStatusMessage maps each placement status onto the creator guidance.
func TestStatusMessage(t *testing.T) {
	cases := map[string]string{
		"pending":  "Ad placement is waiting for your approval. Approve and start earning.",
		"approved": "Ad placement has been approved and is ready to run. Your channel will start earning shortly.",
		"rejected": "Ad placement was rejected and will not run.",
		"paused":   "Ad placement is paused and will not be shown.",
		"other":    "",
	}
	for status, want := range cases {
		if got := StatusMessage(status); got != want {
			t.Fatalf("status %q: got %q, want %q", status, got, want)
		}
	}
}
