package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port/mocks"
)

func inboxItems() []domain.Notification {
	return []domain.Notification{
		{ID: "n1", Title: "Campaign approved", IsRead: false},
		{ID: "n2", Title: "Deposit settled", IsRead: false},
		{ID: "n3", Title: "Welcome", IsRead: true},
	}
}

// TestInboxRefresh loads the list and the badge count.
func TestInboxRefresh(t *testing.T) {
	gw := mocks.NewMockGateway(t)
	inbox := NewInbox(gw, testLogger())

	gw.EXPECT().Notifications(mock.Anything).Return(inboxItems(), nil).Once()
	gw.EXPECT().UnreadCount(mock.Anything).Return(2, nil).Once()

	if err := inbox.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if inbox.Unread() != 2 {
		t.Fatalf("expected 2 unread, got %d", inbox.Unread())
	}
	if items := inbox.Items(); len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

// TestInboxRefreshCountsLocallyOnBadgeError derives the badge from the
// list when the count endpoint fails.
func TestInboxRefreshCountsLocallyOnBadgeError(t *testing.T) {
	gw := mocks.NewMockGateway(t)
	inbox := NewInbox(gw, testLogger())

	gw.EXPECT().Notifications(mock.Anything).Return(inboxItems(), nil).Once()
	gw.EXPECT().UnreadCount(mock.Anything).Return(0, errors.New("boom")).Once()

	if err := inbox.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if inbox.Unread() != 2 {
		t.Fatalf("expected locally counted 2 unread, got %d", inbox.Unread())
	}
}

// TestMarkRead updates locally before the backend call lands.
func TestMarkRead(t *testing.T) {
	gw := mocks.NewMockGateway(t)
	inbox := NewInbox(gw, testLogger())

	gw.EXPECT().Notifications(mock.Anything).Return(inboxItems(), nil).Once()
	gw.EXPECT().UnreadCount(mock.Anything).Return(2, nil).Once()
	if err := inbox.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	gw.EXPECT().MarkNotificationRead(mock.Anything, "n1").Return(nil).Once()
	inbox.MarkRead(context.Background(), "n1")

	if inbox.Unread() != 1 {
		t.Fatalf("expected 1 unread, got %d", inbox.Unread())
	}
	if items := inbox.Items(); !items[0].IsRead {
		t.Fatalf("item should be read locally")
	}

	// marking an already-read item does not decrement the badge
	gw.EXPECT().MarkNotificationRead(mock.Anything, "n3").Return(nil).Once()
	inbox.MarkRead(context.Background(), "n3")
	if inbox.Unread() != 1 {
		t.Fatalf("read item must not change the badge, got %d", inbox.Unread())
	}
}

// TestMarkAllRead clears the badge even when the backend call fails; the
// next refresh reconciles.
func TestMarkAllRead(t *testing.T) {
	gw := mocks.NewMockGateway(t)
	inbox := NewInbox(gw, testLogger())

	gw.EXPECT().Notifications(mock.Anything).Return(inboxItems(), nil).Once()
	gw.EXPECT().UnreadCount(mock.Anything).Return(2, nil).Once()
	if err := inbox.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	gw.EXPECT().MarkAllNotificationsRead(mock.Anything).Return(errors.New("boom")).Once()
	inbox.MarkAllRead(context.Background())

	if inbox.Unread() != 0 {
		t.Fatalf("expected badge cleared, got %d", inbox.Unread())
	}
	for _, it := range inbox.Items() {
		if !it.IsRead {
			t.Fatalf("every item should be read locally")
		}
	}
}
