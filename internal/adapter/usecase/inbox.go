package usecase

import (
	"context"
	"log/slog"
	"sync"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Inbox holds the notification list and unread badge count. Marking items
// read is applied locally first so the badge reacts immediately.
type Inbox struct {
	gw     port.Gateway
	logger *slog.Logger

	mu     sync.Mutex
	items  []domain.Notification
	unread int
}

// NewInbox wires the notification center backing state.
func NewInbox(gw port.Gateway, logger *slog.Logger) *Inbox {
	return &Inbox{gw: gw, logger: logger}
}

// Refresh reloads the notification list and unread count.
func (i *Inbox) Refresh(ctx context.Context) error {
	items, err := i.gw.Notifications(ctx)
	if err != nil {
		i.logger.Error("notifications load failed", "err", err)
		return err
	}
	unread, err := i.gw.UnreadCount(ctx)
	if err != nil {
		i.logger.Warn("unread count load failed", "err", err)
		unread = countUnread(items)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = items
	i.unread = unread
	return nil
}

func countUnread(items []domain.Notification) int {
	n := 0
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}

// Items returns a copy of the notification list.
func (i *Inbox) Items() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]domain.Notification, len(i.items))
	copy(out, i.items)
	return out
}

// Unread returns the badge count.
func (i *Inbox) Unread() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.unread
}

// MarkRead marks one notification read.
func (i *Inbox) MarkRead(ctx context.Context, id string) {
	i.mu.Lock()
	for idx := range i.items {
		if i.items[idx].ID == id && !i.items[idx].IsRead {
			i.items[idx].IsRead = true
			if i.unread > 0 {
				i.unread--
			}
		}
	}
	i.mu.Unlock()

	if err := i.gw.MarkNotificationRead(ctx, id); err != nil {
		i.logger.Error("mark notification read failed", "notification", id, "err", err)
	}
}

// MarkAllRead marks every notification read.
func (i *Inbox) MarkAllRead(ctx context.Context) {
	i.mu.Lock()
	for idx := range i.items {
		i.items[idx].IsRead = true
	}
	i.unread = 0
	i.mu.Unlock()

	if err := i.gw.MarkAllNotificationsRead(ctx); err != nil {
		i.logger.Error("mark all notifications read failed", "err", err)
	}
}
