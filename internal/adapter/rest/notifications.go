package rest

import (
	"context"

	"sonic-miniapp/internal/core/domain"
)

// Notifications fetches the user's inbox, newest first.
func (c *Client) Notifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.get(ctx, "/api/notifications/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadCount fetches the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.get(ctx, "/api/notifications/unread-count/", &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.post(ctx, "/api/notifications/"+id+"/mark-read/", nil, nil)
}

// MarkAllNotificationsRead clears the unread state of the whole inbox.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/api/notifications/mark-all-read/", nil, nil)
}
