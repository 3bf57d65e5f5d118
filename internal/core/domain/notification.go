package domain

import (
	"fmt"
	"time"
)

// Notification is one inbox entry for the signed-in user.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Age renders how long ago the notification arrived, falling back to an
// absolute date after a week.
func (n Notification) Age(now time.Time) string {
	d := now.Sub(n.CreatedAt)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return n.CreatedAt.Format("Jan 2")
	}
}
