package notify

import (
	"log/slog"
	"sync"
	"time"
)

// ToastTTL is how long a toast stays visible.
const ToastTTL = 6 * time.Second

// Level distinguishes success from error toasts.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Toast is one transient message.
type Toast struct {
	Level   Level
	Message string
	At      time.Time
}

// Center implements port.Notifier as an in-memory toast queue. New toasts
// are prepended; expired ones are pruned on read. Safe for concurrent use.
type Center struct {
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	toasts []Toast
}

// NewCenter creates an empty toast center.
func NewCenter(logger *slog.Logger) *Center {
	return &Center{logger: logger, now: time.Now}
}

// Success queues a confirmation toast.
func (c *Center) Success(msg string) {
	c.logger.Info("toast", "level", "success", "msg", msg)
	c.push(Toast{Level: LevelSuccess, Message: msg, At: c.now()})
}

// Error queues an error toast, rewriting the raw message through the
// friendly rule table first.
func (c *Center) Error(msg string) {
	friendly := Friendly(msg)
	c.logger.Warn("toast", "level", "error", "msg", msg, "friendly", friendly)
	c.push(Toast{Level: LevelError, Message: friendly, At: c.now()})
}

func (c *Center) push(t Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append([]Toast{t}, c.toasts...)
}

// Active returns the toasts still within their display window, newest
// first. Expired toasts are dropped.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := c.now().Add(-ToastTTL)
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.At.After(cutoff) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}
