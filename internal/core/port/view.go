package port

import "sonic-miniapp/internal/core/domain"

// View is the inbound rendering surface the state machines drive. The
// terminal UI implements it; tests use the mock. Payload is the tab's
// cached value: the concrete type depends on the tab (campaign slice,
// dashboard bundle, profile, ...).
type View interface {
	// ShowTab makes the tab the visible one. It is called before the tab's
	// data is necessarily available.
	ShowTab(tab domain.Tab)

	// SetTabLoading toggles the tab's loading indicator.
	SetTabLoading(tab domain.Tab, loading bool)

	// RenderTab delivers the tab's payload for display. It is never called
	// for a tab that is no longer current.
	RenderTab(tab domain.Tab, payload any)
}

// Notifier surfaces transient outcome messages to the user.
type Notifier interface {
	// Success shows a short-lived confirmation toast.
	Success(msg string)

	// Error shows an error toast. Implementations map raw backend messages
	// to friendlier wording before display.
	Error(msg string)
}
