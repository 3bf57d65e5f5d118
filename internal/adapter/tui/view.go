package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sonic-miniapp/internal/core/domain"
)

// Messages pushed into the program by the tab controller. They arrive via
// Program.Send, so they are safe to emit from any goroutine.
type (
	showTabMsg    struct{ tab domain.Tab }
	tabLoadingMsg struct {
		tab     domain.Tab
		loading bool
	}
	tabDataMsg struct {
		tab     domain.Tab
		payload any
	}
	toastTickMsg struct{}
)

// UI adapts a running bubbletea program to the view port. The tab
// controller calls it from whatever goroutine executed the fetch; each
// call becomes a message in the program's update loop.
type UI struct {
	prog *tea.Program
}

// NewUI returns a view with no program attached yet. Calls before
// SetProgram are dropped, which only matters during startup.
func NewUI() *UI {
	return &UI{}
}

// SetProgram attaches the running program.
func (u *UI) SetProgram(p *tea.Program) {
	u.prog = p
}

func (u *UI) send(msg tea.Msg) {
	if u.prog != nil {
		u.prog.Send(msg)
	}
}

// ShowTab makes the tab visible.
func (u *UI) ShowTab(tab domain.Tab) {
	u.send(showTabMsg{tab: tab})
}

// SetTabLoading toggles the tab's loading spinner.
func (u *UI) SetTabLoading(tab domain.Tab, loading bool) {
	u.send(tabLoadingMsg{tab: tab, loading: loading})
}

// RenderTab delivers a freshly fetched payload for the tab.
func (u *UI) RenderTab(tab domain.Tab, payload any) {
	u.send(tabDataMsg{tab: tab, payload: payload})
}
