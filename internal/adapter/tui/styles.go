package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used across the views.
type Styles struct {
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Badge       lipgloss.Style

	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	Card    lipgloss.Style
	Dialog  lipgloss.Style
	Help    lipgloss.Style
	Spinner lipgloss.Style

	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableActive lipgloss.Style
}

// DefaultStyles returns the application styles.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	success := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warning := lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FF8C00"}
	errColor := lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}

	s := Styles{}
	s.TabBar = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(subtle)
	s.ActiveTab = lipgloss.NewStyle().Bold(true).Foreground(highlight).Padding(0, 1)
	s.InactiveTab = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)
	s.Badge = lipgloss.NewStyle().Foreground(errColor).Bold(true)

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	s.Subtle = lipgloss.NewStyle().Foreground(subtle)
	s.Label = lipgloss.NewStyle().Foreground(subtle)
	s.Value = lipgloss.NewStyle().Bold(true)
	s.Error = lipgloss.NewStyle().Foreground(errColor)
	s.Success = lipgloss.NewStyle().Foreground(success)
	s.Warning = lipgloss.NewStyle().Foreground(warning)

	s.ToastSuccess = lipgloss.NewStyle().Foreground(success).Padding(0, 1)
	s.ToastError = lipgloss.NewStyle().Foreground(errColor).Bold(true).Padding(0, 1)

	s.Card = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(subtle).Padding(0, 1)
	s.Dialog = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(highlight).Padding(1, 2)
	s.Help = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)
	s.Spinner = lipgloss.NewStyle().Foreground(highlight)

	s.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	s.TableRow = lipgloss.NewStyle()
	s.TableActive = lipgloss.NewStyle().Bold(true).Foreground(highlight)

	return s
}
