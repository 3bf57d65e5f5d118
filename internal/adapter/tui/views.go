package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"sonic-miniapp/internal/adapter/notify"
	"sonic-miniapp/internal/adapter/usecase"
	"sonic-miniapp/internal/core/domain"
)

// View renders the whole screen: tab bar, toasts, the active tab and any
// overlay on top.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabBar() + "\n")
	b.WriteString(m.renderToasts())

	if m.overlay != overlayNone {
		b.WriteString(m.styles.Dialog.Render(m.renderOverlay()) + "\n")
	} else {
		b.WriteString(m.renderActiveTab())
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m *Model) renderTabBar() string {
	var parts []string
	for i, tab := range domain.AllTabs() {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if tab == m.active {
			parts = append(parts, m.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, m.styles.InactiveTab.Render(label))
		}
	}
	if unread := m.deps.Inbox.Unread(); unread > 0 {
		parts = append(parts, m.styles.Badge.Render(fmt.Sprintf("✉ %d", unread)))
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m *Model) renderToasts() string {
	toasts := m.deps.Center.Active()
	if len(toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range toasts {
		if t.Level == notify.LevelError {
			b.WriteString(m.styles.ToastError.Render("✗ "+t.Message) + "\n")
		} else {
			b.WriteString(m.styles.ToastSuccess.Render("✓ "+t.Message) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderActiveTab() string {
	if m.loading[m.active] {
		return m.spinner.View() + " " + m.styles.Subtle.Render("Loading "+m.active.Title()+"...") + "\n"
	}
	payload, ok := m.payloads[m.active]
	if !ok {
		return m.styles.Subtle.Render("No data yet. Press r to refresh.") + "\n"
	}
	switch m.active {
	case domain.TabDashboard:
		return m.renderDashboard(payload)
	case domain.TabCampaigns:
		return m.renderCampaigns()
	case domain.TabChannels:
		return m.renderChannels(payload)
	case domain.TabPayments:
		return m.renderPayments(payload)
	case domain.TabAds:
		return m.renderAds(payload)
	case domain.TabSettings:
		return m.renderSettings(payload)
	}
	return ""
}

func (m *Model) renderDashboard(payload any) string {
	data, ok := payload.(*usecase.DashboardData)
	if !ok {
		return ""
	}
	var b strings.Builder

	cards := []string{
		m.card("Balance", formatMoney(data.Balance.Available)),
		m.card("Escrow", formatMoney(data.Balance.Escrow)),
		m.card("Active", fmt.Sprintf("%d", data.Summary.ActiveCampaigns)),
		m.card("Spend (30d)", formatMoney(data.Summary.TotalCost)),
		m.card("Impressions", fmt.Sprintf("%d", data.Summary.TotalImpressions)),
		m.card("CTR", fmt.Sprintf("%.2f%%", data.Summary.CTR)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	rows := usecase.OverviewRows(data.Campaigns, m.table)
	if len(rows) > 0 {
		b.WriteString(m.styles.Title.Render("Recent Campaigns") + "\n")
		b.WriteString(m.styles.TableHeader.Render(fmt.Sprintf("%-24s %-11s %12s %10s", "Name", "Status", "Budget", "CTR")) + "\n")
		for _, c := range rows {
			b.WriteString(fmt.Sprintf("%-24s %-11s %12s %9.2f%%\n",
				truncate(c.Name, 24), c.Status, formatMoney(c.InitialBudget), c.CTR()))
		}
		b.WriteString("\n")
	}

	if len(data.CategoryPerformance) > 0 {
		b.WriteString(m.styles.Title.Render("By Category") + "  ")
		b.WriteString(m.renderGroups(data.CategoryPerformance) + "\n")
	}
	if len(data.LanguagePerformance) > 0 {
		b.WriteString(m.styles.Title.Render("By Language") + "  ")
		b.WriteString(m.renderGroups(data.LanguagePerformance) + "\n")
	}
	return b.String()
}

func (m *Model) renderGroups(groups []domain.GroupPerformance) string {
	var parts []string
	for _, g := range groups {
		parts = append(parts, fmt.Sprintf("%s %d (%.1f%%)", g.Group, g.TotalImpressions, g.CTR))
	}
	return m.styles.Subtle.Render(strings.Join(parts, " · "))
}

func (m *Model) card(label, value string) string {
	return m.styles.Card.Render(m.styles.Label.Render(label) + "\n" + m.styles.Value.Render(value))
}

func (m *Model) renderCampaigns() string {
	rows, totalPages := m.campaignRows()
	var b strings.Builder

	filterLine := "/ filter"
	if m.filtering {
		filterLine = m.filter.View()
	} else if m.table.NameFilter != "" {
		filterLine = "filter: " + m.table.NameFilter
	}
	b.WriteString(fmt.Sprintf("%s   sort: %s %s   status: %s\n\n",
		m.styles.Subtle.Render(filterLine), m.table.SortColumn, m.table.SortDirection, m.table.StatusFilter))

	b.WriteString(m.styles.TableHeader.Render(fmt.Sprintf("  %-24s %-11s %12s %8s %12s %8s",
		"Name", "Status", "Budget", "CPM", "Impressions", "CTR")) + "\n")
	for i, c := range rows {
		cursor := "  "
		line := fmt.Sprintf("%-24s %-11s %12s %8.2f %12d %7.2f%%",
			truncate(c.Name, 24), c.Status, formatMoney(c.InitialBudget), c.CPM, c.TotalImpressions, c.CTR())
		if i == m.selected {
			cursor = "> "
			line = m.styles.TableActive.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	if len(rows) == 0 {
		b.WriteString(m.styles.Subtle.Render("  No campaigns match.") + "\n")
	}
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("\npage %d/%d", m.table.Page, max(totalPages, 1))) + "\n")

	if c := m.selectedCampaign(rows); c != nil {
		var actions []string
		for _, a := range domain.ActionsFor(c.Status) {
			actions = append(actions, string(a))
		}
		b.WriteString(m.styles.Subtle.Render("actions: "+strings.Join(actions, ", ")) + "\n")
	}
	return b.String()
}

func (m *Model) renderChannels(payload any) string {
	channels, _ := payload.([]domain.Channel)
	var b strings.Builder
	b.WriteString(m.styles.TableHeader.Render(fmt.Sprintf("  %-20s %-22s %-21s %12s %10s",
		"Title", "Link", "Status", "Subscribers", "Min CPM")) + "\n")
	for i, ch := range channels {
		cursor := "  "
		line := fmt.Sprintf("%-20s %-22s %-21s %12d %10.2f",
			truncate(ch.Title, 20), truncate(ch.Link, 22), ch.StatusDisplay, ch.Subscribers, ch.MinCPM)
		if i == m.selected {
			cursor = "> "
			line = m.styles.TableActive.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	if len(channels) == 0 {
		b.WriteString(m.styles.Subtle.Render("  No channels connected yet. Press c to connect one.") + "\n")
	}
	return b.String()
}

func (m *Model) renderPayments(payload any) string {
	data, ok := payload.(*usecase.PaymentsData)
	if !ok || data == nil {
		return ""
	}
	var b strings.Builder
	if data.Balance != nil {
		cards := []string{
			m.card("Available", formatMoney(data.Balance.Available)),
			m.card("In escrow", formatMoney(data.Balance.Escrow)),
			m.card("Total spent", formatMoney(data.Balance.TotalSpent)),
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")
	}

	b.WriteString(m.styles.Title.Render("Payment Methods") + "\n")
	for i, method := range data.Methods {
		cursor := "  "
		marker := " "
		if method.IsDefault {
			marker = "*"
		}
		dest := method.AccountNumber
		if dest == "" {
			dest = method.PhoneNumber
		}
		line := fmt.Sprintf("%s %-10s %-16s %s", marker, method.ShortName, dest, method.Status)
		if i == m.selected {
			cursor = "> "
			line = m.styles.TableActive.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	if len(data.Methods) == 0 {
		b.WriteString(m.styles.Subtle.Render("  No payment methods. Press a to add one.") + "\n")
	}

	if data.Balance != nil && len(data.Balance.Transactions) > 0 {
		b.WriteString("\n" + m.styles.Title.Render("Transactions") + "\n")
		for _, t := range data.Balance.Transactions {
			b.WriteString(fmt.Sprintf("  %-10s %-13s %12s %s\n",
				t.Date, t.TypeLabel(), formatMoney(t.Amount), m.styles.Subtle.Render(t.Status)))
		}
	}
	return b.String()
}

func (m *Model) renderAds(payload any) string {
	placements, _ := payload.([]domain.AdPlacement)
	var b strings.Builder
	b.WriteString(m.styles.TableHeader.Render(fmt.Sprintf("  %-22s %-18s %-10s %8s",
		"Campaign", "Channel", "Status", "CPM")) + "\n")
	for i, p := range placements {
		cursor := "  "
		line := fmt.Sprintf("%-22s %-18s %-10s %8.2f",
			truncate(p.CampaignName, 22), truncate(p.ChannelTitle, 18), p.Status, p.ProposedCPM)
		if i == m.selected {
			cursor = "> "
			line = m.styles.TableActive.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	if len(placements) == 0 {
		b.WriteString(m.styles.Subtle.Render("  No ad placements yet.") + "\n")
		return b.String()
	}
	if m.selected < len(placements) {
		if msg := usecase.StatusMessage(placements[m.selected].Status); msg != "" {
			b.WriteString("\n" + m.styles.Subtle.Render(msg) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderSettings(payload any) string {
	profile, ok := payload.(*domain.Profile)
	if !ok || profile == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Profile") + "\n")
	b.WriteString(m.styles.Label.Render("First name: ") + profile.FirstName + "\n")
	b.WriteString(m.styles.Label.Render("Last name:  ") + profile.LastName + "\n")
	b.WriteString(m.styles.Label.Render("Username:   ") + profile.Username + "\n")
	b.WriteString(m.styles.Label.Render("Email:      ") + profile.Email + "\n")
	b.WriteString(m.styles.Label.Render("Address:    ") + profile.Address + "\n")
	return b.String()
}

func (m *Model) renderOverlay() string {
	switch m.overlay {
	case overlayWizard:
		return m.renderWizard()
	case overlayTopUp:
		return m.renderTopUp()
	case overlayChannel:
		return m.renderChannelDialog()
	case overlayPayout, overlayWithdraw:
		if m.form == nil {
			return ""
		}
		errs := domain.FieldErrors{}
		if m.overlay == overlayPayout {
			errs = m.deps.Payouts.Errors()
		}
		return m.form.View(m.styles, errs) + "\n" + m.styles.Help.Render("ctrl+s save · esc cancel")
	case overlayInbox:
		return m.renderInbox()
	}
	return ""
}

func (m *Model) renderWizard() string {
	w := m.deps.Wizard
	if !w.IsOpen() || m.form == nil {
		return m.spinner.View() + " " + m.styles.Subtle.Render("Opening wizard...")
	}
	out := m.form.View(m.styles, w.Errors())
	if hint := w.CPMHint(); hint != "" {
		out += "\n" + m.styles.Warning.Render(hint)
	}
	if w.Submitting() {
		out += "\n" + m.spinner.View() + " Submitting..."
	}
	step := "step 1/2 · ctrl+n next"
	if w.Draft().Step == domain.StepReview {
		step = "step 2/2 · ctrl+b back · ctrl+x clear ad · ctrl+s submit"
	}
	return out + "\n" + m.styles.Help.Render(step+" · esc cancel")
}

func (m *Model) renderTopUp() string {
	t := m.deps.TopUp
	switch t.State() {
	case usecase.TopUpEntry:
		if m.form == nil {
			return ""
		}
		_, _, kind := t.Form()
		out := m.form.View(m.styles, domain.FieldErrors{})
		out += "\n" + m.styles.Subtle.Render(kind.MobileHint())
		return out + "\n" + m.styles.Help.Render("enter pay · ctrl+k switch rail · esc cancel")
	case usecase.TopUpPolling:
		_, instruction := t.Receipt()
		return m.styles.Title.Render("Waiting for payment") + "\n\n" +
			instruction + "\n\n" + m.spinner.View() + " Checking payment status..."
	case usecase.TopUpResolved:
		return m.styles.Title.Render("Top Up") + "\n\n" +
			"Polling finished. Press enter to confirm your balance and continue." +
			"\n" + m.styles.Help.Render("enter confirm · esc close")
	}
	return ""
}

func (m *Model) renderChannelDialog() string {
	c := m.deps.Channels
	if c.Stage() == usecase.ChannelVerify {
		return m.styles.Title.Render("Verify Channel") + "\n\n" +
			"Add the bot to your channel using this link:\n" +
			m.styles.Value.Render(c.VerificationLink()) + "\n\n" +
			m.styles.Help.Render("enter complete verification · esc close")
	}
	if m.form == nil {
		return ""
	}
	return m.form.View(m.styles, c.Errors()) + "\n" +
		m.styles.Help.Render("ctrl+s connect · esc cancel")
}

func (m *Model) renderInbox() string {
	items := m.deps.Inbox.Items()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Notifications") + "\n\n")
	for i, n := range items {
		cursor := "  "
		marker := "•"
		if n.IsRead {
			marker = " "
		}
		line := fmt.Sprintf("%s %-20s %-46s %s", marker, truncate(n.Title, 20), truncate(n.Message, 46), n.Age(time.Now()))
		if i == m.selected {
			cursor = "> "
			line = m.styles.TableActive.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	if len(items) == 0 {
		b.WriteString(m.styles.Subtle.Render("Nothing here yet.") + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("enter mark read · a mark all read · esc close"))
	return b.String()
}

func (m *Model) renderHelp() string {
	switch m.active {
	case domain.TabCampaigns:
		return m.styles.Help.Render("1-6 tabs · r refresh · n new · / filter · s sort · o order · f status · b/p/u/x/e/d actions · i inbox · q quit")
	case domain.TabChannels:
		return m.styles.Help.Render("1-6 tabs · r refresh · c connect · d disconnect · i inbox · q quit")
	case domain.TabPayments:
		return m.styles.Help.Render("1-6 tabs · r refresh · a add method · w withdraw · m make default · d delete · i inbox · q quit")
	case domain.TabAds:
		return m.styles.Help.Render("1-6 tabs · r refresh · a approve · x reject · i inbox · q quit")
	default:
		return m.styles.Help.Render("1-6 tabs · r refresh · i inbox · q quit")
	}
}
