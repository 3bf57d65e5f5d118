package tui

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sonic-miniapp/internal/adapter/notify"
	"sonic-miniapp/internal/adapter/usecase"
	"sonic-miniapp/internal/core/domain"
)

// overlay identifies the modal drawn above the active tab, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayWizard
	overlayTopUp
	overlayChannel
	overlayPayout
	overlayWithdraw
	overlayInbox
)

// Deps carries everything the model needs. All orchestration lives in the
// usecases; the model translates keys into usecase calls and state into
// text.
type Deps struct {
	Tabs       *usecase.Tabs
	Wizard     *usecase.Wizard
	TopUp      *usecase.TopUp
	Actions    *usecase.Actions
	Channels   *usecase.Channels
	Payouts    *usecase.Payouts
	Settings   *usecase.Settings
	Placements *usecase.Placements
	Inbox      *usecase.Inbox
	Center     *notify.Center
}

// Model is the bubbletea application model. Usecase calls that hit the
// network run inside tea.Cmd functions; their results come back through
// the view port as messages, never by mutating the model directly.
type Model struct {
	ctx  context.Context
	deps Deps

	styles  Styles
	spinner spinner.Model
	filter  textinput.Model

	active   domain.Tab
	payloads map[domain.Tab]any
	loading  map[domain.Tab]bool

	table    domain.CampaignTableState
	selected int

	overlay        overlay
	form           *form
	filtering      bool
	withdrawAmount string
	adFilePath     string

	width  int
	height int
}

// NewModel builds the initial model on the dashboard tab.
func NewModel(ctx context.Context, deps Deps) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultStyles().Spinner

	filter := textinput.New()
	filter.Placeholder = "filter by name"
	filter.CharLimit = 60
	filter.Width = 24

	return &Model{
		ctx:      ctx,
		deps:     deps,
		styles:   DefaultStyles(),
		spinner:  sp,
		filter:   filter,
		active:   domain.TabDashboard,
		payloads: map[domain.Tab]any{},
		loading:  map[domain.Tab]bool{},
		table:    domain.NewCampaignTableState(),
	}
}

// Init starts the spinner, the toast pruning tick and the first tab load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		toastTick(),
		m.switchTabCmd(domain.TabDashboard),
		m.cmd(func() { _ = m.deps.Inbox.Refresh(m.ctx) }),
	)
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return toastTickMsg{} })
}

// cmd wraps a blocking usecase call into a fire-and-forget command. State
// changes surface through view messages and toasts, so no result message
// is needed.
func (m *Model) cmd(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m *Model) switchTabCmd(tab domain.Tab) tea.Cmd {
	return m.cmd(func() { m.deps.Tabs.SwitchTab(m.ctx, tab) })
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case showTabMsg:
		m.active = msg.tab
		m.selected = 0
		return m, nil

	case tabLoadingMsg:
		m.loading[msg.tab] = msg.loading
		return m, nil

	case tabDataMsg:
		m.payloads[msg.tab] = msg.payload
		return m, nil

	case toastTickMsg:
		m.reconcileOverlay()
		return m, toastTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// reconcileOverlay follows the usecase dialog state. A submission can open
// the top-up dialog from outside the key path, and a successful submit
// closes the wizard without a key press; the periodic tick picks both up.
func (m *Model) reconcileOverlay() {
	topupOpen := m.deps.TopUp.State() != usecase.TopUpClosed
	switch {
	case topupOpen && m.overlay != overlayTopUp:
		m.overlay = overlayTopUp
		m.form = m.topupForm()
	case m.overlay == overlayTopUp && !topupOpen:
		m.closeOverlay()
	case m.overlay == overlayWizard && !m.deps.Wizard.IsOpen():
		m.closeOverlay()
	case m.overlay == overlayChannel && m.deps.Channels.Stage() == usecase.ChannelClosed:
		m.closeOverlay()
	case m.overlay == overlayPayout && !m.deps.Payouts.IsOpen():
		m.closeOverlay()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		tabs := domain.AllTabs()
		if idx < len(tabs) {
			return m, m.switchTabCmd(tabs[idx])
		}
	case "r":
		return m, m.cmd(func() { m.deps.Tabs.RefreshCurrentTab(m.ctx) })
	case "i":
		m.overlay = overlayInbox
		return m, m.cmd(func() { _ = m.deps.Inbox.Refresh(m.ctx) })
	}

	switch m.active {
	case domain.TabCampaigns:
		return m.handleCampaignsKey(msg)
	case domain.TabChannels:
		return m.handleChannelsKey(msg)
	case domain.TabPayments:
		return m.handlePaymentsKey(msg)
	case domain.TabAds:
		return m.handleAdsKey(msg)
	case domain.TabSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.table.NameFilter = m.filter.Value()
	m.table.Page = 1
	m.selected = 0
	return m, cmd
}

// campaignRows returns the rows of the current page, applying the table
// state to the cached campaign list.
func (m *Model) campaignRows() ([]domain.Campaign, int) {
	campaigns, _ := m.payloads[domain.TabCampaigns].([]domain.Campaign)
	filtered := usecase.FilterAndSort(campaigns, m.table)
	return usecase.Paginate(filtered, m.table.Page)
}

var sortCycle = []string{
	domain.SortByName, domain.SortByStatus, domain.SortByStartDate,
	domain.SortByBudget, domain.SortByCost, domain.SortByImpressions, domain.SortByCTR,
}

var statusCycle = []string{
	domain.StatusFilterAll, "draft", "scheduled", "in_review", "active",
	"on_hold", "stopped", "declined", "completed",
}

func (m *Model) handleCampaignsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows, totalPages := m.campaignRows()
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(rows)-1 {
			m.selected++
		}
	case "left", "h":
		if m.table.Page > 1 {
			m.table.Page--
			m.selected = 0
		}
	case "right", "l":
		if m.table.Page < totalPages {
			m.table.Page++
			m.selected = 0
		}
	case "/":
		m.filtering = true
		m.filter.Focus()
	case "s":
		m.table.SortColumn = nextIn(sortCycle, m.table.SortColumn)
		m.table.Page = 1
	case "o":
		m.table.SortDirection = m.table.SortDirection.Toggle()
	case "f":
		m.table.StatusFilter = nextIn(statusCycle, m.table.StatusFilter)
		m.table.Page = 1
		m.selected = 0
	case "n":
		m.overlay = overlayWizard
		return m, m.cmd(func() { m.deps.Wizard.OpenCreate(m.ctx) })
	default:
		if c := m.selectedCampaign(rows); c != nil {
			return m.handleCampaignAction(msg.String(), c)
		}
	}
	return m, nil
}

func (m *Model) selectedCampaign(rows []domain.Campaign) *domain.Campaign {
	if m.selected < 0 || m.selected >= len(rows) {
		return nil
	}
	c := rows[m.selected]
	return &c
}

// handleCampaignAction maps an action key onto the selected campaign,
// honouring the per-status action matrix.
func (m *Model) handleCampaignAction(key string, c *domain.Campaign) (tea.Model, tea.Cmd) {
	allowed := map[domain.CampaignAction]bool{}
	for _, a := range domain.ActionsFor(c.Status) {
		allowed[a] = true
	}
	id := c.ID
	switch key {
	case "b":
		if allowed[domain.ActionSubmit] {
			return m, m.cmd(func() { m.deps.Actions.Submit(m.ctx, id) })
		}
	case "p":
		if allowed[domain.ActionPause] {
			return m, m.cmd(func() { m.deps.Actions.Pause(m.ctx, id) })
		}
	case "u":
		if allowed[domain.ActionResume] {
			return m, m.cmd(func() { m.deps.Actions.Resume(m.ctx, id) })
		}
	case "x":
		if allowed[domain.ActionStop] {
			return m, m.cmd(func() { m.deps.Actions.Stop(m.ctx, id) })
		}
	case "e":
		if allowed[domain.ActionEdit] {
			m.overlay = overlayWizard
			return m, m.cmd(func() { m.deps.Wizard.OpenEdit(m.ctx, id) })
		}
	case "d":
		if allowed[domain.ActionDelete] {
			return m, m.cmd(func() { m.deps.Actions.Delete(m.ctx, id) })
		}
	}
	return m, nil
}

func (m *Model) handleChannelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	channels, _ := m.payloads[domain.TabChannels].([]domain.Channel)
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(channels)-1 {
			m.selected++
		}
	case "c":
		m.deps.Channels.Open()
		m.form = m.channelForm()
		m.overlay = overlayChannel
	case "d":
		if m.selected < len(channels) {
			id := channels[m.selected].ID
			return m, m.cmd(func() { m.deps.Channels.Delete(m.ctx, id) })
		}
	}
	return m, nil
}

func (m *Model) handlePaymentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	data, _ := m.payloads[domain.TabPayments].(*usecase.PaymentsData)
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if data != nil && m.selected < len(data.Methods)-1 {
			m.selected++
		}
	case "a":
		m.overlay = overlayPayout
		return m, m.cmd(func() { m.deps.Payouts.OpenAddMethod(m.ctx) })
	case "w":
		m.overlay = overlayWithdraw
		m.form = m.withdrawForm()
	case "m":
		if data != nil && m.selected < len(data.Methods) {
			id := data.Methods[m.selected].ID
			return m, m.cmd(func() { m.deps.Payouts.MakeDefault(m.ctx, id) })
		}
	case "d":
		if data != nil && m.selected < len(data.Methods) {
			id := data.Methods[m.selected].ID
			return m, m.cmd(func() { m.deps.Payouts.DeleteMethod(m.ctx, id) })
		}
	}
	return m, nil
}

func (m *Model) handleAdsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	placements, _ := m.payloads[domain.TabAds].([]domain.AdPlacement)
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(placements)-1 {
			m.selected++
		}
	case "a":
		if m.selected < len(placements) {
			id := placements[m.selected].ID
			return m, m.cmd(func() { m.deps.Placements.Approve(m.ctx, id) })
		}
	case "x":
		if m.selected < len(placements) {
			id := placements[m.selected].ID
			return m, m.cmd(func() { m.deps.Placements.Reject(m.ctx, id) })
		}
	}
	return m, nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		return m, m.cmd(func() {
			if err := m.deps.Settings.Load(m.ctx); err == nil {
				m.deps.Tabs.RefreshCurrentTab(m.ctx)
			}
		})
	}
	return m, nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayWizard:
		return m.handleWizardKey(msg)
	case overlayTopUp:
		return m.handleTopUpKey(msg)
	case overlayChannel:
		return m.handleChannelOverlayKey(msg)
	case overlayPayout:
		return m.handlePayoutOverlayKey(msg)
	case overlayWithdraw:
		return m.handleWithdrawKey(msg)
	case overlayInbox:
		return m.handleInboxKey(msg)
	}
	return m, nil
}

func (m *Model) closeOverlay() {
	m.overlay = overlayNone
	m.form = nil
	m.adFilePath = ""
}

func (m *Model) handleWizardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.deps.Wizard
	if !w.IsOpen() {
		// catalogs may still be loading right after open
		if msg.String() == "esc" {
			m.closeOverlay()
		}
		return m, nil
	}
	if m.form == nil {
		m.form = m.wizardForm()
	}
	switch msg.String() {
	case "esc":
		w.Close()
		m.closeOverlay()
		return m, nil
	case "ctrl+n":
		if w.Next().Empty() {
			m.form = m.wizardForm()
		}
		return m, nil
	case "ctrl+b":
		w.Back()
		m.form = m.wizardForm()
		return m, nil
	case "ctrl+x":
		if w.Draft().Step == domain.StepReview {
			w.RemoveAd()
			m.adFilePath = ""
			m.form = m.wizardForm()
		}
		return m, nil
	case "ctrl+s":
		return m, m.cmd(func() { m.submitWizard() })
	}
	cmd, _ := m.form.Update(msg)
	return m, cmd
}

// submitWizard routes the review-step ad through attachment so the
// creative rules run before the campaign is sent. A filled file path is
// read from disk and attached as an upload, replacing the image URL.
func (m *Model) submitWizard() {
	w := m.deps.Wizard
	draft := w.Draft()
	if draft.Ad != nil && draft.AdEditable() {
		ad := *draft.Ad
		pruneEmptyLinks(&ad)
		if path := strings.TrimSpace(m.adFilePath); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				m.deps.Center.Error("Could not read file " + path + ".")
				return
			}
			ad.File = &domain.Upload{Name: filepath.Base(path), Data: data}
		}
		if errs := w.AttachAd(ad); !errs.Empty() {
			return
		}
	}
	w.Submit(m.ctx)
}

func (m *Model) handleTopUpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.deps.TopUp
	switch t.State() {
	case usecase.TopUpEntry:
		switch msg.String() {
		case "esc":
			t.Cancel()
			m.closeOverlay()
			return m, nil
		case "ctrl+k":
			_, _, kind := t.Form()
			t.SetKind(nextKind(kind))
			m.form = m.topupForm()
			return m, nil
		case "enter":
			if t.CanProceed() {
				return m, m.cmd(func() { t.Proceed(m.ctx) })
			}
		}
		if m.form == nil {
			m.form = m.topupForm()
		}
		cmd, _ := m.form.Update(msg)
		return m, cmd
	case usecase.TopUpResolved:
		switch msg.String() {
		case "enter":
			return m, m.cmd(func() {
				t.Confirm(m.ctx)
			})
		case "esc":
			t.Cancel()
			m.closeOverlay()
		}
	default:
		if msg.String() == "esc" {
			t.Cancel()
			m.closeOverlay()
		}
	}
	return m, nil
}

func (m *Model) handleChannelOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.deps.Channels
	switch c.Stage() {
	case usecase.ChannelVerify:
		switch msg.String() {
		case "enter":
			return m, m.cmd(func() { c.Verify(m.ctx) })
		case "esc":
			c.Close()
			m.closeOverlay()
		}
		return m, nil
	default:
		switch msg.String() {
		case "esc":
			c.Close()
			m.closeOverlay()
			return m, nil
		case "ctrl+s":
			return m, m.cmd(func() { c.Connect(m.ctx) })
		}
		if m.form == nil {
			m.form = m.channelForm()
		}
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
}

func (m *Model) handlePayoutOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.deps.Payouts
	switch msg.String() {
	case "esc":
		p.Close()
		m.closeOverlay()
		return m, nil
	case "ctrl+s":
		return m, m.cmd(func() {
			p.AddMethod(m.ctx)
		})
	}
	if m.form == nil {
		m.form = m.payoutForm()
	}
	cmd, _ := m.form.Update(msg)
	return m, cmd
}

func (m *Model) handleWithdrawKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return m, nil
	case "enter", "ctrl+s":
		amount := ""
		if m.form != nil {
			m.form.commit()
			amount = m.withdrawAmount
		}
		data, _ := m.payloads[domain.TabPayments].(*usecase.PaymentsData)
		available := 0.0
		var methods []domain.PaymentMethod
		if data != nil && data.Balance != nil {
			available = data.Balance.Available
			methods = data.Methods
		}
		m.closeOverlay()
		return m, m.cmd(func() { m.deps.Payouts.Withdraw(m.ctx, amount, available, methods) })
	}
	if m.form == nil {
		m.form = m.withdrawForm()
	}
	cmd, _ := m.form.Update(msg)
	return m, cmd
}

func (m *Model) handleInboxKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.deps.Inbox.Items()
	switch msg.String() {
	case "esc", "i":
		m.closeOverlay()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(items)-1 {
			m.selected++
		}
	case "enter":
		if m.selected < len(items) {
			id := items[m.selected].ID
			return m, m.cmd(func() { m.deps.Inbox.MarkRead(m.ctx, id) })
		}
	case "a":
		return m, m.cmd(func() { m.deps.Inbox.MarkAllRead(m.ctx) })
	}
	return m, nil
}

func nextIn(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func nextKind(k domain.PaymentKind) domain.PaymentKind {
	kinds := domain.AllPaymentKinds()
	for i, v := range kinds {
		if v == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

// formatMoney renders an ETB amount with two decimals.
func formatMoney(v float64) string {
	return "ETB " + strconv.FormatFloat(v, 'f', 2, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
