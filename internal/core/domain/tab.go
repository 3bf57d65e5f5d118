package domain

// Tab identifies one of the top-level views of the mini-app. The zero value
// is not a valid tab; use TabDashboard as the landing view.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabCampaigns Tab = "campaigns"
	TabChannels  Tab = "channels"
	TabPayments  Tab = "payments"
	TabAds       Tab = "ads"
	TabSettings  Tab = "settings"
)

// AllTabs lists every tab in display order.
func AllTabs() []Tab {
	return []Tab{TabDashboard, TabCampaigns, TabChannels, TabPayments, TabAds, TabSettings}
}

// Title returns the human readable name of the tab.
func (t Tab) Title() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabCampaigns:
		return "Campaigns"
	case TabChannels:
		return "Channels"
	case TabPayments:
		return "Payments"
	case TabAds:
		return "Ads"
	case TabSettings:
		return "Settings"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	switch t {
	case TabDashboard, TabCampaigns, TabChannels, TabPayments, TabAds, TabSettings:
		return true
	}
	return false
}
