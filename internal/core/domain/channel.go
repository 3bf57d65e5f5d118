package domain

import "regexp"

// ChannelLinkRe matches public t.me channel links with a username of at
// least five word characters.
var ChannelLinkRe = regexp.MustCompile(`^https://t\.me/[a-zA-Z0-9_]{5,}$`)

// MaxChannelSelections caps languages and categories per channel.
const MaxChannelSelections = 3

// Channel is a creator's connected distribution channel.
type Channel struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Link          string   `json:"link"`
	Status        string   `json:"status"` // pending, verified, rejected
	StatusDisplay string   `json:"status_display"`
	Subscribers   int64    `json:"subscribers"`
	MinCPM        float64  `json:"min_cpm"`
	Languages     []string `json:"language"`
	Categories    []string `json:"category"`
	TotalEarnings float64  `json:"total_earnings"`
}

// ChannelDraft is the connect-channel form state. MinCPM stays a raw string
// until validation parses it; selections are checkbox value sets.
type ChannelDraft struct {
	Link       string
	MinCPM     string
	Languages  map[string]bool
	Categories map[string]bool
}

// NewChannelDraft returns an empty draft with initialised selection sets.
func NewChannelDraft() ChannelDraft {
	return ChannelDraft{Languages: map[string]bool{}, Categories: map[string]bool{}}
}

// AdPlacement is a campaign proposed to run on a creator's channel.
type AdPlacement struct {
	ID           string  `json:"id"`
	CampaignName string  `json:"campaign_name"`
	ChannelTitle string  `json:"channel_title"`
	Headline     string  `json:"headline"`
	Status       string  `json:"status"` // pending, approved, rejected
	ProposedCPM  float64 `json:"proposed_cpm"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}
