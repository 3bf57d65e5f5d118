package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign as reported by the
// backend. The client never invents statuses; it only reacts to them.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusScheduled CampaignStatus = "scheduled"
	StatusInReview  CampaignStatus = "in_review"
	StatusActive    CampaignStatus = "active"
	StatusOnHold    CampaignStatus = "on_hold"
	StatusStopped   CampaignStatus = "stopped"
	StatusDeclined  CampaignStatus = "declined"
	StatusCompleted CampaignStatus = "completed"
)

// CampaignAction is a lifecycle transition the advertiser may request.
type CampaignAction string

const (
	ActionSubmit CampaignAction = "submit"
	ActionPause  CampaignAction = "pause"
	ActionResume CampaignAction = "resume"
	ActionStop   CampaignAction = "stop"
	ActionEdit   CampaignAction = "edit"
	ActionDelete CampaignAction = "delete"
)

// ActionsFor returns the lifecycle actions available for a campaign in the
// given status, in display order.
func ActionsFor(status CampaignStatus) []CampaignAction {
	switch status {
	case StatusActive:
		return []CampaignAction{ActionPause, ActionStop, ActionEdit}
	case StatusOnHold:
		return []CampaignAction{ActionResume, ActionStop, ActionEdit}
	case StatusDraft:
		return []CampaignAction{ActionSubmit, ActionEdit, ActionDelete}
	case StatusDeclined, StatusStopped:
		return []CampaignAction{ActionEdit, ActionDelete}
	case StatusScheduled, StatusInReview:
		return []CampaignAction{ActionDelete}
	case StatusCompleted:
		return []CampaignAction{ActionEdit, ActionDelete}
	default:
		return nil
	}
}

// AllObjectives lists the campaign objectives in display order.
func AllObjectives() []string {
	return []string{"brand_awareness", "engagement", "conversion", "traffic"}
}

// Campaign is an advertising campaign as returned by the backend. Dates are
// calendar days in "2006-01-02" form; budgets and costs are decimal currency
// amounts.
type Campaign struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Objective           string           `json:"objective"`
	Status              CampaignStatus   `json:"status"`
	InitialBudget       float64          `json:"initial_budget"`
	CPM                 float64          `json:"cpm"`
	ViewsFrequencyCap   int              `json:"views_frequency_cap"`
	StartDate           string           `json:"start_date"`
	EndDate             string           `json:"end_date"`
	TargetingLanguages  []int            `json:"targeting_languages"`
	TargetingCategories []string         `json:"targeting_categories"`
	TargetingRegions    map[string]string `json:"targeting_regions"`
	AdContent           *AdContent       `json:"ad_content,omitempty"`
	TotalImpressions    int64            `json:"total_impressions"`
	TotalClicks         int64            `json:"total_clicks"`
	TotalCost           float64          `json:"total_cost"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// CTR returns the click-through rate in percent, zero when the campaign has
// no impressions yet.
func (c Campaign) CTR() float64 {
	if c.TotalImpressions == 0 {
		return 0
	}
	return float64(c.TotalClicks) / float64(c.TotalImpressions) * 100
}

// ParseDay parses a "2006-01-02" date. The zero time is returned for empty
// or malformed values so that comparisons still order such rows first.
func ParseDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
