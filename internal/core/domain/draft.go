package domain

import "sort"

// WizardStep numbers the two pages of the campaign wizard.
type WizardStep int

const (
	StepBasics WizardStep = 1
	StepReview WizardStep = 2
)

// CampaignDraft is the wizard's working copy of a campaign. Numeric fields
// stay as raw input strings until validation parses them, so a half-typed
// value never corrupts state. Selections are sets keyed by option ID.
type CampaignDraft struct {
	CampaignID string // empty when creating
	Step       WizardStep

	Name         string
	Objective    string
	Budget       string
	CPM          string
	FrequencyCap string
	StartDate    string // "2006-01-02"
	EndDate      string

	Languages  map[int]bool
	Categories map[string]bool

	Ad *AdDraft

	// Snapshot of the campaign as fetched, for edit-mode rules.
	OriginalStatus CampaignStatus
	OriginalCPM    float64
}

// NewCampaignDraft returns an empty draft positioned on the first step.
func NewCampaignDraft() CampaignDraft {
	return CampaignDraft{
		Step:       StepBasics,
		Languages:  map[int]bool{},
		Categories: map[string]bool{},
	}
}

// Editing reports whether the draft edits an existing campaign.
func (d CampaignDraft) Editing() bool { return d.CampaignID != "" }

// AdEditable reports whether the ad content may be changed. New campaigns
// are always editable; existing ones only in draft or stopped status.
func (d CampaignDraft) AdEditable() bool {
	if !d.Editing() {
		return true
	}
	return d.OriginalStatus == StatusDraft || d.OriginalStatus == StatusStopped
}

// LanguageIDs returns the selected language IDs in ascending order.
func (d CampaignDraft) LanguageIDs() []int {
	ids := make([]int, 0, len(d.Languages))
	for id, on := range d.Languages {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// CategoryIDs returns the selected category IDs sorted for stable payloads.
func (d CampaignDraft) CategoryIDs() []string {
	ids := make([]string, 0, len(d.Categories))
	for id, on := range d.Categories {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
