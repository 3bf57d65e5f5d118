package notify

import "strings"

// rule maps a raw error substring to the message shown to the user.
type rule struct {
	match    string
	friendly string
}

// friendlyRules is checked in order and the first match wins, so the
// domain-specific entries must stay above the generic HTTP-status ones: a
// body like "Submit failed: HTTP 400" should surface the submit wording.
var friendlyRules = []rule{
	{"Failed to load languages or categories", "Unable to load language or category options. Please try again."},
	{"Failed to submit campaign", "Could not save the campaign. Please check your inputs and try again."},
	{"A campaign named", "A campaign with this name already exists for this status. Please choose a different name."},
	{"Ad content can only be updated", "Ad content can only be updated for campaigns in DRAFT or STOPPED status."},
	{"Failed to fetch campaign", "Unable to load campaign details. Please try again."},
	{"Failed to delete", "Could not delete the campaign. Please try again."},
	{"Failed to load campaign performance", "Unable to load campaign performance data. Please try again."},
	{"Failed to load dashboard", "Unable to load the dashboard data. Please try again."},
	{"Failed to update period", "Unable to update the time period. Please try again."},
	{"Submit failed", "Could not submit the campaign. Please check your balance or try again."},
	{"No eligible channels found for campaign", "No channels match your campaign's budget, CPM, or targeting rules (languages/categories). Please update these settings and try submitting again."},
	{"Submit after top-up failed", "Could not submit the campaign after topping up. Please try again."},
	{"Top-up failed", "Unable to process the top-up. Please check your payment details and try again."},
	{"pause failed", "Could not pause the campaign. Please try again."},
	{"resume failed", "Could not resume the campaign. Please try again."},
	{"stop failed", "Could not stop the campaign. Please try again."},
	{"HTTP 400", "There was an issue with your request. Please check your inputs and try again."},
	{"HTTP 401", "Please log in again to continue."},
	{"HTTP 403", "You don't have permission to perform this action. Contact support if this is an error."},
	{"HTTP 404", "The requested resource was not found. Please try again or contact support."},
	{"HTTP 500", "Something went wrong on our end. Please try again later."},
}

// Friendly rewrites a raw error message into user-facing wording. Messages
// matching no rule pass through unchanged.
func Friendly(msg string) string {
	for _, r := range friendlyRules {
		if strings.Contains(msg, r.match) {
			return r.friendly
		}
	}
	return msg
}
