package domain

// SortDirection orders a table column ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// Sortable campaign table columns. SortCTR is computed from clicks and
// impressions rather than read from a field.
const (
	SortByName        = "name"
	SortByStatus      = "status"
	SortByStartDate   = "start_date"
	SortByBudget      = "initial_budget"
	SortByCost        = "total_cost"
	SortByImpressions = "total_impressions"
	SortByCTR         = "ctr"
)

// CampaignPageSize is the number of rows per campaign table page.
const CampaignPageSize = 10

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// CampaignTableState holds the user-driven view parameters of the campaign
// table. It never contains row data; the canonical campaign list lives in
// the tab cache and is filtered on demand.
type CampaignTableState struct {
	Page          int
	SortColumn    string
	SortDirection SortDirection
	NameFilter    string
	StatusFilter  string
}

// NewCampaignTableState returns the default view: first page, sorted by
// name ascending, no filters.
func NewCampaignTableState() CampaignTableState {
	return CampaignTableState{
		Page:          1,
		SortColumn:    SortByName,
		SortDirection: SortAsc,
		StatusFilter:  StatusFilterAll,
	}
}
