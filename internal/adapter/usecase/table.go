package usecase

import (
	"sort"
	"strings"

	"sonic-miniapp/internal/core/domain"
)

// OverviewRowLimit caps the dashboard's recent-campaigns table.
const OverviewRowLimit = 6

// FilterAndSort applies the table state's name and status filters, then
// sorts by the selected column. The input slice is never mutated; callers
// keep the canonical campaign list untouched in the tab cache.
func FilterAndSort(campaigns []domain.Campaign, state domain.CampaignTableState) []domain.Campaign {
	filtered := make([]domain.Campaign, 0, len(campaigns))
	nameFilter := strings.ToLower(state.NameFilter)
	for _, c := range campaigns {
		if nameFilter != "" && !strings.Contains(strings.ToLower(c.Name), nameFilter) {
			continue
		}
		if state.StatusFilter != "" && state.StatusFilter != domain.StatusFilterAll &&
			strings.ToLower(string(c.Status)) != state.StatusFilter {
			continue
		}
		filtered = append(filtered, c)
	}
	cmp := comparator(state.SortColumn)
	sort.SliceStable(filtered, func(i, j int) bool {
		less, equal := cmp(filtered[i], filtered[j])
		if equal {
			return false
		}
		if state.SortDirection == domain.SortDesc {
			return !less
		}
		return less
	})
	return filtered
}

// comparator returns a column comparison reporting less-than and equality.
func comparator(column string) func(a, b domain.Campaign) (less, equal bool) {
	switch column {
	case domain.SortByStatus:
		return func(a, b domain.Campaign) (bool, bool) {
			sa, sb := strings.ToLower(string(a.Status)), strings.ToLower(string(b.Status))
			return sa < sb, sa == sb
		}
	case domain.SortByStartDate:
		return func(a, b domain.Campaign) (bool, bool) {
			da, db := domain.ParseDay(a.StartDate), domain.ParseDay(b.StartDate)
			return da.Before(db), da.Equal(db)
		}
	case domain.SortByBudget:
		return func(a, b domain.Campaign) (bool, bool) {
			return a.InitialBudget < b.InitialBudget, a.InitialBudget == b.InitialBudget
		}
	case domain.SortByCost:
		return func(a, b domain.Campaign) (bool, bool) {
			return a.TotalCost < b.TotalCost, a.TotalCost == b.TotalCost
		}
	case domain.SortByImpressions:
		return func(a, b domain.Campaign) (bool, bool) {
			return a.TotalImpressions < b.TotalImpressions, a.TotalImpressions == b.TotalImpressions
		}
	case domain.SortByCTR:
		return func(a, b domain.Campaign) (bool, bool) {
			return a.CTR() < b.CTR(), a.CTR() == b.CTR()
		}
	default: // name
		return func(a, b domain.Campaign) (bool, bool) {
			na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
			return na < nb, na == nb
		}
	}
}

// Paginate slices one page out of the filtered list and returns the total
// page count. Pages are 1-based; an out-of-range page yields an empty
// slice.
func Paginate(campaigns []domain.Campaign, page int) ([]domain.Campaign, int) {
	totalPages := (len(campaigns) + domain.CampaignPageSize - 1) / domain.CampaignPageSize
	if page < 1 {
		page = 1
	}
	start := (page - 1) * domain.CampaignPageSize
	if start >= len(campaigns) {
		return nil, totalPages
	}
	end := start + domain.CampaignPageSize
	if end > len(campaigns) {
		end = len(campaigns)
	}
	out := make([]domain.Campaign, end-start)
	copy(out, campaigns[start:end])
	return out, totalPages
}

// OverviewRows produces the dashboard's recent-campaigns table: the
// filtered list re-sorted by status then most recent update, truncated to
// OverviewRowLimit rows. The re-sort works on a copy so it never leaks
// into the campaigns tab ordering.
func OverviewRows(campaigns []domain.Campaign, state domain.CampaignTableState) []domain.Campaign {
	filtered := FilterAndSort(campaigns, state)
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Status != b.Status {
			return a.Status < b.Status
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
	if len(filtered) > OverviewRowLimit {
		filtered = filtered[:OverviewRowLimit]
	}
	return filtered
}
