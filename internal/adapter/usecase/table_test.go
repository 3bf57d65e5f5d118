package usecase

import (
	"testing"
	"time"

	"sonic-miniapp/internal/core/domain"
)

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: "1", Name: "Coffee Launch", Status: domain.StatusActive, InitialBudget: 5000, TotalImpressions: 1000, TotalClicks: 50, StartDate: "2026-01-10"},
		{ID: "2", Name: "Ride Promo", Status: domain.StatusOnHold, InitialBudget: 2000, TotalImpressions: 400, TotalClicks: 2, StartDate: "2026-02-01"},
		{ID: "3", Name: "Football Odds", Status: domain.StatusDraft, InitialBudget: 9000, StartDate: "2026-03-15"},
		{ID: "4", Name: "coffee beans", Status: domain.StatusActive, InitialBudget: 100, TotalImpressions: 10, TotalClicks: 9, StartDate: "2026-01-01"},
	}
}

func TestFilterByName(t *testing.T) {
	state := domain.NewCampaignTableState()
	state.NameFilter = "COFFEE"

	got := FilterAndSort(sampleCampaigns(), state)
	if len(got) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(got))
	}
	// name sort is case-insensitive ascending
	if got[0].ID != "4" || got[1].ID != "1" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterByStatus(t *testing.T) {
	state := domain.NewCampaignTableState()
	state.StatusFilter = "active"

	got := FilterAndSort(sampleCampaigns(), state)
	if len(got) != 2 {
		t.Fatalf("expected 2 active campaigns, got %d", len(got))
	}

	state.StatusFilter = domain.StatusFilterAll
	if got := FilterAndSort(sampleCampaigns(), state); len(got) != 4 {
		t.Fatalf("status %q should not filter, got %d rows", domain.StatusFilterAll, len(got))
	}
}

func TestSortByBudgetDescending(t *testing.T) {
	state := domain.NewCampaignTableState()
	state.SortColumn = domain.SortByBudget
	state.SortDirection = domain.SortDesc

	got := FilterAndSort(sampleCampaigns(), state)
	for i := 1; i < len(got); i++ {
		if got[i-1].InitialBudget < got[i].InitialBudget {
			t.Fatalf("budgets not descending at %d: %v then %v", i, got[i-1].InitialBudget, got[i].InitialBudget)
		}
	}
}

func TestSortByCTRComputed(t *testing.T) {
	state := domain.NewCampaignTableState()
	state.SortColumn = domain.SortByCTR
	state.SortDirection = domain.SortDesc

	got := FilterAndSort(sampleCampaigns(), state)
	// campaign 4: 9/10 = 90%, the highest; campaign 3 has no impressions so CTR 0
	if got[0].ID != "4" {
		t.Fatalf("expected campaign 4 first, got %s", got[0].ID)
	}
	if got[len(got)-1].CTR() != 0 {
		t.Fatalf("expected zero-CTR campaign last")
	}
}

func TestSortStableOnEqualKeys(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "a", Name: "Same", InitialBudget: 10},
		{ID: "b", Name: "Same", InitialBudget: 10},
		{ID: "c", Name: "Same", InitialBudget: 10},
	}
	state := domain.NewCampaignTableState()
	state.SortColumn = domain.SortByBudget
	state.SortDirection = domain.SortDesc

	got := FilterAndSort(campaigns, state)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("equal keys must keep input order, got %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	campaigns := sampleCampaigns()
	state := domain.NewCampaignTableState()
	state.SortColumn = domain.SortByBudget
	state.SortDirection = domain.SortDesc

	FilterAndSort(campaigns, state)
	if campaigns[0].ID != "1" || campaigns[3].ID != "4" {
		t.Fatalf("input slice was reordered")
	}
}

func TestPaginate(t *testing.T) {
	campaigns := make([]domain.Campaign, 23)
	for i := range campaigns {
		campaigns[i].ID = string(rune('a' + i))
	}

	page, total := Paginate(campaigns, 1)
	if total != 3 {
		t.Fatalf("expected 3 pages, got %d", total)
	}
	if len(page) != domain.CampaignPageSize {
		t.Fatalf("expected full first page, got %d rows", len(page))
	}

	page, _ = Paginate(campaigns, 3)
	if len(page) != 3 {
		t.Fatalf("expected 3 rows on last page, got %d", len(page))
	}

	page, _ = Paginate(campaigns, 9)
	if page != nil {
		t.Fatalf("out-of-range page should be empty, got %d rows", len(page))
	}

	page, total = Paginate(nil, 1)
	if total != 0 || page != nil {
		t.Fatalf("empty list: got %d pages, %d rows", total, len(page))
	}
}

func TestOverviewRows(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	var campaigns []domain.Campaign
	for i := 0; i < 8; i++ {
		campaigns = append(campaigns, domain.Campaign{
			ID:        string(rune('a' + i)),
			Name:      "c" + string(rune('a'+i)),
			Status:    domain.StatusActive,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	campaigns[0].Status = domain.StatusDraft

	rows := OverviewRows(campaigns, domain.NewCampaignTableState())
	if len(rows) != OverviewRowLimit {
		t.Fatalf("expected %d rows, got %d", OverviewRowLimit, len(rows))
	}
	// active sorts before draft, newest update first within the group
	if rows[0].ID != "h" {
		t.Fatalf("expected most recently updated active campaign first, got %s", rows[0].ID)
	}
	for _, r := range rows {
		if r.Status == domain.StatusDraft {
			t.Fatalf("draft row should be cut by the limit")
		}
	}
}
