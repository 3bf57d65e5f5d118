package domain

import (
	"encoding/json"
	"testing"
	"time"
)

// TestActionsFor covers the per-status availability matrix.
func TestActionsFor(t *testing.T) {
	cases := []struct {
		status CampaignStatus
		want   []CampaignAction
	}{
		{StatusActive, []CampaignAction{ActionPause, ActionStop, ActionEdit}},
		{StatusOnHold, []CampaignAction{ActionResume, ActionStop, ActionEdit}},
		{StatusDraft, []CampaignAction{ActionSubmit, ActionEdit, ActionDelete}},
		{StatusDeclined, []CampaignAction{ActionEdit, ActionDelete}},
		{StatusStopped, []CampaignAction{ActionEdit, ActionDelete}},
		{StatusScheduled, []CampaignAction{ActionDelete}},
		{StatusInReview, []CampaignAction{ActionDelete}},
		{StatusCompleted, []CampaignAction{ActionEdit, ActionDelete}},
		{CampaignStatus("weird"), nil},
	}
	for _, tc := range cases {
		got := ActionsFor(tc.status)
		if len(got) != len(tc.want) {
			t.Fatalf("status %s: got %v, want %v", tc.status, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("status %s: got %v, want %v", tc.status, got, tc.want)
			}
		}
	}
}

func TestCampaignCTR(t *testing.T) {
	c := Campaign{TotalImpressions: 2000, TotalClicks: 30}
	if got := c.CTR(); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
	if got := (Campaign{}).CTR(); got != 0 {
		t.Fatalf("no impressions must yield zero, got %v", got)
	}
}

// TestSocialLinkCheckURL walks the platform allowlist rules.
func TestSocialLinkCheckURL(t *testing.T) {
	cases := []struct {
		link SocialLink
		ok   bool
	}{
		{SocialLink{PlatformInstagram, "https://instagram.com/addis"}, true},
		{SocialLink{PlatformInstagram, "https://www.instagram.com/addis"}, true},
		{SocialLink{PlatformInstagram, "https://x.com/addis"}, false},
		{SocialLink{PlatformX, "https://twitter.com/addis"}, true},
		{SocialLink{PlatformX, "https://notx.com/addis"}, false},
		{SocialLink{PlatformWebsite, "https://any-site.et/promo"}, true},
		{SocialLink{PlatformWebsite, "not a url"}, false},
		{SocialLink{PlatformWebsite, "ftp://any-site.et"}, false},
	}
	for _, tc := range cases {
		err := tc.link.CheckURL()
		if tc.ok && err != nil {
			t.Fatalf("%s %q: unexpected error %v", tc.link.Platform, tc.link.URL, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s %q: expected an error", tc.link.Platform, tc.link.URL)
		}
	}
}

// TestBalanceSummaryAltKeys accepts both key spellings the backend has
// used for the wallet fields.
func TestBalanceSummaryAltKeys(t *testing.T) {
	var long BalanceSummary
	if err := json.Unmarshal([]byte(`{"available_balance": 1250, "pending_escrow": 300, "total_spent": 90}`), &long); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if long.Available != 1250 || long.Escrow != 300 || long.TotalSpent != 90 {
		t.Fatalf("long keys misread: %+v", long)
	}

	var short BalanceSummary
	if err := json.Unmarshal([]byte(`{"available": 600, "locked": 150}`), &short); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if short.Available != 600 || short.Escrow != 150 {
		t.Fatalf("short keys misread: %+v", short)
	}
}

func TestTransactionTypeLabel(t *testing.T) {
	cases := map[string]string{
		"deposit":    "Deposit",
		"withdrawal": "Withdrawal",
		"debit":      "To Escrow",
		"credit":     "Escrow Refund",
		"custom":     "custom",
	}
	for typ, want := range cases {
		if got := (Transaction{Type: typ}).TypeLabel(); got != want {
			t.Fatalf("type %q: got %q, want %q", typ, got, want)
		}
	}
}

func TestNotificationAge(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-20 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.AddDate(0, 0, -2), "2d ago"},
		{now.AddDate(0, 0, -20), "Aug 11"},
	}
	for _, tc := range cases {
		n := Notification{CreatedAt: tc.at}
		if got := n.Age(now); got != tc.want {
			t.Fatalf("at %v: got %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	if got := ParseDay("2026-08-31"); got.IsZero() {
		t.Fatalf("valid day should parse")
	}
	if got := ParseDay("nope"); !got.IsZero() {
		t.Fatalf("malformed day should yield the zero time, got %v", got)
	}
}
