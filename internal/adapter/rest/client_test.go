package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"sonic-miniapp/internal/config/configs"
	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
	"sonic-miniapp/internal/stub"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient runs the stub backend behind an httptest server and points
// a fresh client at it.
func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(configs.API{
		BaseURL:    srv.URL,
		CSRFCookie: "csrftoken",
		Timeout:    5 * time.Second,
	}, testLogger())
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return c
}

func stubRouter() http.Handler {
	return stub.NewServer(testLogger()).Router()
}

// TestListCampaignsSeeded fetches the demo dataset.
func TestListCampaignsSeeded(t *testing.T) {
	c := newTestClient(t, stubRouter())

	campaigns, err := c.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("list campaigns: %v", err)
	}
	if len(campaigns) != 4 {
		t.Fatalf("expected 4 seeded campaigns, got %d", len(campaigns))
	}
	first := campaigns[0]
	if first.Name != "Addis Coffee Launch" || first.Status != domain.StatusActive {
		t.Fatalf("unexpected first campaign: %q (%s)", first.Name, first.Status)
	}
	if first.AdContent == nil || first.AdContent.Headline != "Fresh roast, every day" {
		t.Fatalf("ad content not decoded: %+v", first.AdContent)
	}
}

// TestCSRFTokenMirrored echoes the backend's csrftoken cookie back in the
// X-CSRFToken header once the jar holds it.
func TestCSRFTokenMirrored(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	inner := stubRouter()
	recorder := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("X-CSRFToken"))
		mu.Unlock()
		inner.ServeHTTP(w, r)
	})
	c := newTestClient(t, recorder)
	ctx := context.Background()

	campaigns, err := c.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("list campaigns: %v", err)
	}
	if err := c.PauseCampaign(ctx, campaigns[0].ID); err != nil {
		t.Fatalf("pause campaign: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(seen))
	}
	if seen[0] != "" {
		t.Fatalf("first request cannot carry a token, got %q", seen[0])
	}
	if seen[1] == "" {
		t.Fatalf("second request should mirror the cookie into the header")
	}
}

// TestRequestIDHeader stamps every request with a fresh id.
func TestRequestIDHeader(t *testing.T) {
	var mu sync.Mutex
	var ids []string
	inner := stubRouter()
	recorder := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ids = append(ids, r.Header.Get("X-Request-ID"))
		mu.Unlock()
		inner.ServeHTTP(w, r)
	})
	c := newTestClient(t, recorder)
	ctx := context.Background()

	if _, err := c.ListChannels(ctx); err != nil {
		t.Fatalf("list channels: %v", err)
	}
	if _, err := c.ListChannels(ctx); err != nil {
		t.Fatalf("list channels: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if ids[0] == "" || ids[1] == "" || ids[0] == ids[1] {
		t.Fatalf("expected distinct non-empty request ids, got %q and %q", ids[0], ids[1])
	}
}

// TestStatusErrorCarriesBody turns a 404 into a BodyError the usecases can
// decode.
func TestStatusErrorCarriesBody(t *testing.T) {
	c := newTestClient(t, stubRouter())

	_, err := c.GetCampaign(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected an error for an unknown campaign")
	}
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected a 404 StatusError, got %v", err)
	}
	apiErr, ok := port.ParseAPIError(err)
	if !ok || apiErr.Detail != "Not found." {
		t.Fatalf("expected decoded detail, got %+v (%v)", apiErr, ok)
	}
}

// TestUpdateRejectsLoweredCPM surfaces the per-field rejection for active
// campaigns.
func TestUpdateRejectsLoweredCPM(t *testing.T) {
	c := newTestClient(t, stubRouter())
	ctx := context.Background()

	campaigns, err := c.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("list campaigns: %v", err)
	}
	active := campaigns[0]

	_, err = c.UpdateCampaign(ctx, active.ID, port.CampaignPayload{
		Name:          active.Name,
		Objective:     active.Objective,
		InitialBudget: active.InitialBudget,
		CPM:           active.CPM - 10,
	})
	if err == nil {
		t.Fatalf("expected the CPM floor rejection")
	}
	apiErr, ok := port.ParseAPIError(err)
	if !ok {
		t.Fatalf("expected a structured body, got %v", err)
	}
	if got := apiErr.Fields["cpm"]; len(got) != 1 || got[0] != "CPM cannot be lowered on an active campaign." {
		t.Fatalf("unexpected field errors: %+v", apiErr.Fields)
	}
}

// TestCreateCampaignMultipart round-trips the flattened multipart encoding
// with an attached media file.
func TestCreateCampaignMultipart(t *testing.T) {
	c := newTestClient(t, stubRouter())
	start, end := "2026-09-10", "2026-10-10"

	created, err := c.CreateCampaign(context.Background(), port.CampaignPayload{
		Name:                "Injera Festival",
		Objective:           "brand_awareness",
		InitialBudget:       2500,
		CPM:                 70,
		ViewsFrequencyCap:   2,
		StartDate:           &start,
		EndDate:             &end,
		TargetingLanguages:  []int{1, 2},
		TargetingCategories: []string{"news", "entertainment"},
		TargetingRegions:    map[string]string{"ET": "Ethiopia"},
		AdContent: &port.AdContentPayload{
			Headline:    "Taste the tradition",
			TextContent: "Three days of food, music and culture in Meskel Square.",
			BrandName:   "Injera Fest",
			SocialLinks: []domain.SocialLink{
				{Platform: domain.PlatformInstagram, URL: "https://instagram.com/injerafest"},
				{Platform: domain.PlatformWebsite, URL: "https://injerafest.et"},
			},
		},
		Media: &domain.Upload{Name: "banner.png", Data: []byte("png-bytes")},
	})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}

	if created.ID == "" || created.Status != domain.StatusDraft {
		t.Fatalf("expected a fresh draft, got %+v", created)
	}
	if created.Name != "Injera Festival" || created.CPM != 70 || created.InitialBudget != 2500 {
		t.Fatalf("scalar fields lost in transit: %+v", created)
	}
	if created.StartDate != start || created.EndDate != end {
		t.Fatalf("dates lost in transit: %q..%q", created.StartDate, created.EndDate)
	}
	if len(created.TargetingLanguages) != 2 || created.TargetingLanguages[0] != 1 {
		t.Fatalf("languages lost in transit: %v", created.TargetingLanguages)
	}
	if len(created.TargetingCategories) != 2 {
		t.Fatalf("categories lost in transit: %v", created.TargetingCategories)
	}
	if created.TargetingRegions["ET"] != "Ethiopia" {
		t.Fatalf("regions lost in transit: %v", created.TargetingRegions)
	}
	ad := created.AdContent
	if ad == nil || ad.Headline != "Taste the tradition" {
		t.Fatalf("ad content lost in transit: %+v", ad)
	}
	if ad.ImageURL != "/media/banner.png" {
		t.Fatalf("upload should set the image url, got %q", ad.ImageURL)
	}
	if len(ad.SocialLinks) != 2 || ad.SocialLinks[0].Platform != domain.PlatformInstagram {
		t.Fatalf("social links lost in transit: %+v", ad.SocialLinks)
	}
}

// TestDeleteCampaignNoContent accepts the bodyless 204 response.
func TestDeleteCampaignNoContent(t *testing.T) {
	c := newTestClient(t, stubRouter())
	ctx := context.Background()

	campaigns, err := c.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("list campaigns: %v", err)
	}
	var draftID string
	for _, cp := range campaigns {
		if cp.Status == domain.StatusDraft {
			draftID = cp.ID
		}
	}
	if draftID == "" {
		t.Fatalf("seed dataset should contain a draft")
	}

	if err := c.DeleteCampaign(ctx, draftID); err != nil {
		t.Fatalf("delete campaign: %v", err)
	}
	campaigns, err = c.ListCampaigns(ctx)
	if err != nil {
		t.Fatalf("list campaigns: %v", err)
	}
	if len(campaigns) != 3 {
		t.Fatalf("expected 3 campaigns after delete, got %d", len(campaigns))
	}
}

// TestDepositSettlesOnSecondPoll walks the request-then-poll deposit flow
// and checks the wallet credit.
func TestDepositSettlesOnSecondPoll(t *testing.T) {
	c := newTestClient(t, stubRouter())
	ctx := context.Background()

	before, err := c.BalanceSummary(ctx)
	if err != nil {
		t.Fatalf("balance summary: %v", err)
	}

	receipt, err := c.RequestDeposit(ctx, 500, "0911234567", domain.PayTelebirr)
	if err != nil {
		t.Fatalf("request deposit: %v", err)
	}
	if !strings.HasPrefix(receipt.Reference, "DEP-") || receipt.Instruction == "" {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}

	st, err := c.DepositStatus(ctx, receipt.Reference)
	if err != nil {
		t.Fatalf("deposit status: %v", err)
	}
	if st.Status != "pending" {
		t.Fatalf("first poll should be pending, got %q", st.Status)
	}

	st, err = c.DepositStatus(ctx, receipt.Reference)
	if err != nil {
		t.Fatalf("deposit status: %v", err)
	}
	if st.Status != "success" || !st.Credited {
		t.Fatalf("second poll should settle, got %+v", st)
	}
	if st.Message != "Payment completed successfully! Your balance has been updated." {
		t.Fatalf("unexpected settle message: %q", st.Message)
	}

	after, err := c.BalanceSummary(ctx)
	if err != nil {
		t.Fatalf("balance summary: %v", err)
	}
	if got := after.Available - before.Available; got != 500 {
		t.Fatalf("expected the wallet credited by 500, got %v", got)
	}
}

// TestConnectAndVerifyChannel registers a channel and promotes it to
// verified.
func TestConnectAndVerifyChannel(t *testing.T) {
	c := newTestClient(t, stubRouter())
	ctx := context.Background()

	res, err := c.ConnectChannel(ctx, port.ChannelPayload{
		Link:       "https://t.me/habesha_market",
		MinCPM:     55,
		Languages:  []string{"Amharic"},
		Categories: []string{"entertainment"},
	})
	if err != nil {
		t.Fatalf("connect channel: %v", err)
	}
	if !strings.HasPrefix(res.VerificationLink, "https://t.me/sonic_verify_bot?start=") {
		t.Fatalf("unexpected verification link: %q", res.VerificationLink)
	}

	msg, err := c.VerifyChannel(ctx, res.VerificationLink)
	if err != nil {
		t.Fatalf("verify channel: %v", err)
	}
	if msg != "Channel verified successfully! You can now serve ads and earn." {
		t.Fatalf("unexpected verify message: %q", msg)
	}

	channels, err := c.ListChannels(ctx)
	if err != nil {
		t.Fatalf("list channels: %v", err)
	}
	var found *domain.Channel
	for i := range channels {
		if channels[i].Link == "https://t.me/habesha_market" {
			found = &channels[i]
		}
	}
	if found == nil || found.Status != "verified" {
		t.Fatalf("connected channel should be verified, got %+v", found)
	}
}

// TestWithdrawalBelowMinimum surfaces the backend's error message.
func TestWithdrawalBelowMinimum(t *testing.T) {
	c := newTestClient(t, stubRouter())

	_, err := c.RequestWithdrawal(context.Background(), 50, "whatever")
	if err == nil {
		t.Fatalf("expected the minimum amount rejection")
	}
	apiErr, ok := port.ParseAPIError(err)
	if !ok || apiErr.ErrorMsg != "Minimum withdrawal amount is ETB 100" {
		t.Fatalf("unexpected error body: %+v (%v)", apiErr, ok)
	}
}

// TestProfilePatchMergesAndNulls updates edited fields and clears fields
// sent as null.
func TestProfilePatchMergesAndNulls(t *testing.T) {
	c := newTestClient(t, stubRouter())
	ctx := context.Background()

	if err := c.UpdateProfile(ctx, map[string]any{
		"first_name": "Sara",
		"address":    nil,
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	p, err := c.Profile(ctx)
	if err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if p.FirstName != "Sara" || p.LastName != "Tesfaye" {
		t.Fatalf("unexpected names after patch: %q %q", p.FirstName, p.LastName)
	}
	if p.Address != "" {
		t.Fatalf("null address should clear the field, got %q", p.Address)
	}
}
