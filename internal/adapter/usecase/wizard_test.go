package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
	"sonic-miniapp/internal/core/port/mocks"
)

// bodyErr fakes a gateway error carrying a structured response body.
type bodyErr struct {
	code int
	body string
}

func (e bodyErr) Error() string        { return e.body }
func (e bodyErr) StatusCode() int      { return e.code }
func (e bodyErr) ResponseBody() string { return e.body }

func newTestWizard(t *testing.T) (*Wizard, *mocks.MockGateway, *mocks.MockNotifier, *Tabs) {
	gw := mocks.NewMockGateway(t)
	view := mocks.NewMockView(t)
	notifier := mocks.NewMockNotifier(t)
	view.EXPECT().ShowTab(mock.Anything).Return().Maybe()
	view.EXPECT().SetTabLoading(mock.Anything, mock.Anything).Return().Maybe()
	view.EXPECT().RenderTab(mock.Anything, mock.Anything).Return().Maybe()

	gw.EXPECT().Languages(mock.Anything).
		Return([]domain.Language{{ID: 1, Name: "Amharic"}, {ID: 2, Name: "English"}}, nil).Maybe()
	gw.EXPECT().Categories(mock.Anything).
		Return([]domain.Category{{ID: "news", Name: "News"}, {ID: "tech", Name: "Tech"}}, nil).Maybe()

	tabs := NewTabs(gw, view, notifier, testLogger())
	return NewWizard(gw, tabs, notifier, testLogger()), gw, notifier, tabs
}

func fillValidDraft(w *Wizard) {
	w.Edit(func(d *domain.CampaignDraft) {
		d.Name = "Coffee Launch"
		d.Objective = "traffic"
		d.Budget = "1000"
		d.CPM = "60"
		d.FrequencyCap = "2"
		d.Languages[1] = true
		d.Categories["news"] = true
		d.Ad = &domain.AdDraft{
			Headline:    "Fresh roast",
			TextContent: "Order today",
			BrandName:   "Addis Coffee",
			ImageURL:    "https://cdn.example.com/ad.png",
		}
	})
}

// TestWizardNextReportsEveryBasicError ensures step one validation collects
// all failures at once instead of stopping at the first.
func TestWizardNextReportsEveryBasicError(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	w.OpenCreate(context.Background())

	errs := w.Next()
	want := []string{FieldName, FieldBudget, FieldCPM, FieldLanguages, FieldCategories}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	for _, field := range want {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
	if w.Draft().Step != domain.StepBasics {
		t.Fatalf("invalid step one must not advance")
	}
}

// TestWizardNextAdvances ensures a clean step one moves to review.
func TestWizardNextAdvances(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	w.OpenCreate(context.Background())
	fillValidDraft(w)

	if errs := w.Next(); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if w.Draft().Step != domain.StepReview {
		t.Fatalf("expected review step, got %d", w.Draft().Step)
	}

	w.Back()
	if w.Draft().Step != domain.StepBasics {
		t.Fatalf("expected basics step after Back")
	}
}

// TestWizardEndDateRules checks the calendar constraints on the end date.
func TestWizardEndDateRules(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	w.now = func() time.Time { return time.Date(2026, 6, 15, 13, 0, 0, 0, time.UTC) }
	w.OpenCreate(context.Background())
	fillValidDraft(w)

	w.Edit(func(d *domain.CampaignDraft) { d.EndDate = "2026-06-14" })
	if errs := w.Next(); errs[FieldEndDate] != "End date must be today or later." {
		t.Fatalf("expected past end date rejected, got %v", errs)
	}

	// today is fine
	w.Edit(func(d *domain.CampaignDraft) { d.EndDate = "2026-06-15" })
	if errs := w.Next(); !errs.Empty() {
		t.Fatalf("end date today should pass: %v", errs)
	}

	w.Back()
	w.Edit(func(d *domain.CampaignDraft) {
		d.StartDate = "2026-07-01"
		d.EndDate = "2026-06-20"
	})
	if errs := w.Next(); errs[FieldEndDate] != "End date must be on or after start date." {
		t.Fatalf("expected end-before-start rejected, got %v", errs)
	}
}

// TestCPMHint checks the live floor warning while editing an active campaign.
func TestCPMHint(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	w.Edit(func(d *domain.CampaignDraft) {
		d.CampaignID = "c1"
		d.OriginalStatus = domain.StatusActive
		d.OriginalCPM = 50
	})

	cases := []struct {
		cpm  string
		want string
	}{
		{"49", "Cannot go below 50.00 ETB for active campaigns"},
		{"50", ""},
		{"51", ""},
		{"not a number", ""},
	}
	for _, tc := range cases {
		w.Edit(func(d *domain.CampaignDraft) { d.CPM = tc.cpm })
		if got := w.CPMHint(); got != tc.want {
			t.Fatalf("cpm %q: got %q, want %q", tc.cpm, got, tc.want)
		}
	}

	// no hint outside active edits
	w.Edit(func(d *domain.CampaignDraft) {
		d.OriginalStatus = domain.StatusDraft
		d.CPM = "10"
	})
	if got := w.CPMHint(); got != "" {
		t.Fatalf("expected no hint for draft campaign, got %q", got)
	}
}

// TestAttachAdValidation checks the creative rules, including the platform
// domain allowlist for social links.
func TestAttachAdValidation(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	errs := w.AttachAd(domain.AdDraft{})
	for _, field := range []string{FieldAdHeadline, FieldAdText, FieldAdImage} {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}

	errs = w.AttachAd(domain.AdDraft{
		Headline:    "This headline is far too long to fit",
		TextContent: "ok",
		ImageURL:    "https://cdn.example.com/a.png",
	})
	if errs[FieldAdHeadline] != "Headline must be 25 characters or less." {
		t.Fatalf("expected headline length error, got %v", errs)
	}

	errs = w.AttachAd(domain.AdDraft{
		Headline:    "ok",
		TextContent: "ok",
		ImageURL:    "https://cdn.example.com/a.png",
		SocialLinks: []domain.SocialLink{{Platform: domain.PlatformInstagram, URL: "https://x.com/acct"}},
	})
	if errs[FieldSocialLinks] == "" {
		t.Fatalf("expected social link domain error, got %v", errs)
	}

	errs = w.AttachAd(domain.AdDraft{
		Headline:    "ok",
		TextContent: "ok",
		ImageURL:    "https://cdn.example.com/a.png",
		SocialLinks: []domain.SocialLink{{Platform: domain.PlatformInstagram, URL: "https://instagram.com/acct"}},
	})
	if !errs.Empty() {
		t.Fatalf("valid ad rejected: %v", errs)
	}
	if w.Draft().Ad == nil {
		t.Fatalf("valid ad was not stored")
	}
}

// TestAttachAdFreshUploadReplacesURL ensures a new file drops any retained
// image URL so the server does not receive both.
func TestAttachAdFreshUploadReplacesURL(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	errs := w.AttachAd(domain.AdDraft{
		Headline:    "ok",
		TextContent: "ok",
		ImageURL:    "https://cdn.example.com/old.png",
		File:        &domain.Upload{Name: "new.png", Data: []byte("img")},
	})
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if ad := w.Draft().Ad; ad.ImageURL != "" || ad.File == nil {
		t.Fatalf("fresh upload must clear the retained URL: %+v", ad)
	}
}

// TestSubmitValidationBlocksRequest ensures nothing is sent while the draft
// is invalid.
func TestSubmitValidationBlocksRequest(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	w.OpenCreate(context.Background())

	w.Submit(context.Background())

	if errs := w.Errors(); errs.Empty() {
		t.Fatalf("expected validation errors")
	}
	if !w.IsOpen() {
		t.Fatalf("wizard must stay open on validation failure")
	}
}

// TestSubmitValidatesEditedAd ensures the creative rules also run when the
// ad was written straight into the draft instead of going through
// attachment, so a broken creative never reaches the server.
func TestSubmitValidatesEditedAd(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	w.OpenCreate(context.Background())
	fillValidDraft(w)

	w.Edit(func(d *domain.CampaignDraft) {
		d.Ad = &domain.AdDraft{
			Headline:    strings.Repeat("x", 60),
			TextContent: "ok",
			ImageURL:    "not a url",
			SocialLinks: []domain.SocialLink{{Platform: domain.PlatformInstagram, URL: "https://evil.com/x"}},
		}
	})

	w.Submit(context.Background())

	errs := w.Errors()
	if errs[FieldAdHeadline] != "Headline must be 25 characters or less." {
		t.Fatalf("expected headline length error, got %v", errs)
	}
	if errs[FieldAdImage] != "Please enter a valid image or video URL." {
		t.Fatalf("expected image URL error, got %v", errs)
	}
	if errs[FieldSocialLinks] == "" {
		t.Fatalf("expected social link domain error, got %v", errs)
	}
	if !w.IsOpen() {
		t.Fatalf("wizard must stay open when the creative is invalid")
	}
}

// TestSubmitCreateSuccess drives a valid draft through creation: the
// campaign is posted, the wizard closes and the derived tabs reload.
func TestSubmitCreateSuccess(t *testing.T) {
	w, gw, notifier, tabs := newTestWizard(t)

	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Twice()
	tabs.SwitchTab(context.Background(), domain.TabCampaigns)

	gw.EXPECT().CreateCampaign(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, p port.CampaignPayload) (*domain.Campaign, error) {
			if p.Name != "Coffee Launch" || p.InitialBudget != 1000 || p.CPM != 60 {
				t.Fatalf("unexpected payload: %+v", p)
			}
			if len(p.TargetingLanguages) != 1 || p.TargetingLanguages[0] != 1 {
				t.Fatalf("unexpected languages: %v", p.TargetingLanguages)
			}
			if p.AdContent == nil || p.AdContent.Headline != "Fresh roast" {
				t.Fatalf("ad content missing from payload")
			}
			return &domain.Campaign{ID: "new"}, nil
		}).Once()
	notifier.EXPECT().Success("Campaign created successfully!").Return().Once()

	w.OpenCreate(context.Background())
	fillValidDraft(w)
	w.Submit(context.Background())

	if w.IsOpen() {
		t.Fatalf("wizard should close after successful submit")
	}
	if w.Draft().Name != "" {
		t.Fatalf("draft should reset after submit")
	}
}

// TestSubmitEditUsesUpdate ensures edits go through the update endpoint and
// the active-campaign CPM floor blocks lowering.
func TestSubmitEditUsesUpdate(t *testing.T) {
	w, gw, notifier, tabs := newTestWizard(t)

	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Twice()
	tabs.SwitchTab(context.Background(), domain.TabCampaigns)

	w.OpenCreate(context.Background())
	fillValidDraft(w)
	w.Edit(func(d *domain.CampaignDraft) {
		d.CampaignID = "c9"
		d.OriginalStatus = domain.StatusActive
		d.OriginalCPM = 70
		d.CPM = "65"
	})

	w.Submit(context.Background())
	if errs := w.Errors(); errs[FieldCPM] != "CPM cannot be lowered on an active campaign (current: 70.00 ETB)." {
		t.Fatalf("expected CPM floor error, got %v", errs)
	}

	gw.EXPECT().UpdateCampaign(mock.Anything, "c9", mock.Anything).
		Return(&domain.Campaign{ID: "c9"}, nil).Once()
	notifier.EXPECT().Success("Campaign updated successfully!").Return().Once()

	w.Edit(func(d *domain.CampaignDraft) { d.CPM = "75" })
	w.Submit(context.Background())

	if w.IsOpen() {
		t.Fatalf("wizard should close after successful edit")
	}
}

// TestSubmitRoutesServerErrors checks where failed submissions land: field
// messages on their slots, "detail" as a toast.
func TestSubmitRoutesServerErrors(t *testing.T) {
	w, gw, notifier, _ := newTestWizard(t)
	w.OpenCreate(context.Background())
	fillValidDraft(w)

	gw.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, bodyErr{code: 400, body: `{"cpm": ["Ensure this value is greater than or equal to 1."]}`}).Once()
	w.Submit(context.Background())
	if errs := w.Errors(); errs["cpm"] != "Ensure this value is greater than or equal to 1." {
		t.Fatalf("expected field error routed inline, got %v", errs)
	}
	if !w.IsOpen() {
		t.Fatalf("wizard must stay open on server rejection")
	}

	gw.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, bodyErr{code: 400, body: `{"detail": "Something broke."}`}).Once()
	notifier.EXPECT().Error("Something broke.").Return().Once()
	w.Submit(context.Background())

	gw.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()
	notifier.EXPECT().Error("Failed to submit campaign: connection refused").Return().Once()
	w.Submit(context.Background())
}

// TestSubmitNonFieldErrorLandsOnName ensures form-wide messages surface on
// the name slot.
func TestSubmitNonFieldErrorLandsOnName(t *testing.T) {
	w, gw, _, _ := newTestWizard(t)
	w.OpenCreate(context.Background())
	fillValidDraft(w)

	gw.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		Return(nil, bodyErr{code: 400, body: `{"non_field_errors": ["Budget exceeds your balance."]}`}).Once()
	w.Submit(context.Background())

	if errs := w.Errors(); errs[FieldName] != "Budget exceeds your balance." {
		t.Fatalf("expected non-field error on the name slot, got %v", errs)
	}
}
