package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Inline error slots used by the wizard form.
const (
	FieldName         = "name"
	FieldObjective    = "objective"
	FieldBudget       = "budget"
	FieldCPM          = "cpm"
	FieldFrequencyCap = "frequency_cap"
	FieldEndDate      = "end_date"
	FieldLanguages    = "languages"
	FieldCategories   = "categories"
	FieldAdHeadline   = "ad_headline"
	FieldAdText       = "ad_text"
	FieldAdBrandName  = "ad_brand_name"
	FieldAdImage      = "ad_image"
	FieldSocialLinks  = "social_links"
)

// Wizard drives the two-step campaign form. Step one collects the basics
// and targeting, step two the ad creative and review. Validation is
// exhaustive: every invalid field is reported at once, and nothing is sent
// until the full set passes. At most one submission is in flight at a
// time.
type Wizard struct {
	gw     port.Gateway
	tabs   *Tabs
	notify port.Notifier
	logger *slog.Logger
	now    func() time.Time

	mu         sync.Mutex
	open       bool
	draft      domain.CampaignDraft
	languages  []domain.Language
	categories []domain.Category
	errs       domain.FieldErrors
	submitting bool
}

// NewWizard creates a closed wizard.
func NewWizard(gw port.Gateway, tabs *Tabs, notify port.Notifier, logger *slog.Logger) *Wizard {
	return &Wizard{
		gw:     gw,
		tabs:   tabs,
		notify: notify,
		logger: logger,
		now:    time.Now,
		draft:  domain.NewCampaignDraft(),
	}
}

// OpenCreate resets the draft and opens the wizard for a new campaign. The
// language and category catalogs are fetched up front; a catalog failure
// is toasted but still leaves the form usable.
func (w *Wizard) OpenCreate(ctx context.Context) {
	w.mu.Lock()
	w.draft = domain.NewCampaignDraft()
	w.errs = nil
	w.open = true
	w.mu.Unlock()
	w.loadCatalogs(ctx)
}

// OpenEdit fetches the campaign and opens the wizard pre-filled with it.
// The fetched status and CPM are snapshotted for the edit-mode rules.
func (w *Wizard) OpenEdit(ctx context.Context, id string) {
	campaign, err := w.gw.GetCampaign(ctx, id)
	if err != nil {
		w.notify.Error("Failed to fetch campaign: " + err.Error())
		return
	}

	d := domain.NewCampaignDraft()
	d.CampaignID = campaign.ID
	d.Name = campaign.Name
	d.Objective = campaign.Objective
	d.Budget = formatNumber(campaign.InitialBudget)
	d.CPM = formatNumber(campaign.CPM)
	freqCap := campaign.ViewsFrequencyCap
	if freqCap < 1 {
		freqCap = 1
	}
	d.FrequencyCap = strconv.Itoa(freqCap)
	d.StartDate = campaign.StartDate
	d.EndDate = campaign.EndDate
	for _, id := range campaign.TargetingLanguages {
		d.Languages[id] = true
	}
	for _, id := range campaign.TargetingCategories {
		d.Categories[id] = true
	}
	if ad := campaign.AdContent; ad != nil {
		d.Ad = &domain.AdDraft{
			Headline:    ad.Headline,
			TextContent: ad.TextContent,
			BrandName:   ad.BrandName,
			ImageURL:    ad.ImageURL,
			SocialLinks: append([]domain.SocialLink(nil), ad.SocialLinks...),
		}
	}
	d.OriginalStatus = campaign.Status
	d.OriginalCPM = campaign.CPM

	w.mu.Lock()
	w.draft = d
	w.errs = nil
	w.open = true
	w.mu.Unlock()
	w.loadCatalogs(ctx)
}

func (w *Wizard) loadCatalogs(ctx context.Context) {
	var (
		wg       sync.WaitGroup
		langs    []domain.Language
		cats     []domain.Category
		langErr  error
		catErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		langs, langErr = w.gw.Languages(ctx)
	}()
	go func() {
		defer wg.Done()
		cats, catErr = w.gw.Categories(ctx)
	}()
	wg.Wait()
	if langErr != nil || catErr != nil {
		err := langErr
		if err == nil {
			err = catErr
		}
		w.logger.Error("catalog load failed", "err", err)
		w.notify.Error("Failed to load languages or categories: " + err.Error())
	}
	w.mu.Lock()
	w.languages = langs
	w.categories = cats
	w.mu.Unlock()
}

// Close discards the draft and closes the wizard.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = false
	w.draft = domain.NewCampaignDraft()
	w.errs = nil
}

// IsOpen reports whether the wizard is visible.
func (w *Wizard) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Submitting reports whether a submission is in flight.
func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// Draft returns a copy of the working draft.
func (w *Wizard) Draft() domain.CampaignDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneDraft(w.draft)
}

// Errors returns a copy of the current inline errors.
func (w *Wizard) Errors() domain.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := domain.FieldErrors{}
	out.Merge(w.errs)
	return out
}

// Catalogs returns the language and category options.
func (w *Wizard) Catalogs() ([]domain.Language, []domain.Category) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.languages, w.categories
}

// Edit mutates the draft under the wizard's lock.
func (w *Wizard) Edit(fn func(d *domain.CampaignDraft)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.draft)
}

// Next validates step one and advances to the review step when every
// field passes. The errors are returned for immediate display.
func (w *Wizard) Next() domain.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	errs := w.validateBasics(w.draft)
	w.errs = errs
	if errs.Empty() && w.draft.Step < domain.StepReview {
		w.draft.Step = domain.StepReview
	}
	return errs
}

// Back returns to the basics step, keeping all input.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Step = domain.StepBasics
}

// AttachAd validates the creative and stores it on the draft when clean.
// Validation reports every failing field at once.
func (w *Wizard) AttachAd(ad domain.AdDraft) domain.FieldErrors {
	errs := validateAd(ad)
	if !errs.Empty() {
		w.mu.Lock()
		w.errs = errs
		w.mu.Unlock()
		return errs
	}
	if ad.File != nil {
		// a fresh upload replaces any previous image URL
		ad.ImageURL = ""
	}
	w.mu.Lock()
	w.draft.Ad = &ad
	w.errs = nil
	w.mu.Unlock()
	return domain.FieldErrors{}
}

// RemoveAd detaches the creative from the draft.
func (w *Wizard) RemoveAd() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Ad = nil
}

// CPMHint returns the live warning shown under the CPM input while
// editing an active campaign, empty when the entered value is acceptable.
func (w *Wizard) CPMHint() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft
	if d.OriginalStatus != domain.StatusActive || d.OriginalCPM <= 0 {
		return ""
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(d.CPM), 64)
	if err != nil || val >= d.OriginalCPM {
		return ""
	}
	return fmt.Sprintf("Cannot go below %.2f ETB for active campaigns", d.OriginalCPM)
}

// Submit runs the full validation set and sends the campaign. Only one
// submission runs at a time; re-entrant calls return immediately. On
// success the wizard closes, the draft resets and every campaign-derived
// tab reloads.
func (w *Wizard) Submit(ctx context.Context) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return
	}
	w.submitting = true
	d := cloneDraft(w.draft)
	w.errs = nil
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
	}()

	errs := w.validateSubmit(d)
	if !errs.Empty() {
		w.mu.Lock()
		w.errs = errs
		w.mu.Unlock()
		return
	}

	payload := buildPayload(d)
	var err error
	if d.Editing() {
		_, err = w.gw.UpdateCampaign(ctx, d.CampaignID, payload)
	} else {
		_, err = w.gw.CreateCampaign(ctx, payload)
	}
	if err != nil {
		w.routeServerError(err)
		return
	}

	if d.Editing() {
		w.notify.Success("Campaign updated successfully!")
	} else {
		w.notify.Success("Campaign created successfully!")
	}
	w.Close()
	w.tabs.ReloadAfterMutation(ctx)
}

// validateBasics checks the step-one fields, collecting every failure.
func (w *Wizard) validateBasics(d domain.CampaignDraft) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs.Add(FieldName, "Please enter a campaign name.")
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(d.Budget), 64); err != nil || v <= 0 {
		errs.Add(FieldBudget, "Please enter a valid budget amount.")
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(d.CPM), 64); err != nil || v <= 0 {
		errs.Add(FieldCPM, "Please enter a valid CPM value.")
	}
	if len(d.LanguageIDs()) == 0 {
		errs.Add(FieldLanguages, "Please select at least one language.")
	}
	if len(d.CategoryIDs()) == 0 {
		errs.Add(FieldCategories, "Please select at least one category.")
	}
	if d.EndDate != "" {
		end := domain.ParseDay(d.EndDate)
		today := w.today()
		if end.Before(today) {
			errs.Add(FieldEndDate, "End date must be today or later.")
		}
		if d.StartDate != "" && end.Before(domain.ParseDay(d.StartDate)) {
			errs.Add(FieldEndDate, "End date must be on or after start date.")
		}
	}
	return errs
}

// validateSubmit checks everything validateBasics does plus the fields
// only required at submission time.
func (w *Wizard) validateSubmit(d domain.CampaignDraft) domain.FieldErrors {
	errs := w.validateBasics(d)
	if d.Objective == "" {
		errs.Add(FieldObjective, "Please select a campaign objective.")
	}
	if v, err := strconv.Atoi(strings.TrimSpace(d.FrequencyCap)); err != nil || v < 1 {
		errs.Add(FieldFrequencyCap, "Please enter a valid frequency cap.")
	}
	if !d.Editing() && d.Ad == nil {
		errs.Add(FieldAdHeadline, "Please add ad content.")
	}
	if d.Ad != nil && d.AdEditable() {
		errs.Merge(validateAd(*d.Ad))
	}
	if d.Editing() && d.OriginalStatus == domain.StatusActive {
		if v, err := strconv.ParseFloat(strings.TrimSpace(d.CPM), 64); err == nil && v < d.OriginalCPM {
			errs.Add(FieldCPM, fmt.Sprintf("CPM cannot be lowered on an active campaign (current: %.2f ETB).", d.OriginalCPM))
		}
	}
	return errs
}

// validateAd checks the creative, collecting every failure.
func validateAd(ad domain.AdDraft) domain.FieldErrors {
	errs := domain.FieldErrors{}
	headline := strings.TrimSpace(ad.Headline)
	if headline == "" {
		errs.Add(FieldAdHeadline, "Please enter a headline for your ad.")
	} else if len([]rune(headline)) > domain.MaxHeadlineLen {
		errs.Add(FieldAdHeadline, "Headline must be 25 characters or less.")
	}
	text := strings.TrimSpace(ad.TextContent)
	if text == "" {
		errs.Add(FieldAdText, "Please enter text content for your ad.")
	} else if len([]rune(text)) > domain.MaxAdTextLen {
		errs.Add(FieldAdText, "Text content must be 200 characters or less.")
	}
	imgURL := strings.TrimSpace(ad.ImageURL)
	if imgURL == "" && ad.File == nil {
		errs.Add(FieldAdImage, "Please provide an image URL or upload a file.")
	} else if imgURL != "" && !validURL(imgURL) {
		errs.Add(FieldAdImage, "Please enter a valid image or video URL.")
	}
	if brand := strings.TrimSpace(ad.BrandName); len([]rune(brand)) > domain.MaxBrandNameLen {
		errs.Add(FieldAdBrandName, "Brand name must be 50 characters or less.")
	}
	if len(ad.SocialLinks) > domain.MaxSocialLinks {
		errs.Add(FieldSocialLinks, "Maximum of 3 social links allowed.")
	}
	for i, link := range ad.SocialLinks {
		if !link.Platform.Valid() {
			errs.Add(FieldSocialLinks, fmt.Sprintf("Please select a platform for social link %d.", i+1))
			continue
		}
		if err := link.CheckURL(); err != nil {
			errs.Add(FieldSocialLinks, err.Error())
		}
	}
	return errs
}

func validURL(s string) bool {
	l := domain.SocialLink{Platform: domain.PlatformOther, URL: s}
	return l.CheckURL() == nil
}

// buildPayload converts the validated draft into the gateway request. Ad
// content is attached for new campaigns and for edits still in an
// editable status; a retained image URL rides along unless a fresh file
// replaces it.
func buildPayload(d domain.CampaignDraft) port.CampaignPayload {
	budget, _ := strconv.ParseFloat(strings.TrimSpace(d.Budget), 64)
	cpm, _ := strconv.ParseFloat(strings.TrimSpace(d.CPM), 64)
	freqCap, _ := strconv.Atoi(strings.TrimSpace(d.FrequencyCap))
	p := port.CampaignPayload{
		Name:                strings.TrimSpace(d.Name),
		Objective:           d.Objective,
		InitialBudget:       budget,
		CPM:                 cpm,
		ViewsFrequencyCap:   freqCap,
		TargetingLanguages:  d.LanguageIDs(),
		TargetingCategories: d.CategoryIDs(),
		TargetingRegions:    map[string]string{"ET": "Ethiopia"},
	}
	if d.StartDate != "" {
		s := d.StartDate
		p.StartDate = &s
	}
	if d.EndDate != "" {
		e := d.EndDate
		p.EndDate = &e
	}
	if d.Ad != nil && d.AdEditable() {
		imgURL := d.Ad.ImageURL
		if d.Ad.File != nil {
			imgURL = ""
		}
		p.AdContent = &port.AdContentPayload{
			Headline:    d.Ad.Headline,
			TextContent: d.Ad.TextContent,
			BrandName:   d.Ad.BrandName,
			ImageURL:    imgURL,
			SocialLinks: d.Ad.SocialLinks,
		}
		p.Media = d.Ad.File
	}
	return p
}

// routeServerError maps a failed submission onto inline slots or a toast:
// form-wide messages land on the name field, ad content messages on the
// headline, "detail" goes straight to a toast, per-field messages to
// their slots, and anything unstructured becomes a submit-failed toast.
func (w *Wizard) routeServerError(err error) {
	apiErr, ok := port.ParseAPIError(err)
	if !ok {
		w.notify.Error("Failed to submit campaign: " + err.Error())
		return
	}
	errs := domain.FieldErrors{}
	switch {
	case len(apiErr.NonField) > 0:
		errs.Add(FieldName, apiErr.NonField[0])
	case len(apiErr.AdContent) > 0:
		errs.Add(FieldAdHeadline, apiErr.AdContent[0])
	case apiErr.Detail != "":
		w.notify.Error(apiErr.Detail)
		return
	case len(apiErr.Fields) > 0:
		for field, msgs := range apiErr.Fields {
			if len(msgs) > 0 {
				errs.Add(field, msgs[0])
			}
		}
	default:
		w.notify.Error("Failed to submit campaign: " + err.Error())
		return
	}
	w.mu.Lock()
	w.errs = errs
	w.mu.Unlock()
}

func (w *Wizard) today() time.Time {
	t := w.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func cloneDraft(d domain.CampaignDraft) domain.CampaignDraft {
	out := d
	out.Languages = make(map[int]bool, len(d.Languages))
	for k, v := range d.Languages {
		out.Languages[k] = v
	}
	out.Categories = make(map[string]bool, len(d.Categories))
	for k, v := range d.Categories {
		out.Categories[k] = v
	}
	if d.Ad != nil {
		ad := *d.Ad
		ad.SocialLinks = append([]domain.SocialLink(nil), d.Ad.SocialLinks...)
		out.Ad = &ad
	}
	return out
}

// formatNumber renders a fetched numeric field back into form input text.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
