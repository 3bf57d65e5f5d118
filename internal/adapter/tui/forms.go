package tui

import (
	"fmt"
	"strconv"
	"strings"

	"sonic-miniapp/internal/adapter/usecase"
	"sonic-miniapp/internal/core/domain"
)

func checkbox(on bool) string {
	if on {
		return "[x] "
	}
	return "[ ] "
}

// wizardForm builds the form for the wizard's current step. Step one edits
// the campaign basics and targeting; step two the ad creative.
func (m *Model) wizardForm() *form {
	w := m.deps.Wizard
	draft := w.Draft()
	if draft.Step == domain.StepReview {
		return m.wizardReviewForm()
	}

	languages, categories := w.Catalogs()
	fields := []formField{
		{
			key: usecase.FieldName, label: "Name",
			get: func() string { return w.Draft().Name },
			set: func(v string) { w.Edit(func(d *domain.CampaignDraft) { d.Name = v }) },
		},
		{
			key: usecase.FieldObjective, label: "Objective",
			get: func() string { return w.Draft().Objective },
			toggle: func() {
				w.Edit(func(d *domain.CampaignDraft) {
					d.Objective = nextIn(domain.AllObjectives(), d.Objective)
				})
			},
		},
		{
			key: usecase.FieldBudget, label: "Budget (ETB)",
			get: func() string { return w.Draft().Budget },
			set: func(v string) { w.Edit(func(d *domain.CampaignDraft) { d.Budget = v }) },
		},
		{
			key: usecase.FieldCPM, label: "CPM (ETB)",
			get: func() string { return w.Draft().CPM },
			set: func(v string) { w.Edit(func(d *domain.CampaignDraft) { d.CPM = v }) },
		},
		{
			key: usecase.FieldFrequencyCap, label: "Frequency cap",
			get: func() string { return w.Draft().FrequencyCap },
			set: func(v string) { w.Edit(func(d *domain.CampaignDraft) { d.FrequencyCap = v }) },
		},
		{
			key: usecase.FieldEndDate, label: "End date (YYYY-MM-DD)",
			get: func() string { return w.Draft().EndDate },
			set: func(v string) { w.Edit(func(d *domain.CampaignDraft) { d.EndDate = v }) },
		},
	}
	for i, lang := range languages {
		id := lang.ID
		key := ""
		if i == 0 {
			key = usecase.FieldLanguages
		}
		fields = append(fields, formField{
			key: key, label: "Language " + lang.Name,
			get: func() string { return checkbox(w.Draft().Languages[id]) },
			toggle: func() {
				w.Edit(func(d *domain.CampaignDraft) { d.Languages[id] = !d.Languages[id] })
			},
		})
	}
	for i, cat := range categories {
		id := cat.ID
		key := ""
		if i == 0 {
			key = usecase.FieldCategories
		}
		fields = append(fields, formField{
			key: key, label: "Category " + cat.Name,
			get: func() string { return checkbox(w.Draft().Categories[id]) },
			toggle: func() {
				w.Edit(func(d *domain.CampaignDraft) { d.Categories[id] = !d.Categories[id] })
			},
		})
	}

	title := "New Campaign"
	if draft.Editing() {
		title = "Edit Campaign"
	}
	return newForm(title, fields)
}

// wizardReviewForm edits the ad creative on the review step. Ad fields are
// locked once the campaign has run, mirroring the submit-time rules.
func (m *Model) wizardReviewForm() *form {
	w := m.deps.Wizard
	editAd := func(fn func(ad *domain.AdDraft)) {
		w.Edit(func(d *domain.CampaignDraft) {
			if d.Ad == nil {
				d.Ad = &domain.AdDraft{}
			}
			fn(d.Ad)
		})
	}
	adValue := func(fn func(ad domain.AdDraft) string) func() string {
		return func() string {
			if ad := w.Draft().Ad; ad != nil {
				return fn(*ad)
			}
			return ""
		}
	}

	fields := []formField{
		{
			key: usecase.FieldAdHeadline, label: "Headline",
			get: adValue(func(ad domain.AdDraft) string { return ad.Headline }),
			set: func(v string) { editAd(func(ad *domain.AdDraft) { ad.Headline = v }) },
		},
		{
			key: usecase.FieldAdText, label: "Ad text",
			get: adValue(func(ad domain.AdDraft) string { return ad.TextContent }),
			set: func(v string) { editAd(func(ad *domain.AdDraft) { ad.TextContent = v }) },
		},
		{
			key: usecase.FieldAdBrandName, label: "Brand name",
			get: adValue(func(ad domain.AdDraft) string { return ad.BrandName }),
			set: func(v string) { editAd(func(ad *domain.AdDraft) { ad.BrandName = v }) },
		},
		{
			key: usecase.FieldAdImage, label: "Image URL",
			get: adValue(func(ad domain.AdDraft) string { return ad.ImageURL }),
			set: func(v string) { editAd(func(ad *domain.AdDraft) { ad.ImageURL = v }) },
		},
		{
			label: "Image file (path)",
			get:   func() string { return m.adFilePath },
			set:   func(v string) { m.adFilePath = v },
		},
	}
	for i := 0; i < domain.MaxSocialLinks; i++ {
		idx := i
		key := ""
		if i == 0 {
			key = usecase.FieldSocialLinks
		}
		fields = append(fields,
			formField{
				key: key, label: fmt.Sprintf("Link %d platform", idx+1),
				get: adValue(func(ad domain.AdDraft) string {
					if idx < len(ad.SocialLinks) && ad.SocialLinks[idx].Platform != "" {
						return string(ad.SocialLinks[idx].Platform)
					}
					return "(none)"
				}),
				toggle: func() { editAd(func(ad *domain.AdDraft) { cycleLinkPlatform(ad, idx) }) },
			},
			formField{
				label: fmt.Sprintf("Link %d URL", idx+1),
				get: adValue(func(ad domain.AdDraft) string {
					if idx < len(ad.SocialLinks) {
						return ad.SocialLinks[idx].URL
					}
					return ""
				}),
				set: func(v string) { editAd(func(ad *domain.AdDraft) { setLinkURL(ad, idx, v) }) },
			})
	}
	return newForm("Review & Ad Content", fields)
}

// growLinks pads the slots up to idx so a later slot can be edited first.
func growLinks(ad *domain.AdDraft, idx int) {
	for len(ad.SocialLinks) <= idx {
		ad.SocialLinks = append(ad.SocialLinks, domain.SocialLink{})
	}
}

// cycleLinkPlatform steps the slot through the platforms and back to empty.
func cycleLinkPlatform(ad *domain.AdDraft, idx int) {
	growLinks(ad, idx)
	all := domain.AllPlatforms()
	cur := ad.SocialLinks[idx].Platform
	next := all[0]
	for i, p := range all {
		if p == cur {
			if i == len(all)-1 {
				next = ""
			} else {
				next = all[i+1]
			}
			break
		}
	}
	ad.SocialLinks[idx].Platform = next
}

func setLinkURL(ad *domain.AdDraft, idx int, url string) {
	growLinks(ad, idx)
	ad.SocialLinks[idx].URL = url
}

// pruneEmptyLinks drops slots the review form grew but left untouched.
func pruneEmptyLinks(ad *domain.AdDraft) {
	kept := ad.SocialLinks[:0]
	for _, l := range ad.SocialLinks {
		if l.Platform != "" || strings.TrimSpace(l.URL) != "" {
			kept = append(kept, l)
		}
	}
	ad.SocialLinks = kept
}

// topupForm edits the deposit entry fields.
func (m *Model) topupForm() *form {
	t := m.deps.TopUp
	fields := []formField{
		{
			key: "amount", label: "Amount (ETB)",
			get: func() string { amount, _, _ := t.Form(); return amount },
			set: t.SetAmount,
		},
		{
			key: "mobile", label: "Mobile number",
			get: func() string { _, mobile, _ := t.Form(); return mobile },
			set: t.SetMobile,
		},
		{
			key: "payment_type", label: "Pay with (ctrl+k cycles)",
			get: func() string { _, _, kind := t.Form(); return kind.Title() },
			toggle: func() {
				_, _, kind := t.Form()
				t.SetKind(nextKind(kind))
			},
		},
	}
	return newForm("Top Up Balance", fields)
}

// channelForm edits the connect-channel fields.
func (m *Model) channelForm() *form {
	c := m.deps.Channels
	fields := []formField{
		{
			key: usecase.FieldChannelLink, label: "Channel link",
			get: func() string { return c.Draft().Link },
			set: c.SetLink,
		},
		{
			key: usecase.FieldChannelMinCPM, label: "Minimum CPM (ETB)",
			get: func() string { return c.Draft().MinCPM },
			set: c.SetMinCPM,
		},
	}
	languages, categories := m.catalogOptions()
	for i, lang := range languages {
		name := lang
		key := ""
		if i == 0 {
			key = usecase.FieldChannelLanguage
		}
		fields = append(fields, formField{
			key: key, label: "Language " + name,
			get:    func() string { return checkbox(c.Draft().Languages[name]) },
			toggle: func() { c.ToggleLanguage(name) },
		})
	}
	for i, cat := range categories {
		id := cat
		key := ""
		if i == 0 {
			key = usecase.FieldChannelCategory
		}
		fields = append(fields, formField{
			key: key, label: "Category " + id,
			get:    func() string { return checkbox(c.Draft().Categories[id]) },
			toggle: func() { c.ToggleCategory(id) },
		})
	}
	return newForm("Connect Channel", fields)
}

// catalogOptions returns the channel selection values. Channel targeting
// uses display names for languages and slugs for categories.
func (m *Model) catalogOptions() (languages, categories []string) {
	langs, cats := m.deps.Wizard.Catalogs()
	for _, l := range langs {
		languages = append(languages, l.Name)
	}
	for _, c := range cats {
		categories = append(categories, c.ID)
	}
	if len(languages) == 0 {
		languages = []string{"Amharic", "English", "Oromo", "Tigrinya"}
	}
	if len(categories) == 0 {
		categories = []string{"news", "tech", "sport", "entertainment"}
	}
	return languages, categories
}

// payoutForm edits the add-payout-method fields.
func (m *Model) payoutForm() *form {
	p := m.deps.Payouts
	choices := p.Choices()
	choiceIdx := 0
	if len(choices) > 0 {
		p.SelectChoice(choices[choiceIdx].ID)
	}
	isDefault := false
	account, phone := "", ""

	fields := []formField{
		{
			key: usecase.FieldMethodChoice, label: "Provider",
			get: func() string {
				if len(choices) == 0 {
					return "(none)"
				}
				c := choices[choiceIdx]
				return c.ShortName + " (" + c.Category + ")"
			},
			toggle: func() {
				if len(choices) == 0 {
					return
				}
				choiceIdx = (choiceIdx + 1) % len(choices)
				p.SelectChoice(choices[choiceIdx].ID)
			},
		},
		{
			key: usecase.FieldAccountNumber, label: "Account number",
			get: func() string { return account },
			set: func(v string) { account = v; p.SetAccountNumber(v) },
		},
		{
			key: usecase.FieldPhoneNumber, label: "Phone number",
			get: func() string { return phone },
			set: func(v string) { phone = v; p.SetPhoneNumber(v) },
		},
		{
			key: "is_default", label: "Set as default",
			get: func() string { return checkbox(isDefault) },
			toggle: func() {
				isDefault = !isDefault
				p.SetDefault(isDefault)
			},
		},
	}
	return newForm("Add Payment Method", fields)
}

// withdrawForm edits the withdrawal amount.
func (m *Model) withdrawForm() *form {
	m.withdrawAmount = ""
	fields := []formField{
		{
			key: "amount", label: "Amount (ETB, min " + strconv.Itoa(int(domain.MinWithdrawal)) + ")",
			get: func() string { return m.withdrawAmount },
			set: func(v string) { m.withdrawAmount = v },
		},
	}
	return newForm("Request Withdrawal", fields)
}
