package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

func (s *Server) findCampaign(id string) *domain.Campaign {
	for _, c := range s.campaigns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Campaign, len(s.campaigns))
	for i, c := range s.campaigns {
		out[i] = *c
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCampaign(chi.URLParam(r, "id"))
	if c == nil {
		s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	s.writeJSON(w, http.StatusOK, *c)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeCampaignRequest(r)
	if err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	if errs := validateCampaignPayload(payload); len(errs) > 0 {
		s.errorJSON(w, http.StatusBadRequest, errs)
		return
	}

	now := time.Now()
	c := &domain.Campaign{
		ID:        uuid.NewString(),
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCampaignPayload(c, payload)

	s.mu.Lock()
	s.campaigns = append(s.campaigns, c)
	out := *c
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeCampaignRequest(r)
	if err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	if errs := validateCampaignPayload(payload); len(errs) > 0 {
		s.errorJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCampaign(chi.URLParam(r, "id"))
	if c == nil {
		s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	if c.Status == domain.StatusActive && payload.CPM < c.CPM {
		s.errorJSON(w, http.StatusBadRequest, map[string][]string{
			"cpm": {"CPM cannot be lowered on an active campaign."},
		})
		return
	}
	applyCampaignPayload(c, payload)
	c.UpdatedAt = time.Now()
	s.writeJSON(w, http.StatusOK, *c)
}

func (s *Server) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.campaigns {
		if c.ID == id {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

// handleSubmitCampaign moves a draft into review, moving the budget into
// escrow. Submission fails when no verified channel covers any targeted
// category, mirroring the backend's eligibility check.
func (s *Server) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCampaign(chi.URLParam(r, "id"))
	if c == nil {
		s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		return
	}
	if s.balance.Available < c.InitialBudget {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "Insufficient balance."})
		return
	}
	if !s.hasEligibleChannel(c) {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{
			"error": "No eligible channels found for campaign " + c.Name,
		})
		return
	}
	s.balance.Available -= c.InitialBudget
	s.balance.Escrow += c.InitialBudget
	s.balance.Transactions = append([]domain.Transaction{{
		ID: uuid.NewString(), Type: "debit", Amount: c.InitialBudget,
		Reference: "ESC-" + uuid.NewString()[:8], Status: "completed",
		Date: time.Now().Format("2006-01-02"),
	}}, s.balance.Transactions...)
	c.Status = domain.StatusInReview
	c.UpdatedAt = time.Now()
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Campaign submitted for review."})
}

func (s *Server) hasEligibleChannel(c *domain.Campaign) bool {
	for _, ch := range s.channels {
		if ch.Status != "verified" {
			continue
		}
		for _, want := range c.TargetingCategories {
			for _, have := range ch.Categories {
				if want == have {
					return true
				}
			}
		}
	}
	return false
}

func (s *Server) handleTransition(target domain.CampaignStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c := s.findCampaign(chi.URLParam(r, "id"))
		if c == nil {
			s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		c.Status = target
		c.UpdatedAt = time.Now()
		s.writeJSON(w, http.StatusOK, *c)
	}
}

// decodeCampaignRequest accepts either the JSON or the multipart form
// encoding of a campaign write.
func decodeCampaignRequest(r *http.Request) (*port.CampaignPayload, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		return decodeCampaignForm(r)
	}
	var p port.CampaignPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// decodeCampaignForm parses the flattened multipart encoding: scalar
// fields by name, repeated targeting fields, a JSON-encoded regions map
// and the dotted ad_content_write keys.
func decodeCampaignForm(r *http.Request) (*port.CampaignPayload, error) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		return nil, err
	}
	form := r.MultipartForm

	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	p := &port.CampaignPayload{
		Name:      value("name"),
		Objective: value("objective"),
	}
	p.InitialBudget, _ = strconv.ParseFloat(value("initial_budget"), 64)
	p.CPM, _ = strconv.ParseFloat(value("cpm"), 64)
	p.ViewsFrequencyCap, _ = strconv.Atoi(value("views_frequency_cap"))
	if v := value("start_date"); v != "" {
		p.StartDate = &v
	}
	if v := value("end_date"); v != "" {
		p.EndDate = &v
	}
	for _, v := range form.Value["targeting_languages"] {
		id, err := strconv.Atoi(v)
		if err == nil {
			p.TargetingLanguages = append(p.TargetingLanguages, id)
		}
	}
	p.TargetingCategories = form.Value["targeting_categories"]
	if v := value("targeting_regions"); v != "" {
		_ = json.Unmarshal([]byte(v), &p.TargetingRegions)
	}

	ad := &port.AdContentPayload{
		Headline:    value("ad_content_write.headline"),
		TextContent: value("ad_content_write.text_content"),
		BrandName:   value("ad_content_write.brand_name"),
		ImageURL:    value("ad_content_write.img_url"),
	}
	for i := 0; ; i++ {
		prefix := "ad_content_write.social_links." + strconv.Itoa(i) + "."
		platform := value(prefix + "platform")
		if platform == "" {
			break
		}
		ad.SocialLinks = append(ad.SocialLinks, domain.SocialLink{
			Platform: domain.Platform(platform),
			URL:      value(prefix + "url"),
		})
	}
	if files := form.File["ad_content_write.media_file"]; len(files) > 0 {
		ad.ImageURL = "/media/" + files[0].Filename
	}
	if ad.Headline != "" || ad.TextContent != "" || ad.BrandName != "" {
		p.AdContent = ad
	}
	return p, nil
}

// validateCampaignPayload applies the serializer-level checks the real
// backend performs, returning per-field message lists.
func validateCampaignPayload(p *port.CampaignPayload) map[string][]string {
	errs := map[string][]string{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = []string{"This field may not be blank."}
	}
	if p.InitialBudget <= 0 {
		errs["initial_budget"] = []string{"Ensure this value is greater than 0."}
	}
	if p.CPM <= 0 {
		errs["cpm"] = []string{"Ensure this value is greater than 0."}
	}
	if p.AdContent != nil && len(p.AdContent.Headline) > domain.MaxHeadlineLen {
		errs["ad_content"] = []string{"Headline is too long."}
	}
	return errs
}

func applyCampaignPayload(c *domain.Campaign, p *port.CampaignPayload) {
	c.Name = p.Name
	c.Objective = p.Objective
	c.InitialBudget = p.InitialBudget
	c.CPM = p.CPM
	c.ViewsFrequencyCap = p.ViewsFrequencyCap
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	c.TargetingLanguages = p.TargetingLanguages
	c.TargetingCategories = p.TargetingCategories
	c.TargetingRegions = p.TargetingRegions
	if p.AdContent != nil {
		c.AdContent = &domain.AdContent{
			Headline:    p.AdContent.Headline,
			TextContent: p.AdContent.TextContent,
			BrandName:   p.AdContent.BrandName,
			ImageURL:    p.AdContent.ImageURL,
			SocialLinks: p.AdContent.SocialLinks,
		}
	}
}

func (s *Server) handleBalanceSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := s.balance
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDepositRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      float64 `json:"amount"`
		Mobile      string  `json:"mobile"`
		PaymentType string  `json:"payment_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}
	if req.Amount <= 0 || req.Mobile == "" {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid amount or mobile number."})
		return
	}

	reference := "DEP-" + uuid.NewString()
	s.mu.Lock()
	s.deposits[reference] = &deposit{amount: req.Amount}
	s.mu.Unlock()

	kind := domain.PaymentKind(req.PaymentType)
	s.writeJSON(w, http.StatusOK, domain.DepositReceipt{
		Reference:   reference,
		Instruction: kind.Instruction(),
	})
}

// handleDepositStatus reports pending for the first poll and settles the
// deposit on the second, crediting the wallet.
func (s *Server) handleDepositStatus(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deposits[reference]
	if !ok {
		s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Unknown payment reference."})
		return
	}
	d.polls++
	if d.polls < 2 {
		s.writeJSON(w, http.StatusOK, domain.DepositStatus{Status: "pending"})
		return
	}
	delete(s.deposits, reference)
	s.balance.Available += d.amount
	s.balance.Transactions = append([]domain.Transaction{{
		ID: uuid.NewString(), Type: "deposit", Amount: d.amount,
		Reference: reference, Status: "completed",
		Date: time.Now().Format("2006-01-02"),
	}}, s.balance.Transactions...)
	s.writeJSON(w, http.StatusOK, domain.DepositStatus{
		Status:   "success",
		Credited: true,
		Message:  "Payment completed successfully! Your balance has been updated.",
	})
}

func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rows := make([]domain.PerformanceRow, len(s.performance))
	copy(rows, s.performance)
	s.mu.Unlock()

	// per-campaign rows are a scaled-down slice of the account rows
	if r.URL.Query().Get("ad_placement__ad__campaign") != "" {
		for i := range rows {
			rows[i].Impressions /= 3
			rows[i].Clicks /= 3
			rows[i].Cost /= 3
		}
	}
	s.writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handlePerformanceSummary(w http.ResponseWriter, r *http.Request) {
	if groupBy := r.URL.Query().Get("group_by"); groupBy != "" {
		s.writeJSON(w, http.StatusOK, s.groupPerformance(groupBy))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var out domain.PerformanceSummary
	for _, c := range s.campaigns {
		if c.Status == domain.StatusActive {
			out.ActiveCampaigns++
		}
		out.TotalCost += c.TotalCost
		out.TotalImpressions += c.TotalImpressions
		out.TotalClicks += c.TotalClicks
	}
	if out.TotalImpressions > 0 {
		out.CTR = float64(out.TotalClicks) / float64(out.TotalImpressions) * 100
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) groupPerformance(groupBy string) []domain.GroupPerformance {
	if groupBy == "language" {
		return []domain.GroupPerformance{
			{Group: "Amharic", TotalImpressions: 61000, CTR: 2.1, EngagementRate: 4.8},
			{Group: "English", TotalImpressions: 52000, CTR: 1.7, EngagementRate: 3.9},
			{Group: "Oromo", TotalImpressions: 18000, CTR: 1.2, EngagementRate: 2.4},
		}
	}
	return []domain.GroupPerformance{
		{Group: "News", TotalImpressions: 74000, CTR: 1.9, EngagementRate: 4.2},
		{Group: "Technology", TotalImpressions: 31000, CTR: 2.4, EngagementRate: 5.1},
		{Group: "Sport", TotalImpressions: 26000, CTR: 1.5, EngagementRate: 3.3},
	}
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.languages)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.categories)
}
