package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sonic-miniapp/internal/core/domain"
)

// Server is an in-memory rendition of the marketplace backend. It serves
// the same REST surface the real API exposes, seeded with demo data, so
// the UI can run without network access and the HTTP client can be tested
// against real requests. State lives behind one mutex; the dataset is
// small enough that contention is irrelevant.
type Server struct {
	logger *slog.Logger
	router chi.Router

	mu            sync.Mutex
	campaigns     []*domain.Campaign
	balance       domain.BalanceSummary
	deposits      map[string]*deposit
	methods       []domain.PaymentMethod
	choices       []domain.PaymentMethodChoice
	channels      []*domain.Channel
	placements    []*domain.AdPlacement
	notifications []domain.Notification
	profile       domain.Profile
	languages     []domain.Language
	categories    []domain.Category
	performance   []domain.PerformanceRow
}

// deposit is one pending mobile money payment. Status flips to success
// after a couple of polls so the polling loop can be exercised end to end.
type deposit struct {
	amount float64
	polls  int
}

// NewServer builds a stub server with seeded demo data and all routes
// registered.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		logger:   logger,
		deposits: map[string]*deposit{},
	}
	s.seed()

	r := chi.NewRouter()
	r.Use(s.csrfCookie)

	r.Route("/api", func(r chi.Router) {
		r.Route("/advertiser", func(r chi.Router) {
			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", s.handleListCampaigns)
				r.Post("/", s.handleCreateCampaign)
				r.Get("/{id}/", s.handleGetCampaign)
				r.Patch("/{id}/", s.handleUpdateCampaign)
				r.Delete("/{id}/", s.handleDeleteCampaign)
				r.Post("/{id}/submit/", s.handleSubmitCampaign)
				r.Post("/{id}/pause/", s.handleTransition("on_hold"))
				r.Post("/{id}/resume/", s.handleTransition("active"))
				r.Post("/{id}/stop/", s.handleTransition("stopped"))
			})
			r.Get("/balance/summary/", s.handleBalanceSummary)
			r.Get("/performance/", s.handlePerformance)
			r.Get("/performance/summary/", s.handlePerformanceSummary)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/deposit/request/", s.handleDepositRequest)
			r.Get("/deposit/status/{reference}/", s.handleDepositStatus)
		})

		r.Route("/payment-methods", func(r chi.Router) {
			r.Get("/", s.handleListMethods)
			r.Post("/", s.handleAddMethod)
			r.Patch("/{id}/", s.handlePatchMethod)
			r.Delete("/{id}/", s.handleDeleteMethod)
		})
		r.Get("/payment-method-choice/", s.handleMethodChoices)
		r.Post("/withdrawal/request/", s.handleWithdrawal)

		r.Route("/channels", func(r chi.Router) {
			r.Get("/", s.handleListChannels)
			r.Post("/connect/", s.handleConnectChannel)
			r.Post("/verify/", s.handleVerifyChannel)
			r.Patch("/{id}/", s.handleUpdateChannel)
			r.Delete("/{id}/", s.handleDeleteChannel)
		})

		r.Route("/ad-placements", func(r chi.Router) {
			r.Get("/", s.handleListPlacements)
			r.Post("/{id}/approve/", s.handlePlacementDecision("approved"))
			r.Post("/{id}/reject/", s.handlePlacementDecision("rejected"))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.handleListNotifications)
			r.Get("/unread-count/", s.handleUnreadCount)
			r.Post("/{id}/mark-read/", s.handleMarkRead)
			r.Post("/mark-all-read/", s.handleMarkAllRead)
		})

		r.Get("/settings/user/", s.handleGetProfile)
		r.Patch("/settings/user/", s.handlePatchProfile)

		r.Get("/languages/", s.handleLanguages)
		r.Get("/categories/", s.handleCategories)
	})
	s.router = r
	return s
}

// Router returns the underlying http.Handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// csrfCookie hands out a csrftoken cookie the way the real backend does,
// so the client's jar-to-header mirroring is exercised.
func (s *Server) csrfCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("csrftoken"); err != nil {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: uuid.NewString(), Path: "/"})
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (s *Server) errorJSON(w http.ResponseWriter, code int, body any) {
	s.writeJSON(w, code, body)
}

func (s *Server) seed() {
	now := time.Now()
	day := func(d int) string { return now.AddDate(0, 0, d).Format("2006-01-02") }

	s.languages = []domain.Language{
		{ID: 1, Name: "Amharic"},
		{ID: 2, Name: "English"},
		{ID: 3, Name: "Oromo"},
		{ID: 4, Name: "Tigrinya"},
	}
	s.categories = []domain.Category{
		{ID: "news", Name: "News"},
		{ID: "tech", Name: "Technology"},
		{ID: "sport", Name: "Sport"},
		{ID: "entertainment", Name: "Entertainment"},
	}

	s.campaigns = []*domain.Campaign{
		{
			ID: uuid.NewString(), Name: "Addis Coffee Launch", Objective: "brand_awareness",
			Status: domain.StatusActive, InitialBudget: 5000, CPM: 80, ViewsFrequencyCap: 2,
			StartDate: day(-10), EndDate: day(20),
			TargetingLanguages: []int{1, 2}, TargetingCategories: []string{"news", "entertainment"},
			TargetingRegions: map[string]string{"ET": "Ethiopia"},
			AdContent: &domain.AdContent{
				Headline: "Fresh roast, every day", TextContent: "Single origin beans from Yirgacheffe, delivered to your door.",
				BrandName: "Addis Coffee", ImageURL: "/media/addis-coffee.jpg",
			},
			TotalImpressions: 48000, TotalClicks: 960, TotalCost: 3840,
			CreatedAt: now.AddDate(0, 0, -12), UpdatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID: uuid.NewString(), Name: "Ride Hailing Promo", Objective: "traffic",
			Status: domain.StatusOnHold, InitialBudget: 3000, CPM: 65, ViewsFrequencyCap: 1,
			StartDate: day(-5), EndDate: day(25),
			TargetingLanguages: []int{2}, TargetingCategories: []string{"tech"},
			TargetingRegions: map[string]string{"ET": "Ethiopia"},
			AdContent: &domain.AdContent{
				Headline: "First ride free", TextContent: "Download the app and ride across the city for less.",
				BrandName: "ZoomRide",
			},
			TotalImpressions: 12500, TotalClicks: 310, TotalCost: 812.5,
			CreatedAt: now.AddDate(0, 0, -7), UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: uuid.NewString(), Name: "Weekend Football Odds", Objective: "conversion",
			Status: domain.StatusDraft, InitialBudget: 1500, CPM: 50, ViewsFrequencyCap: 3,
			StartDate: day(2), EndDate: day(9),
			TargetingLanguages: []int{1}, TargetingCategories: []string{"sport"},
			TargetingRegions: map[string]string{"ET": "Ethiopia"},
			CreatedAt:        now.AddDate(0, 0, -3), UpdatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID: uuid.NewString(), Name: "Holiday Flight Deals", Objective: "brand_awareness",
			Status: domain.StatusCompleted, InitialBudget: 8000, CPM: 90, ViewsFrequencyCap: 2,
			StartDate: day(-60), EndDate: day(-30),
			TargetingLanguages: []int{1, 2, 3}, TargetingCategories: []string{"news"},
			TargetingRegions: map[string]string{"ET": "Ethiopia"},
			AdContent: &domain.AdContent{
				Headline: "Fly home for less", TextContent: "Book early and save up to 30% on holiday routes.",
				BrandName: "SkyEthiopia", ImageURL: "/media/sky.jpg",
			},
			TotalImpressions: 88000, TotalClicks: 1230, TotalCost: 7920,
			CreatedAt: now.AddDate(0, 0, -62), UpdatedAt: now.AddDate(0, 0, -30),
		},
	}

	s.balance = domain.BalanceSummary{
		Available:  1250,
		TotalSpent: 12572.5,
		Escrow:     1500,
		Transactions: []domain.Transaction{
			{ID: uuid.NewString(), Type: "deposit", Amount: 2000, Reference: "DEP-" + uuid.NewString()[:8], Status: "completed", Date: day(-6)},
			{ID: uuid.NewString(), Type: "debit", Amount: 1500, Reference: "ESC-" + uuid.NewString()[:8], Status: "completed", Date: day(-4)},
			{ID: uuid.NewString(), Type: "withdrawal", Amount: 500, Reference: "WDR-" + uuid.NewString()[:8], Status: "pending", Date: day(-1)},
		},
	}

	s.choices = []domain.PaymentMethodChoice{
		{ID: uuid.NewString(), Category: "bank", ShortName: "CBE"},
		{ID: uuid.NewString(), Category: "bank", ShortName: "Awash"},
		{ID: uuid.NewString(), Category: "wallet", ShortName: "Telebirr"},
		{ID: uuid.NewString(), Category: "wallet", ShortName: "M-Pesa"},
	}
	s.methods = []domain.PaymentMethod{
		{ID: uuid.NewString(), Category: "bank", ShortName: "CBE", AccountNumber: "100023456789", Status: "verified", IsDefault: true},
		{ID: uuid.NewString(), Category: "wallet", ShortName: "Telebirr", PhoneNumber: "0911223344", Status: "pending"},
	}

	s.channels = []*domain.Channel{
		{
			ID: uuid.NewString(), Title: "Addis Daily", Link: "https://t.me/addisdaily",
			Status: "verified", StatusDisplay: "Verified", Subscribers: 42000, MinCPM: 60,
			Languages: []string{"Amharic"}, Categories: []string{"news"}, TotalEarnings: 8340,
		},
		{
			ID: uuid.NewString(), Title: "Tech Habesha", Link: "https://t.me/techhabesha",
			Status: "pending", StatusDisplay: "Pending verification", Subscribers: 12800, MinCPM: 45,
			Languages: []string{"English"}, Categories: []string{"tech"},
		},
	}

	s.placements = []*domain.AdPlacement{
		{
			ID: uuid.NewString(), CampaignName: "Addis Coffee Launch", ChannelTitle: "Addis Daily",
			Headline: "Fresh roast, every day", Status: "pending", ProposedCPM: 80,
			StartDate: day(-1), EndDate: day(20),
		},
		{
			ID: uuid.NewString(), CampaignName: "Holiday Flight Deals", ChannelTitle: "Addis Daily",
			Headline: "Fly home for less", Status: "approved", ProposedCPM: 90,
			StartDate: day(-40), EndDate: day(-30),
		},
	}

	s.notifications = []domain.Notification{
		{ID: uuid.NewString(), Type: "campaign", Title: "Campaign approved", Message: "Addis Coffee Launch passed review and is now live.", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.NewString(), Type: "payment", Title: "Deposit received", Message: "ETB 2000.00 was added to your balance.", IsRead: true, CreatedAt: now.AddDate(0, 0, -6)},
		{ID: uuid.NewString(), Type: "placement", Title: "New ad placement", Message: "A campaign wants to run on Addis Daily.", CreatedAt: now.Add(-30 * time.Minute)},
	}

	s.profile = domain.Profile{
		FirstName: "Hanna", LastName: "Tesfaye", Username: "hanna_t",
		Email: "hanna@example.com", Address: "Bole, Addis Ababa",
	}

	for d := 14; d >= 1; d-- {
		s.performance = append(s.performance, domain.PerformanceRow{
			Date:        day(-d),
			Impressions: int64(3000 + d*180),
			Clicks:      int64(60 + d*3),
			Cost:        float64(240 + d*14),
		})
	}
}
