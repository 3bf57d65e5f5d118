package port

import (
	"context"

	"sonic-miniapp/internal/core/domain"
)

// Gateway is the outbound port to the marketplace REST backend. One
// implementation talks to the real API; tests use the generated mock in
// port/mocks or the in-process stub server.
type Gateway interface {
	// Campaigns.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, p CampaignPayload) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, p CampaignPayload) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	// Lifecycle transitions. Submit moves a draft into review and charges
	// escrow; pause/resume/stop act on running campaigns.
	SubmitCampaign(ctx context.Context, id string) error
	PauseCampaign(ctx context.Context, id string) error
	ResumeCampaign(ctx context.Context, id string) error
	StopCampaign(ctx context.Context, id string) error

	// Wallet and deposits.
	BalanceSummary(ctx context.Context) (*domain.BalanceSummary, error)
	RequestDeposit(ctx context.Context, amount float64, mobile string, kind domain.PaymentKind) (*domain.DepositReceipt, error)
	DepositStatus(ctx context.Context, reference string) (*domain.DepositStatus, error)

	// Analytics.
	PerformanceSummary(ctx context.Context, period string) (*domain.PerformanceSummary, error)
	Performance(ctx context.Context, period string) ([]domain.PerformanceRow, error)
	PerformanceByGroup(ctx context.Context, groupBy string) ([]domain.GroupPerformance, error)
	CampaignPerformance(ctx context.Context, id string) ([]domain.PerformanceRow, error)

	// Option catalogs.
	Languages(ctx context.Context) ([]domain.Language, error)
	Categories(ctx context.Context) ([]domain.Category, error)

	// Notifications.
	Notifications(ctx context.Context) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error

	// Creator channels.
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	ConnectChannel(ctx context.Context, p ChannelPayload) (*ChannelConnectResult, error)
	VerifyChannel(ctx context.Context, activationCode string) (string, error)
	UpdateChannel(ctx context.Context, id string, p ChannelPayload) error
	DeleteChannel(ctx context.Context, id string) error

	// Ad placements offered to creator channels.
	ListAdPlacements(ctx context.Context) ([]domain.AdPlacement, error)
	ApproveAdPlacement(ctx context.Context, id string) error
	RejectAdPlacement(ctx context.Context, id string) error

	// Payout methods and withdrawals.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	PaymentMethodChoices(ctx context.Context) ([]domain.PaymentMethodChoice, error)
	AddPaymentMethod(ctx context.Context, p PaymentMethodPayload) error
	SetDefaultPaymentMethod(ctx context.Context, id string) error
	DeletePaymentMethod(ctx context.Context, id string) error
	RequestWithdrawal(ctx context.Context, amount float64, methodID string) (string, error)

	// Account settings.
	Profile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, changes map[string]any) error
}

// CampaignPayload carries a create or update request. Pointer fields are
// omitted when nil so partial updates do not clear server state. When Media
// is set the payload is sent as multipart form data with the nested ad
// content flattened to dotted keys; otherwise it is plain JSON.
type CampaignPayload struct {
	Name                string            `json:"name"`
	Objective           string            `json:"objective"`
	InitialBudget       float64           `json:"initial_budget"`
	CPM                 float64           `json:"cpm"`
	ViewsFrequencyCap   int               `json:"views_frequency_cap"`
	StartDate           *string           `json:"start_date,omitempty"`
	EndDate             *string           `json:"end_date,omitempty"`
	TargetingLanguages  []int             `json:"targeting_languages"`
	TargetingCategories []string          `json:"targeting_categories"`
	TargetingRegions    map[string]string `json:"targeting_regions"`
	AdContent           *AdContentPayload `json:"ad_content_write,omitempty"`

	// Media is the uploaded ad image, excluded from JSON encoding.
	Media *domain.Upload `json:"-"`
}

// AdContentPayload is the write shape of the ad creative.
type AdContentPayload struct {
	Headline    string              `json:"headline"`
	TextContent string              `json:"text_content"`
	BrandName   string              `json:"brand_name"`
	ImageURL    string              `json:"img_url,omitempty"`
	SocialLinks []domain.SocialLink `json:"social_links"`
}

// ChannelPayload carries a channel connect or update request. Languages
// and categories are checkbox values, so they travel as strings.
type ChannelPayload struct {
	Link       string   `json:"channel_link"`
	MinCPM     float64  `json:"min_cpm"`
	Languages  []string `json:"language"`
	Categories []string `json:"category"`
}

// ChannelConnectResult is returned when a channel is registered. The
// verification link doubles as the activation code the bot checks once it
// is added to the channel.
type ChannelConnectResult struct {
	VerificationLink string `json:"verification_link"`
}

// PaymentMethodPayload carries a new payout destination.
type PaymentMethodPayload struct {
	ChoiceID      string `json:"payment_method_choice"`
	AccountNumber string `json:"account_number,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	IsDefault     bool   `json:"is_default"`
}
