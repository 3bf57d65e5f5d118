package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

const campaignsPath = "/api/advertiser/campaigns/"

// ListCampaigns fetches every campaign owned by the advertiser.
func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := c.get(ctx, campaignsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampaign fetches one campaign with its ad content.
func (c *Client) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := c.get(ctx, campaignsPath+id+"/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCampaign creates a campaign. The payload is multipart when a media
// file is attached, plain JSON otherwise.
func (c *Client) CreateCampaign(ctx context.Context, p port.CampaignPayload) (*domain.Campaign, error) {
	return c.writeCampaign(ctx, http.MethodPost, campaignsPath, p)
}

// UpdateCampaign patches an existing campaign.
func (c *Client) UpdateCampaign(ctx context.Context, id string, p port.CampaignPayload) (*domain.Campaign, error) {
	return c.writeCampaign(ctx, http.MethodPatch, campaignsPath+id+"/", p)
}

func (c *Client) writeCampaign(ctx context.Context, method, path string, p port.CampaignPayload) (*domain.Campaign, error) {
	var body any = p
	if p.Media != nil {
		form, err := campaignForm(p)
		if err != nil {
			return nil, err
		}
		body = form
	}
	var out domain.Campaign
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.delete(ctx, campaignsPath+id+"/")
}

// SubmitCampaign moves a draft into review, reserving its budget in escrow.
func (c *Client) SubmitCampaign(ctx context.Context, id string) error {
	return c.post(ctx, campaignsPath+id+"/submit/", nil, nil)
}

// PauseCampaign puts an active campaign on hold.
func (c *Client) PauseCampaign(ctx context.Context, id string) error {
	return c.post(ctx, campaignsPath+id+"/pause/", nil, nil)
}

// ResumeCampaign reactivates a paused campaign.
func (c *Client) ResumeCampaign(ctx context.Context, id string) error {
	return c.post(ctx, campaignsPath+id+"/resume/", nil, nil)
}

// StopCampaign ends a campaign permanently.
func (c *Client) StopCampaign(ctx context.Context, id string) error {
	return c.post(ctx, campaignsPath+id+"/stop/", nil, nil)
}

// campaignForm flattens the payload into multipart form data. Nested ad
// content uses dotted keys and indexed social links
// (ad_content_write.social_links.0.platform); repeated scalar fields are
// appended once per value; targeting_regions is embedded as a JSON string.
func campaignForm(p port.CampaignPayload) (*formBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	w.WriteField("name", p.Name)
	w.WriteField("objective", p.Objective)
	w.WriteField("initial_budget", formatAmount(p.InitialBudget))
	w.WriteField("cpm", formatAmount(p.CPM))
	w.WriteField("views_frequency_cap", strconv.Itoa(p.ViewsFrequencyCap))
	if p.StartDate != nil {
		w.WriteField("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		w.WriteField("end_date", *p.EndDate)
	}
	for _, id := range p.TargetingLanguages {
		w.WriteField("targeting_languages", strconv.Itoa(id))
	}
	for _, id := range p.TargetingCategories {
		w.WriteField("targeting_categories", id)
	}
	regions, err := json.Marshal(p.TargetingRegions)
	if err != nil {
		return nil, err
	}
	w.WriteField("targeting_regions", string(regions))

	if ad := p.AdContent; ad != nil {
		w.WriteField("ad_content_write.headline", ad.Headline)
		w.WriteField("ad_content_write.text_content", ad.TextContent)
		w.WriteField("ad_content_write.brand_name", ad.BrandName)
		// A fresh upload replaces any previous image.
		w.WriteField("ad_content_write.img_url", "")
		for i, link := range ad.SocialLinks {
			w.WriteField(fmt.Sprintf("ad_content_write.social_links.%d.platform", i), string(link.Platform))
			w.WriteField(fmt.Sprintf("ad_content_write.social_links.%d.url", i), link.URL)
		}
	}
	if p.Media != nil {
		fw, err := w.CreateFormFile("ad_content_write.media_file", p.Media.Name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(p.Media.Data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &formBody{buf: &buf, contentType: w.FormDataContentType()}, nil
}

// formatAmount renders a currency amount without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
