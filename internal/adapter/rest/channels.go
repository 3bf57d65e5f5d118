package rest

import (
	"context"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// ListChannels fetches the creator's connected channels.
func (c *Client) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	var out []domain.Channel
	if err := c.get(ctx, "/api/channels/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConnectChannel registers a new channel and returns the verification link
// used to prove ownership.
func (c *Client) ConnectChannel(ctx context.Context, p port.ChannelPayload) (*port.ChannelConnectResult, error) {
	var out port.ChannelConnectResult
	if err := c.post(ctx, "/api/channels/connect/", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyChannel confirms ownership with the posted activation code and
// returns the backend's status message.
func (c *Client) VerifyChannel(ctx context.Context, activationCode string) (string, error) {
	body := map[string]any{"activation_code": activationCode}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/channels/verify/", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UpdateChannel patches a channel's CPM floor and targeting.
func (c *Client) UpdateChannel(ctx context.Context, id string, p port.ChannelPayload) error {
	return c.patch(ctx, "/api/channels/"+id+"/", p, nil)
}

// DeleteChannel disconnects a channel.
func (c *Client) DeleteChannel(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/channels/"+id+"/")
}

// ListAdPlacements fetches campaigns proposed to the creator's channels.
func (c *Client) ListAdPlacements(ctx context.Context) ([]domain.AdPlacement, error) {
	var out []domain.AdPlacement
	if err := c.get(ctx, "/api/ad-placements/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveAdPlacement accepts a proposed placement.
func (c *Client) ApproveAdPlacement(ctx context.Context, id string) error {
	return c.post(ctx, "/api/ad-placements/"+id+"/approve/", nil, nil)
}

// RejectAdPlacement declines a proposed placement.
func (c *Client) RejectAdPlacement(ctx context.Context, id string) error {
	return c.post(ctx, "/api/ad-placements/"+id+"/reject/", nil, nil)
}
