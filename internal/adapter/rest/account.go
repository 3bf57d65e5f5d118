package rest

import (
	"context"

	"sonic-miniapp/internal/core/domain"
)

// Profile fetches the user's account settings.
func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	var out domain.Profile
	if err := c.get(ctx, "/api/settings/user/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile patches only the changed settings fields. Values may be nil
// to clear a field.
func (c *Client) UpdateProfile(ctx context.Context, changes map[string]any) error {
	return c.patch(ctx, "/api/settings/user/", changes, nil)
}
