package api

import (
	"context"
	"encoding/json"
	"net/http"

	"engineershub/internal/domain/entity"
)

// UpdateProfile calls PUT /profile. The echoed user is ignored; callers refresh /auth/me.
func (c *Client) UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/profile", nil, update, nil)
}

// ImportLinkedIn calls POST /profile/linkedin.
func (c *Client) ImportLinkedIn(ctx context.Context, data json.RawMessage) error {
	return c.doJSON(ctx, http.MethodPost, "/profile/linkedin", nil, data, nil)
}
