package repository

import (
	"context"
	"encoding/json"

	"engineershub/internal/domain/entity"
)

// ProfileRepository updates the server-side profile.
type ProfileRepository interface {
	UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) error

	// ImportLinkedIn submits an already parsed LinkedIn document.
	ImportLinkedIn(ctx context.Context, data json.RawMessage) error
}
