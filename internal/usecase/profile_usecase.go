package usecase

import (
	"context"
)

// User-facing outcomes of the profile view.
const (
	MsgProfileUpdated    = "Profile updated successfully!"
	MsgProfileFailed     = "Failed to update profile"
	MsgLinkedInImported  = "LinkedIn data imported successfully!"
	MsgLinkedInImportBad = "Failed to import LinkedIn data. Please check the format."
)

// UpdateProfileInput is the personal information form.
type UpdateProfileInput struct {
	Name       string
	College    string
	Branch     string
	Year       string
	Skills     string // comma separated
	Experience string
	Projects   string
}

// ProfileUsecase drives the profile view.
type ProfileUsecase interface {
	// Form returns the form prefilled from the signed-in account.
	Form() UpdateProfileInput

	// Update sends the form and returns the message to show.
	Update(ctx context.Context, input UpdateProfileInput) (string, error)

	// ImportLinkedIn parses raw JSON text locally and submits it. Blank text is ignored.
	ImportLinkedIn(ctx context.Context, raw string) (string, error)

	// SampleLinkedIn returns example LinkedIn JSON built from the form.
	SampleLinkedIn(input UpdateProfileInput) (string, error)
}
