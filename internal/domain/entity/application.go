package entity

// DefaultApplicationPosition is the position recorded for one-click applications.
const DefaultApplicationPosition = "Software Developer"

// Application is a server-owned record of a job application.
type Application struct {
	ID              string `json:"id"`
	Position        string `json:"position"`
	CompanyName     string `json:"company_name"`
	Platform        string `json:"platform"`
	Status          string `json:"status"`
	AppliedDate     string `json:"applied_date"`
	Notes           string `json:"notes,omitempty"`
	ApplicationLink string `json:"application_link,omitempty"`
}

// ApplicationRequest is the payload recorded when the user applies through a platform link.
type ApplicationRequest struct {
	Position        string `json:"position"`
	ApplicationLink string `json:"application_link"`
	Platform        string `json:"platform"`
	Notes           string `json:"notes"`
}
