// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the server-owned account record held in memory for the active session.
// It becomes stale as soon as the server record changes and is refreshed only on the next fetch.
type User struct {
	ID             string    `json:"id"`                        // Server-issued identifier.
	Name           string    `json:"name"`                      // Display name.
	Email          string    `json:"email"`                     // Login identifier.
	College        string    `json:"college"`                   // College name from registration.
	Branch         string    `json:"branch"`                    // Engineering branch, e.g. "Computer Science".
	Year           string    `json:"year"`                      // Study year, e.g. "3rd Year" or "Final Year".
	ProfilePicture string    `json:"profile_picture,omitempty"` // Optional avatar URL.
	CreatedAt      time.Time `json:"created_at,omitzero"`       // Account creation time.
}

// DisplayName returns the name shown in greetings, falling back to the email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}
