package service

import (
	"time"
)

// TokenInspector reads what can be known locally about a persisted credential.
// It never verifies signatures; only the server can do that.
type TokenInspector interface {
	// ExpiresAt returns the credential expiry. ok is false when the credential
	// is opaque or carries no expiry.
	ExpiresAt(token string) (expiresAt time.Time, ok bool)

	// Expired reports whether the credential is known to be expired at now.
	Expired(token string, now time.Time) bool
}
