// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"engineershub/internal/domain/service"
)

// jwtInspector reads the expiry of a persisted credential without verifying it.
// Credentials that are not JWTs are treated as opaque and never considered expired.
type jwtInspector struct {
	parser *jwt.Parser
	leeway time.Duration
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
		leeway: 30 * time.Second, // tolerated clock skew against the server
	}
}

// ExpiresAt returns the exp claim of a JWT credential.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Expired reports whether the credential's exp has passed at now.
func (i *jwtInspector) Expired(token string, now time.Time) bool {
	exp, ok := i.ExpiresAt(token)
	if !ok {
		return false
	}

	return now.After(exp.Add(i.leeway))
}
