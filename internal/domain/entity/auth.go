package entity

import (
	"context"
	"sync"
)

// AuthResponse is the payload returned by the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"` // Opaque bearer credential.
	User  *User  `json:"user"`  // The authenticated account.
}

// RequestContext carries the bearer credential attached to every outgoing API call.
// It is written only by the session store and read by the gateway client.
type RequestContext struct {
	mu    sync.RWMutex
	token string
}

// NewRequestContext returns an empty request context (no credential attached).
func NewRequestContext() *RequestContext {
	return &RequestContext{}
}

// Token returns the attached credential, or "" when none is attached.
func (rc *RequestContext) Token() string {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return rc.token
}

// Attach replaces the attached credential.
func (rc *RequestContext) Attach(token string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.token = token
}

// Detach removes the attached credential.
func (rc *RequestContext) Detach() {
	rc.Attach("")
}

// Authorization returns the Authorization header value, or "" when no credential is attached.
func (rc *RequestContext) Authorization() string {
	return bearer(rc.Token())
}

type pinnedCredentialKey struct{}

// Pin returns ctx carrying the credential attached right now.
// Requests sent under it keep that credential after a logout or a new login.
func (rc *RequestContext) Pin(ctx context.Context) context.Context {
	return context.WithValue(ctx, pinnedCredentialKey{}, rc.Token())
}

// AuthorizationFor prefers the credential pinned in ctx over the attached one.
func (rc *RequestContext) AuthorizationFor(ctx context.Context) string {
	if token, ok := ctx.Value(pinnedCredentialKey{}).(string); ok {
		return bearer(token)
	}

	return rc.Authorization()
}

func bearer(token string) string {
	if token == "" {
		return ""
	}

	return "Bearer " + token
}
