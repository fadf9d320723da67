// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"engineershub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the registration form. Required fields are left to the server.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	College  string
	Branch   string
	Year     string
}

// --- Output DTOs ---

// AuthResult reports a login or registration attempt. Message is set when OK is false.
type AuthResult struct {
	OK      bool
	Message string
	User    *entity.User
}

// CurrentUser exposes the signed-in account to other use cases.
type CurrentUser interface {
	// User returns the signed-in account, or nil.
	User() *entity.User
}

// SessionUsecase owns the bearer credential and the signed-in account.
// Every operation keeps the attached credential equal to the persisted one.
type SessionUsecase interface {
	CurrentUser

	// Login authenticates and, on success, persists then attaches the credential.
	Login(ctx context.Context, email, password string) *AuthResult

	// Register creates an account and signs in with it.
	Register(ctx context.Context, input *RegisterInput) *AuthResult

	// Logout clears the credential everywhere. It makes no network call.
	Logout(ctx context.Context)

	// Hydrate restores a persisted session at startup.
	Hydrate(ctx context.Context)

	// RefreshUser re-fetches the signed-in account; failures leave the session untouched.
	RefreshUser(ctx context.Context)

	// Authenticated reports whether a session is active.
	Authenticated() bool

	// Loading is true from construction until Hydrate finishes.
	Loading() bool
}
