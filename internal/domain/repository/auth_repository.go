// Package repository defines the interfaces for the remote resources and local persistence.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"engineershub/internal/domain/entity"
)

// AuthRepository defines the authentication endpoints of the remote API.
type AuthRepository interface {
	// Login exchanges email and password for a bearer credential and the account.
	Login(ctx context.Context, email, password string) (*entity.AuthResponse, error)

	// Register creates an account and returns its bearer credential.
	Register(ctx context.Context, req *RegisterRequest) (*entity.AuthResponse, error)

	// Me returns the account owning the attached credential.
	Me(ctx context.Context) (*entity.User, error)
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	College  string `json:"college"`
	Branch   string `json:"branch"`
	Year     string `json:"year"`
}
