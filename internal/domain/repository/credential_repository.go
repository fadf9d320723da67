package repository

import (
	"context"
	"errors"
)

// CredentialKey is the single durable key holding the bearer credential.
const CredentialKey = "auth.token"

// ErrCredentialNotFound is returned when no credential has been persisted.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists the bearer credential across restarts.
type CredentialRepository interface {
	// Load returns the persisted credential or ErrCredentialNotFound.
	Load(ctx context.Context) (string, error)

	// Save replaces the persisted credential.
	Save(ctx context.Context, token string) error

	// Clear removes the persisted credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
