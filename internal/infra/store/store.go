// Package store persists the bearer credential between runs.
package store

import (
	"context"

	"engineershub/config"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
)

// ErrKeyNotFound is returned by a KV when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KV is a durable string-keyed blob store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// CredentialStore implements repository.CredentialRepository on top of a KV,
// optionally sealing the value at rest.
type CredentialStore struct {
	kv     KV
	sealer *Sealer
}

var _ repository.CredentialRepository = (*CredentialStore)(nil)

// NewCredentialStore wraps kv. A nil sealer stores the credential in clear.
func NewCredentialStore(kv KV, sealer *Sealer) *CredentialStore {
	return &CredentialStore{kv: kv, sealer: sealer}
}

// Open builds the credential store configured by cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (*CredentialStore, error) {
	var kv KV
	switch cfg.Driver {
	case config.StorageDriverMemory:
		kv = NewMemory()
	case config.StorageDriverSQLite:
		sqlite, err := NewSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		kv = sqlite
	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}

	var sealer *Sealer
	if cfg.Passphrase != "" {
		sealer = NewSealer(cfg.Passphrase)
	}

	return NewCredentialStore(kv, sealer), nil
}

func (s *CredentialStore) Load(ctx context.Context) (string, error) {
	value, err := s.kv.Get(ctx, repository.CredentialKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", repository.ErrCredentialNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "load credential")
	}

	if s.sealer != nil {
		value, err = s.sealer.Open(value)
		if err != nil {
			return "", errors.Wrap(err, "open sealed credential")
		}
	}
	if len(value) == 0 {
		return "", repository.ErrCredentialNotFound
	}

	return string(value), nil
}

func (s *CredentialStore) Save(ctx context.Context, token string) error {
	value := []byte(token)
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(value)
		if err != nil {
			return errors.Wrap(err, "seal credential")
		}
		value = sealed
	}

	return errors.Wrap(s.kv.Put(ctx, repository.CredentialKey, value), "save credential")
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.kv.Delete(ctx, repository.CredentialKey), "clear credential")
}

// Close releases the underlying KV.
func (s *CredentialStore) Close() error {
	return s.kv.Close()
}
