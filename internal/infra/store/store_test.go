package store

import (
	"context"
	"path/filepath"
	"testing"

	"engineershub/config"
	"engineershub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openKVs(t *testing.T) map[string]KV {
	t.Helper()

	sqlite, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]KV{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestKV_RoundTrip(t *testing.T) {
	for name, kv := range openKVs(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := kv.Get(ctx, "missing")
			require.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Put(ctx, "k", []byte("one")))
			require.NoError(t, kv.Put(ctx, "k", []byte("two")))

			got, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("two"), got)

			require.NoError(t, kv.Delete(ctx, "k"))
			require.NoError(t, kv.Delete(ctx, "k"), "deleting an absent key is not an error")

			_, err = kv.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestCredentialStore(t *testing.T) {
	for name, kv := range openKVs(t) {
		for _, sealed := range []bool{false, true} {
			var sealer *Sealer
			if sealed {
				sealer = NewSealer("correct horse battery staple")
			}

			t.Run(name, func(t *testing.T) {
				ctx := context.Background()
				creds := NewCredentialStore(kv, sealer)

				_, err := creds.Load(ctx)
				require.ErrorIs(t, err, repository.ErrCredentialNotFound)

				require.NoError(t, creds.Save(ctx, "token-abc"))
				token, err := creds.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, "token-abc", token)

				raw, err := kv.Get(ctx, repository.CredentialKey)
				require.NoError(t, err)
				if sealed {
					assert.NotContains(t, string(raw), "token-abc")
				} else {
					assert.Equal(t, "token-abc", string(raw))
				}

				require.NoError(t, creds.Clear(ctx))
				_, err = creds.Load(ctx)
				require.ErrorIs(t, err, repository.ErrCredentialNotFound)
			})
		}
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{
		Driver:     config.StorageDriverSQLite,
		Path:       filepath.Join(t.TempDir(), "hub.db"),
		Passphrase: "pass",
	}

	first, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "persisted-token"))
	require.NoError(t, first.Close())

	second, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()

	token, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "postgres"})
	require.Error(t, err)
}

func TestSealer_WrongPassphrase(t *testing.T) {
	sealed, err := NewSealer("one").Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = NewSealer("two").Open(sealed)
	require.ErrorIs(t, err, ErrSealedValueCorrupt)

	_, err = NewSealer("one").Open(sealed[:10])
	require.ErrorIs(t, err, ErrSealedValueCorrupt)

	plain, err := NewSealer("one").Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), plain)
}

func TestSealer_FreshNonce(t *testing.T) {
	sealer := NewSealer("pass")

	a, err := sealer.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := sealer.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
