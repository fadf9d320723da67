package store

import (
	"crypto/rand"

	"engineershub/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// ErrSealedValueCorrupt is returned when a sealed value cannot be opened.
var ErrSealedValueCorrupt = errors.New("sealed value is corrupt or the passphrase is wrong")

// Sealer encrypts values with XChaCha20-Poly1305 under an argon2id key derived from a passphrase.
// Layout: salt | nonce | ciphertext.
type Sealer struct {
	passphrase []byte
}

func NewSealer(passphrase string) *Sealer {
	return &Sealer{passphrase: []byte(passphrase)}
}

func (s *Sealer) key(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

// Seal encrypts plain with a fresh salt and nonce.
func (s *Sealer) Seal(plain []byte) ([]byte, error) {
	salt := make([]byte, saltSize, saltSize+chacha20poly1305.NonceSizeX+len(plain)+chacha20poly1305.Overhead)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "read salt")
	}

	aead, err := chacha20poly1305.NewX(s.key(salt))
	if err != nil {
		return nil, errors.Wrap(err, "init aead")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}

	out := append(salt, nonce...)

	return aead.Seal(out, nonce, plain, nil), nil
}

// Open decrypts a value produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, ErrSealedValueCorrupt
	}

	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := sealed[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.key(salt))
	if err != nil {
		return nil, errors.Wrap(err, "init aead")
	}

	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSealedValueCorrupt
	}

	return plain, nil
}
