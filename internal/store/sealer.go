package store

import (
	"fmt"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/crypto"
)

// Sealer encrypts and decrypts the vCard column.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(blob string) (string, error)
}

type keySealer struct {
	keychain crypto.KeyChainService
	key      []byte
}

// NewSealer returns a [Sealer] using key with the given keychain service.
func NewSealer(keychain crypto.KeyChainService, key []byte) Sealer {
	return &keySealer{keychain: keychain, key: key}
}

func (s *keySealer) Seal(plaintext string) (string, error) {
	blob, err := s.keychain.Encrypt(plaintext, s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealing, err)
	}
	return blob, nil
}

func (s *keySealer) Open(blob string) (string, error) {
	plaintext, err := s.keychain.Decrypt(blob, s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealing, err)
	}
	return plaintext, nil
}
