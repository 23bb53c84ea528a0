package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService derives and applies the key protecting the local contact
// store. It knows nothing about the database or the network.
//
// Flow on first start:
//
//	salt        = GenerateSalt()
//	key         = DeriveKey(passphrase, salt)
//	fingerprint = Fingerprint(key)           (stored next to salt)
//
// On later starts the stored fingerprint is compared with the one of the
// freshly derived key to reject a wrong passphrase before any decryption.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from the passphrase and salt with
	// Argon2id.
	DeriveKey(passphrase string, salt []byte) []byte

	// Fingerprint returns SHA-256(key || domain label). It identifies a key
	// without revealing it.
	Fingerprint(key []byte) []byte

	// Encrypt seals plaintext with AES-256-GCM and returns the base64 blob
	// nonce || ciphertext.
	Encrypt(plaintext string, key []byte) (string, error)

	// Decrypt opens a blob produced by Encrypt.
	Decrypt(blob string, key []byte) (string, error)
}
