// Package crypto implements the default cipher suite used to protect
// certificates at rest: AES-256-CTR for the stream cipher, HMAC-SHA-512 for
// envelope authentication, PBKDF2-HMAC-SHA-512 for password key derivation,
// curve25519 for key agreement keypairs, and ed25519 for signing keypairs.
package crypto

import (
	"crypto/aes"
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// Suite parameter sizes in bytes.
const (
	// CipherKeySize is the AES-256 key size.
	CipherKeySize = 32

	// CipherIVSize is the AES-CTR initialization vector size.
	CipherIVSize = aes.BlockSize

	// MacTagSize is the HMAC-SHA-512 tag size.
	MacTagSize = sha512.Size
)

// suiteV1 is the default suite. It holds no state and is safe for concurrent
// use.
type suiteV1 struct{}

// Ensure suiteV1 implements the Suite interface.
var _ interfaces.Suite = (*suiteV1)(nil)

// NewSuiteV1 creates the default cipher suite.
func NewSuiteV1() interfaces.Suite {
	return &suiteV1{}
}

// KeySize returns the stream cipher key size in bytes.
func (s *suiteV1) KeySize() int {
	return CipherKeySize
}

// IVSize returns the stream cipher initialization vector size in bytes.
func (s *suiteV1) IVSize() int {
	return CipherIVSize
}

// MacSize returns the MAC tag size in bytes.
func (s *suiteV1) MacSize() int {
	return MacTagSize
}

// DeriveKey derives a cipher key from a password and salt using
// PBKDF2-HMAC-SHA-512 with the given work factor.
func (s *suiteV1) DeriveKey(password, salt []byte, rounds uint32) ([]byte, error) {
	if len(salt) != CipherKeySize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d",
			ErrInvalidKeySize, CipherKeySize, len(salt))
	}

	return pbkdf2.Key(password, salt, int(rounds), CipherKeySize, sha512.New), nil
}

// NewMac creates an HMAC-SHA-512 context keyed with key.
func (s *suiteV1) NewMac(key []byte) (interfaces.Mac, error) {
	return newHmacSha512(key)
}

// NewStreamCipher creates an AES-256-CTR context keyed with key.
func (s *suiteV1) NewStreamCipher(key []byte) (interfaces.StreamCipher, error) {
	return newAesCtr(key)
}

// Random fills buf from the operating system's CSPRNG.
func (s *suiteV1) Random(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}
	return nil
}
