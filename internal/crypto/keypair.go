package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// AgreementKeypair generates a curve25519 key agreement keypair.
func (s *suiteV1) AgreementKeypair() (public, private []byte, err error) {
	private = make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(private); err != nil {
		return nil, nil, fmt.Errorf("failed to generate agreement private key: %w", err)
	}

	public, err = curve25519.X25519(private, curve25519.Basepoint)
	if err != nil {
		Zeroize(private)
		return nil, nil, fmt.Errorf("failed to derive agreement public key: %w", err)
	}

	return public, private, nil
}

// SigningKeypair generates an ed25519 signing keypair.
func (s *suiteV1) SigningKeypair() (public, private []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate signing keypair: %w", err)
	}

	return pub, priv, nil
}
