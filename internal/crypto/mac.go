package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// hmacSha512 is a keyed HMAC-SHA-512 authentication context.
type hmacSha512 struct {
	h hash.Hash
}

// Ensure hmacSha512 implements the Mac interface.
var _ interfaces.Mac = (*hmacSha512)(nil)

func newHmacSha512(key []byte) (*hmacSha512, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: mac key must not be empty", ErrInvalidKeySize)
	}

	return &hmacSha512{h: hmac.New(sha512.New, key)}, nil
}

// Write feeds data into the MAC.
func (m *hmacSha512) Write(data []byte) error {
	// hash.Hash.Write never returns an error.
	_, err := m.h.Write(data)
	return err
}

// Finalize computes the tag over everything written so far.
func (m *hmacSha512) Finalize() []byte {
	return m.h.Sum(nil)
}
