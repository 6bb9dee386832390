package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// aesCtr is a one-shot AES-256-CTR stream cipher context. The framing written
// by StartEncryption is the raw IV, so the cipher's output is self-describing
// and a decrypting context recovers the IV from the stream itself.
type aesCtr struct {
	block  cipher.Block
	stream cipher.Stream
}

// Ensure aesCtr implements the StreamCipher interface.
var _ interfaces.StreamCipher = (*aesCtr)(nil)

func newAesCtr(key []byte) (*aesCtr, error) {
	if len(key) != CipherKeySize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d",
			ErrInvalidKeySize, CipherKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &aesCtr{block: block}, nil
}

// StartEncryption writes iv at the start of dst and keys the CTR stream.
func (c *aesCtr) StartEncryption(iv, dst []byte) (int, error) {
	if len(iv) != CipherIVSize {
		return 0, fmt.Errorf("%w: need %d bytes, got %d",
			ErrInvalidIVSize, CipherIVSize, len(iv))
	}
	if len(dst) < CipherIVSize {
		return 0, ErrShortBuffer
	}

	copy(dst[:CipherIVSize], iv)
	c.stream = cipher.NewCTR(c.block, iv)

	return CipherIVSize, nil
}

// Encrypt transforms plaintext into dst.
func (c *aesCtr) Encrypt(plaintext, dst []byte) (int, error) {
	return c.transform(plaintext, dst)
}

// StartDecryption reads the IV framing from the start of src and keys the
// CTR stream.
func (c *aesCtr) StartDecryption(src []byte) (int, error) {
	if len(src) < CipherIVSize {
		return 0, fmt.Errorf("%w: need %d framing bytes, got %d",
			ErrInvalidIVSize, CipherIVSize, len(src))
	}

	c.stream = cipher.NewCTR(c.block, src[:CipherIVSize])

	return CipherIVSize, nil
}

// Decrypt transforms ciphertext into dst.
func (c *aesCtr) Decrypt(ciphertext, dst []byte) (int, error) {
	return c.transform(ciphertext, dst)
}

// transform applies the keystream. CTR is symmetric, so encryption and
// decryption are the same operation.
func (c *aesCtr) transform(src, dst []byte) (int, error) {
	if c.stream == nil {
		return 0, ErrCipherNotStarted
	}
	if len(dst) < len(src) {
		return 0, ErrShortBuffer
	}

	c.stream.XORKeyStream(dst[:len(src)], src)

	return len(src), nil
}
