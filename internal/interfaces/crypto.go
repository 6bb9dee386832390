package interfaces

// Suite bundles the cryptographic capabilities used to protect certificates
// at rest. Implementations are read-only after construction and safe to share
// across concurrent callers performing independent operations.
type Suite interface {
	// KeySize returns the stream cipher key size in bytes. The envelope salt
	// has this same length.
	KeySize() int

	// IVSize returns the stream cipher initialization vector size in bytes.
	IVSize() int

	// MacSize returns the MAC tag size in bytes.
	MacSize() int

	// DeriveKey derives a cipher key of KeySize bytes from a password, a salt,
	// and a key derivation work factor. The caller owns the returned key and
	// must zeroize it when done.
	DeriveKey(password, salt []byte, rounds uint32) ([]byte, error)

	// NewMac creates a MAC context keyed with key.
	NewMac(key []byte) (Mac, error)

	// NewStreamCipher creates a stream cipher context keyed with key.
	NewStreamCipher(key []byte) (StreamCipher, error)

	// Random fills buf with cryptographically secure random bytes.
	Random(buf []byte) error

	// AgreementKeypair generates a fresh key agreement keypair.
	AgreementKeypair() (public, private []byte, err error)

	// SigningKeypair generates a fresh digital signature keypair.
	SigningKeypair() (public, private []byte, err error)
}

// StreamCipher is a one-shot stream cipher context. A context is used for a
// single encryption or decryption pass and is not reusable across envelopes.
type StreamCipher interface {
	// StartEncryption writes the cipher's self-describing framing for iv at
	// the start of dst and returns the number of bytes written. It must be
	// called exactly once before Encrypt.
	StartEncryption(iv, dst []byte) (int, error)

	// Encrypt transforms plaintext into dst and returns the number of bytes
	// written, which always equals len(plaintext).
	Encrypt(plaintext, dst []byte) (int, error)

	// StartDecryption consumes the framing bytes at the start of src and
	// returns the number of bytes read. It must be called exactly once before
	// Decrypt.
	StartDecryption(src []byte) (int, error)

	// Decrypt transforms ciphertext into dst and returns the number of bytes
	// written, which always equals len(ciphertext).
	Decrypt(ciphertext, dst []byte) (int, error)
}

// Mac is a keyed message authentication context.
type Mac interface {
	// Write feeds data into the MAC.
	Write(data []byte) error

	// Finalize computes the authentication tag over everything written so
	// far. The tag is MacSize bytes long.
	Finalize() []byte
}
