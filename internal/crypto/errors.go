package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a key has the wrong length for the
	// suite's cipher or MAC.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when an initialization vector has the
	// wrong length for the suite's cipher.
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrShortBuffer is returned when an output buffer is too small to hold
	// a cipher operation's result.
	ErrShortBuffer = errors.New("output buffer too short")

	// ErrCipherNotStarted is returned when Encrypt or Decrypt is called
	// before the corresponding start operation.
	ErrCipherNotStarted = errors.New("stream cipher not started")
)
