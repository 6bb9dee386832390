package certificate

import "errors"

var (
	// ErrNotMinimumSize is returned when an encrypted certificate is smaller
	// than the fixed envelope overhead. It is raised before any cryptographic
	// work is done.
	ErrNotMinimumSize = errors.New("encrypted certificate is smaller than the minimum envelope size")

	// ErrVerification is returned when an encrypted certificate fails
	// authentication. A bad magic marker, a wrong password, and a tampered
	// envelope all collapse into this one error so callers cannot tell them
	// apart.
	ErrVerification = errors.New("certificate could not be verified")

	// ErrInvalidRounds is returned when encryption is requested with a zero
	// key derivation work factor.
	ErrInvalidRounds = errors.New("key derivation rounds must be greater than zero")

	// ErrEmptyCertificate is returned when encryption is requested for an
	// empty certificate payload.
	ErrEmptyCertificate = errors.New("certificate payload must not be empty")

	// ErrFieldNotFound is returned when a certificate does not contain a
	// requested field.
	ErrFieldNotFound = errors.New("certificate field not found")

	// ErrTruncatedField is returned when a certificate ends in the middle of
	// a field header or value.
	ErrTruncatedField = errors.New("certificate field truncated")

	// ErrFieldTooLarge is returned when a field value does not fit the
	// 16-bit length prefix.
	ErrFieldTooLarge = errors.New("certificate field value too large")
)
