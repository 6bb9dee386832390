package types

// Encrypted certificate envelope layout. All integer fields are big-endian
// and fields are concatenated with no padding:
//
//	magic (3 bytes, "ENC")
//	rounds (4 bytes, key derivation work factor)
//	salt (suite key size)
//	iv framing (suite IV size)
//	ciphertext (same length as the plaintext certificate)
//	mac tag (suite MAC size)
//
// Field lengths are fixed by the suite parameters, so the plaintext length is
// recovered from the total envelope length.
const (
	// EncryptedCertMagic marks an encrypted certificate file.
	EncryptedCertMagic = "ENC"

	// EncryptedCertMagicSize is the length of the magic marker in bytes.
	EncryptedCertMagicSize = 3

	// EncryptedCertRoundsSize is the length of the rounds field in bytes.
	EncryptedCertRoundsSize = 4
)

// DefaultKeyDerivationRounds is the key derivation work factor used when the
// operator does not specify one.
const DefaultKeyDerivationRounds uint32 = 50000
