// Package certificate implements the key-pair certificate format: building
// and parsing the tagged-field payload, and the password-based authenticated
// encryption envelope protecting it at rest.
package certificate

import (
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-certtool/internal/interfaces"
	"github.com/deploymenttheory/go-certtool/internal/types"
)

// Encrypt seals a certificate under a password-derived key and returns the
// serialized envelope: magic, rounds, salt, cipher framing, ciphertext, and
// MAC tag, in that order. The magic, rounds, and salt are authenticated
// directly; the IV framing and ciphertext are authenticated as the cipher's
// output. The returned buffer is owned by the caller and is exactly
//
//	3 + 4 + KeySize + IVSize + len(cert) + MacSize
//
// bytes long. Two encryptions of the same input produce different envelopes
// because the salt and IV are drawn fresh from the suite's CSPRNG.
func Encrypt(
	suite interfaces.Suite, cert, password []byte, rounds uint32,
) ([]byte, error) {
	if len(cert) == 0 {
		return nil, ErrEmptyCertificate
	}
	if rounds == 0 {
		return nil, ErrInvalidRounds
	}

	// Fresh salt and IV per envelope. Salts share the cipher key length.
	salt := make([]byte, suite.KeySize())
	if err := suite.Random(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	iv := make([]byte, suite.IVSize())
	if err := suite.Random(iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	cipher, mac, err := cipherMacFromPassword(suite, password, salt, rounds)
	if err != nil {
		return nil, err
	}

	encryptedSize := types.EncryptedCertMagicSize +
		types.EncryptedCertRoundsSize +
		len(salt) +
		suite.IVSize() +
		len(cert) +
		suite.MacSize()

	encrypted := make([]byte, encryptedSize)
	offset := 0

	// Magic.
	copy(encrypted[offset:], types.EncryptedCertMagic)
	offset += types.EncryptedCertMagicSize
	if err := mac.Write([]byte(types.EncryptedCertMagic)); err != nil {
		return nil, fmt.Errorf("failed to mac magic: %w", err)
	}

	// Rounds, big-endian.
	binary.BigEndian.PutUint32(encrypted[offset:], rounds)
	if err := mac.Write(encrypted[offset : offset+types.EncryptedCertRoundsSize]); err != nil {
		return nil, fmt.Errorf("failed to mac rounds: %w", err)
	}
	offset += types.EncryptedCertRoundsSize

	// Salt.
	copy(encrypted[offset:], salt)
	if err := mac.Write(salt); err != nil {
		return nil, fmt.Errorf("failed to mac salt: %w", err)
	}
	offset += len(salt)

	// Cipher framing and ciphertext. The IV is not MAC'd on its own; it is
	// authenticated here as part of the cipher's self-describing output.
	bodyStart := offset

	n, err := cipher.StartEncryption(iv, encrypted[offset:])
	if err != nil {
		return nil, fmt.Errorf("failed to start encryption: %w", err)
	}
	offset += n

	n, err = cipher.Encrypt(cert, encrypted[offset:])
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt certificate: %w", err)
	}
	offset += n

	if err := mac.Write(encrypted[bodyStart:offset]); err != nil {
		return nil, fmt.Errorf("failed to mac ciphertext: %w", err)
	}

	// Trailing tag.
	copy(encrypted[offset:], mac.Finalize())

	return encrypted, nil
}
