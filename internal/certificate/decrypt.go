package certificate

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/deploymenttheory/go-certtool/internal/interfaces"
	"github.com/deploymenttheory/go-certtool/internal/types"
)

// MinEncryptedSize returns the fixed envelope overhead for the suite: the
// size of an envelope with a zero-length certificate. Anything smaller is
// rejected before any cryptographic work happens.
func MinEncryptedSize(suite interfaces.Suite) int {
	return types.EncryptedCertMagicSize +
		types.EncryptedCertRoundsSize +
		suite.KeySize() +
		suite.IVSize() +
		suite.MacSize()
}

// IsEncrypted reports whether data begins with the encrypted certificate
// magic marker.
func IsEncrypted(data []byte) bool {
	if len(data) < types.EncryptedCertMagicSize {
		return false
	}
	return subtle.ConstantTimeCompare(
		data[:types.EncryptedCertMagicSize], []byte(types.EncryptedCertMagic)) == 1
}

// Decrypt opens an encrypted certificate envelope with the given password.
// The MAC is verified over the whole envelope before any decryption is
// attempted. A bad magic marker and a bad tag both return ErrVerification;
// an undersized buffer returns ErrNotMinimumSize. On success the returned
// plaintext is a fresh buffer owned by the caller.
//
// The rounds value driving key derivation is read from the envelope before
// the tag has been checked, so a crafted envelope can demand arbitrarily
// expensive derivation work before it is rejected. That is a property of the
// format; see DESIGN.md.
func Decrypt(
	suite interfaces.Suite, encrypted, password []byte,
) ([]byte, error) {
	minSize := MinEncryptedSize(suite)
	if len(encrypted) < minSize {
		return nil, ErrNotMinimumSize
	}

	offset := 0

	// Magic, constant time. Checked before key derivation, so "not our
	// format" short-circuits ahead of the KDF cost.
	if subtle.ConstantTimeCompare(
		encrypted[:types.EncryptedCertMagicSize],
		[]byte(types.EncryptedCertMagic)) != 1 {
		return nil, ErrVerification
	}
	offset += types.EncryptedCertMagicSize

	// Rounds, big-endian.
	rounds := binary.BigEndian.Uint32(encrypted[offset:])
	offset += types.EncryptedCertRoundsSize

	// Salt.
	salt := make([]byte, suite.KeySize())
	copy(salt, encrypted[offset:])
	offset += len(salt)

	cipher, mac, err := cipherMacFromPassword(suite, password, salt, rounds)
	if err != nil {
		return nil, err
	}

	// Authenticate the whole envelope except the trailing tag, then compare
	// in constant time. No decryption is attempted on a bad tag.
	tagStart := len(encrypted) - suite.MacSize()
	if err := mac.Write(encrypted[:tagStart]); err != nil {
		return nil, fmt.Errorf("failed to mac envelope: %w", err)
	}
	if subtle.ConstantTimeCompare(mac.Finalize(), encrypted[tagStart:]) != 1 {
		return nil, ErrVerification
	}

	// Tag verified. The bytes between the salt and the tag are the cipher's
	// framing followed by the ciphertext.
	body := encrypted[offset:tagStart]

	n, err := cipher.StartDecryption(body)
	if err != nil {
		return nil, fmt.Errorf("failed to start decryption: %w", err)
	}

	cert := make([]byte, len(encrypted)-minSize)
	if _, err := cipher.Decrypt(body[n:], cert); err != nil {
		return nil, fmt.Errorf("failed to decrypt certificate: %w", err)
	}

	return cert, nil
}
