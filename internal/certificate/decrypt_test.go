package certificate

import (
	"crypto/sha512"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// countingSuite wraps a suite and counts key derivations, so tests can prove
// that rejected inputs never reach the KDF.
type countingSuite struct {
	interfaces.Suite
	kdfCalls int
}

func (c *countingSuite) DeriveKey(password, salt []byte, rounds uint32) ([]byte, error) {
	c.kdfCalls++
	return c.Suite.DeriveKey(password, salt, rounds)
}

// fastKdfSuite derives keys with a single hash pass. The derivation is still
// sensitive to password, salt, and rounds, but its cost does not depend on
// the rounds value, so tests that tamper with the rounds field stay cheap.
type fastKdfSuite struct {
	interfaces.Suite
}

func (f *fastKdfSuite) DeriveKey(password, salt []byte, rounds uint32) ([]byte, error) {
	h := sha512.New()
	h.Write(password)
	h.Write(salt)
	var encoded [4]byte
	binary.BigEndian.PutUint32(encoded[:], rounds)
	h.Write(encoded[:])
	return h.Sum(nil)[:f.Suite.KeySize()], nil
}

func TestDecryptRoundTrip(t *testing.T) {
	suite := crypto.NewSuiteV1()

	tests := []struct {
		name     string
		cert     []byte
		password []byte
		rounds   uint32
	}{
		{name: "single byte", cert: []byte{0x00}, password: []byte("p"), rounds: 1},
		{name: "short certificate", cert: []byte("hello-cert"), password: []byte("correct-horse"), rounds: 4},
		{name: "binary certificate", cert: []byte{0xff, 0x00, 0xde, 0xad, 0xbe, 0xef}, password: []byte("passphrase"), rounds: 8},
		{name: "large certificate", cert: make([]byte, 4096), password: []byte("passphrase"), rounds: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(suite, tt.cert, tt.password, tt.rounds)
			require.NoError(t, err)

			decrypted, err := Decrypt(suite, encrypted, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.cert, decrypted)
		})
	}
}

func TestDecryptConcreteScenario(t *testing.T) {
	suite := crypto.NewSuiteV1()
	cert := []byte("hello-cert")
	password := []byte("correct-horse")

	encrypted, err := Encrypt(suite, cert, password, 4)
	require.NoError(t, err)
	require.Equal(t, MinEncryptedSize(suite)+len(cert), len(encrypted))

	t.Run("same password recovers the certificate", func(t *testing.T) {
		decrypted, err := Decrypt(suite, encrypted, password)
		require.NoError(t, err)
		assert.Equal(t, cert, decrypted)
	})

	t.Run("wrong password is a verification failure", func(t *testing.T) {
		_, err := Decrypt(suite, encrypted, []byte("wrong"))
		assert.ErrorIs(t, err, ErrVerification)
	})

	t.Run("one byte truncation above the floor is a verification failure", func(t *testing.T) {
		_, err := Decrypt(suite, encrypted[:len(encrypted)-1], password)
		assert.ErrorIs(t, err, ErrVerification)
	})

	t.Run("truncation below the floor is a size failure", func(t *testing.T) {
		_, err := Decrypt(suite, encrypted[:MinEncryptedSize(suite)-1], password)
		assert.ErrorIs(t, err, ErrNotMinimumSize)
	})
}

// Flipping any single bit anywhere in the envelope must yield a verification
// failure, never success and never corrupted plaintext.
func TestDecryptTamperDetection(t *testing.T) {
	suite := &fastKdfSuite{Suite: crypto.NewSuiteV1()}
	cert := []byte("hello-cert")
	password := []byte("correct-horse")

	encrypted, err := Encrypt(suite, cert, password, 4)
	require.NoError(t, err)

	for i := range encrypted {
		for bit := 0; bit < 8; bit++ {
			tampered := make([]byte, len(encrypted))
			copy(tampered, encrypted)
			tampered[i] ^= 1 << bit

			_, err := Decrypt(suite, tampered, password)
			require.ErrorIs(t, err, ErrVerification,
				"flipping bit %d of byte %d must fail verification", bit, i)
		}
	}
}

func TestDecryptMinimumSizeRejection(t *testing.T) {
	inner := crypto.NewSuiteV1()
	suite := &countingSuite{Suite: inner}
	minSize := MinEncryptedSize(inner)

	tests := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "magic only", size: 3},
		{name: "one byte short", size: minSize - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(suite, make([]byte, tt.size), []byte("passphrase"))
			assert.ErrorIs(t, err, ErrNotMinimumSize)
		})
	}

	assert.Zero(t, suite.kdfCalls, "undersized envelopes must be rejected before any key derivation")
}

func TestDecryptBadMagic(t *testing.T) {
	inner := crypto.NewSuiteV1()
	suite := &countingSuite{Suite: inner}

	encrypted, err := Encrypt(suite, []byte("hello-cert"), []byte("passphrase"), 4)
	require.NoError(t, err)
	suite.kdfCalls = 0

	copy(encrypted[:3], "XYZ")
	_, err = Decrypt(suite, encrypted, []byte("passphrase"))
	assert.ErrorIs(t, err, ErrVerification)
	assert.Zero(t, suite.kdfCalls, "foreign formats short-circuit before key derivation")
}

func TestIsEncrypted(t *testing.T) {
	suite := crypto.NewSuiteV1()

	encrypted, err := Encrypt(suite, []byte("hello-cert"), []byte("passphrase"), 4)
	require.NoError(t, err)

	assert.True(t, IsEncrypted(encrypted))
	assert.False(t, IsEncrypted([]byte("EN")))
	assert.False(t, IsEncrypted([]byte("plain certificate bytes")))
	assert.False(t, IsEncrypted(nil))
}
