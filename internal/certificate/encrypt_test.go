package certificate

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/types"
)

func TestEncryptLengthInvariant(t *testing.T) {
	suite := crypto.NewSuiteV1()

	tests := []struct {
		name string
		cert []byte
	}{
		{name: "single byte", cert: []byte{0x42}},
		{name: "short certificate", cert: []byte("hello-cert")},
		{name: "kilobyte certificate", cert: make([]byte, 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(suite, tt.cert, []byte("passphrase"), 4)
			require.NoError(t, err)

			expected := types.EncryptedCertMagicSize + types.EncryptedCertRoundsSize +
				suite.KeySize() + suite.IVSize() + len(tt.cert) + suite.MacSize()
			assert.Equal(t, expected, len(encrypted), "envelope size is exact")
			assert.Equal(t, len(tt.cert), len(encrypted)-MinEncryptedSize(suite),
				"plaintext length is recoverable from the total length")
		})
	}
}

func TestEncryptEnvelopeLayout(t *testing.T) {
	suite := crypto.NewSuiteV1()
	password := []byte("layout-password")

	encrypted, err := Encrypt(suite, []byte("hello-cert"), password, 7)
	require.NoError(t, err)

	assert.Equal(t, []byte(types.EncryptedCertMagic), encrypted[:3], "magic marker")
	assert.Equal(t, uint32(7), binary.BigEndian.Uint32(encrypted[3:7]), "rounds field, big-endian")

	// Re-derive the key from the embedded salt and confirm the trailing tag
	// authenticates everything before it.
	salt := encrypted[7 : 7+suite.KeySize()]
	key, err := suite.DeriveKey(password, salt, 7)
	require.NoError(t, err)
	defer crypto.Zeroize(key)

	mac := hmac.New(sha512.New, key)
	mac.Write(encrypted[:len(encrypted)-suite.MacSize()])
	assert.Equal(t, mac.Sum(nil), encrypted[len(encrypted)-suite.MacSize():],
		"tag covers the whole envelope except itself")
}

func TestEncryptNonDeterminism(t *testing.T) {
	suite := crypto.NewSuiteV1()
	cert := []byte("hello-cert")
	password := []byte("passphrase")

	first, err := Encrypt(suite, cert, password, 4)
	require.NoError(t, err)
	second, err := Encrypt(suite, cert, password, 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "fresh salt and IV per envelope")

	firstPlain, err := Decrypt(suite, first, password)
	require.NoError(t, err)
	secondPlain, err := Decrypt(suite, second, password)
	require.NoError(t, err)
	assert.Equal(t, cert, firstPlain)
	assert.Equal(t, cert, secondPlain)
}

func TestEncryptInputValidation(t *testing.T) {
	suite := crypto.NewSuiteV1()

	t.Run("empty certificate", func(t *testing.T) {
		_, err := Encrypt(suite, nil, []byte("passphrase"), 4)
		assert.ErrorIs(t, err, ErrEmptyCertificate)
	})

	t.Run("zero rounds", func(t *testing.T) {
		_, err := Encrypt(suite, []byte("hello-cert"), []byte("passphrase"), 0)
		assert.ErrorIs(t, err, ErrInvalidRounds)
	})
}
