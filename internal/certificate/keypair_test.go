package certificate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/types"
)

func TestCreateKeypair(t *testing.T) {
	suite := crypto.NewSuiteV1()

	cert, err := CreateKeypair(suite)
	require.NoError(t, err)

	parser := NewParser(cert)

	version, err := parser.FindUint32(types.FieldCertificateVersion)
	require.NoError(t, err)
	assert.Equal(t, types.CertificateVersion1, version)

	certType, err := parser.Find(types.FieldCertificateType)
	require.NoError(t, err)
	assert.Equal(t, types.CertTypePrivateEntity[:], certType)

	suiteID, err := parser.FindUint16(types.FieldCertificateCryptoSuite)
	require.NoError(t, err)
	assert.Equal(t, types.CryptoSuiteV1, suiteID)

	artifactID, err := parser.Find(types.FieldArtifactID)
	require.NoError(t, err)
	assert.Len(t, artifactID, 16)

	tests := []struct {
		name    string
		fieldID uint16
		size    int
	}{
		{name: "public encryption key", fieldID: types.FieldPublicEncryptionKey, size: 32},
		{name: "private encryption key", fieldID: types.FieldPrivateEncryptionKey, size: 32},
		{name: "public signing key", fieldID: types.FieldPublicSigningKey, size: 32},
		{name: "private signing key", fieldID: types.FieldPrivateSigningKey, size: 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := parser.Find(tt.fieldID)
			require.NoError(t, err)
			assert.Len(t, key, tt.size)
		})
	}
}

func TestCreateKeypairIsUnique(t *testing.T) {
	suite := crypto.NewSuiteV1()

	first, err := CreateKeypair(suite)
	require.NoError(t, err)
	second, err := CreateKeypair(suite)
	require.NoError(t, err)

	firstID, err := NewParser(first).Find(types.FieldArtifactID)
	require.NoError(t, err)
	secondID, err := NewParser(second).Find(types.FieldArtifactID)
	require.NoError(t, err)

	assert.NotEqual(t, firstID, secondID, "artifact ids should be random")
}

func TestExtractPublicFields(t *testing.T) {
	suite := crypto.NewSuiteV1()

	cert, err := CreateKeypair(suite)
	require.NoError(t, err)

	fields, err := ExtractPublicFields(cert)
	require.NoError(t, err)
	assert.Len(t, fields.ArtifactID, 16)
	assert.Len(t, fields.EncryptionKey, 32)
	assert.Len(t, fields.SigningKey, 32)

	t.Run("fails on a certificate without key fields", func(t *testing.T) {
		bare, err := NewBuilder().
			AddUint32(types.FieldCertificateVersion, types.CertificateVersion1).
			Emit()
		require.NoError(t, err)

		_, err = ExtractPublicFields(bare)
		assert.ErrorIs(t, err, ErrFieldNotFound)
	})
}

func TestCreatePubkey(t *testing.T) {
	suite := crypto.NewSuiteV1()

	keypair, err := CreateKeypair(suite)
	require.NoError(t, err)
	fields, err := ExtractPublicFields(keypair)
	require.NoError(t, err)

	pubCert, err := CreatePubkey(fields)
	require.NoError(t, err)

	parser := NewParser(pubCert)

	certType, err := parser.Find(types.FieldCertificateType)
	require.NoError(t, err)
	assert.Equal(t, types.CertTypePublicEntity[:], certType)

	encryptionKey, err := parser.Find(types.FieldPublicEncryptionKey)
	require.NoError(t, err)
	assert.Equal(t, fields.EncryptionKey, encryptionKey)

	signingKey, err := parser.Find(types.FieldPublicSigningKey)
	require.NoError(t, err)
	assert.Equal(t, fields.SigningKey, signingKey)

	t.Run("carries no private key material", func(t *testing.T) {
		_, err := parser.Find(types.FieldPrivateEncryptionKey)
		assert.ErrorIs(t, err, ErrFieldNotFound)
		_, err = parser.Find(types.FieldPrivateSigningKey)
		assert.ErrorIs(t, err, ErrFieldNotFound)
	})
}
