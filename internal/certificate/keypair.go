package certificate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/interfaces"
	"github.com/deploymenttheory/go-certtool/internal/types"
)

// CreateKeypair builds a private keypair certificate: a random artifact ID,
// a fresh key agreement keypair, and a fresh signing keypair, all encoded as
// tagged fields. The returned certificate contains private key material; the
// caller is responsible for protecting it (see Encrypt) and zeroizing it.
func CreateKeypair(suite interfaces.Suite) ([]byte, error) {
	artifactID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate artifact id: %w", err)
	}

	agreementPub, agreementPriv, err := suite.AgreementKeypair()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agreement keypair: %w", err)
	}
	defer crypto.Zeroize(agreementPriv)

	signingPub, signingPriv, err := suite.SigningKeypair()
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keypair: %w", err)
	}
	defer crypto.Zeroize(signingPriv)

	return NewBuilder().
		AddUint32(types.FieldCertificateVersion, types.CertificateVersion1).
		AddBytes(types.FieldCertificateType, types.CertTypePrivateEntity[:]).
		AddUint16(types.FieldCertificateCryptoSuite, types.CryptoSuiteV1).
		AddBytes(types.FieldArtifactID, artifactID[:]).
		AddBytes(types.FieldPublicEncryptionKey, agreementPub).
		AddBytes(types.FieldPrivateEncryptionKey, agreementPriv).
		AddBytes(types.FieldPublicSigningKey, signingPub).
		AddBytes(types.FieldPrivateSigningKey, signingPriv).
		Emit()
}

// PublicFields are the fields of a keypair certificate that may be shared.
type PublicFields struct {
	ArtifactID    []byte
	EncryptionKey []byte
	SigningKey    []byte
}

// ExtractPublicFields pulls the artifact ID and the two public keys out of a
// keypair certificate.
func ExtractPublicFields(cert []byte) (*PublicFields, error) {
	parser := NewParser(cert)

	artifactID, err := parser.Find(types.FieldArtifactID)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact id: %w", err)
	}

	encryptionKey, err := parser.Find(types.FieldPublicEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read public encryption key: %w", err)
	}

	signingKey, err := parser.Find(types.FieldPublicSigningKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read public signing key: %w", err)
	}

	return &PublicFields{
		ArtifactID:    artifactID,
		EncryptionKey: encryptionKey,
		SigningKey:    signingKey,
	}, nil
}
