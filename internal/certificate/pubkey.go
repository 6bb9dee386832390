package certificate

import (
	"github.com/deploymenttheory/go-certtool/internal/types"
)

// CreatePubkey builds a public-only certificate from the shareable fields of
// a keypair certificate.
func CreatePubkey(fields *PublicFields) ([]byte, error) {
	return NewBuilder().
		AddUint32(types.FieldCertificateVersion, types.CertificateVersion1).
		AddBytes(types.FieldCertificateType, types.CertTypePublicEntity[:]).
		AddUint16(types.FieldCertificateCryptoSuite, types.CryptoSuiteV1).
		AddBytes(types.FieldArtifactID, fields.ArtifactID).
		AddBytes(types.FieldPublicEncryptionKey, fields.EncryptionKey).
		AddBytes(types.FieldPublicSigningKey, fields.SigningKey).
		Emit()
}
