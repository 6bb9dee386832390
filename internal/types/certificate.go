package types

// Certificate field identifiers. A certificate is a sequence of tagged
// fields, each encoded as fieldID (uint16 BE) | length (uint16 BE) | value.
const (
	// FieldCertificateVersion holds the certificate format version (uint32).
	FieldCertificateVersion uint16 = 0x0001

	// FieldCertificateType holds the 16-byte certificate type identifier.
	FieldCertificateType uint16 = 0x0002

	// FieldCertificateCryptoSuite holds the crypto suite identifier (uint16).
	FieldCertificateCryptoSuite uint16 = 0x0003

	// FieldArtifactID holds the 16-byte artifact identifier.
	FieldArtifactID uint16 = 0x0040

	// FieldPublicEncryptionKey holds the key agreement public key.
	FieldPublicEncryptionKey uint16 = 0x0041

	// FieldPrivateEncryptionKey holds the key agreement private key.
	FieldPrivateEncryptionKey uint16 = 0x0042

	// FieldPublicSigningKey holds the signature public key.
	FieldPublicSigningKey uint16 = 0x0043

	// FieldPrivateSigningKey holds the signature private key.
	FieldPrivateSigningKey uint16 = 0x0044
)

// CertificateVersion1 is the only certificate format version emitted.
const CertificateVersion1 uint32 = 0x00010000

// CryptoSuiteV1 identifies the default cipher suite
// (AES-256-CTR / HMAC-SHA-512 / PBKDF2-HMAC-SHA-512).
const CryptoSuiteV1 uint16 = 0x0001

// Certificate type identifiers.
var (
	// CertTypePrivateEntity marks a certificate carrying private key material.
	CertTypePrivateEntity = [16]byte{
		0x81, 0x4e, 0xbc, 0x50, 0x41, 0x52, 0x4e, 0x28,
		0xa3, 0x1f, 0xf1, 0x99, 0x60, 0xd4, 0x3b, 0x01,
	}

	// CertTypePublicEntity marks a certificate carrying only public keys.
	CertTypePublicEntity = [16]byte{
		0x81, 0x4e, 0xbc, 0x50, 0x41, 0x52, 0x4e, 0x28,
		0xa3, 0x1f, 0xf1, 0x99, 0x60, 0xd4, 0x3b, 0x02,
	}
)
