// Package services orchestrates the certificate workflows behind the
// command-line surface: key generation and public certificate derivation.
// Services hold their collaborators (filesystem, cipher suite, password
// entry) so tests can substitute all of them.
package services

import (
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-certtool/internal/certificate"
	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/interfaces"
	"github.com/deploymenttheory/go-certtool/internal/types"
)

// DefaultKeypairFile is the keygen output path when none is given.
const DefaultKeypairFile = "keypair.cert"

// certFileMode keeps generated certificates readable by the owner only.
const certFileMode os.FileMode = 0o600

// KeygenOptions configures a key generation run.
type KeygenOptions struct {
	// OutputFile is the destination path. Defaults to DefaultKeypairFile.
	OutputFile string

	// Rounds is the key derivation work factor used when the certificate is
	// encrypted. Defaults to types.DefaultKeyDerivationRounds.
	Rounds uint32
}

// KeygenService generates keypair certificates and writes them to disk,
// optionally encrypted under an operator passphrase.
type KeygenService struct {
	fs        afero.Fs
	suite     interfaces.Suite
	passwords interfaces.PasswordReader
}

// NewKeygenService creates a keygen service.
func NewKeygenService(
	fs afero.Fs, suite interfaces.Suite, passwords interfaces.PasswordReader,
) *KeygenService {
	return &KeygenService{fs: fs, suite: suite, passwords: passwords}
}

// Run generates a keypair certificate per opts. The operator is prompted for
// a passphrase; a non-empty passphrase is confirmed with a second prompt and
// the certificate is encrypted under it. An empty passphrase writes the
// certificate in the clear. Existing files are never overwritten.
func (s *KeygenService) Run(opts KeygenOptions) error {
	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = DefaultKeypairFile
	}

	rounds := opts.Rounds
	if rounds == 0 {
		rounds = types.DefaultKeyDerivationRounds
	}

	exists, err := afero.Exists(s.fs, outputFile)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", outputFile, err)
	}
	if exists {
		return fmt.Errorf("won't clobber existing file %s", outputFile)
	}

	password, err := s.passwords.ReadPassword("Enter passphrase : ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	defer crypto.Zeroize(password)

	if len(password) > 0 {
		verify, err := s.passwords.ReadPassword("Verify passphrase: ")
		if err != nil {
			return fmt.Errorf("failed to read verification passphrase: %w", err)
		}
		match := len(password) == len(verify) &&
			subtle.ConstantTimeCompare(password, verify) == 1
		crypto.Zeroize(verify)
		if !match {
			return fmt.Errorf("passphrases do not match")
		}
	}

	cert, err := certificate.CreateKeypair(s.suite)
	if err != nil {
		return fmt.Errorf("failed to generate keypair certificate: %w", err)
	}
	defer crypto.Zeroize(cert)

	writeCert := cert
	if len(password) > 0 {
		encrypted, err := certificate.Encrypt(s.suite, cert, password, rounds)
		if err != nil {
			return fmt.Errorf("failed to encrypt keypair certificate: %w", err)
		}
		writeCert = encrypted
	}

	return writeExclusive(s.fs, outputFile, writeCert)
}

// writeExclusive creates path with owner-only permissions, refusing to
// replace an existing file.
func writeExclusive(fs afero.Fs, path string, data []byte) error {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, certFileMode)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
