package services

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-certtool/internal/certificate"
	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// PubkeyOptions configures a public certificate derivation run.
type PubkeyOptions struct {
	// KeyFile is the keypair certificate to read. Required.
	KeyFile string

	// OutputFile is the destination path. Defaults to KeyFile + ".pub".
	OutputFile string
}

// PubkeyService derives public-only certificates from keypair certificate
// files, decrypting them first when they are password protected.
type PubkeyService struct {
	fs        afero.Fs
	suite     interfaces.Suite
	passwords interfaces.PasswordReader
}

// NewPubkeyService creates a pubkey service.
func NewPubkeyService(
	fs afero.Fs, suite interfaces.Suite, passwords interfaces.PasswordReader,
) *PubkeyService {
	return &PubkeyService{fs: fs, suite: suite, passwords: passwords}
}

// Run reads the keypair certificate named in opts, prompting for the
// passphrase when the file carries the encryption magic, and writes a
// public-only certificate next to it. The key file must be accessible to its
// owner only; existing output files are never overwritten.
func (s *PubkeyService) Run(opts PubkeyOptions) error {
	if opts.KeyFile == "" {
		return fmt.Errorf("expecting a key filename (-k keypair.cert)")
	}

	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = opts.KeyFile + ".pub"
	}

	exists, err := afero.Exists(s.fs, outputFile)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", outputFile, err)
	}
	if exists {
		return fmt.Errorf("won't clobber existing file %s", outputFile)
	}

	if err := s.checkKeyFileMode(opts.KeyFile); err != nil {
		return err
	}

	data, err := afero.ReadFile(s.fs, opts.KeyFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.KeyFile, err)
	}
	defer crypto.Zeroize(data)

	workCert := data
	if certificate.IsEncrypted(data) {
		password, err := s.passwords.ReadPassword("Enter passphrase: ")
		if err != nil {
			return fmt.Errorf("failed to read passphrase: %w", err)
		}

		decrypted, err := certificate.Decrypt(s.suite, data, password)
		crypto.Zeroize(password)
		if err != nil {
			return fmt.Errorf("failed to decrypt %s: %w", opts.KeyFile, err)
		}
		defer crypto.Zeroize(decrypted)

		workCert = decrypted
	}

	fields, err := certificate.ExtractPublicFields(workCert)
	if err != nil {
		return fmt.Errorf("failed to extract public fields from %s: %w",
			opts.KeyFile, err)
	}

	pubCert, err := certificate.CreatePubkey(fields)
	if err != nil {
		return fmt.Errorf("failed to create public certificate: %w", err)
	}

	return writeExclusive(s.fs, outputFile, pubCert)
}

// checkKeyFileMode rejects key files that are readable or writable beyond
// their owner, or that carry setuid/setgid/sticky bits.
func (s *PubkeyService) checkKeyFileMode(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("missing key file %s: %w", path, err)
	}

	mode := info.Mode()
	if mode.Perm()&0o077 != 0 ||
		mode&(os.ModeSetuid|os.ModeSetgid|os.ModeSticky) != 0 {
		return fmt.Errorf("only user permissions allowed for %s", path)
	}
	if mode.Perm()&0o400 == 0 {
		return fmt.Errorf("can't read %s", path)
	}

	return nil
}
