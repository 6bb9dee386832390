package interfaces

// PasswordReader prompts for and reads a password or passphrase.
type PasswordReader interface {
	// ReadPassword prints prompt and reads a password without echoing it.
	// The caller owns the returned bytes and must zeroize them when done.
	ReadPassword(prompt string) ([]byte, error)
}
