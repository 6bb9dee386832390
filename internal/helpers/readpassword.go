// Package helpers holds small supporting utilities shared by the command
// surface: terminal password entry and output path derivation.
package helpers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

// ErrNotATerminal is returned when password entry is requested but standard
// input is not a terminal.
var ErrNotATerminal = errors.New("standard input is not a terminal")

// terminalPasswordReader reads passphrases from a terminal with echo
// disabled. term.ReadPassword saves and restores the terminal state on every
// path, including interruption, so no process-wide signal handling is needed.
type terminalPasswordReader struct {
	in  *os.File
	out io.Writer
}

// Ensure terminalPasswordReader implements the PasswordReader interface.
var _ interfaces.PasswordReader = (*terminalPasswordReader)(nil)

// NewTerminalPasswordReader creates a password reader bound to standard
// input and output.
func NewTerminalPasswordReader() interfaces.PasswordReader {
	return &terminalPasswordReader{in: os.Stdin, out: os.Stdout}
}

// ReadPassword prints prompt and reads a passphrase without echoing it.
func (r *terminalPasswordReader) ReadPassword(prompt string) ([]byte, error) {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotATerminal
	}

	fmt.Fprint(r.out, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	return password, nil
}
