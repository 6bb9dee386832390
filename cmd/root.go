package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-certtool/internal/crypto"
	"github.com/deploymenttheory/go-certtool/internal/helpers"
	"github.com/deploymenttheory/go-certtool/internal/interfaces"
)

var rootCmd = &cobra.Command{
	Use:   "certtool",
	Short: "Key-pair certificate generation and protection tool",
	Long: `certtool generates key-pair certificates, protects them at rest with
password-based authenticated encryption, and derives public-only
certificates from them.

Commands:
  keygen      Generate a keypair certificate file.
  pubkey      Create a pubkey certificate from a keypair.`,
	Version: "0.1.0-dev",
}

// Global flags shared by the certificate commands.
var (
	keyFile    string
	outputFile string
	rounds     uint32
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&keyFile, "key", "k", "", "Path to the keypair certificate file")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	rootCmd.PersistentFlags().Uint32VarP(&rounds, "rounds", "R", 0, "Key derivation rounds (0 uses the configured default)")

	rootCmd.AddCommand(
		keygenCmd,
		pubkeyCmd,
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// toolDeps are the collaborators every command needs: the real filesystem,
// the default cipher suite, and terminal password entry.
func toolDeps() (afero.Fs, interfaces.Suite, interfaces.PasswordReader) {
	return afero.NewOsFs(), crypto.NewSuiteV1(), helpers.NewTerminalPasswordReader()
}
