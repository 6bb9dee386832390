package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-certtool/internal/services"
)

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "Create a pubkey certificate from a keypair",
	Long: `Derive a public-only certificate from a keypair certificate file.

Password-protected keypair files are decrypted after a passphrase prompt.
The key file must be readable by its owner only.

Examples:
  # Write keypair.cert.pub next to the keypair
  certtool pubkey -k keypair.cert

  # Choose the output path
  certtool pubkey -k keypair.cert -o signer.pub`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, suite, passwords := toolDeps()

		return services.NewPubkeyService(fs, suite, passwords).Run(
			services.PubkeyOptions{
				KeyFile:    keyFile,
				OutputFile: outputFile,
			})
	},
}
