package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-certtool/internal/services"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a keypair certificate file",
	Long: `Generate a keypair certificate holding a fresh key agreement keypair and
a fresh signing keypair.

The certificate is encrypted at rest when a non-empty passphrase is
entered; an empty passphrase writes it in the clear. Existing files are
never overwritten.

Examples:
  # Generate keypair.cert in the working directory
  certtool keygen

  # Choose the output path and key derivation work factor
  certtool keygen -o signer.cert -R 100000`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := LoadToolConfig()
		if err != nil {
			return err
		}

		fs, suite, passwords := toolDeps()

		output := outputFile
		if output == "" {
			output = config.DefaultKeypairFile
		}

		return services.NewKeygenService(fs, suite, passwords).Run(
			services.KeygenOptions{
				OutputFile: output,
				Rounds:     effectiveRounds(rounds, config),
			})
	},
}
