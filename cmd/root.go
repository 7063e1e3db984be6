package cmd

import (
	logger "github.com/VincentSidot/Crypto/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "crypto",
		Short: "Hybrid RSA/AES-256-GCM file encryption",
		Long: `crypto generates RSA key pairs and uses them to encrypt and decrypt
files with a streaming hybrid scheme: a fresh AES-256 key per file, wrapped
under the recipient's RSA public key, with the file body sealed chunk by
chunk under AES-256-GCM.

Usage:
  crypto keygen [-b BITS] OUTPUT_PATH
  crypto encrypt PUBLIC_KEY INPUT_FILE [OUTPUT_FILE]
  crypto decrypt PRIVATE_KEY INPUT_FILE [OUTPUT_FILE]

Run 'crypto help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing crypto command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
}
