package cmd

import (
	"os"

	"github.com/VincentSidot/Crypto/internal/audit"
	"github.com/VincentSidot/Crypto/internal/cliutil"
	"github.com/VincentSidot/Crypto/internal/crypto"

	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt PUBLIC_KEY INPUT_FILE [OUTPUT_FILE]",
	Short: "Encrypts a file under an RSA public key",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		publicKeyPath, inputPath := args[0], args[1]
		outputPath := cliutil.DefaultOutputPath(inputPath, cliutil.EncryptedSuffix)
		if len(args) == 3 {
			outputPath = args[2]
		}

		Logger.Infof("Starting encrypt command: %s -> %s", inputPath, outputPath)
		spinner, cleanup := startSpinner("Encrypting " + inputPath + "...")
		defer cleanup()

		entry := audit.NewEntry(audit.OpEncrypt)
		entry.KeyPath = publicKeyPath
		entry.InputPath = inputPath
		entry.OutputPath = outputPath
		defer logAudit(&entry)

		if err := cliutil.CheckOverwrite(outputPath, force); err != nil {
			entry.Error = err.Error()
			spinner.FinalMSG = failLine(err)
			return err
		}

		pemBytes, err := os.ReadFile(publicKeyPath)
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to read public key: %v", err)
		}
		kp, err := crypto.FromPEM(pemBytes)
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to parse public key: %v", err)
		}

		in, err := os.Open(inputPath) // #nosec G304 -- path is a user-supplied CLI argument.
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to open input file: %v", err)
		}
		defer in.Close()

		out, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) // #nosec G304,G306
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to create output file: %v", err)
		}
		defer out.Close()

		enc, err := crypto.NewEncryptor(out, kp, chunkSize)
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to start encryption session: %v", err)
		}

		written, err := copyChunked(enc, in, chunkSize)
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("encryption failed: %v", err)
		}
		if err := enc.Close(); err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to finalize encryption: %v", err)
		}

		entry.BytesTotal = written
		entry.Success = true
		Logger.Infof("Encrypt command completed successfully (%s)", cliutil.FormatBytes(written))

		spinner.FinalMSG = successLine("Encrypted", inputPath, cliutil.FormatBytes(written), outputPath)
		return nil
	},
}

func init() {
	encryptCmd.Flags().BoolVar(&force, "force", force, "overwrite an existing output file")
	encryptCmd.Flags().IntVar(&chunkSize, "chunk-size", chunkSize, "plaintext chunk size in bytes")
}
