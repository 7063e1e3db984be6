package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/VincentSidot/Crypto/internal/audit"
	"github.com/VincentSidot/Crypto/internal/cliutil"
	"github.com/VincentSidot/Crypto/internal/crypto"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt PRIVATE_KEY INPUT_FILE [OUTPUT_FILE]",
	Short: "Decrypts a file with an RSA private key",
	Long: `Decrypts INPUT_FILE with PRIVATE_KEY. If OUTPUT_FILE is omitted, the
default is INPUT_FILE with its .enc suffix stripped (or INPUT_FILE.dec if
it has no .enc suffix). Pass "-" as INPUT_FILE to read ciphertext from
standard input instead, or as OUTPUT_FILE to write plaintext to standard
output instead. When INPUT_FILE is "-" and OUTPUT_FILE is omitted, the
plaintext is written to standard output.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKeyPath, inputPath := args[0], args[1]
		fromStdin := inputPath == "-"

		outputPath := cliutil.DefaultOutputPath(inputPath, cliutil.DecryptedSuffix)
		toStdout := fromStdin
		if len(args) == 3 {
			outputPath = args[2]
			toStdout = outputPath == "-"
		}

		Logger.Infof("Starting decrypt command: %s -> %s", inputPath, outputPath)

		var spinner *spinnerHandle
		if !toStdout {
			spinner = newSpinnerHandle("Decrypting " + inputPath + "...")
			defer spinner.cleanup()
		}

		entry := audit.NewEntry(audit.OpDecrypt)
		entry.KeyPath = privateKeyPath
		entry.InputPath = inputPath
		entry.OutputPath = outputPath
		defer logAudit(&entry)

		fail := func(err error) error {
			entry.Error = err.Error()
			if spinner != nil {
				spinner.fail(err)
				return err
			}
			return Logger.ErrorfAndReturn("%v", err)
		}

		if !toStdout {
			if err := cliutil.CheckOverwrite(outputPath, force); err != nil {
				return fail(err)
			}
		}

		pemBytes, err := os.ReadFile(privateKeyPath)
		if err != nil {
			return fail(err)
		}
		kp, err := crypto.FromPEM(pemBytes)
		if err != nil {
			return fail(err)
		}

		var in io.Reader
		if fromStdin {
			data, err := cliutil.ReadStdin()
			if err != nil {
				return fail(err)
			}
			in = bytes.NewReader(data)
		} else {
			f, err := os.Open(inputPath) // #nosec G304 -- path is a user-supplied CLI argument.
			if err != nil {
				return fail(err)
			}
			defer f.Close()
			in = f
		}

		var out io.Writer = os.Stdout
		if !toStdout {
			f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) // #nosec G304,G306
			if err != nil {
				return fail(err)
			}
			defer f.Close()
			out = f
		}

		dec, err := crypto.NewDecryptor(in, kp, chunkSize)
		if err != nil {
			return fail(err)
		}

		written, err := copyChunked(out, dec, chunkSize)
		if err != nil {
			return fail(err)
		}

		entry.BytesTotal = written
		entry.Success = true
		Logger.Infof("Decrypt command completed successfully (%s)", cliutil.FormatBytes(written))

		if spinner != nil {
			spinner.succeed(successLine("Decrypted", inputPath, cliutil.FormatBytes(written), outputPath))
		}
		return nil
	},
}

func init() {
	decryptCmd.Flags().BoolVar(&force, "force", force, "overwrite an existing output file")
	decryptCmd.Flags().IntVar(&chunkSize, "chunk-size", chunkSize, "plaintext chunk size in bytes")
}
