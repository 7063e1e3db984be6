package cmd

import (
	"os"
	"path/filepath"

	"github.com/VincentSidot/Crypto/internal/audit"
	"github.com/VincentSidot/Crypto/internal/cliutil"
	"github.com/VincentSidot/Crypto/internal/crypto"
	"github.com/VincentSidot/Crypto/internal/ui"

	"github.com/spf13/cobra"
)

var keygenBits = defaultConfig().Bits

var keygenCmd = &cobra.Command{
	Use:   "keygen OUTPUT_PATH",
	Short: "Generates an RSA key pair",
	Long: `Generates an RSA key pair and writes the private half to OUTPUT_PATH
and the public half to OUTPUT_PATH.pub.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := args[0]
		publicPath := cliutil.DefaultOutputPath(outputPath, cliutil.PublicKeySuffix)

		Logger.Infof("Starting keygen command for %s (%d bits)", outputPath, keygenBits)
		spinner, cleanup := startSpinner("Generating RSA key pair...")
		defer cleanup()

		entry := audit.NewEntry(audit.OpKeygen)
		entry.KeyPath = outputPath
		entry.Bits = keygenBits
		defer logAudit(&entry)

		if err := cliutil.CheckOverwrite(outputPath, force); err != nil {
			entry.Error = err.Error()
			spinner.FinalMSG = failLine(err)
			return err
		}
		if err := cliutil.CheckOverwrite(publicPath, force); err != nil {
			entry.Error = err.Error()
			spinner.FinalMSG = failLine(err)
			return err
		}

		kp, err := crypto.Generate(keygenBits)
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to generate key pair: %v", err)
		}
		Logger.Debugf("Key pair generated")

		privPEM, err := kp.ToPEMPrivate()
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to encode private key: %v", err)
		}
		pubPEM, err := kp.ToPEMPublic()
		if err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to encode public key: %v", err)
		}

		if err := os.MkdirAll(filepath.Dir(outputPath), 0700); err != nil && filepath.Dir(outputPath) != "." {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to create output directory: %v", err)
		}
		// #nosec G306 -- an RSA private key needs owner-only read/write.
		if err := os.WriteFile(outputPath, privPEM, 0600); err != nil {
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to write private key: %v", err)
		}
		if err := os.WriteFile(publicPath, pubPEM, 0644); err != nil { // #nosec G306
			entry.Error = err.Error()
			return Logger.ErrorfAndReturn("failed to write public key: %v", err)
		}

		entry.Success = true
		Logger.Infof("Keygen command completed successfully")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Key pair written to " +
			ui.Path.Sprint(outputPath) + " and " + ui.Path.Sprint(publicPath)
		return nil
	},
}

func init() {
	keygenCmd.Flags().IntVarP(&keygenBits, "bits", "b", keygenBits, "RSA modulus size in bits")
	keygenCmd.Flags().BoolVar(&force, "force", force, "overwrite existing output files")
}
