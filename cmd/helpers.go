package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/VincentSidot/Crypto/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The
// cleanup function automatically calls ui.EnsureNewline() on the final
// message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// spinnerHandle wraps startSpinner for commands that may or may not want
// one running, depending on whether their output is going to a terminal
// or to standard output as data (decrypt's "-" destination, where a
// spinner writing to the same stream would corrupt the plaintext).
type spinnerHandle struct {
	s       *spinner.Spinner
	cleanUp func()
}

func newSpinnerHandle(message string) *spinnerHandle {
	s, cleanup := startSpinner(message)
	return &spinnerHandle{s: s, cleanUp: cleanup}
}

func (h *spinnerHandle) cleanup() {
	h.cleanUp()
}

func (h *spinnerHandle) succeed(message string) {
	h.s.FinalMSG = message
}

func (h *spinnerHandle) fail(err error) {
	h.s.FinalMSG = failLine(err)
}

// successLine renders a standard "<check> <verb> <path> (<size>) to
// <path>" success message, shared by encrypt and decrypt.
func successLine(verb, inputPath, size, outputPath string) string {
	return ui.Success.Sprint("✓") + " " + verb + " " + ui.Path.Sprint(inputPath) +
		" (" + ui.Highlight.Sprint(size) + ") to " + ui.Path.Sprint(outputPath)
}

// failLine renders a standard "<cross> <message>" failure message.
func failLine(err error) string {
	return ui.Error.Sprint("✗ ") + err.Error()
}

// copyChunked streams src into dst in chunkSize-sized pieces, returning
// the number of bytes copied. It exists so encrypt and decrypt drive
// their crypto.Encryptor/crypto.Decryptor with read sizes that match the
// configured chunk size, rather than io.Copy's internal default.
func copyChunked(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
