package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// ReadStdin reads all content from stdin. It refuses to read from a
// terminal with no piped input, since a hanging read there looks to the
// user like the command froze.
func ReadStdin() ([]byte, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no data provided on stdin (hint: pipe a file into this command)")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}
	return data, nil
}

// FormatBytes renders n as a human-readable byte size, e.g. "4.2 MB".
func FormatBytes(n int64) string {
	return humanize.Bytes(uint64(n))
}
