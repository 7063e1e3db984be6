package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Operation names recorded in Entry.Operation.
const (
	OpKeygen  = "keygen"
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

// Entry represents a single audit log entry. Fields beyond the first four
// are populated depending on Operation; the rest are left at their zero
// value and omitted from the encoded JSON.
type Entry struct {
	ID        string `json:"id"`   // Random UUID, unique per entry.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds, UTC.
	Operation string `json:"op"`   // One of the Op* constants.
	Success   bool   `json:"ok"`   // Whether the operation completed.

	KeyPath    string `json:"key_path,omitempty"`    // Public or private key used.
	InputPath  string `json:"input_path,omitempty"`  // Source file.
	OutputPath string `json:"output_path,omitempty"` // Destination file.
	Bits       int    `json:"bits,omitempty"`        // RSA modulus size, for keygen.
	BytesTotal int64  `json:"bytes,omitempty"`       // Plaintext bytes processed.
	Error      string `json:"error,omitempty"`       // Failure detail, if !Success.
}

// NewEntry builds an Entry with a fresh ID and the current UTC timestamp.
func NewEntry(op string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		Operation: op,
	}
}

// Log appends entry to logPath as a single JSON line. Logging failures are
// deliberately swallowed: a command's actual work should never fail, or
// appear to the user to have failed, because its audit trail could not be
// written.
func Log(logPath string, entry Entry) {
	if logPath == "" {
		return
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if dir := filepath.Dir(logPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	// #nosec G306 -- an audit log of file paths and operation names carries no secret material.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from logPath. It returns a nil slice, not
// an error, if the file does not exist yet.
func ReadEntries(logPath string) ([]Entry, error) {
	if logPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries. Malformed lines
// are silently skipped rather than failing the whole read.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1
			if len(line) == 0 {
				continue
			}
			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
