package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_CreatesFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "audit.jsonl")
	Log(logPath, NewEntry(OpEncrypt))

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_CreatesParentDir(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "nested", "audit.jsonl")
	Log(logPath, NewEntry(OpKeygen))

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created in nested dir")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "audit.jsonl")
	Log(logPath, NewEntry(OpKeygen))
	Log(logPath, NewEntry(OpEncrypt))
	Log(logPath, NewEntry(OpDecrypt))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_ValidJSON(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "audit.jsonl")
	entry := NewEntry(OpEncrypt)
	entry.InputPath = "plaintext.txt"
	entry.OutputPath = "plaintext.txt.enc"
	entry.Success = true
	Log(logPath, entry)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}
	if parsed.Operation != OpEncrypt {
		t.Errorf("Expected operation %s, got %s", OpEncrypt, parsed.Operation)
	}
	if parsed.InputPath != "plaintext.txt" {
		t.Errorf("Expected input path plaintext.txt, got %s", parsed.InputPath)
	}
	if !parsed.Success {
		t.Errorf("Expected Success to round-trip as true")
	}
}

func TestLog_TimestampAndIDAutoSet(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "audit.jsonl")
	Log(logPath, Entry{Operation: OpKeygen})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}
	if parsed.ID == "" {
		t.Errorf("ID should be auto-set")
	}
	if !strings.HasSuffix(parsed.Timestamp, "Z") {
		t.Errorf("Timestamp should end with Z, got %s", parsed.Timestamp)
	}
	if !strings.Contains(parsed.Timestamp, ".") {
		t.Errorf("Timestamp should contain microseconds, got %s", parsed.Timestamp)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "audit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "audit.jsonl")
	Log(logPath, NewEntry(OpKeygen))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	line := strings.TrimSpace(string(data))

	for _, field := range []string{`"key_path"`, `"input_path"`, `"output_path"`, `"bits"`, `"bytes"`, `"error"`} {
		if strings.Contains(line, field) {
			t.Errorf("Empty field %s should be omitted, line: %s", field, line)
		}
	}
}

func TestLog_EmptyPathIsNoop(t *testing.T) {
	Log("", NewEntry(OpEncrypt))
}

func TestParseEntries_ValidData(t *testing.T) {
	data := []byte(`{"id":"a","ts":"2024-01-15T10:30:00.123456Z","op":"encrypt","ok":true}
{"id":"b","ts":"2024-01-15T10:35:00.456789Z","op":"decrypt","ok":true}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != OpEncrypt {
		t.Errorf("Expected first operation encrypt, got %s", entries[0].Operation)
	}
	if entries[1].Operation != OpDecrypt {
		t.Errorf("Expected second operation decrypt, got %s", entries[1].Operation)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"id":"a","op":"encrypt"}
this is not valid json
{"id":"b","op":"decrypt"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 valid entries (malformed should be skipped), got %d", len(entries))
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries([]byte{})
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries for empty data, got %v", entries)
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "does-not-exist.jsonl"))
	if err != nil {
		t.Fatalf("Expected no error for a missing log file, got: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries for a missing log file, got %v", entries)
	}
}

func TestReadEntries_EmptyPath(t *testing.T) {
	entries, err := ReadEntries("")
	if err != nil {
		t.Fatalf("Expected no error for an empty path, got: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries for an empty path, got %v", entries)
	}
}
