package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath_Encrypt(t *testing.T) {
	got := DefaultOutputPath("secret.txt", EncryptedSuffix)
	if got != "secret.txt.enc" {
		t.Errorf("Expected secret.txt.enc, got %s", got)
	}
}

func TestDefaultOutputPath_DecryptStripsEncSuffix(t *testing.T) {
	got := DefaultOutputPath("secret.txt.enc", DecryptedSuffix)
	if got != "secret.txt" {
		t.Errorf("Expected secret.txt, got %s", got)
	}
}

func TestDefaultOutputPath_DecryptWithoutEncSuffix(t *testing.T) {
	got := DefaultOutputPath("secret.bin", DecryptedSuffix)
	if got != "secret.bin.dec" {
		t.Errorf("Expected secret.bin.dec, got %s", got)
	}
}

func TestDefaultOutputPath_PublicKey(t *testing.T) {
	got := DefaultOutputPath("id_rsa", PublicKeySuffix)
	if got != "id_rsa.pub" {
		t.Errorf("Expected id_rsa.pub, got %s", got)
	}
}

func TestCheckOverwrite_ForceIgnoresExisting(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := CheckOverwrite(path, true); err != nil {
		t.Errorf("Expected no error with force=true, got %v", err)
	}
}

func TestCheckOverwrite_RefusesExistingWithoutForce(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := CheckOverwrite(path, false); err == nil {
		t.Error("Expected an error for an existing file without force")
	}
}

func TestCheckOverwrite_MissingFileIsFine(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "does-not-exist.txt")

	if err := CheckOverwrite(path, false); err != nil {
		t.Errorf("Expected no error for a non-existent file, got %v", err)
	}
}
