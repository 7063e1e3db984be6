package cliutil

import (
	"fmt"
	"os"
	"strings"
)

// EncryptedSuffix and DecryptedSuffix are appended to an input file's name
// to build the default output path when the user does not give one
// explicitly. PublicKeySuffix does the same for keygen's public half.
const (
	EncryptedSuffix = ".enc"
	DecryptedSuffix = ".dec"
	PublicKeySuffix = ".pub"
)

// DefaultOutputPath appends suffix to inputPath, except that when suffix
// is DecryptedSuffix and inputPath ends with EncryptedSuffix, that suffix
// is stripped instead - e.g. decrypting "secret.txt.enc" defaults to
// "secret.txt", not "secret.txt.enc.dec".
func DefaultOutputPath(inputPath, suffix string) string {
	if suffix == DecryptedSuffix && strings.HasSuffix(inputPath, EncryptedSuffix) {
		return strings.TrimSuffix(inputPath, EncryptedSuffix)
	}
	return inputPath + suffix
}

// CheckOverwrite returns an error if path already exists and force is
// false. It is silent (returns nil) if path does not exist or any other
// stat error occurs other than existence - callers that actually open the
// file will surface a real I/O error at that point.
func CheckOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
