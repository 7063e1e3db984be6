package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultBits is the RSA modulus size keygen uses when -b is not given.
const DefaultBits = 2048

// DefaultChunkSize is the plaintext chunk size, in bytes, that encrypt
// and decrypt use when no override is configured.
const DefaultChunkSize = 64 * 1024

// Config holds the CLI's persistent defaults.
type Config struct {
	Bits      int  `toml:"bits"`
	ChunkSize int  `toml:"chunk_size"`
	Force     bool `toml:"force"`
}

// Default returns the built-in defaults, independent of any file on disk.
func Default() Config {
	return Config{
		Bits:      DefaultBits,
		ChunkSize: DefaultChunkSize,
		Force:     false,
	}
}

// Path returns the default location of the config file, respecting
// XDG_CONFIG_HOME via os.UserConfigDir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crypto", "config.toml"), nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// LoadOrDefault reads the config file at path, falling back silently to
// Default() if the file does not exist. Any other read or parse error is
// returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg to path as TOML, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}
