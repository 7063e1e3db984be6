// Package config loads and saves the CLI's persistent defaults: RSA key
// size, streaming chunk size, and whether commands may overwrite existing
// output files without --force.
//
// Defaults live in a single TOML file (BurntSushi/toml), read with
// LoadOrDefault and written with Save. Commands that don't care about
// persistence can just use Default() and ignore the file entirely.
package config
