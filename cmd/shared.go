package cmd

import (
	"path/filepath"

	"github.com/VincentSidot/Crypto/internal/audit"
	"github.com/VincentSidot/Crypto/internal/config"
)

// force and chunkSize carry the persisted config's defaults, resolved
// at package initialization so the commands' init functions can use them
// as flag defaults; PersistentPreRun runs after flag parsing, which is too
// late for that.
var (
	force     = defaultConfig().Force
	chunkSize = defaultConfig().ChunkSize
)

func defaultConfig() config.Config {
	path, err := config.Path()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Default()
	}
	return cfg
}

func auditLogPath() string {
	path, err := config.Path()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(path), "audit.jsonl")
}

// logAudit writes entry to the audit log. It is called via defer with a
// pointer so the deferred call sees whatever Success/Error fields the
// command set before returning.
func logAudit(entry *audit.Entry) {
	audit.Log(auditLogPath(), *entry)
}
