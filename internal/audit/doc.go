// Package audit provides a local, append-only history of keygen, encrypt,
// and decrypt operations.
//
// # Log Format
//
// The audit log is JSON Lines (one JSON object per line). Commands decide
// where it lives - the CLI keeps it as audit.jsonl next to its config file
// - and pass that path to Log explicitly; this package holds no global
// state of its own.
//
// Each entry contains:
//   - A random ID and an RFC3339 (with microseconds, UTC) timestamp
//   - The operation name (see the Op* constants)
//   - Operation-specific details: key path, input/output path, bit size,
//     bytes processed, and, on failure, an error string
//
// # Usage
//
//	entry := audit.NewEntry(audit.OpEncrypt)
//	entry.InputPath, entry.OutputPath = in, out
//	entry.Success = true
//	audit.Log(logPath, entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.) the operation continues without error; an encrypt or decrypt
// should never fail just because its audit entry couldn't be written.
//
// # Reading Logs
//
// Use ReadEntries to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
