// Package cliutil holds small helpers shared by the keygen, encrypt, and
// decrypt commands: default output path suffixing, overwrite refusal, and
// human-readable byte size formatting for progress and summary output.
package cliutil
