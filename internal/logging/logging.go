package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger prints to stdout/stderr with semantic color prefixes, gated by
// two independent verbosity flags. It is a value type: commands copy it
// by value into whichever internal functions need to log.
type Logger struct {
	Verbose bool
	Debug   bool
}

// Infof is shown with --verbose or --debug.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

// Debugf is shown only with --debug.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

// Warnf is shown with --verbose or --debug.
func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

// WarnfAlways prints regardless of verbosity, for warnings that always
// matter to the operator (a PEM block of an unexpected type, a key size
// below the recommended minimum).
func (l Logger) WarnfAlways(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

// WarnfUser prints a warning aimed at the person running the command
// rather than at someone debugging the tool itself - refusing to
// overwrite an existing file, for instance - regardless of verbosity.
func (l Logger) WarnfUser(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

// Errorf is shown with --debug, for internal detail that would otherwise
// clutter a plain failure message.
func (l Logger) Errorf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
	}
}

// ErrorfAndReturn logs through Errorf and returns an error built from the
// same message and args, so a command can log and propagate in one call:
//
//	return log.ErrorfAndReturn("failed to open %s: %v", path, err)
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}

// Fatalf always prints, then exits the process with status 1.
func (l Logger) Fatalf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[fatal] ")+msg+"\n", args...)
	os.Exit(1)
}
