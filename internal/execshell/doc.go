// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec through OSCommandRunner, exposes ShellExecutor to run git with
// lifecycle logging, and classifies non-zero exits as CommandFailedError so that
// callers can inspect exit codes and diagnostics without parsing free-form text.
package execshell
