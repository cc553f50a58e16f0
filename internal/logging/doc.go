// Package logging assembles structured slog loggers and formatting helpers used
// across karamove.
//
// It owns the console and JSON handlers, centralizes level and output plumbing
// (stderr plus an optional size-rotated file), and exposes context-aware
// helpers so command code automatically tags log lines with the run ID and
// subcommand. The package also provides a no-op logger for tests.
package logging
