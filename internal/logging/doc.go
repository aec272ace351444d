// Package logging assembles structured slog loggers and formatting helpers used
// across mediaconv services.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so command handlers can tag log
// lines with the command name and a correlation ID. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
