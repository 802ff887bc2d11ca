// Package logger builds the structured slog loggers used by the CLI and the
// preview server and carries request ids through contexts.
package logger
