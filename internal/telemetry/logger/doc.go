// Package logger provides structured logging for the machine.
//
// This package wraps log/slog:
//
//   - logger.go: logger configuration and initialization
//   - context.go: context-aware logging with session IDs
//   - redact.go: redaction of message content and key material
//
// Logs go to stderr so that they never mix with ciphertext on stdout.
package logger
