package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Keys whose values are message content or key material. Matched exactly,
// case-insensitively.
var sensitiveKeys = map[string]bool{
	"plaintext":  true,
	"ciphertext": true,
	"text":       true,
	"positions":  true,
	"wiring":     true,
	"input":      true,
	"output":     true,
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive replaces the value of content attributes. Strings keep
// their length as a hint; every other kind is replaced whole.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if !IsSensitiveKey(a.Key) {
		return a
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, RedactString(a.Value.String()))
	}
	return slog.String(a.Key, redactedValue)
}

// RedactString masks a content value, keeping only its length.
func RedactString(value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s(len=%d)", redactedValue, len(value))
}

// IsSensitiveKey checks if a key name holds message content.
func IsSensitiveKey(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}
