package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	retrieved := FromContext(ctx)
	if retrieved == nil {
		t.Fatal("FromContext returned nil")
	}

	retrieved.Info("test message")
	if buf.Len() == 0 {
		t.Error("Logger from context should produce output")
	}
}

func TestFromContext_Default(t *testing.T) {
	if l := FromContext(context.Background()); l == nil {
		t.Error("FromContext should return default logger, got nil")
	}
}

func TestWithSessionID(t *testing.T) {
	ctx := WithSessionID(context.Background(), "ens-01arz3ndektsv4rrffq69g5fav")
	if got := SessionIDFromContext(ctx); got != "ens-01arz3ndektsv4rrffq69g5fav" {
		t.Errorf("SessionIDFromContext() = %q", got)
	}
	if got := SessionIDFromContext(context.Background()); got != "" {
		t.Errorf("SessionIDFromContext(empty) = %q, want empty", got)
	}
}

func TestL(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	ctx := WithLogger(context.Background(), l)
	ctx = WithSessionID(ctx, "ens-abc")
	L(ctx).Info("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["session_id"] != "ens-abc" {
		t.Errorf("session_id = %v, want %q", entry["session_id"], "ens-abc")
	}
}
