package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Input.Terminator != "." {
		t.Errorf("Input.Terminator = %q, want %q", cfg.Input.Terminator, ".")
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "table")
	}
	if cfg.Output.Group != 0 {
		t.Errorf("Output.Group = %d, want 0", cfg.Output.Group)
	}
	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(".enigma", "config.yaml")) {
		t.Errorf("Path = %q, should end with .enigma/config.yaml", path)
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != DefaultOutputFormat {
		t.Errorf("Output.Format = %q, want default", cfg.Output.Format)
	}
	if cfg.Shell.History == "" {
		t.Error("Shell.History should default to a path")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml", nil); err == nil {
		t.Error("Load() should fail for an explicitly named missing file")
	}
}

func TestLoad_FileEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enigma.yaml")
	content := `
machine:
  plugboard: a.pb
  reflector: b.rf
  rotors: [I.rot, II.rot]
  positions: start.pos
output:
  format: json
  group: 5
log:
  level: info
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("ENIGMA_LOG_LEVEL", "debug")

	cfg, err := Load(path, map[string]any{"output.format": "yaml"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Machine.Plugboard != "a.pb" || cfg.Machine.Reflector != "b.rf" {
		t.Errorf("Machine = %+v", cfg.Machine)
	}
	if len(cfg.Machine.Rotors) != 2 || cfg.Machine.Rotors[1] != "II.rot" {
		t.Errorf("Machine.Rotors = %v", cfg.Machine.Rotors)
	}
	if cfg.Output.Group != 5 {
		t.Errorf("Output.Group = %d, want 5", cfg.Output.Group)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want %q (override)", cfg.Output.Format, "yaml")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q (env)", cfg.Log.Level, "debug")
	}
	if cfg.Input.Terminator != "." {
		t.Errorf("Input.Terminator = %q, want default", cfg.Input.Terminator)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no terminator", func(c *Config) { c.Input.Terminator = "" }, ""},
		{"long terminator", func(c *Config) { c.Input.Terminator = ".." }, "single character"},
		{"letter terminator", func(c *Config) { c.Input.Terminator = "X" }, "message text"},
		{"space terminator", func(c *Config) { c.Input.Terminator = " " }, "message text"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"negative group", func(c *Config) { c.Output.Group = -1 }, "output.group"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Verify(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Verify() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Verify() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestTerminatorRune(t *testing.T) {
	cfg := Default()
	if got := cfg.TerminatorRune(); got != '.' {
		t.Errorf("TerminatorRune() = %q, want '.'", got)
	}
	cfg.Input.Terminator = ""
	if got := cfg.TerminatorRune(); got != 0 {
		t.Errorf("TerminatorRune() = %q, want 0", got)
	}
}
