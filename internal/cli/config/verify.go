package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yndnr/enigma-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	return errors.Join(
		verifyInput(&cfg.Input),
		verifyOutput(&cfg.Output),
		verifyLog(&cfg.Log),
	)
}

func verifyInput(cfg *InputSection) error {
	if cfg.Terminator == "" {
		return nil
	}
	r, size := utf8.DecodeRuneInString(cfg.Terminator)
	if size != len(cfg.Terminator) {
		return fmt.Errorf("input.terminator must be a single character, got %q", cfg.Terminator)
	}
	if (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
		return fmt.Errorf("input.terminator %q would be read as message text", cfg.Terminator)
	}
	return nil
}

func verifyOutput(cfg *OutputSection) error {
	switch strings.ToLower(cfg.Format) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be table, json or yaml, got %q", cfg.Format)
	}
	if cfg.Group < 0 {
		return fmt.Errorf("output.group must not be negative, got %d", cfg.Group)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", cfg.Format)
	}
	return nil
}

// TerminatorRune returns the configured terminator, or 0 when reading to
// end of input.
func (c *Config) TerminatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Terminator)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
