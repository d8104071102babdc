package config

import "github.com/yndnr/enigma-go/internal/core/domain"

// Config is the configuration for the enigma command.
type Config struct {
	Machine MachineSection `koanf:"machine" yaml:"machine" json:"machine"`
	Input   InputSection   `koanf:"input" yaml:"input" json:"input"`
	Output  OutputSection  `koanf:"output" yaml:"output" json:"output"`
	Log     LogSection     `koanf:"log" yaml:"log" json:"log"`
	Metrics MetricsSection `koanf:"metrics" yaml:"metrics" json:"metrics"`
	Shell   ShellSection   `koanf:"shell" yaml:"shell" json:"shell"`
}

// MachineSection names the key sheet files. Positional arguments on the
// command line replace it entirely.
type MachineSection = domain.Profile

// InputSection controls how plaintext is read.
type InputSection struct {
	// Terminator ends the message. Empty reads to end of input.
	Terminator string `koanf:"terminator" yaml:"terminator" json:"terminator"`
}

// OutputSection controls how results are written.
type OutputSection struct {
	// Format is the format of structured output: table, json, yaml.
	Format string `koanf:"format" yaml:"format" json:"format"`
	// Group splits ciphertext into blocks of this many letters; 0 disables.
	Group int `koanf:"group" yaml:"group" json:"group"`
	// Newline ends ciphertext with a newline.
	Newline bool `koanf:"newline" yaml:"newline" json:"newline"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// MetricsSection configures the textfile metrics export.
type MetricsSection struct {
	// File receives metrics in Prometheus text format; empty disables export.
	File string `koanf:"file" yaml:"file" json:"file"`
}

// ShellSection configures the interactive shell.
type ShellSection struct {
	Prompt  string `koanf:"prompt" yaml:"prompt" json:"prompt"`
	History string `koanf:"history" yaml:"history" json:"history"`
	// Watch reloads the machine when a key sheet file changes.
	Watch bool `koanf:"watch" yaml:"watch" json:"watch"`
}
