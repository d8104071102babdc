// Package config provides the settings of the enigma command.
//
// This package defines the command configuration:
//
//   - spec.go: Config struct (~/.enigma/config.yaml)
//   - default.go: default values
//   - loader.go: loading and merging through confloader
//   - verify.go: validation
//
// Settings include the machine profile, input and output formatting,
// logging, metrics export and the interactive shell.
package config
