// Package output provides output formatting for the enigma command.
//
// This package handles structured output and error reports:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned table rendering
//   - json.go, yaml.go: machine-readable output
//   - diagnostic.go: configuration errors shown against their source line
//
// Ciphertext itself is written unformatted by the session service; this
// package only renders reports such as inspect and check results.
package output
