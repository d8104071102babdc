// Package command provides the CLI command definitions for enigma.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: application, global flags, settings and exit codes
//   - encrypt.go: encrypt command, also the default action
//   - check.go: key sheet validation
//   - inspect.go: machine summary
//   - shell.go: interactive shell with hot reload
//   - version.go: build information
//
// Commands resolve a machine profile from positional arguments or the
// machine section of the settings file, load it through the machine
// service and write results to the application's writers.
package command
