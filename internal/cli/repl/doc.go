// Package repl provides the interactive shell of the enigma command.
//
// Each line typed is enciphered with the same machine, so rotor state
// carries over from line to line like on the physical device. Lines that
// start with ':' are shell commands:
//
//   - repl.go: main loop, command dispatch and machine reload
//   - completer.go: command name completion and suggestions
//   - history.go: line history persistence
package repl
