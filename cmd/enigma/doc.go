// Package main provides the entry point for enigma.
//
// enigma is a rotor cipher machine. A key sheet made of plain text files
// of integers describes the plugboard, the reflector, each rotor and the
// rotor starting positions:
//
//	enigma plugboard.pb reflector.rf I.rot II.rot III.rot start.pos < msg
//
// Commands:
//
//   - encrypt: encipher stdin (the default)
//   - check: validate a key sheet
//   - inspect: describe the machine a key sheet builds
//   - shell: encipher interactively, optionally reloading on file change
//   - version: show build information
//
// The exit status identifies the failure: 2 for a bad input character,
// 3 to 10 for key sheet errors, 11 when a file cannot be opened and 1 for
// usage errors.
package main
