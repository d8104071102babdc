// Package tokenfile reads machine configuration files.
//
// A configuration file is a sequence of non-negative integers separated by
// any whitespace. Every token is returned with its source position so that
// the cipher core can point diagnostics at the exact offending value.
//
// Usage:
//
//	tokens, err := tokenfile.Read("rotors/I.rot")
package tokenfile
