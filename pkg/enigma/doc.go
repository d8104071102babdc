// Package enigma implements a rotor cipher machine.
//
// A Machine is composed of a plugboard, an ordered stack of rotors and a
// reflector. Together they implement a reciprocal substitution over the
// 26 letters A-Z: feeding ciphertext through a machine with the same
// configuration and the same rotor positions yields the plaintext.
//
// Signal path for one symbol:
//
//	step rotors -> plugboard -> rotors (right to left) -> reflector
//	            -> rotors (left to right) -> plugboard
//
// Stepping follows the single-step odometer model: the rightmost rotor
// advances on every symbol and a rotor that moves onto one of its notches
// carries one step into its left neighbour.
//
// Configuration arrives as already-tokenized integers (see Token). Every
// table is validated before the machine may run; the first invalid token
// aborts configuration with an *Error that carries the offending value and
// its source position.
//
// Usage:
//
//	m := enigma.New(len(cfg.Rotors))
//	if err := m.Configure(cfg); err != nil {
//		return err
//	}
//	for out, err := range m.EncryptStream(symbols) {
//		...
//	}
//
// A Machine is not safe for concurrent use.
package enigma
