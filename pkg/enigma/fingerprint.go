// Package enigma implements a rotor cipher machine.
package enigma

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// Fingerprint returns a 64-bit MurmurHash3 digest of the configuration:
// reflector, plugboard, and each rotor's wiring, notches and starting
// position. Two machines with equal fingerprints were configured from the
// same key sheet. An unconfigured machine has fingerprint 0.
//
// The digest is for comparing settings; it is not a secure commitment.
func (m *Machine) Fingerprint() uint64 {
	if !m.configured {
		return 0
	}

	h := murmur3.New64()
	buf := make([]byte, 0, 4*Size+2)

	writeTable := func(t *Table) {
		buf = buf[:0]
		for _, v := range t.Mapping() {
			buf = append(buf, byte(v))
		}
		h.Write(buf)
	}

	writeTable(&m.reflector.table)
	writeTable(&m.plugboard.table)

	for i := range m.stack.rotors {
		r := &m.stack.rotors[i]
		writeTable(&r.rightToLeft)

		buf = buf[:0]
		for _, n := range r.notches {
			if n {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
		buf = append(buf, byte(r.start))
		h.Write(buf)
	}

	return h.Sum64()
}

// FingerprintHex returns Fingerprint as 16 lower case hex digits.
func (m *Machine) FingerprintHex() string {
	return fmt.Sprintf("%016x", m.Fingerprint())
}
