// Package enigma implements a rotor cipher machine.
package enigma

// Size is the number of symbols in the machine alphabet.
const Size = 26

// Symbol is a letter of the machine alphabet, 0 for A through 25 for Z.
type Symbol int

// SymbolFromRune converts an upper case letter to a Symbol.
// Any other rune yields an InvalidSymbol error.
func SymbolFromRune(r rune) (Symbol, error) {
	if r < 'A' || r > 'Z' {
		return 0, &Error{
			Kind:      InvalidSymbol,
			Component: ComponentInput,
			Rotor:     -1,
			Value:     int(r),
			Text:      string(r),
		}
	}
	return Symbol(r - 'A'), nil
}

// Valid reports whether s lies inside the alphabet.
func (s Symbol) Valid() bool {
	return s >= 0 && s < Size
}

// Rune returns the letter for s.
func (s Symbol) Rune() rune {
	return 'A' + rune(s)
}

// String returns the letter for s, or "?" if s is outside the alphabet.
func (s Symbol) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(s.Rune())
}

// mod wraps n into [0, Size).
func mod(n int) Symbol {
	n %= Size
	if n < 0 {
		n += Size
	}
	return Symbol(n)
}
