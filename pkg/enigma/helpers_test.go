package enigma_test

import (
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// letters converts a wiring string such as "EKMF..." to tokens.
func letters(s string) []enigma.Token {
	vals := make([]int, len(s))
	for i, r := range s {
		vals[i] = int(r - 'A')
	}
	return enigma.Tokens(vals...)
}

func identityWiring() []enigma.Token {
	vals := make([]int, enigma.Size)
	for i := range vals {
		vals[i] = i
	}
	return enigma.Tokens(vals...)
}

// adjacentPairs returns (0,1),(2,3),...,(24,25).
func adjacentPairs() []enigma.Token {
	return identityWiring()
}

const (
	rotorI     = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	rotorII    = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	rotorIII   = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	reflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
)

// reflectorPairs turns a full reflector wiring into 13 pairs.
func reflectorPairs(wiring string) []enigma.Token {
	var vals []int
	seen := make(map[int]bool)
	for i, r := range wiring {
		j := int(r - 'A')
		if seen[i] || seen[j] {
			continue
		}
		seen[i], seen[j] = true, true
		vals = append(vals, i, j)
	}
	return enigma.Tokens(vals...)
}

// historicConfig is rotors I-II-III (left to right) on reflector B with
// the given plugboard values and starting positions.
func historicConfig(plugboard []int, positions ...int) enigma.Config {
	if len(positions) == 0 {
		positions = []int{0, 0, 0}
	}
	return enigma.Config{
		Reflector: reflectorPairs(reflectorB),
		Plugboard: enigma.Tokens(plugboard...),
		Rotors: []enigma.RotorSpec{
			{Wiring: letters(rotorI), Notches: enigma.Tokens(16)},
			{Wiring: letters(rotorII), Notches: enigma.Tokens(4)},
			{Wiring: letters(rotorIII), Notches: enigma.Tokens(21)},
		},
		Positions: enigma.Tokens(positions...),
	}
}

func encryptString(m *enigma.Machine, text string) (string, error) {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		s, err := enigma.SymbolFromRune(r)
		if err != nil {
			return string(out), err
		}
		c, err := m.EncryptSymbol(s)
		if err != nil {
			return string(out), err
		}
		out = append(out, c.Rune())
	}
	return string(out), nil
}
