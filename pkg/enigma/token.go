// Package enigma implements a rotor cipher machine.
package enigma

import "fmt"

// Position locates a configuration token in its source.
// Line and Column are 1-based; Offset is the 0-based byte offset.
type Position struct {
	Source string
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the position was recorded by a loader.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as source:line:column.
func (p Position) String() string {
	if !p.IsValid() {
		if p.Source != "" {
			return p.Source
		}
		return "-"
	}
	if p.Source == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Column)
}

// Token is one integer read from a configuration source.
//
// Text holds the literal as it appeared in the source and is used by
// diagnostics to size the underline. It may be empty for tokens built in
// code.
type Token struct {
	Value int
	Text  string
	Pos   Position
}

// Tokens builds position-less tokens from plain integers.
func Tokens(values ...int) []Token {
	out := make([]Token, len(values))
	for i, v := range values {
		out[i] = Token{Value: v, Text: fmt.Sprint(v)}
	}
	return out
}

// symbol converts a range-checked token to a Symbol.
func (t Token) symbol() Symbol {
	return Symbol(t.Value)
}
