// Package enigma implements a rotor cipher machine.
package enigma

// entry is one slot of a Table. An entry is only a confirmed mapping once
// set is true.
type entry struct {
	value Symbol
	set   bool
	pos   Position
}

// Table is a fixed-size mapping from Symbol to Symbol.
//
// Entries start unset and are filled by validated writes. The table keeps
// the source position of the token behind every entry so that a later
// conflict can point back at it. Once its owner is configured a Table is
// never written again.
type Table struct {
	entries   [Size]entry
	component Component
	rotor     int
}

// NewTable returns an empty table whose errors are attributed to c.
func NewTable(c Component) Table {
	return Table{component: c, rotor: -1}
}

func newRotorTable(rotor int) Table {
	return Table{component: ComponentRotor, rotor: rotor}
}

// ValidateIndex fails with OutOfRange unless tok holds a value in [0,25].
func (t *Table) ValidateIndex(tok Token) error {
	if err := t.checkIndex(tok); err != nil {
		return err
	}
	return nil
}

func (t *Table) checkIndex(tok Token) *Error {
	if tok.Value < 0 || tok.Value >= Size {
		return outOfRange(t.component, t.rotor, tok)
	}
	return nil
}

// checkEntry checks that tok is in range and not mapped yet.
func (t *Table) checkEntry(tok Token) *Error {
	if err := t.checkIndex(tok); err != nil {
		return err
	}
	if e := t.entries[tok.Value]; e.set {
		return &Error{
			Kind:      DuplicateMapping,
			Component: t.component,
			Rotor:     t.rotor,
			Value:     tok.Value,
			Text:      tok.Text,
			Pos:       tok.Pos,
			Prior:     e.pos,
		}
	}
	return nil
}

// ValidatePair checks that a and b may be paired in an involutive table.
//
// Each token is checked in order for range and prior use; then, unless
// allowSelf is set, a pair of equal values fails with SelfMapping. Nothing
// is written, so a rejected pair never leaves a half-applied mapping.
func (t *Table) ValidatePair(a, b Token, allowSelf bool) error {
	if err := t.checkEntry(a); err != nil {
		return err
	}
	if err := t.checkEntry(b); err != nil {
		return err
	}
	if !allowSelf && a.Value == b.Value {
		return &Error{
			Kind:      SelfMapping,
			Component: t.component,
			Rotor:     t.rotor,
			Value:     b.Value,
			Text:      b.Text,
			Pos:       b.Pos,
			Prior:     a.Pos,
		}
	}
	return nil
}

// ApplyPair maps a to b and b to a. The pair must have passed ValidatePair.
func (t *Table) ApplyPair(a, b Token) {
	t.set(a.symbol(), b.symbol(), a.Pos)
	t.set(b.symbol(), a.symbol(), b.Pos)
}

// CompleteIdentity maps every unset entry to itself.
func (t *Table) CompleteIdentity() {
	for i := range t.entries {
		if !t.entries[i].set {
			t.entries[i] = entry{value: Symbol(i), set: true}
		}
	}
}

func (t *Table) set(from, to Symbol, pos Position) {
	t.entries[from] = entry{value: to, set: true, pos: pos}
}

// Lookup returns the mapping for s and whether it is set.
func (t *Table) Lookup(s Symbol) (Symbol, bool) {
	if !s.Valid() {
		return 0, false
	}
	e := t.entries[s]
	return e.value, e.set
}

// IsSet reports whether s has a mapping.
func (t *Table) IsSet(s Symbol) bool {
	_, ok := t.Lookup(s)
	return ok
}

// Origin returns the source position of the token that set s.
func (t *Table) Origin(s Symbol) Position {
	if !s.Valid() {
		return Position{}
	}
	return t.entries[s].pos
}

// Len returns the number of set entries.
func (t *Table) Len() int {
	n := 0
	for _, e := range t.entries {
		if e.set {
			n++
		}
	}
	return n
}

// Complete reports whether every entry is set.
func (t *Table) Complete() bool {
	return t.Len() == Size
}

// IsBijection reports whether the table is complete and no two entries
// share a value.
func (t *Table) IsBijection() bool {
	if !t.Complete() {
		return false
	}
	var seen [Size]bool
	for _, e := range t.entries {
		if seen[e.value] {
			return false
		}
		seen[e.value] = true
	}
	return true
}

// IsInvolution reports whether the table is complete and self-inverse.
func (t *Table) IsInvolution() bool {
	if !t.Complete() {
		return false
	}
	for i, e := range t.entries {
		if t.entries[e.value].value != Symbol(i) {
			return false
		}
	}
	return true
}

// HasFixedPoint reports whether any set entry maps to itself.
func (t *Table) HasFixedPoint() bool {
	for i, e := range t.entries {
		if e.set && e.value == Symbol(i) {
			return true
		}
	}
	return false
}

// Mapping returns the table as a plain array. Unset entries are -1.
func (t *Table) Mapping() [Size]Symbol {
	var out [Size]Symbol
	for i, e := range t.entries {
		if e.set {
			out[i] = e.value
		} else {
			out[i] = -1
		}
	}
	return out
}

// at returns the mapping for s, which the caller guarantees is set.
func (t *Table) at(s Symbol) Symbol {
	return t.entries[s].value
}
