// Package enigma implements a rotor cipher machine.
package enigma

// Rotor is one wheel of the machine: a fixed wiring, a notch set and a
// rotational offset.
//
// The wiring is configured right to left; the left to right table is its
// inverse and is derived, never configured. After configuration only the
// position changes.
type Rotor struct {
	index       int
	rightToLeft Table
	leftToRight Table
	notches     [Size]bool
	position    Symbol
	start       Symbol
}

// NewRotor returns an unconfigured rotor. index is its place in declared
// (left to right) order and only used to attribute errors.
func NewRotor(index int) Rotor {
	return Rotor{
		index:       index,
		rightToLeft: newRotorTable(index),
		leftToRight: newRotorTable(index),
	}
}

// SetWiring consumes the 26 targets of the right to left wiring, one per
// contact in order. Each target must be in range and unused by any earlier
// contact. Fewer than 26 entries fail with IncompleteMapping once all
// supplied entries have been checked.
func (r *Rotor) SetWiring(tokens []Token) error {
	for i, tok := range tokens {
		if err := r.leftToRight.checkEntry(tok); err != nil {
			return err
		}
		// Past 26 entries every target is taken, so checkEntry has
		// already failed and i is always a valid contact here.
		r.rightToLeft.set(Symbol(i), tok.symbol(), tok.Pos)
		r.leftToRight.set(tok.symbol(), Symbol(i), tok.Pos)
	}
	if len(tokens) != Size {
		return &Error{
			Kind:      IncompleteMapping,
			Component: ComponentRotor,
			Rotor:     r.index,
			Count:     len(tokens),
			Want:      Size,
		}
	}
	return nil
}

// SetNotches marks each given position as a notch. Any number of notches
// is accepted and repeats are harmless.
func (r *Rotor) SetNotches(tokens []Token) error {
	for _, tok := range tokens {
		if err := r.rightToLeft.checkIndex(tok); err != nil {
			return err
		}
		r.notches[tok.Value] = true
	}
	return nil
}

// SetInitialPosition sets the starting offset from tok.
func (r *Rotor) SetInitialPosition(tok Token) error {
	if tok.Value < 0 || tok.Value >= Size {
		return outOfRange(ComponentPositions, r.index, tok)
	}
	r.position = tok.symbol()
	r.start = r.position
	return nil
}

// Step advances the rotor by one and reports whether the new position is
// a notch, meaning the next rotor to the left must also turn.
func (r *Rotor) Step() bool {
	r.position = mod(int(r.position) + 1)
	return r.notches[r.position]
}

// PassRightToLeft maps s through the wiring toward the reflector.
func (r *Rotor) PassRightToLeft(s Symbol) Symbol {
	return r.pass(&r.rightToLeft, s)
}

// PassLeftToRight maps s through the inverse wiring on the return path.
func (r *Rotor) PassLeftToRight(s Symbol) Symbol {
	return r.pass(&r.leftToRight, s)
}

// pass shifts s into the rotor frame, looks it up and shifts it back.
func (r *Rotor) pass(t *Table, s Symbol) Symbol {
	contact := mod(int(s) + int(r.position))
	return mod(int(t.at(contact)) - int(r.position))
}

// Position returns the current offset.
func (r *Rotor) Position() Symbol {
	return r.position
}

// HasNotch reports whether p is a notch position.
func (r *Rotor) HasNotch(p Symbol) bool {
	return p.Valid() && r.notches[p]
}

// Notches returns the notch positions in ascending order.
func (r *Rotor) Notches() []Symbol {
	var out []Symbol
	for i, n := range r.notches {
		if n {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// Wiring returns the right to left wiring.
func (r *Rotor) Wiring() [Size]Symbol {
	return r.rightToLeft.Mapping()
}

// InverseWiring returns the derived left to right wiring.
func (r *Rotor) InverseWiring() [Size]Symbol {
	return r.leftToRight.Mapping()
}

// reset returns the rotor to its configured starting position.
func (r *Rotor) reset() {
	r.position = r.start
}
