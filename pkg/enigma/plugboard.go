// Package enigma implements a rotor cipher machine.
package enigma

// Plugboard swaps pairs of letters at the entry and exit of the signal
// path. Letters without a cable map to themselves.
type Plugboard struct {
	table Table
}

// NewPlugboard returns an empty plugboard.
func NewPlugboard() Plugboard {
	return Plugboard{table: NewTable(ComponentPlugboard)}
}

// Configure reads tokens as pairs. At most 26 values in an even count are
// accepted; unpaired letters are completed to the identity.
func (p *Plugboard) Configure(tokens []Token) error {
	for i := 0; i < len(tokens); i += 2 {
		if i >= Size {
			return parity(len(tokens), tokens[i])
		}
		a := tokens[i]
		if i+1 == len(tokens) {
			// Check the dangling value on its own before reporting parity.
			if err := p.table.checkEntry(a); err != nil {
				return err
			}
			return parity(len(tokens), a)
		}
		b := tokens[i+1]
		if err := p.table.ValidatePair(a, b, true); err != nil {
			return err
		}
		p.table.ApplyPair(a, b)
	}
	p.table.CompleteIdentity()
	return nil
}

func parity(n int, at Token) *Error {
	return &Error{
		Kind:      ParityError,
		Component: ComponentPlugboard,
		Rotor:     -1,
		Value:     at.Value,
		Text:      at.Text,
		Pos:       at.Pos,
		Count:     n,
		Want:      Size,
	}
}

// Apply maps s through the plugboard.
func (p *Plugboard) Apply(s Symbol) Symbol {
	return p.table.at(s)
}

// Table returns a copy of the plugboard table.
func (p *Plugboard) Table() Table {
	return p.table
}

// Pairs returns the cabled pairs with the lower letter first.
func (p *Plugboard) Pairs() [][2]Symbol {
	var out [][2]Symbol
	for i := range Size {
		s := Symbol(i)
		if v, ok := p.table.Lookup(s); ok && v > s {
			out = append(out, [2]Symbol{s, v})
		}
	}
	return out
}

// Reflector turns the signal around between the two rotor passes. Its
// table is a complete involution without fixed points.
type Reflector struct {
	table Table
}

// NewReflector returns an empty reflector.
func NewReflector() Reflector {
	return Reflector{table: NewTable(ComponentReflector)}
}

// Configure reads exactly 13 pairs. No letter may be paired with itself
// and no letter may appear twice.
func (r *Reflector) Configure(tokens []Token) error {
	for i := 0; i < len(tokens); i += 2 {
		if i >= Size {
			return r.incomplete(len(tokens))
		}
		a := tokens[i]
		if i+1 == len(tokens) {
			if err := r.table.checkEntry(a); err != nil {
				return err
			}
			break
		}
		b := tokens[i+1]
		if err := r.table.ValidatePair(a, b, false); err != nil {
			return err
		}
		r.table.ApplyPair(a, b)
	}
	if len(tokens) != Size {
		return r.incomplete(len(tokens))
	}
	return nil
}

func (r *Reflector) incomplete(n int) *Error {
	return &Error{
		Kind:      IncompleteMapping,
		Component: ComponentReflector,
		Rotor:     -1,
		Count:     n,
		Want:      Size,
	}
}

// Reflect maps s through the reflector. It panics if the entry is unset,
// which Configure rules out.
func (r *Reflector) Reflect(s Symbol) Symbol {
	v, ok := r.table.Lookup(s)
	if !ok {
		panic("enigma: reflector entry " + s.String() + " is not wired")
	}
	return v
}

// Table returns a copy of the reflector table.
func (r *Reflector) Table() Table {
	return r.table
}
