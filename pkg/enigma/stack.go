// Package enigma implements a rotor cipher machine.
package enigma

import (
	"fmt"
	"slices"
)

// RotorSpec is the configuration of one rotor: its 26 wiring targets and
// its notch positions.
type RotorSpec struct {
	Wiring  []Token
	Notches []Token
}

// Stack is the ordered set of rotors.
//
// Rotors are held in declared order, left to right. The last rotor is the
// rightmost one, next to the plugboard, and is the one that steps on every
// symbol.
type Stack struct {
	rotors []Rotor
}

// NewStack returns a stack of n unconfigured rotors.
func NewStack(n int) Stack {
	rotors := make([]Rotor, n)
	for i := range rotors {
		rotors[i] = NewRotor(i)
	}
	return Stack{rotors: rotors}
}

// Configure sets up every rotor in declared order. Each rotor takes the
// next value from positions, then its wiring, then its notches.
func (s *Stack) Configure(specs []RotorSpec, positions []Token) error {
	if len(specs) != len(s.rotors) {
		return fmt.Errorf("%w: configuration has %d rotors, machine has %d",
			ErrRotorCount, len(specs), len(s.rotors))
	}

	for i := range s.rotors {
		r := &s.rotors[i]
		if i >= len(positions) {
			return &Error{
				Kind:      MissingPosition,
				Component: ComponentPositions,
				Rotor:     i,
				Count:     len(positions),
				Want:      len(s.rotors),
			}
		}
		if err := r.SetInitialPosition(positions[i]); err != nil {
			return err
		}
		if err := r.SetWiring(specs[i].Wiring); err != nil {
			return err
		}
		if err := r.SetNotches(specs[i].Notches); err != nil {
			return err
		}
	}
	return nil
}

// Step runs the turnover cascade: the rightmost rotor steps, and each rotor
// that lands on a notch carries one step to its left neighbour. Carrying
// stops at the first rotor that does not land on a notch, or after the
// leftmost rotor.
func (s *Stack) Step() {
	for i := len(s.rotors) - 1; i >= 0; i-- {
		if !s.rotors[i].Step() {
			return
		}
	}
}

// PassRightToLeft sends s from the rightmost rotor to the leftmost.
func (s *Stack) PassRightToLeft(sym Symbol) Symbol {
	for i := len(s.rotors) - 1; i >= 0; i-- {
		sym = s.rotors[i].PassRightToLeft(sym)
	}
	return sym
}

// PassLeftToRight sends s from the leftmost rotor to the rightmost.
func (s *Stack) PassLeftToRight(sym Symbol) Symbol {
	for i := range s.rotors {
		sym = s.rotors[i].PassLeftToRight(sym)
	}
	return sym
}

// Len returns the number of rotors.
func (s *Stack) Len() int {
	return len(s.rotors)
}

// Rotor returns a copy of rotor i in declared order.
func (s *Stack) Rotor(i int) Rotor {
	return s.rotors[i]
}

// Positions returns the current rotor offsets in declared order.
func (s *Stack) Positions() []Symbol {
	out := make([]Symbol, len(s.rotors))
	for i := range s.rotors {
		out[i] = s.rotors[i].position
	}
	return out
}

func (s *Stack) reset() {
	for i := range s.rotors {
		s.rotors[i].reset()
	}
}

func (s Stack) clone() Stack {
	return Stack{rotors: slices.Clone(s.rotors)}
}
