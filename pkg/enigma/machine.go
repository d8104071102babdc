// Package enigma implements a rotor cipher machine.
package enigma

import (
	"fmt"
	"iter"
)

// Config is the tokenized machine configuration.
//
// Rotors are listed in declared order, left to right, and Positions holds
// one starting position per rotor in the same order. Extra positions are
// ignored.
type Config struct {
	Reflector []Token
	Plugboard []Token
	Rotors    []RotorSpec
	Positions []Token
}

// Machine is the composition of plugboard, rotor stack and reflector.
//
// Copying a Machine by value shares nothing mutable except the rotor
// slice; use Clone for an independent machine.
type Machine struct {
	rotorCount int
	plugboard  Plugboard
	reflector  Reflector
	stack      Stack
	configured bool
}

// New returns an unconfigured machine with room for rotorCount rotors.
func New(rotorCount int) *Machine {
	if rotorCount < 0 {
		rotorCount = 0
	}
	return &Machine{rotorCount: rotorCount}
}

// Configure validates cfg and, only if every table is valid, installs it.
//
// The reflector is built first, then the plugboard, then each rotor in
// declared order. The first invalid datum aborts configuration and leaves
// the machine unconfigured.
func (m *Machine) Configure(cfg Config) error {
	m.configured = false

	if len(cfg.Rotors) != m.rotorCount {
		return fmt.Errorf("%w: configuration has %d rotors, machine has %d",
			ErrRotorCount, len(cfg.Rotors), m.rotorCount)
	}

	reflector := NewReflector()
	if err := reflector.Configure(cfg.Reflector); err != nil {
		return err
	}

	plugboard := NewPlugboard()
	if err := plugboard.Configure(cfg.Plugboard); err != nil {
		return err
	}

	stack := NewStack(m.rotorCount)
	if err := stack.Configure(cfg.Rotors, cfg.Positions); err != nil {
		return err
	}

	m.reflector = reflector
	m.plugboard = plugboard
	m.stack = stack
	m.configured = true
	return nil
}

// Configured reports whether the machine may encrypt.
func (m *Machine) Configured() bool {
	return m.configured
}

// EncryptSymbol advances the rotors and maps s along the signal path.
// Encryption and decryption are the same operation.
func (m *Machine) EncryptSymbol(s Symbol) (Symbol, error) {
	if !m.configured {
		return 0, ErrNotConfigured
	}
	if !s.Valid() {
		return 0, &Error{
			Kind:      InvalidSymbol,
			Component: ComponentInput,
			Rotor:     -1,
			Value:     int(s),
			Text:      fmt.Sprint(int(s)),
		}
	}

	m.stack.Step()
	return m.press(s), nil
}

// press runs the six stage signal path at the current rotor positions.
func (m *Machine) press(s Symbol) Symbol {
	s = m.plugboard.Apply(s)
	s = m.stack.PassRightToLeft(s)
	s = m.reflector.Reflect(s)
	s = m.stack.PassLeftToRight(s)
	return m.plugboard.Apply(s)
}

// EncryptStream lazily encrypts in, one symbol per input symbol.
//
// The sequence ends with the input. On an invalid symbol it yields the
// error and stops; output already yielded and rotor steps already taken
// stand. The input is consumed once and the rotor state is not rewound.
func (m *Machine) EncryptStream(in iter.Seq[Symbol]) iter.Seq2[Symbol, error] {
	return func(yield func(Symbol, error) bool) {
		if !m.configured {
			yield(0, ErrNotConfigured)
			return
		}
		for s := range in {
			out, err := m.EncryptSymbol(s)
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the machine, rotor state included.
func (m *Machine) Clone() *Machine {
	c := *m
	c.stack = m.stack.clone()
	return &c
}

// Reset returns every rotor to its configured starting position.
func (m *Machine) Reset() {
	m.stack.reset()
}

// RotorCount returns the number of rotors the machine was built for.
func (m *Machine) RotorCount() int {
	return m.rotorCount
}

// Positions returns the current rotor offsets in declared order.
func (m *Machine) Positions() []Symbol {
	return m.stack.Positions()
}

// Rotor returns a copy of rotor i in declared order.
func (m *Machine) Rotor(i int) Rotor {
	return m.stack.Rotor(i)
}

// Plugboard returns a copy of the plugboard.
func (m *Machine) Plugboard() Plugboard {
	return m.plugboard
}

// Reflector returns a copy of the reflector.
func (m *Machine) Reflector() Reflector {
	return m.reflector
}
