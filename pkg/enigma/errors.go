// Package enigma implements a rotor cipher machine.
package enigma

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies configuration and input failures.
type Kind string

const (
	// OutOfRange: a value falls outside [0,25].
	OutOfRange Kind = "OUT_OF_RANGE"
	// DuplicateMapping: a value is mapped more than once within one table.
	DuplicateMapping Kind = "DUPLICATE_MAPPING"
	// SelfMapping: a value is paired with itself where that is forbidden.
	SelfMapping Kind = "SELF_MAPPING"
	// IncompleteMapping: the number of entries differs from what the table needs.
	IncompleteMapping Kind = "INCOMPLETE_MAPPING"
	// ParityError: the plugboard holds an odd number of values, or more than 26.
	ParityError Kind = "PARITY_ERROR"
	// MissingPosition: fewer starting positions than rotors.
	MissingPosition Kind = "MISSING_POSITION"
	// InvalidSymbol: an input value outside the alphabet.
	InvalidSymbol Kind = "INVALID_SYMBOL"
	// MalformedToken: a configuration token is not a well-formed integer.
	MalformedToken Kind = "MALFORMED_TOKEN"
)

// Component names the part of the machine an error belongs to.
type Component string

const (
	ComponentPlugboard Component = "plugboard"
	ComponentReflector Component = "reflector"
	ComponentRotor     Component = "rotor"
	ComponentPositions Component = "positions"
	ComponentInput     Component = "input"
)

// Error is the structured failure returned by configuration and encryption.
//
// Value and Pos identify the offending token. For DuplicateMapping and
// SelfMapping, Prior is the position of the earlier token the offending one
// conflicts with. Count and Want carry the supplied and required number of
// entries for IncompleteMapping, ParityError and MissingPosition.
type Error struct {
	Kind      Kind
	Component Component
	Rotor     int // index in declared order, -1 when not rotor specific
	Value     int
	Text      string
	Pos       Position
	Prior     Position
	Count     int
	Want      int
}

// Sentinels for errors.Is matching by kind.
var (
	ErrOutOfRange        = &Error{Kind: OutOfRange}
	ErrDuplicateMapping  = &Error{Kind: DuplicateMapping}
	ErrSelfMapping       = &Error{Kind: SelfMapping}
	ErrIncompleteMapping = &Error{Kind: IncompleteMapping}
	ErrParity            = &Error{Kind: ParityError}
	ErrMissingPosition   = &Error{Kind: MissingPosition}
	ErrInvalidSymbol     = &Error{Kind: InvalidSymbol}
	ErrMalformedToken    = &Error{Kind: MalformedToken}
)

var (
	// ErrNotConfigured is returned when a machine is used before a
	// successful Configure.
	ErrNotConfigured = errors.New("enigma: machine is not configured")

	// ErrRotorCount is returned when the configuration holds a different
	// number of rotors than the machine was built for.
	ErrRotorCount = errors.New("enigma: rotor count mismatch")
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("enigma: ")
	b.WriteString(e.where())
	b.WriteString(": ")

	switch e.Kind {
	case OutOfRange:
		fmt.Fprintf(&b, "value %d out of range [0,%d]", e.Value, Size-1)
	case DuplicateMapping:
		fmt.Fprintf(&b, "value %d mapped more than once", e.Value)
	case SelfMapping:
		fmt.Fprintf(&b, "value %d paired with itself", e.Value)
	case IncompleteMapping:
		fmt.Fprintf(&b, "%d mappings given, need exactly %d", e.Count, e.Want)
	case ParityError:
		fmt.Fprintf(&b, "%d values given, need an even number not above %d", e.Count, e.Want)
	case MissingPosition:
		fmt.Fprintf(&b, "%d starting positions given, need %d", e.Count, e.Want)
	case InvalidSymbol:
		fmt.Fprintf(&b, "%q is not a valid input character, only A-Z are accepted", e.Text)
	case MalformedToken:
		fmt.Fprintf(&b, "malformed token %q, want a non-negative integer", e.Text)
	default:
		b.WriteString(string(e.Kind))
	}

	if e.Pos.IsValid() {
		fmt.Fprintf(&b, " at %s", e.Pos)
	}
	if e.Prior.IsValid() {
		fmt.Fprintf(&b, " (conflicts with %s)", e.Prior)
	}
	return b.String()
}

func (e *Error) where() string {
	if e.Component == ComponentRotor && e.Rotor >= 0 {
		return fmt.Sprintf("rotor %d", e.Rotor)
	}
	if e.Component == "" {
		return "config"
	}
	return string(e.Component)
}

// Is reports whether target is an *Error of the same kind. A target that
// also names a component only matches errors of that component.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Component == "" || t.Component == e.Component
}

// KindOf returns the kind of err if it wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// outOfRange builds an OutOfRange error for tok.
func outOfRange(c Component, rotor int, tok Token) *Error {
	return &Error{Kind: OutOfRange, Component: c, Rotor: rotor, Value: tok.Value, Text: tok.Text, Pos: tok.Pos}
}
