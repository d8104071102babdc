package domain

import (
	"errors"

	"github.com/yndnr/enigma-go/pkg/enigma"
)

// Process exit codes. The numbering is fixed so that scripts written
// against earlier releases keep working.
const (
	ExitOK                       = 0
	ExitInsufficientParameters   = 1
	ExitInvalidInputChar         = 2
	ExitInvalidIndex             = 3
	ExitNonNumericChar           = 4
	ExitImpossiblePlugboard      = 5
	ExitIncorrectPlugboardParams = 6
	ExitInvalidRotorMapping      = 7
	ExitNoRotorStartingPosition  = 8
	ExitInvalidReflectorMapping  = 9
	ExitIncorrectReflectorParams = 10
	ExitConfigFileOpen           = 11
)

// ExitCode maps err to the process exit code. Errors that have no dedicated
// code map to ExitInsufficientParameters, the generic usage failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrConfigFileOpen) {
		return ExitConfigFileOpen
	}

	var e *enigma.Error
	if !errors.As(err, &e) {
		return ExitInsufficientParameters
	}

	switch e.Kind {
	case enigma.InvalidSymbol:
		return ExitInvalidInputChar
	case enigma.OutOfRange:
		return ExitInvalidIndex
	case enigma.MalformedToken:
		return ExitNonNumericChar
	case enigma.MissingPosition:
		return ExitNoRotorStartingPosition
	case enigma.ParityError:
		return ExitIncorrectPlugboardParams
	}

	switch e.Component {
	case enigma.ComponentPlugboard:
		return ExitImpossiblePlugboard
	case enigma.ComponentRotor:
		return ExitInvalidRotorMapping
	case enigma.ComponentReflector:
		if e.Kind == enigma.IncompleteMapping {
			return ExitIncorrectReflectorParams
		}
		return ExitInvalidReflectorMapping
	}
	return ExitInsufficientParameters
}
