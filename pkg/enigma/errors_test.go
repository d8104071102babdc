package enigma

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	pos := Position{Source: "b.rf", Offset: 4, Line: 1, Column: 5}
	prior := Position{Source: "b.rf", Offset: 0, Line: 1, Column: 1}

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "out of range",
			err:  &Error{Kind: OutOfRange, Component: ComponentPlugboard, Rotor: -1, Value: 30, Pos: pos},
			want: "enigma: plugboard: value 30 out of range [0,25] at b.rf:1:5",
		},
		{
			name: "duplicate with prior",
			err:  &Error{Kind: DuplicateMapping, Component: ComponentReflector, Rotor: -1, Value: 3, Pos: pos, Prior: prior},
			want: "enigma: reflector: value 3 mapped more than once at b.rf:1:5 (conflicts with b.rf:1:1)",
		},
		{
			name: "rotor incomplete",
			err:  &Error{Kind: IncompleteMapping, Component: ComponentRotor, Rotor: 2, Count: 12, Want: 26},
			want: "enigma: rotor 2: 12 mappings given, need exactly 26",
		},
		{
			name: "missing position",
			err:  &Error{Kind: MissingPosition, Component: ComponentPositions, Rotor: 1, Count: 1, Want: 3},
			want: "enigma: positions: 1 starting positions given, need 3",
		},
		{
			name: "invalid symbol",
			err:  &Error{Kind: InvalidSymbol, Component: ComponentInput, Rotor: -1, Text: "a"},
			want: `enigma: input: "a" is not a valid input character, only A-Z are accepted`,
		},
		{
			name: "malformed token",
			err:  &Error{Kind: MalformedToken, Component: ComponentRotor, Rotor: -1, Text: "1x", Pos: pos},
			want: `enigma: rotor: malformed token "1x", want a non-negative integer at b.rf:1:5`,
		},
		{
			name: "no component",
			err:  &Error{Kind: ParityError, Count: 3, Want: 26},
			want: "enigma: config: 3 values given, need an even number not above 26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("load: %w", &Error{Kind: SelfMapping, Component: ComponentReflector})

	assert.True(t, errors.Is(err, ErrSelfMapping))
	assert.True(t, errors.Is(err, &Error{Kind: SelfMapping, Component: ComponentReflector}))
	assert.False(t, errors.Is(err, &Error{Kind: SelfMapping, Component: ComponentPlugboard}))
	assert.False(t, errors.Is(err, ErrDuplicateMapping))
	assert.False(t, errors.Is(err, ErrNotConfigured))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, SelfMapping, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "-", Position{}.String())
	assert.Equal(t, "x.pos", Position{Source: "x.pos"}.String())
	assert.Equal(t, "2:7", Position{Line: 2, Column: 7}.String())
	assert.Equal(t, "x.pos:2:7", Position{Source: "x.pos", Line: 2, Column: 7}.String())
}
