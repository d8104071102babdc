package domain

import (
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// Profile names the files a machine is configured from.
type Profile struct {
	Plugboard string   `json:"plugboard" yaml:"plugboard" koanf:"plugboard"`
	Reflector string   `json:"reflector" yaml:"reflector" koanf:"reflector"`
	Rotors    []string `json:"rotors" yaml:"rotors" koanf:"rotors"`
	Positions string   `json:"positions" yaml:"positions" koanf:"positions"`
}

// ProfileFromArgs maps the positional form
//
//	plugboard reflector [rotor ... positions]
//
// onto a Profile. With exactly two arguments the machine has no rotors and
// no positions file; otherwise the last argument is the positions file and
// everything between the reflector and it is a rotor, left to right.
func ProfileFromArgs(args []string) (Profile, error) {
	if len(args) < 2 {
		return Profile{}, ErrInsufficientParameters.WithDetails(
			"usage: plugboard reflector [rotor ... positions]")
	}

	p := Profile{Plugboard: args[0], Reflector: args[1]}
	if len(args) > 2 {
		p.Rotors = append([]string(nil), args[2:len(args)-1]...)
		p.Positions = args[len(args)-1]
	}
	return p, nil
}

// IsZero reports whether no files are named.
func (p Profile) IsZero() bool {
	return p.Plugboard == "" && p.Reflector == "" && len(p.Rotors) == 0 && p.Positions == ""
}

// Validate checks that the mandatory files are named.
func (p Profile) Validate() error {
	if p.Plugboard == "" || p.Reflector == "" {
		return ErrInsufficientParameters.WithDetails("plugboard and reflector files are required")
	}
	if len(p.Rotors) > 0 && p.Positions == "" {
		return ErrInsufficientParameters.WithDetails("a positions file is required with rotors")
	}
	return nil
}

// Files lists every file the profile names, in load order.
func (p Profile) Files() []string {
	files := []string{p.Reflector, p.Plugboard}
	files = append(files, p.Rotors...)
	if p.Positions != "" {
		files = append(files, p.Positions)
	}
	return files
}

// SplitRotorTokens splits the contents of a rotor file into its wiring,
// the first enigma.Size tokens, and its notches, the rest.
func SplitRotorTokens(tokens []enigma.Token) enigma.RotorSpec {
	if len(tokens) <= enigma.Size {
		return enigma.RotorSpec{Wiring: tokens}
	}
	return enigma.RotorSpec{Wiring: tokens[:enigma.Size], Notches: tokens[enigma.Size:]}
}
