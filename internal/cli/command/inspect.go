package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/enigma-go/internal/cli/output"
	"github.com/yndnr/enigma-go/internal/core/domain"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the machine a key sheet builds",
		ArgsUsage: "[plugboard reflector [rotor ... positions]]",
		Action:    inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	rt := getInvocation(c)

	p, err := rt.profile(c)
	if err != nil {
		return err
	}
	m, err := rt.machines().Load(c.Context, p)
	if err != nil {
		return err
	}

	return rt.formatter(c).Format(c.App.Writer, newMachineReport(p, m, c.Bool("wide")))
}

// machineReport summarizes a configured machine.
type machineReport struct {
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Reflector   string          `json:"reflector" yaml:"reflector"`
	Plugboard   plugboardReport `json:"plugboard" yaml:"plugboard"`
	Rotors      []rotorReport   `json:"rotors" yaml:"rotors"`
}

type plugboardReport struct {
	File  string   `json:"file" yaml:"file"`
	Pairs []string `json:"pairs" yaml:"pairs"`
}

type rotorReport struct {
	Index    int      `json:"index" yaml:"index"`
	File     string   `json:"file" yaml:"file"`
	Position string   `json:"position" yaml:"position"`
	Notches  []string `json:"notches" yaml:"notches"`
	Wiring   string   `json:"wiring,omitempty" yaml:"wiring,omitempty"`
}

// newMachineReport builds the report. Wiring is only included when wide
// is set.
func newMachineReport(p domain.Profile, m *enigma.Machine, wide bool) *machineReport {
	pb := m.Plugboard()
	r := &machineReport{
		Fingerprint: m.FingerprintHex(),
		Reflector:   p.Reflector,
		Plugboard:   plugboardReport{File: p.Plugboard, Pairs: []string{}},
		Rotors:      make([]rotorReport, 0, m.RotorCount()),
	}
	for _, pair := range pb.Pairs() {
		r.Plugboard.Pairs = append(r.Plugboard.Pairs, pair[0].String()+"-"+pair[1].String())
	}

	positions := m.Positions()
	for i := range m.RotorCount() {
		rotor := m.Rotor(i)
		rr := rotorReport{
			Index:    i,
			File:     p.Rotors[i],
			Position: positions[i].String(),
			Notches:  letters(rotor.Notches()),
		}
		if wide {
			w := rotor.Wiring()
			rr.Wiring = strings.Join(letters(w[:]), "")
		}
		r.Rotors = append(r.Rotors, rr)
	}
	return r
}

// Table implements output.Tabler.
func (r *machineReport) Table(wide bool) *output.Table {
	t := &output.Table{Headers: []string{"COMPONENT", "FILE", "POSITION", "DETAIL"}}
	t.AddRow("reflector", r.Reflector, "-", "13 pairs")

	pairs := fmt.Sprintf("%d pairs", len(r.Plugboard.Pairs))
	if wide && len(r.Plugboard.Pairs) > 0 {
		pairs = strings.Join(r.Plugboard.Pairs, " ")
	}
	t.AddRow("plugboard", r.Plugboard.File, "-", pairs)

	for _, rr := range r.Rotors {
		detail := "notches " + strings.Join(rr.Notches, ",")
		if len(rr.Notches) == 0 {
			detail = "no notches"
		}
		if rr.Wiring != "" {
			detail += " wiring " + rr.Wiring
		}
		t.AddRow(fmt.Sprintf("rotor %d", rr.Index), rr.File, rr.Position, detail)
	}
	t.AddRow("fingerprint", "-", "-", r.Fingerprint)
	return t
}

func letters(syms []enigma.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.String()
	}
	return out
}
