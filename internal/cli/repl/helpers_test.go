package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/yndnr/enigma-go/internal/core/service"
	"github.com/yndnr/enigma-go/internal/telemetry/logger"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

var reflectorB = []int{0, 24, 1, 17, 2, 20, 3, 7, 4, 16, 5, 18, 6, 11, 8, 15, 9, 23, 10, 13, 12, 14, 19, 25, 21, 22}

func rotor(wiring string, notch int) enigma.RotorSpec {
	vals := make([]int, len(wiring))
	for i, r := range wiring {
		vals[i] = int(r - 'A')
	}
	return enigma.RotorSpec{Wiring: enigma.Tokens(vals...), Notches: enigma.Tokens(notch)}
}

// historicMachine returns rotors I-II-III on reflector B at AAA.
func historicMachine(t *testing.T) *enigma.Machine {
	t.Helper()
	m := enigma.New(3)
	err := m.Configure(enigma.Config{
		Reflector: enigma.Tokens(reflectorB...),
		Rotors: []enigma.RotorSpec{
			rotor("EKMFLGDQVZNTOWYHXUSPAIBRCJ", 16),
			rotor("AJDKSIRUXBLHWTMCQGZNPYFVOE", 4),
			rotor("BDFHJLCPRTXVZNYEIWGAKMUSQO", 21),
		},
		Positions: enigma.Tokens(0, 0, 0),
	})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	return m
}

func shellSessions() *service.SessionService {
	opts := service.DefaultEncryptOptions()
	opts.Terminator = 0
	opts.TrailingNewline = true
	opts.Source = "<shell>"
	return service.NewSessionService(opts, service.WithSessionLogger(logger.Discard()))
}

// runShell feeds input to a fresh shell and returns stdout and stderr.
func runShell(t *testing.T, input string, load MachineLoader) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	r := New(Config{
		Prompt:    "> ",
		Input:     strings.NewReader(input),
		Output:    &out,
		ErrOutput: &errOut,
	}, shellSessions(), historicMachine(t), load)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String(), errOut.String()
}
