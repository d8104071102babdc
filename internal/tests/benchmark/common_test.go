package benchmark

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/enigma-go/internal/core/domain"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// MessageLengths defines the plaintext lengths for benchmarking.
var MessageLengths = []int{64, 1024, 16384}

// RotorCounts defines machine sizes for benchmarking.
var RotorCounts = []int{0, 3, 8}

// randomWiring returns a random permutation of the alphabet.
func randomWiring(rng *rand.Rand) []int {
	return rng.Perm(enigma.Size)
}

// reflectorPairs pairs 0-1, 2-3 and so on.
func reflectorPairs() []int {
	vals := make([]int, enigma.Size)
	for i := range vals {
		vals[i] = i
	}
	return vals
}

// newMachine builds a machine with n random rotors.
func newMachine(b *testing.B, n int) *enigma.Machine {
	b.Helper()
	rng := rand.New(rand.NewPCG(uint64(n), 1))

	cfg := enigma.Config{
		Reflector: enigma.Tokens(reflectorPairs()...),
		Plugboard: enigma.Tokens(0, 7, 3, 11, 4, 20),
	}
	positions := make([]int, n)
	for i := range n {
		cfg.Rotors = append(cfg.Rotors, enigma.RotorSpec{
			Wiring:  enigma.Tokens(randomWiring(rng)...),
			Notches: enigma.Tokens(rng.IntN(enigma.Size)),
		})
		positions[i] = rng.IntN(enigma.Size)
	}
	cfg.Positions = enigma.Tokens(positions...)

	m := enigma.New(n)
	if err := m.Configure(cfg); err != nil {
		b.Fatalf("Configure failed: %v", err)
	}
	return m
}

// plaintext returns n random letters.
func plaintext(n int) string {
	rng := rand.New(rand.NewPCG(uint64(n), 2))
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(byte('A' + rng.IntN(enigma.Size)))
	}
	return sb.String()
}

// writeProfile writes a key sheet with n random rotors.
func writeProfile(b *testing.B, n int) domain.Profile {
	b.Helper()
	rng := rand.New(rand.NewPCG(uint64(n), 3))
	dir := b.TempDir()

	write := func(name string, vals []int) string {
		fields := make([]string, len(vals))
		for i, v := range vals {
			fields[i] = fmt.Sprint(v)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(strings.Join(fields, " ")+"\n"), 0644); err != nil {
			b.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	p := domain.Profile{
		Plugboard: write("pb", []int{0, 7, 3, 11}),
		Reflector: write("rf", reflectorPairs()),
	}
	if n == 0 {
		return p
	}
	positions := make([]int, n)
	for i := range n {
		wiring := append(randomWiring(rng), 0, 13)
		p.Rotors = append(p.Rotors, write(fmt.Sprintf("r%d.rot", i), wiring))
	}
	p.Positions = write("start.pos", positions)
	return p
}

// runWithLengths runs a benchmark function with each message length.
func runWithLengths(b *testing.B, benchFn func(b *testing.B, length int)) {
	for _, n := range MessageLengths {
		b.Run(fmt.Sprintf("letters_%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			benchFn(b, n)
		})
	}
}
