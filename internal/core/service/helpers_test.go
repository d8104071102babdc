package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/enigma-go/internal/core/domain"
)

const (
	rotorI   = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	rotorII  = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	rotorIII = "BDFHJLCPRTXVZNYEIWGAKMUSQO"

	// reflectorB as 13 pairs.
	reflectorB = "0 24 1 17 2 20 3 7 4 16 5 18 6 11 8 15 9 23 10 13 12 14 19 25 21 22"
)

// wiringFile renders a letter wiring and notch values as file content.
func wiringFile(wiring string, notches ...int) string {
	fields := make([]string, 0, len(wiring)+len(notches))
	for _, r := range wiring {
		fields = append(fields, fmt.Sprint(int(r-'A')))
	}
	for _, n := range notches {
		fields = append(fields, fmt.Sprint(n))
	}
	return strings.Join(fields, " ") + "\n"
}

// writeFiles writes name/content pairs into a temp dir and returns the
// paths keyed by name.
func writeFiles(t *testing.T, files map[string]string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		paths[name] = p
	}
	return paths
}

// historicProfile writes rotors I-II-III on reflector B with the given
// plugboard and positions files and returns the profile.
func historicProfile(t *testing.T, plugboard, positions string) domain.Profile {
	t.Helper()
	paths := writeFiles(t, map[string]string{
		"null.pb":   plugboard,
		"b.rf":      reflectorB,
		"I.rot":     wiringFile(rotorI, 16),
		"II.rot":    wiringFile(rotorII, 4),
		"III.rot":   wiringFile(rotorIII, 21),
		"start.pos": positions,
	})
	return domain.Profile{
		Plugboard: paths["null.pb"],
		Reflector: paths["b.rf"],
		Rotors:    []string{paths["I.rot"], paths["II.rot"], paths["III.rot"]},
		Positions: paths["start.pos"],
	}
}
