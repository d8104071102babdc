package command

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reflectorB = "0 24 1 17 2 20 3 7 4 16 5 18 6 11 8 15 9 23 10 13 12 14 19 25 21 22"

var historicRotors = []struct {
	wiring string
	notch  int
}{
	{"EKMFLGDQVZNTOWYHXUSPAIBRCJ", 16},
	{"AJDKSIRUXBLHWTMCQGZNPYFVOE", 4},
	{"BDFHJLCPRTXVZNYEIWGAKMUSQO", 21},
}

// writeKeySheet writes rotors I-II-III on reflector B with the given
// plugboard and returns the positional arguments naming the files.
func writeKeySheet(t *testing.T, plugboard string) []string {
	t.Helper()
	dir := t.TempDir()
	put := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content+"\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return p
	}

	args := []string{put("plugboard.pb", plugboard), put("reflector.rf", reflectorB)}
	for i, r := range historicRotors {
		fields := make([]string, 0, 27)
		for _, ch := range r.wiring {
			fields = append(fields, fmt.Sprint(int(ch-'A')))
		}
		fields = append(fields, fmt.Sprint(r.notch))
		args = append(args, put(fmt.Sprintf("r%d.rot", i), strings.Join(fields, " ")))
	}
	return append(args, put("start.pos", "0 0 0"))
}

// runApp runs the application with an isolated HOME and returns the exit
// code and both output streams.
func runApp(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"enigma"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}
