package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yndnr/enigma-go/pkg/enigma"
)

// SourceReader returns the contents of a configuration file.
type SourceReader func(path string) ([]byte, error)

// Diagnose writes err to w. When err is a configuration error positioned
// in a file, the offending line is shown with the token underlined. For
// duplicate and self mappings the earlier conflicting token is shown too.
//
// read defaults to os.ReadFile. Sources that cannot be read are skipped
// silently; the error line itself is always written.
func Diagnose(w io.Writer, err error, read SourceReader) error {
	if err == nil {
		return nil
	}
	if read == nil {
		read = os.ReadFile
	}

	if _, werr := fmt.Fprintf(w, "error: %v\n", err); werr != nil {
		return werr
	}

	var e *enigma.Error
	if !errors.As(err, &e) {
		return nil
	}

	d := diagnoser{w: w, read: read, cache: make(map[string][][]byte)}
	d.snippet(e.Pos, e.Text, label(e))
	if e.Prior.IsValid() {
		d.snippet(e.Prior, "", "first used here")
	}
	return d.err
}

func label(e *enigma.Error) string {
	switch e.Kind {
	case enigma.DuplicateMapping:
		return "mapped again here"
	case enigma.SelfMapping:
		return "paired with itself here"
	case enigma.OutOfRange:
		return "out of range"
	case enigma.MalformedToken:
		return "not a number"
	case enigma.InvalidSymbol:
		return "invalid character"
	}
	return ""
}

type diagnoser struct {
	w     io.Writer
	read  SourceReader
	cache map[string][][]byte
	err   error
}

func (d *diagnoser) lines(source string) [][]byte {
	if l, ok := d.cache[source]; ok {
		return l
	}
	data, err := d.read(source)
	var l [][]byte
	if err == nil {
		l = bytes.Split(data, []byte("\n"))
	}
	d.cache[source] = l
	return l
}

// snippet prints the source line at pos with text underlined. Without
// text the underline covers the token that starts at pos.
func (d *diagnoser) snippet(pos enigma.Position, text, note string) {
	if d.err != nil || !pos.IsValid() || pos.Source == "" {
		return
	}
	lines := d.lines(pos.Source)
	if pos.Line > len(lines) {
		return
	}
	line := strings.TrimRight(string(lines[pos.Line-1]), "\r")

	prefix, rest := splitAtColumn(line, pos.Column)
	if text == "" {
		text = firstField(rest)
	}
	width := max(utf8.RuneCountInString(text), 1)

	gutter := fmt.Sprint(pos.Line)
	pad := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	fmt.Fprintf(&b, "%s--> %s\n", pad, pos)
	fmt.Fprintf(&b, "%s |\n", pad)
	fmt.Fprintf(&b, "%s | %s\n", gutter, line)
	fmt.Fprintf(&b, "%s | %s%s", pad, indent(prefix), strings.Repeat("~", width))
	if note != "" {
		fmt.Fprintf(&b, " %s", note)
	}
	b.WriteByte('\n')

	_, d.err = io.WriteString(d.w, b.String())
}

// splitAtColumn splits line before the 1-based rune column col.
func splitAtColumn(line string, col int) (string, string) {
	n := 0
	for i := range line {
		if n == col-1 {
			return line[:i], line[i:]
		}
		n++
	}
	return line, ""
}

// indent blanks out prefix, keeping tabs so the underline lines up.
func indent(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return '\t'
		}
		return ' '
	}, prefix)
}

func firstField(s string) string {
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s
	}
	return s[:end]
}
