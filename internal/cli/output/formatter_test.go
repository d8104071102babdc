package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		wide   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{FormatTable, true},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format, tt.wide)
			switch tt.format {
			case FormatJSON:
				if _, ok := f.(*JSONFormatter); !ok {
					t.Error("expected JSONFormatter")
				}
			case FormatYAML:
				if _, ok := f.(*YAMLFormatter); !ok {
					t.Error("expected YAMLFormatter")
				}
			default:
				tf, ok := f.(*TableFormatter)
				if !ok {
					t.Fatal("expected TableFormatter")
				}
				if tf.Wide != tt.wide {
					t.Errorf("Wide = %v, want %v", tf.Wide, tt.wide)
				}
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "Yaml"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", in, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

type report struct {
	Rotors      int    `json:"rotors" yaml:"rotors"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty" table:"wide"`
	internal    int
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, report{Rotors: 3, Fingerprint: "ab"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "{\n  \"rotors\": 3,\n  \"fingerprint\": \"ab\"\n}\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{
		"rotors":    3,
		"positions": []int{0, 1},
	}
	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "positions:\n  - 0\n  - 1\nrotors: 3\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestTableFormatter_Struct(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, &report{Rotors: 3, Notes: "n"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"FIELD", "rotors", "3", "fingerprint", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "notes") {
		t.Error("wide field shown without Wide")
	}
	if strings.Contains(out, "internal") {
		t.Error("unexported field shown")
	}
}

func TestTableFormatter_SliceWide(t *testing.T) {
	var buf bytes.Buffer
	data := []report{{Rotors: 1, Notes: "first"}, {Rotors: 2, Notes: "second"}}
	if err := (&TableFormatter{Wide: true}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ROTORS") || !strings.Contains(lines[0], "NOTES") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "second") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTableFormatter_Unsupported(t *testing.T) {
	if err := (&TableFormatter{}).Format(&bytes.Buffer{}, 42); err == nil {
		t.Error("Format(int) should fail")
	}
	if err := (&TableFormatter{}).Format(&bytes.Buffer{}, nil); err != nil {
		t.Errorf("Format(nil) error = %v", err)
	}
}

type tablerReport struct{}

func (tablerReport) Table(wide bool) *Table {
	t := &Table{Headers: []string{"A"}}
	if wide {
		t.AddRow("wide")
	} else {
		t.AddRow("narrow")
	}
	return t
}

func TestTableFormatter_Tabler(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{Wide: true, NoHeaders: true}).Format(&buf, tablerReport{}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.String() != "wide\n" {
		t.Errorf("Format() = %q, want %q", buf.String(), "wide\n")
	}
}

func TestTable_Render(t *testing.T) {
	tb := &Table{}
	tb.SetHeaders("ROTOR", "POSITION")
	tb.AddRow("0", "A")
	tb.AddRow("1", "Z")

	var buf bytes.Buffer
	if err := tb.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "ROTOR  POSITION\n0      A\n1      Z\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}
