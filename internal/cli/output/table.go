package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
)

// Tabler is implemented by reports that know their own table layout.
type Tabler interface {
	Table(wide bool) *Table
}

// TableFormatter formats data as an aligned table.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool
}

// Format formats data as a table.
// Supports: *Table, Tabler, a struct, and a slice of structs. Fields tagged
// `table:"-"` are skipped and `table:"wide"` fields need Wide.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch d := data.(type) {
	case nil:
		return nil
	case *Table:
		return d.RenderWithOptions(w, f.NoHeaders)
	case Tabler:
		return d.Table(f.Wide).RenderWithOptions(w, f.NoHeaders)
	}

	t, err := toTable(reflect.ValueOf(data), f.Wide)
	if err != nil {
		return err
	}
	return t.RenderWithOptions(w, f.NoHeaders)
}

func toTable(v reflect.Value, wide bool) (*Table, error) {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := &Table{Headers: []string{"FIELD", "VALUE"}}
		for _, i := range columns(v.Type(), wide) {
			t.AddRow(fieldName(v.Type().Field(i)), formatValue(v.Field(i)))
		}
		return t, nil
	case reflect.Slice, reflect.Array:
		elem := v.Type().Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			return nil, fmt.Errorf("unsupported element type: %s", elem)
		}
		cols := columns(elem, wide)
		t := &Table{}
		for _, i := range cols {
			t.Headers = append(t.Headers, strings.ToUpper(fieldName(elem.Field(i))))
		}
		for n := 0; n < v.Len(); n++ {
			row := reflect.Indirect(v.Index(n))
			cells := make([]string, len(cols))
			for c, i := range cols {
				cells[c] = formatValue(row.Field(i))
			}
			t.AddRow(cells...)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", v.Kind())
	}
}

// columns returns the indices of the fields shown for t.
func columns(t reflect.Type, wide bool) []int {
	var idx []int
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("table")
		if tag == "-" || (tag == "wide" && !wide) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// fieldName prefers the json tag name.
func fieldName(f reflect.StructField) string {
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return f.Name
}

// formatValue formats a reflect.Value for display.
func formatValue(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return "-"
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return "-"
		}
		return v.String()
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
