package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/footprint-tools/verbparse/internal/ui/style"
	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/shape"
)

// Describe renders a bound command as `verb key=value ... option`. Unset
// optional parameters and false options are left out.
func Describe(v any, st style.Stylist) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}

	sh, err := shape.For(rv.Type())
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	name := sh.Verb
	if name == "" {
		name = sh.Name()
	}
	parts := []string{st.Verb(name)}

	for _, p := range sh.Parameters {
		if !p.Settable {
			continue
		}
		field := rv.FieldByIndex(p.Index)
		if !p.Required && field.IsZero() {
			continue
		}
		parts = append(parts, st.Key(p.LongName)+"="+st.Value(formatValue(field)))
	}
	for _, o := range sh.Options {
		if !o.Settable {
			continue
		}
		if field := rv.FieldByIndex(o.Index); field.Kind() == reflect.Bool && field.Bool() {
			parts = append(parts, st.Key(o.LongName))
		}
	}

	return strings.Join(parts, " ")
}

func formatValue(v reflect.Value) string {
	s := fmt.Sprint(v.Interface())
	if s == "" || strings.ContainsAny(s, " \t\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// DescribeErrors renders unmatched errors one per line as `Code: text`.
func DescribeErrors(errs []result.Error, st style.Stylist) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = st.Error(e.Code.String()+":") + " " + e.Text
	}
	return strings.Join(lines, "\n")
}

// DescribePackage renders one registry entry.
func DescribePackage(p Package, st style.Stylist) string {
	var b strings.Builder
	b.WriteString(st.Value(p.Name))
	if p.Version != "" {
		b.WriteString(" " + st.Muted(p.Version))
	}
	if p.Tag != "" {
		b.WriteString(" [" + st.Key(p.Tag) + "]")
	}
	if p.Hidden {
		b.WriteString(" " + st.Muted("(hidden)"))
	}
	return b.String()
}
