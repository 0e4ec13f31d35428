package parse

import (
	"fmt"

	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/shape"
)

// Shapes returns the command listing every catalog verb with its arguments.
func Shapes(a *app.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return listShapes(args, flags, DefaultDeps(a))
	}
}

func listShapes(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	st := deps.Styler

	for i, sh := range deps.Shapes {
		if i > 0 {
			_, _ = deps.Printf("\n")
		}
		_, _ = deps.Printf("%s\n", st.Verb(sh.Verb))

		for _, p := range sh.Parameters {
			_, _ = deps.Printf("   %s  %-16s %s\n", st.Key(names(p.Name, p.LongName)), p.Type, st.Muted(presence(p)))
		}
		for _, o := range sh.Options {
			_, _ = deps.Printf("   %s  %s\n", st.Key(names(o.Name, o.LongName)), st.Muted("option"))
		}
	}
	return nil
}

// names pads before styling so escape codes do not break the columns.
func names(short, long string) string {
	return fmt.Sprintf("%-20s", short+", "+long)
}

func presence(p shape.Parameter) string {
	if p.Required {
		return "required"
	}
	return "optional"
}
