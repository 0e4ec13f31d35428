package parse

import (
	"bufio"
	"errors"
	"strings"

	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/catalog"
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
	"github.com/footprint-tools/verbparse/parser"
	"github.com/footprint-tools/verbparse/result"
)

// Parse returns the command parsing one line, or every line of stdin when no
// line is given.
func Parse(a *app.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return parse(args, flags, DefaultDeps(a))
	}
}

func parse(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	p := deps.Parser(flags.Has("--shell"))
	run := flags.Has("--run")

	if len(args) > 0 {
		return parseLine(JoinLine(args), p, run, deps)
	}

	scanner := bufio.NewScanner(deps.Stdin)
	total, failed := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++

		err := parseLine(line, p, run, deps)
		if err == nil {
			continue
		}

		var ue *usage.Error
		if errors.As(err, &ue) && ue.Kind == usage.ErrUnmatched {
			failed++
			_, _ = deps.Printf("%s\n", deps.Styler.Error(ue.Message))
			continue
		}
		return err
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if failed > 0 {
		return usage.UnmatchedLines(failed, total)
	}
	return nil
}

func parseLine(line string, p *parser.Parser, run bool, deps Deps) error {
	outcome, err := p.ParseAny(line, deps.Shapes...)
	if err != nil {
		return usage.Fault(err)
	}

	if errs, err := outcome.Errors(); err == nil {
		return usage.Unmatched(line, reasons(errs))
	}

	if run {
		reply, err := deps.Handler.Handle(outcome)
		if err != nil {
			return err
		}
		_, _ = deps.Printf("%s\n", reply)
		return nil
	}

	outcome.WhenMatched(func(v any) {
		_, _ = deps.Printf("%s\n", catalog.Describe(v, deps.Styler))
	})
	return nil
}

func reasons(errs []result.Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.String()
	}
	return out
}

// JoinLine rebuilds a command line from shell arguments, quoting the ones the
// shell unquoted.
func JoinLine(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		switch {
		case arg != "" && !strings.ContainsAny(arg, " \t"):
			parts[i] = arg
		case !strings.Contains(arg, `"`):
			parts[i] = `"` + arg + `"`
		default:
			parts[i] = "'" + arg + "'"
		}
	}
	return strings.Join(parts, " ")
}
