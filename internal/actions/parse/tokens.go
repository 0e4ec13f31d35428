package parse

import (
	"errors"

	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/token"
)

// Tokens returns the command printing how a line is tokenized.
func Tokens(a *app.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return tokens(args, flags, DefaultDeps(a))
	}
}

func tokens(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("line")
	}

	line := JoinLine(args)
	cmd, err := deps.Parser(flags.Has("--shell")).Tokenize(line)

	var failure *result.Failure
	if errors.As(err, &failure) {
		return usage.Unmatched(line, reasons(failure.Errors()))
	}
	if err != nil {
		return usage.Fault(err)
	}

	printTokens(cmd, deps)
	return nil
}

func printTokens(cmd token.Command, deps Deps) {
	st := deps.Styler

	_, _ = deps.Printf("%-10s %s\n", "verb", st.Verb(cmd.Verb))
	for _, arg := range cmd.Arguments {
		switch {
		case arg.IsPositional():
			_, _ = deps.Printf("%-10s %s\n", "value", st.Value(arg.Value))
		case arg.IsOption():
			_, _ = deps.Printf("%-10s %s\n", "option", st.Key(arg.Key))
		default:
			_, _ = deps.Printf("%-10s %s=%s\n", "argument", st.Key(arg.Key), st.Value(arg.Value))
		}
	}
}
