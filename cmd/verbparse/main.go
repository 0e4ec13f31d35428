package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/verbparse/internal/app"
	"github.com/footprint-tools/verbparse/internal/cli"
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/paths"
	"github.com/footprint-tools/verbparse/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rawFlags, commands, line := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	configPath, err := resolveConfigPath(flags)
	if err != nil {
		return fail(stderr, err)
	}

	a, err := app.New(app.Options{
		ConfigPath:    configPath,
		PagerDisabled: flags.Has("--no-pager"),
		PagerOverride: flags.String("--pager", ""),
		// Enable styling if stdout is a terminal and --no-color is not set
		StyleEnabled: term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color"),
	})
	if err != nil {
		return fail(stderr, usage.InvalidConfig(err))
	}
	defer func() { _ = app.Close(a) }()

	if len(commands) == 0 && len(line) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		commands = []string{"version"}
	}

	root := cli.BuildTree(a)

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		return fail(stderr, err)
	}

	// Words after -- belong to the command line being parsed.
	if err := res.Execute(append(res.Args, line...), res.Flags); err != nil {
		return fail(stderr, err)
	}

	// Exit with non-zero code if resolution requests it (e.g., verbparse with no args)
	return res.ExitCode
}

func resolveConfigPath(flags *dispatchers.ParsedFlags) (string, error) {
	if p := flags.String("--config", ""); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", usage.FailedConfigPath(err)
		}
		return abs, nil
	}

	p, err := paths.ConfigFilePath()
	if err != nil {
		return "", usage.FailedConfigPath(err)
	}
	return p, nil
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.ExitCode()
	}
	return 1
}

// extractFlagsAndCommands splits args into flags, command words and the
// command line after "--". A value flag given without '=' takes the next
// argument as its value.
func extractFlagsAndCommands(args []string) (flags, commands, line []string) {
	flags, commands, line = []string{}, []string{}, []string{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			line = append(line, args[i+1:]...)
			return flags, commands, line

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if cli.ValueFlags[arg] && i+1 < len(args) && args[i+1] != "--" {
				flags = append(flags, arg+"="+args[i+1])
				i++
				continue
			}
			flags = append(flags, arg)

		default:
			commands = append(commands, arg)
		}
	}

	return flags, commands, line
}
