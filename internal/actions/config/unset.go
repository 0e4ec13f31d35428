package config

import (
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// Unset returns the command removing config values.
func Unset(path string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return unset(args, flags, DefaultDeps(path))
	}
}

func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if err := checkEditable(deps.Path); err != nil {
		return err
	}

	if flags.Has("--all") {
		if len(args) > 0 {
			return usage.InvalidFlag("--all does not take arguments")
		}

		if err := deps.Update(deps.Path, func([]string) []string { return []string{} }); err != nil {
			return err
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !deps.IsKnown(key) {
		return usage.InvalidConfigKey(key)
	}

	var removed bool
	err := deps.Update(deps.Path, func(lines []string) []string {
		lines, removed = deps.Unset(lines, key)
		return lines
	})
	if err != nil {
		return err
	}

	if !removed {
		_, _ = deps.Printf("%s is not set\n", key)
		return nil
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
