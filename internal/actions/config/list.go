package config

import (
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// List returns the command printing every config key with its effective
// value.
func List(path string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return list(args, flags, DefaultDeps(path))
	}
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	cfg, err := deps.Load(deps.Path)
	if err != nil {
		return usage.InvalidConfig(err)
	}

	for _, key := range deps.Keys {
		_, _ = deps.Printf("%s=%s\n", key.Name, cfg[key.Name])
	}

	return nil
}

// Path returns the command printing the config file location.
func Path(path string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return showPath(args, flags, DefaultDeps(path))
	}
}

func showPath(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	_, _ = deps.Println(deps.Path)
	return nil
}
