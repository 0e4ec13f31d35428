package config

import (
	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// Get returns the command printing one config value.
func Get(path string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return get(args, flags, DefaultDeps(path))
	}
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !deps.IsKnown(key) {
		return usage.InvalidConfigKey(key)
	}

	cfg, err := deps.Load(deps.Path)
	if err != nil {
		return usage.InvalidConfig(err)
	}

	_, _ = deps.Println(cfg[key])
	return nil
}
