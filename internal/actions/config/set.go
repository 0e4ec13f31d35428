package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// Set returns the command storing one config value.
func Set(path string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return set(args, flags, DefaultDeps(path))
	}
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if !deps.IsKnown(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := checkEditable(deps.Path); err != nil {
		return err
	}

	cfg, err := deps.Load(deps.Path)
	if err != nil {
		return usage.InvalidConfig(err)
	}
	cfg[key] = value
	if err := deps.Validate(cfg); err != nil {
		return usage.InvalidConfig(err)
	}

	var updated bool
	err = deps.Update(deps.Path, func(lines []string) []string {
		lines, updated = deps.Set(lines, key, value)
		return lines
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

// checkEditable rejects HCL files, which are only ever edited by hand.
func checkEditable(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return usage.InvalidConfig(fmt.Errorf("%s is an HCL file, edit it directly", path))
	}
	return nil
}
