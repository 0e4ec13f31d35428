package theme

import (
	"fmt"

	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/ui/style"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// Set returns the command storing color_theme.
func Set(path string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return setTheme(args, flags, DefaultDeps(path))
	}
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme")
	}

	themeName := args[0]

	if !known(themeName, deps) {
		_, _ = deps.Printf("%s unknown theme: %s\n", style.Error("error:"), themeName)
		_, _ = deps.Println()
		_, _ = deps.Println("available themes:")
		for _, name := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		return usage.InvalidConfig(fmt.Errorf("unknown theme: %s", themeName))
	}

	err := deps.Update(deps.Path, func(lines []string) []string {
		lines, _ = deps.Set(lines, "color_theme", themeName)
		return lines
	})
	if err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))
	return nil
}

// known accepts a full theme name or a base name with both variants.
func known(name string, deps Deps) bool {
	if _, ok := deps.Themes[name]; ok {
		return true
	}
	_, dark := deps.Themes[name+"-dark"]
	_, light := deps.Themes[name+"-light"]
	return dark && light
}
