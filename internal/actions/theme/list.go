package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/verbparse/internal/dispatchers"
	"github.com/footprint-tools/verbparse/internal/ui/style"
	"github.com/footprint-tools/verbparse/internal/usage"
)

// List returns the command printing the built-in themes.
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

	current := cfg["color_theme"]
	if current == "" {
		current = "default"
	}
	current = deps.Resolve(current)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		_, _ = deps.Printf("%s%-16s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'verbparse theme set <name>' to change")

	return nil
}

// renderColorPreview returns colored samples of a theme, including a sample
// command line.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("create ", cfg.Verb) +
		colorize("name", cfg.Key) + "=" +
		colorize("foo", cfg.Value)
}
