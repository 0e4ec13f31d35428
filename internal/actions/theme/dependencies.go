package theme

import (
	"fmt"
	"sort"

	"github.com/footprint-tools/verbparse/internal/config"
	"github.com/footprint-tools/verbparse/internal/ui/style"
)

type Deps struct {
	Path       string
	Load       func(string) (map[string]string, error)
	Update     func(string, func([]string) []string) error
	Set        func([]string, string, string) ([]string, bool)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	Resolve    func(string) string
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

func DefaultDeps(path string) Deps {
	return Deps{
		Path:       path,
		Load:       config.Load,
		Update:     config.Update,
		Set:        config.Set,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		Resolve:    style.ResolveThemeName,
		ThemeNames: themeNames(style.Themes),
		Themes:     style.Themes,
	}
}

func themeNames(themes map[string]style.ColorConfig) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
