package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Verb    string
	Key     string
	Value   string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "mono", "contrast"}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Verb:    "13", // bright magenta
		Key:     "12", // bright blue
		Value:   "15", // white
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // gray
		Header:  "bold",
		Verb:    "90", // dark magenta
		Key:     "19", // navy
		Value:   "232",
	},
	"mono-dark": {
		Success: "15",
		Warning: "250",
		Error:   "bold",
		Info:    "252",
		Muted:   "242",
		Header:  "bold",
		Verb:    "15",
		Key:     "250",
		Value:   "255",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "236",
		Muted:   "246",
		Header:  "bold",
		Verb:    "232",
		Key:     "238",
		Value:   "234",
	},
	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
		Verb:    "201",
		Key:     "45",
		Value:   "231",
	},
	"contrast-light": {
		Success: "22",
		Warning: "94",
		Error:   "88",
		Info:    "18",
		Muted:   "238",
		Header:  "bold",
		Verb:    "53",
		Key:     "17",
		Value:   "16",
	},
}

// colorConfigKeys maps config/env key names to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_success": func(c *ColorConfig) *string { return &c.Success },
	"color_warning": func(c *ColorConfig) *string { return &c.Warning },
	"color_error":   func(c *ColorConfig) *string { return &c.Error },
	"color_info":    func(c *ColorConfig) *string { return &c.Info },
	"color_muted":   func(c *ColorConfig) *string { return &c.Muted },
	"color_header":  func(c *ColorConfig) *string { return &c.Header },
	"color_verb":    func(c *ColorConfig) *string { return &c.Verb },
	"color_key":     func(c *ColorConfig) *string { return &c.Key },
	"color_value":   func(c *ColorConfig) *string { return &c.Value },
}

// IsDarkBackground returns true if the terminal has a dark background.
// Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are returned as-is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
//  1. Environment variable (VERBPARSE_COLOR_*)
//  2. Config file value
//  3. Theme value (from color_theme)
//  4. Default theme
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("VERBPARSE_COLOR_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["color_theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, field := range colorConfigKeys {
		if v := os.Getenv("VERBPARSE_" + strings.ToUpper(key)); v != "" {
			*field(&result) = v
			continue
		}
		if v := cfg[key]; v != "" {
			*field(&result) = v
		}
	}

	return result
}
