package config

import (
	"strconv"

	"github.com/footprint-tools/verbparse/settings"
)

// Key describes one configuration key.
type Key struct {
	Name        string
	Description string
}

// Keys lists the recognized configuration keys in display order.
var Keys = []Key{
	{Name: "verb_prefix", Description: "Text that must precede the verb, e.g. /"},
	{Name: "argument_key_prefix", Description: "Text that marks an argument key, empty for positional only"},
	{Name: "key_value_delimiter", Description: "Single character between key and value, empty for a space"},
	{Name: "string_comparison", Description: "exact or case_insensitive"},
	{Name: "require_argument_key_prefix", Description: "false allows positional binding"},
	{Name: "enable_log", Description: "Write a log file"},
	{Name: "log_level", Description: "debug, info, warn or error"},
	{Name: "pager", Description: "Command used to page help output, cat to disable"},
	{Name: "color_theme", Description: "default, mono or contrast, optionally with -dark or -light"},
	{Name: "color_success", Description: "ANSI color (0-255) or bold for success messages"},
	{Name: "color_warning", Description: "ANSI color (0-255) or bold for warnings"},
	{Name: "color_error", Description: "ANSI color (0-255) or bold for errors"},
	{Name: "color_info", Description: "ANSI color (0-255) or bold for informational text"},
	{Name: "color_muted", Description: "ANSI color (0-255) or bold for secondary text"},
	{Name: "color_header", Description: "ANSI color (0-255) or bold for headers"},
	{Name: "color_verb", Description: "ANSI color (0-255) or bold for verbs"},
	{Name: "color_key", Description: "ANSI color (0-255) or bold for argument keys"},
	{Name: "color_value", Description: "ANSI color (0-255) or bold for argument values"},
}

// Defaults holds the value of every key when nothing overrides it.
var Defaults = map[string]func() string{
	"verb_prefix":         func() string { return settings.Default().VerbPrefix },
	"argument_key_prefix": func() string { return settings.Default().ArgumentKeyPrefix },
	"key_value_delimiter": func() string {
		if d := settings.Default().KeyValueDelimiter; d != ' ' {
			return string(d)
		}
		return ""
	},
	"string_comparison": func() string { return settings.Default().Comparison.String() },
	"require_argument_key_prefix": func() string {
		return strconv.FormatBool(settings.Default().RequireArgumentKeyPrefix)
	},
	"enable_log": func() string { return "false" },
	"log_level":  func() string { return "warn" },

	"pager":         empty,
	"color_theme":   func() string { return "default" },
	"color_success": empty,
	"color_warning": empty,
	"color_error":   empty,
	"color_info":    empty,
	"color_muted":   empty,
	"color_header":  empty,
	"color_verb":    empty,
	"color_key":     empty,
	"color_value":   empty,
}

func empty() string { return "" }

// IsKnown reports whether key is a recognized configuration key.
func IsKnown(key string) bool {
	_, ok := Defaults[key]
	return ok
}

// WithDefaults returns cfg merged over the defaults.
func WithDefaults(cfg map[string]string) map[string]string {
	merged := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		merged[key] = fn()
	}
	for key, value := range cfg {
		merged[key] = value
	}
	return merged
}
