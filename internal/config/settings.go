package config

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/footprint-tools/verbparse/settings"
)

// ToSettings builds parser settings from a merged configuration. Keys missing
// from cfg keep their default.
func ToSettings(cfg map[string]string) (settings.Settings, error) {
	s := settings.Default()

	if v, ok := cfg["verb_prefix"]; ok {
		s.VerbPrefix = v
	}
	if v, ok := cfg["argument_key_prefix"]; ok {
		s.ArgumentKeyPrefix = v
	}
	if v, ok := cfg["key_value_delimiter"]; ok {
		switch utf8.RuneCountInString(v) {
		case 0:
			s.KeyValueDelimiter = ' '
		case 1:
			r, _ := utf8.DecodeRuneInString(v)
			s.KeyValueDelimiter = r
		default:
			return settings.Settings{}, fmt.Errorf("key_value_delimiter: expected one character, got %q", v)
		}
	}
	if v, ok := cfg["string_comparison"]; ok {
		c, err := settings.ParseComparison(v)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("string_comparison: %w", err)
		}
		s.Comparison = c
	}
	if v, ok := cfg["require_argument_key_prefix"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("require_argument_key_prefix: %w", err)
		}
		s.RequireArgumentKeyPrefix = b
	}

	if err := s.Validate(); err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}

// Bool reads a boolean key, treating a missing or malformed value as false.
func Bool(cfg map[string]string, key string) bool {
	b, err := strconv.ParseBool(cfg[key])
	return err == nil && b
}
