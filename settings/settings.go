// Package settings holds the immutable parsing options shared by every stage
// of the command pipeline.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Comparison selects how verbs, prefixes and argument keys are compared.
type Comparison int

const (
	CaseInsensitive Comparison = iota
	Exact
)

func (c Comparison) String() string {
	switch c {
	case CaseInsensitive:
		return "case_insensitive"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseComparison converts "exact" or "case_insensitive" (any case) to a Comparison.
func ParseComparison(s string) (Comparison, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "case_insensitive", "caseinsensitive", "insensitive":
		return CaseInsensitive, nil
	case "exact", "case_sensitive", "sensitive":
		return Exact, nil
	default:
		return CaseInsensitive, fmt.Errorf("unknown string comparison %q", s)
	}
}

var (
	// ErrNoKeySeparator is returned when neither an argument key prefix nor a
	// key/value delimiter is configured.
	ErrNoKeySeparator = errors.New("settings: an argument key prefix or a key/value delimiter is required")

	// ErrInvalidKeyPrefix is returned for key prefixes containing whitespace or quotes.
	ErrInvalidKeyPrefix = errors.New("settings: argument key prefix must not contain whitespace or quotes")

	// ErrInvalidDelimiter is returned for a quote used as key/value delimiter.
	ErrInvalidDelimiter = errors.New("settings: key/value delimiter must not be a quote")
)

// Settings is a snapshot of parsing options. It is passed by value into every
// stage and never mutated during a parse call.
type Settings struct {
	// VerbPrefix must precede the verb when non-empty, e.g. "/" for "/create".
	VerbPrefix string

	// ArgumentKeyPrefix marks argument keys, e.g. ":" for ":name". Empty means
	// the command carries positional values only.
	ArgumentKeyPrefix string

	// KeyValueDelimiter separates a key from its value. Zero means absent.
	KeyValueDelimiter rune

	Comparison Comparison

	// RequireArgumentKeyPrefix refuses positional binding when true.
	RequireArgumentKeyPrefix bool
}

// Provider returns the settings for one parse call.
type Provider func() Settings

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		ArgumentKeyPrefix:        ":",
		KeyValueDelimiter:        ' ',
		Comparison:               CaseInsensitive,
		RequireArgumentKeyPrefix: true,
	}
}

// Static returns a Provider that always yields s.
func Static(s Settings) Provider {
	return func() Settings { return s }
}

// Validate reports configurations the tokenizer cannot work with.
func (s Settings) Validate() error {
	if s.ArgumentKeyPrefix == "" && s.KeyValueDelimiter == 0 {
		return ErrNoKeySeparator
	}
	if strings.ContainsFunc(s.ArgumentKeyPrefix, func(r rune) bool {
		return unicode.IsSpace(r) || isQuote(r)
	}) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyPrefix, s.ArgumentKeyPrefix)
	}
	if isQuote(s.KeyValueDelimiter) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, s.KeyValueDelimiter)
	}
	return nil
}

// Delimiter returns the key/value delimiter, defaulting to a space.
func (s Settings) Delimiter() rune {
	if s.KeyValueDelimiter == 0 {
		return ' '
	}
	return s.KeyValueDelimiter
}

// Equal compares a and b using the configured comparison mode.
func (s Settings) Equal(a, b string) bool {
	if s.Comparison == Exact {
		return a == b
	}
	if strings.EqualFold(a, b) {
		return true
	}
	// A Caser is stateful, so each comparison gets its own.
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// HasPrefix reports whether str begins with prefix under the comparison mode.
func (s Settings) HasPrefix(str, prefix string) bool {
	if len(str) < len(prefix) {
		return false
	}
	return s.Equal(str[:len(prefix)], prefix)
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}
