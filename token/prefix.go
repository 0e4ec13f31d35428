package token

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/settings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// PrefixTokenizer is the default tokenizer. Keyed arguments start with the
// configured argument key prefix; single or double quotes keep embedded
// whitespace, key prefixes and delimiters inside one key or value.
//
// Runs of whitespace are collapsed before splitting, including inside quotes.
type PrefixTokenizer struct{}

// Tokenize implements Tokenizer.
func (PrefixTokenizer) Tokenize(input string, s settings.Settings) (Command, error) {
	line := strings.TrimSpace(whitespaceRun.ReplaceAllString(input, " "))
	if line == "" {
		return Command{}, result.Fail(result.BrokenInput, "input is empty")
	}
	if err := s.Validate(); err != nil {
		return Command{}, err
	}

	verb, query, err := splitVerb(line, s)
	if err != nil {
		return Command{}, err
	}

	var (
		args     []ArgumentToken
		problems []string
	)
	if s.ArgumentKeyPrefix == "" {
		args, problems = splitPositional(query)
	} else {
		args, problems = splitKeyed(query, s)
	}
	if len(problems) > 0 {
		return Command{}, result.Fail(result.BrokenInput, problems...)
	}

	return Command{Verb: verb, Arguments: args}, nil
}

// splitVerb separates the verb from the query of a normalized line.
func splitVerb(line string, s settings.Settings) (verb, query string, err error) {
	verb, query, _ = strings.Cut(line, " ")

	if s.VerbPrefix != "" {
		if !s.HasPrefix(verb, s.VerbPrefix) {
			return "", "", result.Fail(result.BrokenInput,
				fmt.Sprintf("input must start with verb prefix %q", s.VerbPrefix))
		}
		verb = verb[len(s.VerbPrefix):]
	}
	if verb == "" {
		return "", "", result.Fail(result.BrokenInput, "verb is missing")
	}
	return verb, query, nil
}

// splitKeyed splits the query at every key prefix that starts a word outside
// quotes. Text before the first keyed chunk is positional.
func splitKeyed(query string, s settings.Settings) ([]ArgumentToken, []string) {
	starts := keyedStarts(query, s)
	if len(starts) == 0 {
		return splitPositional(query)
	}

	args, problems := splitPositional(query[:starts[0]])
	for i, start := range starts {
		end := len(query)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		arg, problem := parseKeyed(strings.TrimSpace(query[start:end]), s)
		if problem != "" {
			problems = append(problems, problem)
			continue
		}
		args = append(args, arg)
	}
	return args, problems
}

// keyedStarts returns the offset of every keyed chunk in query.
func keyedStarts(query string, s settings.Settings) []int {
	prefix := s.ArgumentKeyPrefix
	delim := string(s.Delimiter())

	var (
		starts     []int
		quote      byte
		afterKeyAt = -1
	)
	for i := 0; i < len(query); i++ {
		c := query[i]
		if quote != 0 {
			if c == quote && closesQuote(query[i+1:], delim) {
				quote = 0
			}
			continue
		}

		wordStart := i == 0 || query[i-1] == ' '
		if wordStart && s.HasPrefix(query[i:], prefix) {
			starts = append(starts, i)
			i += len(prefix) - 1
			afterKeyAt = i + 1
			continue
		}
		if isQuote(c) && (wordStart || i == afterKeyAt || strings.HasSuffix(query[:i], delim)) {
			quote = c
		}
	}
	return starts
}

// parseKeyed separates a chunk that starts with the key prefix into key and
// value. A non-empty problem reports a malformed chunk.
func parseKeyed(chunk string, s settings.Settings) (ArgumentToken, string) {
	delim := string(s.Delimiter())
	rest := chunk[len(s.ArgumentKeyPrefix):]

	var key string
	if rest != "" && isQuote(rest[0]) {
		end := closingQuote(rest, 0, delim)
		if end < 0 {
			return ArgumentToken{}, fmt.Sprintf("argument %q: unterminated quote in key", chunk)
		}
		key, rest = rest[1:end], rest[end+1:]
	} else {
		stop := strings.IndexFunc(rest, func(r rune) bool {
			return r == ' ' || r == s.Delimiter()
		})
		if stop < 0 {
			key, rest = rest, ""
		} else {
			key, rest = rest[:stop], rest[stop:]
		}
	}
	if key == "" {
		return ArgumentToken{}, fmt.Sprintf("argument %q: key is missing", chunk)
	}

	if delim != " " {
		rest = strings.TrimLeft(rest, " ")
		if rest != "" {
			if !strings.HasPrefix(rest, delim) {
				return ArgumentToken{}, fmt.Sprintf("argument %q: expected delimiter %q after key", chunk, delim)
			}
			rest = rest[len(delim):]
		}
	}

	value, ok := unquote(strings.TrimSpace(rest))
	if !ok {
		return ArgumentToken{}, fmt.Sprintf("argument %q: unterminated quote in value", chunk)
	}
	return ArgumentToken{Key: key, Value: value}, ""
}

// splitPositional splits text into unkeyed tokens. A word that opens with a
// quote runs verbatim to the matching closing quote.
func splitPositional(text string) ([]ArgumentToken, []string) {
	var (
		args     []ArgumentToken
		problems []string
	)
	for i := 0; i < len(text); {
		if text[i] == ' ' {
			i++
			continue
		}
		if isQuote(text[i]) {
			end := closingQuote(text, i, " ")
			if end < 0 {
				problems = append(problems, fmt.Sprintf("value %q: unterminated quote", text[i:]))
				break
			}
			args = append(args, ArgumentToken{Value: text[i+1 : end]})
			i = end + 1
			continue
		}
		end := strings.IndexByte(text[i:], ' ')
		if end < 0 {
			end = len(text)
		} else {
			end += i
		}
		args = append(args, ArgumentToken{Value: text[i:end]})
		i = end
	}
	return args, problems
}

// closingQuote returns the index of the quote that closes the one at open, or
// -1. A closing quote must be followed by a space, the delimiter or the end.
func closingQuote(text string, open int, delim string) int {
	q := text[open]
	for j := open + 1; j < len(text); j++ {
		if text[j] == q && closesQuote(text[j+1:], delim) {
			return j
		}
	}
	return -1
}

func closesQuote(after, delim string) bool {
	return after == "" || after[0] == ' ' || strings.HasPrefix(after, delim)
}

// unquote strips one pair of matching quotes wrapping value. It reports false
// when value opens a quote that is never closed.
func unquote(value string) (string, bool) {
	if value == "" || !isQuote(value[0]) {
		return value, true
	}
	end := closingQuote(value, 0, " ")
	switch {
	case end < 0:
		return "", false
	case end == len(value)-1:
		return value[1:end], true
	default:
		return value, true
	}
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}
