package token

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/settings"
)

// ShellTokenizer splits input with POSIX shell word rules, so backslash
// escapes work and quotes may appear anywhere in a word. A keyed word takes the
// following unkeyed word as its value; with a non-space delimiter the value may
// also be attached as key<delim>value.
//
// Unquoted shell operators such as ; or | end the command.
type ShellTokenizer struct{}

// Tokenize implements Tokenizer.
func (ShellTokenizer) Tokenize(input string, s settings.Settings) (Command, error) {
	if strings.TrimSpace(input) == "" {
		return Command{}, result.Fail(result.BrokenInput, "input is empty")
	}
	if err := s.Validate(); err != nil {
		return Command{}, err
	}

	words, err := shellwords.Parse(input)
	if err != nil {
		return Command{}, result.Fail(result.BrokenInput, fmt.Sprintf("cannot split input: %v", err))
	}
	if len(words) == 0 {
		return Command{}, result.Fail(result.BrokenInput, "input is empty")
	}

	verb, _, err := splitVerb(words[0], s)
	if err != nil {
		return Command{}, err
	}

	var (
		args     []ArgumentToken
		problems []string
	)
	keyed := func(w string) bool {
		return s.ArgumentKeyPrefix != "" && s.HasPrefix(w, s.ArgumentKeyPrefix)
	}
	rest := words[1:]
	for i := 0; i < len(rest); i++ {
		w := rest[i]
		if !keyed(w) {
			args = append(args, ArgumentToken{Value: w})
			continue
		}

		key := w[len(s.ArgumentKeyPrefix):]
		value, attached := "", false
		if d := s.Delimiter(); d != ' ' {
			key, value, attached = strings.Cut(key, string(d))
		}
		if key == "" {
			problems = append(problems, fmt.Sprintf("argument %q: key is missing", w))
			continue
		}
		if !attached && i+1 < len(rest) && !keyed(rest[i+1]) {
			value = rest[i+1]
			i++
		}
		args = append(args, ArgumentToken{Key: key, Value: value})
	}
	if len(problems) > 0 {
		return Command{}, result.Fail(result.BrokenInput, problems...)
	}

	return Command{Verb: verb, Arguments: args}, nil
}
