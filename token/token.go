// Package token turns one line of text into a verb and an ordered list of
// argument tokens.
package token

import (
	"github.com/footprint-tools/verbparse/settings"
)

// ArgumentToken is one key/value unit from the command body. An empty Key
// marks a positional value, an empty Value under a non-empty Key marks an
// option.
type ArgumentToken struct {
	Key   string
	Value string
}

// IsOption reports whether the token is a bare key.
func (t ArgumentToken) IsOption() bool {
	return t.Key != "" && t.Value == ""
}

// IsPositional reports whether the token carries no key.
func (t ArgumentToken) IsPositional() bool {
	return t.Key == ""
}

// Command is the tokenized form of one input line.
type Command struct {
	Verb      string
	Arguments []ArgumentToken
}

// HasOnlyPositionalValues reports whether there is at least one argument and
// none of them carries a key.
func (c Command) HasOnlyPositionalValues() bool {
	if len(c.Arguments) == 0 {
		return false
	}
	for _, a := range c.Arguments {
		if !a.IsPositional() {
			return false
		}
	}
	return true
}

// Tokenizer splits raw input into a Command.
//
// A *result.Failure error means the input does not fit the grammar. Any other
// error is a configuration problem and is fatal to the call.
type Tokenizer interface {
	Tokenize(input string, s settings.Settings) (Command, error)
}
