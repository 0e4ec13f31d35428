package result

import (
	"fmt"
	"strings"
)

// Code classifies why a command did not match.
type Code int

const (
	// BrokenInput: empty input, verb prefix mismatch, malformed argument.
	BrokenInput Code = iota + 1
	// BindingFailed: missing required parameter, unconvertible value,
	// unwritable field, non-boolean option field.
	BindingFailed
	// TypeResolutionFailed: no shape or several shapes for a verb, or a
	// candidate shape without a verb.
	TypeResolutionFailed
)

func (c Code) String() string {
	switch c {
	case BrokenInput:
		return "BrokenInput"
	case BindingFailed:
		return "BindingFailed"
	case TypeResolutionFailed:
		return "TypeResolutionFailed"
	default:
		return "Undefined"
	}
}

// Error is a single user-facing problem with the parsed text.
type Error struct {
	Text string
	Code Code
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Text)
}

// Failure is returned by a pipeline stage when the input does not fit. It
// carries every problem the stage found, in the order found.
type Failure struct {
	Code     Code
	Messages []string
}

// Fail creates a Failure for code with the given messages.
func Fail(code Code, messages ...string) *Failure {
	return &Failure{Code: code, Messages: messages}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, strings.Join(f.Messages, "; "))
}

// Errors converts the failure into one Error per message.
func (f *Failure) Errors() []Error {
	errs := make([]Error, len(f.Messages))
	for i, m := range f.Messages {
		errs[i] = Error{Text: m, Code: f.Code}
	}
	return errs
}

// Verify Failure implements the error interface.
var _ error = (*Failure)(nil)
