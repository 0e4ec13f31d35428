package usage

import (
	"fmt"
	"strings"
)

// Unmatched is returned when the input matched no shape. Each reason becomes
// one line of the message.
func Unmatched(input string, reasons []string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "verbparse: %q did not match", input)
	for _, r := range reasons {
		b.WriteString("\n  ")
		b.WriteString(r)
	}
	return &Error{
		Kind:    ErrUnmatched,
		Message: b.String(),
	}
}

// Fault wraps an unexpected parser failure.
func Fault(err error) *Error {
	return &Error{
		Kind:    ErrFault,
		Message: fmt.Sprintf("verbparse: %v", err),
		Err:     err,
	}
}

// UnmatchedLines summarizes a batch in which some lines did not match.
func UnmatchedLines(failed, total int) *Error {
	return &Error{
		Kind:    ErrUnmatched,
		Message: fmt.Sprintf("verbparse: %d of %d lines did not match", failed, total),
	}
}
