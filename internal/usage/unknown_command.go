package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned for a command name the CLI does not know.
// Close matches, if any, are listed as suggestions.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("verbparse: '%s' is not a verbparse command. See 'verbparse help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean " + strings.Join(suggestions, ", ") + "?"
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
