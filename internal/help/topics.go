// Package help holds the conceptual help topics shown by `verbparse help <topic>`.
package help

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/verbparse/internal/config"
)

// Topic is one conceptual guide.
type Topic struct {
	Name    string
	Summary string
	content func() string
}

// Content returns the rendered topic text.
func (t *Topic) Content() string {
	return t.content()
}

var topics = []*Topic{
	{
		Name:    "grammar",
		Summary: "How a command line is split into a verb and arguments",
		content: grammarContent,
	},
	{
		Name:    "config",
		Summary: "Configuration keys and file formats",
		content: configContent,
	},
}

// AllTopics returns every topic in display order.
func AllTopics() []*Topic {
	return topics
}

// LookupTopic returns the topic called name, or nil.
func LookupTopic(name string) *Topic {
	for _, t := range topics {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return nil
}

func grammarContent() string {
	return `GRAMMAR

   [verb_prefix]verb [argument ...]

   The first word is the verb. It selects the command shape; with a verb
   prefix configured, the line must start with it.

KEYED ARGUMENTS

   [argument_key_prefix]key[delimiter]value

   With the default settings:

      create :name foo :tag "release candidate" :hidden

   A key without a value sets a boolean option. Values may be quoted with
   single or double quotes; one pair of quotes is removed. Runs of
   whitespace collapse to one space.

POSITIONAL ARGUMENTS

   When require_argument_key_prefix is false and the line carries no keys,
   values bind to parameters in declaration order:

      tag foo stable

OUTCOMES

   matched     the line bound onto a command
   unmatched   the line was understood but did not fit (exit code 2)
   fault       an unexpected failure inside the parser (exit code 1)
`
}

func configContent() string {
	var b strings.Builder
	b.WriteString("CONFIGURATION\n\n")
	b.WriteString("   The config file is ~/.verbparserc, or the path in $VERBPARSE_CONFIG.\n")
	b.WriteString("   Files ending in .hcl hold HCL attributes; any other file holds\n")
	b.WriteString("   key=value lines with # comments.\n\n")
	b.WriteString("KEYS\n\n")
	for _, k := range config.Keys {
		fmt.Fprintf(&b, "   %-28s  %s\n", k.Name, k.Description)
	}
	return b.String()
}
