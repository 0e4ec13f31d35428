package dispatchers

import (
	"strings"

	"github.com/footprint-tools/verbparse/internal/help"
	"github.com/footprint-tools/verbparse/internal/usage"
)

const defaultSuggestionsCount = 3

func handleHelpCommand(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, bool, error) {
	for i, tok := range tokens {
		if tok != "help" {
			continue
		}

		targetPath := tokens[:i]
		if len(tokens[i+1:]) > 0 {
			targetPath = tokens[i+1:]
		}

		if len(targetPath) == 1 && targetPath[0] == "topics" {
			return Resolution{Node: root, Flags: flags, Execute: TopicsListAction(root)}, true, nil
		}

		if target := resolveNode(root, targetPath); target != nil {
			return Resolution{Node: target, Flags: flags, Execute: HelpAction(target, root)}, true, nil
		}

		if len(targetPath) == 1 {
			if topic := help.LookupTopic(targetPath[0]); topic != nil {
				return Resolution{Node: root, Flags: flags, Execute: TopicHelpAction(topic, root)}, true, nil
			}
		}

		suggestions := FindSimilarCommands(targetPath[0], root, defaultSuggestionsCount)
		return Resolution{}, true, usage.UnknownCommand(strings.Join(targetPath, " "), suggestions...)
	}
	return Resolution{}, false, nil
}

// Dispatch walks tokens down the tree and returns the command to run with
// its remaining arguments. Flags are validated against the root and the
// selected node.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if flags == nil {
		flags = NewParsedFlags(nil)
	}
	if res, handled, err := handleHelpCommand(root, tokens, flags); handled {
		return res, err
	}

	current := root
	pathLen := 0

	for i, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			// Unknown top-level command is most likely a typo.
			if i == 0 && len(current.Children) > 0 && current.Action == nil {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				return Resolution{}, usage.UnknownCommand(tok, suggestions...)
			}
			// A group without an action does not take arguments.
			if current.Action == nil && len(current.Children) > 0 {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				cmdPath := strings.Join(append(append([]string(nil), current.Path[1:]...), tok), " ")
				return Resolution{}, usage.UnknownCommand(cmdPath, suggestions...)
			}
			break
		}
		current = child
		pathLen++
	}

	args := tokens[pathLen:]

	if hasHelpFlag(flags) {
		return Resolution{
			Node:    current,
			Flags:   flags,
			Execute: HelpAction(current, root),
		}, nil
	}

	if err := validateFlags(flags, validFlagsForNode(current, root)); err != nil {
		return Resolution{}, err
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, err
	}

	if current.Action == nil {
		// No command specified: show help but exit with code 1 (like git)
		exitCode := 0
		if current == root && len(tokens) == 0 {
			exitCode = 1
		}
		return Resolution{
			Node:     current,
			Flags:    flags,
			Execute:  HelpAction(current, root),
			ExitCode: exitCode,
		}, nil
	}

	return Resolution{
		Node:    current,
		Args:    args,
		Flags:   flags,
		Execute: current.Action,
	}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

func validFlagsForNode(node *DispatchNode, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)

	for _, f := range root.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	for _, f := range node.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name, _, _ := strings.Cut(f, "=")
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	return nil
}

func resolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root

	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}

	return current
}
