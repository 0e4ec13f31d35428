package dispatchers

import (
	"sort"

	"github.com/footprint-tools/verbparse/resolve"
)

// FindSimilarCommands returns up to maxResults children of node whose names
// are close to input.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	return resolve.Suggest(input, names, maxResults)
}

// CollectAllCommands recursively collects the space-joined paths of every
// command below node.
func CollectAllCommands(node *DispatchNode, prefix string) []string {
	if node == nil {
		return nil
	}

	var commands []string
	for name, child := range node.Children {
		fullPath := name
		if prefix != "" {
			fullPath = prefix + " " + name
		}
		commands = append(commands, fullPath)
		commands = append(commands, CollectAllCommands(child, fullPath)...)
	}
	sort.Strings(commands)

	return commands
}
