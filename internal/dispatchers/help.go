package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/verbparse/internal/help"
	"github.com/footprint-tools/verbparse/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"parse":        1,
	"tokenize":     2,
	"shapes":       3,
	"serve":        1,
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
	"config path":  5,
	"theme list":   6,
	"theme set":    7,
	"version":      1,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		cmdEnd = len(usage)
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := usage[cmdEnd:]

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func displayName(n *DispatchNode) string {
	if len(n.Path) == 0 {
		return n.Name
	}
	return strings.Join(n.Path[1:], " ")
}

func sortForDisplay(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI, nameJ := displayName(nodes[i]), displayName(nodes[j])
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		switch {
		case hasI && hasJ && orderI != orderJ:
			return orderI < orderJ
		case hasI != hasJ:
			return hasI
		default:
			return nameI < nameJ
		}
	})
}

func show(root *DispatchNode, content string) {
	if root != nil && root.Pager != nil {
		root.Pager(content)
		return
	}
	fmt.Print(content)
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		if node == root {
			show(root, rootHelp(root))
		} else {
			show(root, nodeHelp(node, root))
		}
		return nil
	}
}

func rootHelp(root *DispatchNode) string {
	var out bytes.Buffer

	fmt.Fprintf(&out, "%s - %s\n\n", root.Name, root.Summary)
	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(root.Usage))
	out.WriteString("\n\n")

	var leaves []*DispatchNode
	for _, child := range root.Children {
		collectLeafCommands(child, &leaves)
	}

	grouped := make(map[CommandCategory][]*DispatchNode)
	for _, cmd := range leaves {
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(style.Header(cat.String()))
		out.WriteString("\n")

		sortForDisplay(cmds)
		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName(cmd))), cmd.Summary)
		}
		out.WriteString("\n")
	}

	out.WriteString(style.Header("conceptual guides"))
	out.WriteString("\n")
	for _, topic := range help.AllTopics() {
		fmt.Fprintf(&out, "   %s  %s\n", style.Muted(fmt.Sprintf("%-16s", topic.Name)), topic.Summary)
	}
	out.WriteString("\n")

	fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
	fmt.Fprintf(&out, "See '%s help <topic>' for conceptual documentation.\n", root.Name)
	return out.String()
}

func nodeHelp(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	if node.Usage != "" {
		out.WriteString("USAGE\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")
	}

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortForDisplay(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			desc := a.Description
			if !a.Required {
				desc += " (optional)"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", a.Name)), desc)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		out.WriteString("FLAGS\n")
		for _, f := range node.Flags {
			name := strings.Join(f.Names, ", ")
			if f.ValueHint != "" {
				name = name + " " + f.ValueHint
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
		}
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

// TopicHelpAction shows a conceptual topic.
func TopicHelpAction(topic *help.Topic, root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		show(root, topic.Content())
		return nil
	}
}

// TopicsListAction lists all available help topics.
func TopicsListAction(root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		var out bytes.Buffer

		out.WriteString("TOPICS\n\n")
		for _, topic := range help.AllTopics() {
			fmt.Fprintf(&out, "   %s  %s\n", style.Muted(fmt.Sprintf("%-12s", topic.Name)), topic.Summary)
		}
		fmt.Fprintf(&out, "\nSee '%s help <topic>' to read about a specific topic.\n", root.Name)

		show(root, out.String())
		return nil
	}
}
