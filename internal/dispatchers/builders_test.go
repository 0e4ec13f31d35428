package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	var shown string
	root := Root(RootSpec{
		Name:    "verbparse",
		Summary: "parse verb commands",
		Usage:   "verbparse <command>",
		Pager:   func(s string) { shown = s },
	})

	require.Equal(t, []string{"verbparse"}, root.Path)
	require.Nil(t, root.Action)
	require.NotNil(t, root.Children)

	root.Pager("x")
	require.Equal(t, "x", shown)
}

func TestGroupAndCommand(t *testing.T) {
	root := Root(RootSpec{Name: "verbparse"})
	cfg := Group(GroupSpec{Name: "config", Parent: root, Summary: "manage configuration"})
	get := Command(CommandSpec{
		Name:        "get",
		Parent:      cfg,
		Summary:     "print a value",
		Description: "Prints one configuration value.",
		Args:        []ArgSpec{{Name: "<key>", Required: true}},
		Action:      func([]string, *ParsedFlags) error { return nil },
		Category:    CategoryConfig,
	})

	require.Same(t, cfg, root.Children["config"])
	require.Same(t, get, cfg.Children["get"])
	require.Equal(t, []string{"verbparse", "config", "get"}, get.Path)
	require.Equal(t, CategoryConfig, get.Category)
	require.Equal(t, "Prints one configuration value.", get.Description)
	require.NotNil(t, get.Action)
}

func TestNewNode_DoesNotShareParentPath(t *testing.T) {
	root := Root(RootSpec{Name: "verbparse"})
	a := NewNode("a", root, "", "", nil, nil, nil)
	b := NewNode("b", root, "", "", nil, nil, nil)

	require.Equal(t, []string{"verbparse", "a"}, a.Path)
	require.Equal(t, []string{"verbparse", "b"}, b.Path)
}
