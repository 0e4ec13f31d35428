package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSimilarCommands(t *testing.T) {
	root := testTree(t, nil)

	require.Contains(t, FindSimilarCommands("pars", root, 3), "parse")
	require.Contains(t, FindSimilarCommands("cnofig", root, 3), "config")
	require.Empty(t, FindSimilarCommands("zzzzzzzz", root, 3))
	require.Nil(t, FindSimilarCommands("parse", nil, 3))
}

func TestCollectAllCommands(t *testing.T) {
	root := testTree(t, nil)

	require.Equal(t, []string{
		"config",
		"config get",
		"config set",
		"parse",
		"serve",
		"version",
	}, CollectAllCommands(root, ""))
	require.Nil(t, CollectAllCommands(nil, ""))
}
