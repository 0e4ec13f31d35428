package dispatchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags(t *testing.T) {
	flags := NewParsedFlags([]string{
		"--insecure",
		"--url=http://localhost:3000",
		"--limit=5",
		"--limit=7",
		"--timeout=2s",
		"--bad-int=x",
		"--bad-duration=soon",
	})

	require.True(t, flags.Has("--insecure"))
	require.False(t, flags.Has("--url"))
	require.Equal(t, "http://localhost:3000", flags.String("--url", ""))
	require.Equal(t, "/", flags.String("--namespace", "/"))
	require.Equal(t, 7, flags.Int("--limit", 0))
	require.Equal(t, 3, flags.Int("--bad-int", 3))
	require.Equal(t, 2*time.Second, flags.Duration("--timeout", 0))
	require.Equal(t, time.Second, flags.Duration("--bad-duration", time.Second))
}

func TestParsedFlags_EmptyValueIsFound(t *testing.T) {
	flags := NewParsedFlags([]string{"--pager="})
	require.Equal(t, "", flags.String("--pager", "less"))
}

func TestParsedFlags_Nil(t *testing.T) {
	var flags *ParsedFlags
	require.Nil(t, flags.Raw())
	require.False(t, flags.Has("--help"))
	require.Equal(t, "d", flags.String("--x", "d"))
}
