package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	require.Equal(t, "", s.VerbPrefix)
	require.Equal(t, ":", s.ArgumentKeyPrefix)
	require.Equal(t, ' ', s.KeyValueDelimiter)
	require.Equal(t, CaseInsensitive, s.Comparison)
	require.True(t, s.RequireArgumentKeyPrefix)
	require.NoError(t, s.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr error
	}{
		{
			name: "prefix only",
			s:    Settings{ArgumentKeyPrefix: "-"},
		},
		{
			name: "delimiter only",
			s:    Settings{KeyValueDelimiter: '='},
		},
		{
			name:    "neither prefix nor delimiter",
			s:       Settings{VerbPrefix: "/"},
			wantErr: ErrNoKeySeparator,
		},
		{
			name:    "prefix with space",
			s:       Settings{ArgumentKeyPrefix: "- "},
			wantErr: ErrInvalidKeyPrefix,
		},
		{
			name:    "quote prefix",
			s:       Settings{ArgumentKeyPrefix: "'"},
			wantErr: ErrInvalidKeyPrefix,
		},
		{
			name:    "quote delimiter",
			s:       Settings{ArgumentKeyPrefix: ":", KeyValueDelimiter: '"'},
			wantErr: ErrInvalidDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEqual(t *testing.T) {
	insensitive := Settings{Comparison: CaseInsensitive}
	exact := Settings{Comparison: Exact}

	require.True(t, insensitive.Equal("Create", "create"))
	require.True(t, insensitive.Equal("ÉCOLE", "école"))
	require.False(t, insensitive.Equal("create", "delete"))

	require.True(t, exact.Equal("create", "create"))
	require.False(t, exact.Equal("Create", "create"))
}

func TestHasPrefix(t *testing.T) {
	s := Settings{Comparison: CaseInsensitive}

	require.True(t, s.HasPrefix("!Bot create", "!bot"))
	require.False(t, s.HasPrefix("!b", "!bot"))
	require.False(t, Settings{Comparison: Exact}.HasPrefix("!Bot create", "!bot"))
}

func TestDelimiter(t *testing.T) {
	require.Equal(t, ' ', Settings{}.Delimiter())
	require.Equal(t, '=', Settings{KeyValueDelimiter: '='}.Delimiter())
}

func TestParseComparison(t *testing.T) {
	c, err := ParseComparison("Exact")
	require.NoError(t, err)
	require.Equal(t, Exact, c)

	c, err = ParseComparison("case_insensitive")
	require.NoError(t, err)
	require.Equal(t, CaseInsensitive, c)

	_, err = ParseComparison("fuzzy")
	require.Error(t, err)
}

func TestStatic(t *testing.T) {
	s := Settings{VerbPrefix: "/"}
	require.Equal(t, s, Static(s)())
}
