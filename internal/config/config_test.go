package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbparse/settings"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Equal(t, WithDefaults(nil), cfg)

	s, err := ToSettings(cfg)
	require.NoError(t, err)
	require.Equal(t, settings.Default(), s)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":", cfg["argument_key_prefix"])
}

func TestLoad_KeyValueFile(t *testing.T) {
	path := writeFile(t, "verbparserc", strings.Join([]string{
		"# chat commands",
		"verb_prefix=/",
		"key_value_delimiter==",
		"argument_key_prefix=-",
		"string_comparison=exact",
	}, "\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/", cfg["verb_prefix"])
	require.Equal(t, "warn", cfg["log_level"])

	s, err := ToSettings(cfg)
	require.NoError(t, err)
	require.Equal(t, settings.Settings{
		VerbPrefix:               "/",
		ArgumentKeyPrefix:        "-",
		KeyValueDelimiter:        '=',
		Comparison:               settings.Exact,
		RequireArgumentKeyPrefix: true,
	}, s)
}

func TestLoad_HCLFile(t *testing.T) {
	path := writeFile(t, "verbparse.hcl", `
verb_prefix                 = "!"
argument_key_prefix         = ""
require_argument_key_prefix = false
enable_log                  = true
log_level                   = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "!", cfg["verb_prefix"])
	require.Equal(t, "", cfg["argument_key_prefix"])
	require.Equal(t, "false", cfg["require_argument_key_prefix"])
	require.True(t, Bool(cfg, "enable_log"))
	require.Equal(t, "debug", cfg["log_level"])

	s, err := ToSettings(cfg)
	require.NoError(t, err)
	require.Equal(t, "!", s.VerbPrefix)
	require.Empty(t, s.ArgumentKeyPrefix)
	require.False(t, s.RequireArgumentKeyPrefix)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{name: "malformed line", file: "rc", content: "verb_prefix\n", want: "expected key=value"},
		{name: "unknown key", file: "rc", content: "colour=red\n", want: `unknown key "colour"`},
		{name: "unknown hcl key", file: "c.hcl", content: "colour = \"red\"\n", want: `unknown key "colour"`},
		{name: "broken hcl", file: "c.hcl", content: "verb_prefix = \n", want: "failed to parse HCL file"},
		{name: "hcl block", file: "c.hcl", content: "parser {\n}\n", want: "failed to read attributes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestToSettings_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]string
		want string
	}{
		{name: "long delimiter", cfg: map[string]string{"key_value_delimiter": "=="}, want: "key_value_delimiter"},
		{name: "unknown comparison", cfg: map[string]string{"string_comparison": "fuzzy"}, want: "string_comparison"},
		{name: "bad bool", cfg: map[string]string{"require_argument_key_prefix": "maybe"}, want: "require_argument_key_prefix"},
		{name: "quote delimiter", cfg: map[string]string{"key_value_delimiter": `"`}, want: settings.ErrInvalidDelimiter.Error()},
		{name: "prefix with space", cfg: map[string]string{"argument_key_prefix": "- "}, want: settings.ErrInvalidKeyPrefix.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToSettings(tt.cfg)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestToSettings_EmptyDelimiterIsSpace(t *testing.T) {
	s, err := ToSettings(map[string]string{"key_value_delimiter": ""})
	require.NoError(t, err)
	require.Equal(t, ' ', s.KeyValueDelimiter)
}

func TestDefaults_CoverKeys(t *testing.T) {
	require.Len(t, Defaults, len(Keys))
	for _, key := range Keys {
		require.True(t, IsKnown(key.Name), key.Name)
		require.NotEmpty(t, key.Description)
	}
	require.False(t, IsKnown("colour"))
}

func TestBool(t *testing.T) {
	cfg := map[string]string{"a": "true", "b": "no", "c": "1"}
	require.True(t, Bool(cfg, "a"))
	require.False(t, Bool(cfg, "b"))
	require.True(t, Bool(cfg, "c"))
	require.False(t, Bool(cfg, "missing"))
}
