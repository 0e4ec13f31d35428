package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbparse/internal/log"
	"github.com/footprint-tools/verbparse/parser"
	"github.com/footprint-tools/verbparse/settings"
)

type createPackage struct {
	Name string `param:"n,name"`
}

func (createPackage) Verb() string { return "create" }

func TestNewForTesting(t *testing.T) {
	var buf bytes.Buffer
	app := NewForTesting(&buf, filepath.Join(t.TempDir(), "rc"))

	require.NotNil(t, app.Parser)
	require.NotNil(t, app.Registry)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
	require.Equal(t, settings.Default(), app.Settings)

	app.Output.Pager("hello\n")
	require.Equal(t, "hello\n", buf.String())
}

func TestClose_NilComponents(t *testing.T) {
	require.NoError(t, Close(nil))

	app := NewForTesting(&bytes.Buffer{}, "")
	app.Logger = nil
	require.NoError(t, Close(app))
}

func TestNew_MissingConfigUsesDefaults(t *testing.T) {
	app, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "absent")})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.Equal(t, settings.Default(), app.Settings)
	require.IsType(t, log.NopLogger{}, app.Logger)
}

func TestNew_ConfigDrivesParser(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "rc")
	require.NoError(t, os.WriteFile(cfgPath, []byte("verb_prefix=/\nargument_key_prefix=-\n"), 0600))

	app, err := New(Options{ConfigPath: cfgPath, PagerDisabled: true})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.Equal(t, "/", app.Settings.VerbPrefix)

	out, err := parser.Parse[createPackage](app.Parser, "/create -n foo")
	require.NoError(t, err)
	require.Equal(t, "foo", out.MustValue().Name)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "verb_prefix\n"},
		{name: "bad settings", content: "key_value_delimiter=ab\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), "rc")
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.content), 0600))

			_, err := New(Options{ConfigPath: cfgPath})
			require.Error(t, err)
		})
	}
}

func TestNew_WithLogEnabled(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rc")
	logPath := filepath.Join(dir, "verbparse.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte("enable_log=true\nlog_level=debug\n"), 0600))

	app, err := New(Options{ConfigPath: cfgPath, LogPath: logPath})
	require.NoError(t, err)

	_, err = parser.Parse[createPackage](app.Parser, "create")
	require.NoError(t, err)
	require.NoError(t, Close(app))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "DEBUG:"), string(data))
}
