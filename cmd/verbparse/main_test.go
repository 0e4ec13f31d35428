package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFlagsAndCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantCommands []string
		wantLine     []string
	}{
		{
			name:         "no flags or commands",
			args:         []string{},
			wantFlags:    []string{},
			wantCommands: []string{},
			wantLine:     []string{},
		},
		{
			name:         "only commands",
			args:         []string{"config", "get", "verb_prefix"},
			wantFlags:    []string{},
			wantCommands: []string{"config", "get", "verb_prefix"},
			wantLine:     []string{},
		},
		{
			name:         "boolean flags",
			args:         []string{"--help", "-h", "--run"},
			wantFlags:    []string{"--help", "-h", "--run"},
			wantCommands: []string{},
			wantLine:     []string{},
		},
		{
			name:         "value flag with space-separated value",
			args:         []string{"serve", "--url", "http://localhost:3000"},
			wantFlags:    []string{"--url=http://localhost:3000"},
			wantCommands: []string{"serve"},
			wantLine:     []string{},
		},
		{
			name:         "value flag with equals",
			args:         []string{"serve", "--url=http://localhost:3000", "--insecure"},
			wantFlags:    []string{"--url=http://localhost:3000", "--insecure"},
			wantCommands: []string{"serve"},
			wantLine:     []string{},
		},
		{
			name:         "value flag without value",
			args:         []string{"--pager"},
			wantFlags:    []string{"--pager"},
			wantCommands: []string{},
			wantLine:     []string{},
		},
		{
			name:         "value flag does not swallow the separator",
			args:         []string{"parse", "--config", "--", "create"},
			wantFlags:    []string{"--config"},
			wantCommands: []string{"parse"},
			wantLine:     []string{"create"},
		},
		{
			name:         "words after separator are the line",
			args:         []string{"parse", "--run", "--", "create", ":n", "foo", "--help"},
			wantFlags:    []string{"--run"},
			wantCommands: []string{"parse"},
			wantLine:     []string{"create", ":n", "foo", "--help"},
		},
		{
			name:         "help inside the line is not a command",
			args:         []string{"parse", "--", "help", "me"},
			wantFlags:    []string{},
			wantCommands: []string{"parse"},
			wantLine:     []string{"help", "me"},
		},
		{
			name:         "lone dash is a word",
			args:         []string{"parse", "-"},
			wantFlags:    []string{},
			wantCommands: []string{"parse", "-"},
			wantLine:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotCommands, gotLine := extractFlagsAndCommands(tt.args)

			require.Equal(t, tt.wantFlags, gotFlags)
			require.Equal(t, tt.wantCommands, gotCommands)
			require.Equal(t, tt.wantLine, gotLine)
		})
	}
}

func TestRun_ExitCodes(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "verbparserc")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "version", args: []string{"version"}, wantCode: 0},
		{name: "parse match", args: []string{"parse", "--", "create", ":n", "foo"}, wantCode: 0},
		{name: "parse unmatched", args: []string{"parse", "--", "creat", ":n", "foo"}, wantCode: 2, wantErr: "did not match"},
		{name: "unknown command", args: []string{"prase"}, wantCode: 1, wantErr: "Did you mean parse"},
		{name: "invalid flag", args: []string{"version", "--run"}, wantCode: 2, wantErr: "invalid flag '--run'"},
		{name: "missing argument", args: []string{"config", "get"}, wantCode: 2, wantErr: "'key'"},
		{name: "unknown config key", args: []string{"config", "get", "colour"}, wantCode: 1, wantErr: "unknown config key"},
		{name: "bare root", args: []string{}, wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			args := append([]string{"--no-pager", "--no-color", "--config=" + configPath}, tt.args...)

			code := run(args, &stderr)

			require.Equal(t, tt.wantCode, code, stderr.String())
			if tt.wantErr != "" {
				require.Contains(t, stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "verbparserc")
	require.NoError(t, os.WriteFile(configPath, []byte("string_comparison=fuzzy\n"), 0600))

	var stderr bytes.Buffer
	code := run([]string{"--config=" + configPath, "version"}, &stderr)

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "invalid configuration")
}

func TestRun_ConfigSetThenGet(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "verbparserc")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--config", configPath, "config", "set", "verb_prefix", "/"}, &stderr), stderr.String())

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, "verb_prefix=/\n", string(data))

	// The stored prefix now applies to parsing.
	require.Equal(t, 2, run([]string{"--config", configPath, "parse", "--", "create", ":n", "foo"}, &stderr))
	require.Equal(t, 0, run([]string{"--config", configPath, "parse", "--", "/create", ":n", "foo"}, &stderr))
}
