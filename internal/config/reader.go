package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines returns the lines of the file at path. A missing file yields no
// lines and no error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Load reads the configuration at path and merges it over the defaults.
// Files ending in .hcl are read as HCL attributes, anything else as key=value
// lines. A missing file yields the defaults.
func Load(path string) (map[string]string, error) {
	if path == "" {
		return WithDefaults(nil), nil
	}

	var (
		cfg map[string]string
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		cfg, err = loadHCL(path)
	} else {
		var lines []string
		lines, err = ReadLines(path)
		if err == nil {
			cfg, err = Parse(lines)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	for key := range cfg {
		if !IsKnown(key) {
			return nil, fmt.Errorf("load config %s: unknown key %q", path, key)
		}
	}
	return WithDefaults(cfg), nil
}
