package config

import (
	"bufio"
	"os"
	"path/filepath"
)

// WriteLines replaces the file at path with lines. The content goes to a
// temporary file in the same directory first and is renamed into place.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// Update reads the key=value file at path, applies edit to its lines and
// writes the result back while holding the config lock.
func Update(path string, edit func([]string) []string) error {
	return WithLock(path, func() error {
		lines, err := ReadLines(path)
		if err != nil {
			return err
		}
		return WriteLines(path, edit(lines))
	})
}
