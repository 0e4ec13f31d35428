package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "verbparse"

	// ConfigEnv overrides the configuration file location.
	ConfigEnv = "VERBPARSE_CONFIG"
)

// AppDataDir returns the application directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns $VERBPARSE_CONFIG when set, otherwise
// ~/.verbparserc. The file may not exist.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return filepath.Abs(p)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".verbparserc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "verbparse.log")
}
