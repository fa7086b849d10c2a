package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "verbs"

// AppDataDir returns the application directory for configuration-like data:
// the log file, the commands file and the optional .env file.
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

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory, where the
// history database lives.
//   - macOS: ~/Library/Application Support/verbs
//   - Linux: $XDG_DATA_HOME/verbs or ~/.local/share/verbs
//   - Windows: %LOCALAPPDATA%\verbs
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the rc file, ~/.verbsrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".verbsrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "verbs.log")
}

// CommandsFilePath returns the default YAML command definitions file.
func CommandsFilePath() string {
	return filepath.Join(AppDataDir(), "commands.yaml")
}

// EnvFilePath returns the .env file read for VERBS_* overrides.
func EnvFilePath() string {
	return filepath.Join(AppDataDir(), ".env")
}

// HistoryDBPath returns the SQLite database holding command history.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
