// Package paths locates the files botcmd keeps outside the working
// directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "botcmd"

// AppConfigDir returns the directory holding the configuration file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// The directory is not created; writers create it on first save.
func AppConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// AppStateDir returns the OS-appropriate directory for logs.
//   - macOS: ~/Library/Logs/botcmd
//   - Linux: $XDG_STATE_HOME/botcmd or ~/.local/state/botcmd
//   - Windows: %LOCALAPPDATA%\botcmd
func AppStateDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appDirName)
		}
		base = filepath.Join(home, "Library", "Logs")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appDirName)
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_STATE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appDirName)
			}
			base = filepath.Join(home, ".local", "state")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the configuration file used when none is given.
func ConfigFilePath() string {
	return filepath.Join(AppConfigDir(), "botcmd.toml")
}

// LogFilePath returns the log file used when log_path is not set.
func LogFilePath() string {
	return filepath.Join(AppStateDir(), "botcmd.log")
}
