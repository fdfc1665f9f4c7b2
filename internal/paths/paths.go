// Package paths resolves configuration and data directory locations for
// the fireline CLI and derives the storage layout inside the data
// directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".fireline"
	DefaultDataDirName   = ".fireline-data"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "FIRELINE_CONFIG_DIR"
	EnvDataDir   = "FIRELINE_DATA_DIR"
)

// Names of the fixed entries inside the data directory.
const (
	reportsDirName  = "reports"
	usersFileName   = "users.json"
	referenceDBName = "reference.db"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/fireline (fallback ~/.config/fireline)
// macOS:   ~/Library/Application Support/fireline
// Windows: %APPDATA%/fireline
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "fireline"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "fireline"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "fireline"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/fireline (fallback ~/.local/share/fireline)
// macOS:   ~/Library/Application Support/fireline
// Windows: %APPDATA%/fireline
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "fireline"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "fireline"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "fireline"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > FIRELINE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml value > FIRELINE_DATA_DIR env >
// $(CWD)/.fireline-data. The CWD-relative default keeps a plain checkout
// self-contained when nothing is configured.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ReportsDir returns the report documents directory under dataDir.
func ReportsDir(dataDir string) string {
	return filepath.Join(dataDir, reportsDirName)
}

// UsersFile returns the credential store path under dataDir.
func UsersFile(dataDir string) string {
	return filepath.Join(dataDir, usersFileName)
}

// ReferenceDB returns the reference database path. An explicit override
// wins over the default location under dataDir.
func ReferenceDB(dataDir, override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(dataDir, referenceDBName)
}
