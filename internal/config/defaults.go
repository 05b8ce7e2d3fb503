package config

import (
	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/paths"
)

const (
	// EnvPrefix prefixes environment overrides: BOTCMD_LOG_LEVEL=debug.
	EnvPrefix = "BOTCMD"
	// FileName is the name of the configuration file.
	FileName = "botcmd.toml"
)

// Default configuration values (in code, not persisted)
var Defaults = defaults()

func defaults() map[string]func() string {
	d := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		d[key.Name] = func() string { return value }
	}
	d["log_path"] = DefaultLogPath
	return d
}

// DefaultPath returns the configuration file used when none is given.
func DefaultPath() string {
	return paths.ConfigFilePath()
}

// DefaultLogPath returns the log file used when log_path is not set.
func DefaultLogPath() string {
	return paths.LogFilePath()
}
