package config

import (
	"github.com/footprint-tools/botcmd/internal/usage"
)

// Unset removes key from the configuration file, restoring its default.
func Unset(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	if err := deps.Unset(key); err != nil {
		return err
	}

	value, _ := deps.Get(key)
	_, _ = deps.Printf("unset %s (now %s)\n", key, value)
	return nil
}
