package config

import (
	"github.com/footprint-tools/botcmd/internal/usage"
)

func Set(args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if err := deps.Set(key, value); err != nil {
		return err
	}

	_, _ = deps.Printf("set %s=%s\n", key, value)
	return nil
}
