package commands

import (
	"github.com/spf13/cobra"

	configactions "github.com/footprint-tools/botcmd/internal/actions/config"
)

func newConfigCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	action := func(run func([]string, configactions.Deps) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			return run(args, configactions.DefaultDeps(s.cfg, s.out))
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a config value",
		RunE:  action(configactions.Get),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value in the config file",
		RunE:  action(configactions.Set),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a config value from the config file",
		RunE:  action(configactions.Unset),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all config values",
		Args:  cobra.NoArgs,
		RunE:  action(configactions.List),
	})

	return cmd
}
