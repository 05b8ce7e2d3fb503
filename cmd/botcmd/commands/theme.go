package commands

import (
	"github.com/spf13/cobra"

	"github.com/footprint-tools/botcmd/internal/actions/theme"
)

func newThemeCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the color theme",
	}

	deps := func() theme.Deps {
		return theme.DefaultDeps(s.cfg, s.prompter(), s.out)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return theme.List(args, deps())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Set the color theme",
		RunE: func(_ *cobra.Command, args []string) error {
			return theme.Set(args, deps())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pick",
		Short: "Choose a theme interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return theme.Pick(cmd.Context(), args, deps())
		},
	})

	return cmd
}
