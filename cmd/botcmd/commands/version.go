package commands

import (
	"github.com/spf13/cobra"

	"github.com/footprint-tools/botcmd/internal/actions"
)

func newVersionCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show botcmd version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return actions.ShowVersion(s.out)
		},
	}
}
