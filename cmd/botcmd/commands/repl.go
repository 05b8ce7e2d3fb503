package commands

import (
	"github.com/spf13/cobra"

	"github.com/footprint-tools/botcmd/internal/actions"
	"github.com/footprint-tools/botcmd/internal/app"
)

func newReplCmd(s *state) *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Handle messages read line by line from standard input",
		Long: `Handle messages read line by line from standard input.

State such as bans and joined rooms is kept until the session ends.
Missing arguments are asked for interactively when a terminal is attached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bot, err := s.newBot()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close(bot) }()

			session := s.session(sender)
			if isTerminal(s.in) {
				session.Prompt = "> "
			}
			return actions.Repl(cmd.Context(), bot.Handle, session)
		},
	}

	cmd.Flags().StringVar(&sender, "sender", defaultSender, "User ID messages are sent as")
	return cmd
}
