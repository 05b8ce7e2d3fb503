package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/actions"
	"github.com/footprint-tools/botcmd/internal/app"
)

func newRunCmd(s *state) *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "run <message...>",
		Short: "Handle one message and print the reply",
		Long: `Handle one message and print the reply.

The words after the first non-flag argument are joined into the message,
so bot keywords such as --dry-run are passed through untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, err := s.newBot()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close(bot) }()

			return actions.RunMessage(cmd.Context(), bot.Handle, s.session(sender), strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&sender, "sender", defaultSender, "User ID the message is sent as")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func idOrDefault(sender string) id.UserID {
	if sender == "" {
		return defaultSender
	}
	return id.UserID(sender)
}
