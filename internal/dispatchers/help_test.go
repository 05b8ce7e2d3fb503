package dispatchers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/botcmd/internal/command"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/presentation"
	"github.com/footprint-tools/botcmd/internal/usage"
)

func newHelpTable() *Table {
	types := presentation.MustRegisterStandard(presentation.NewRegistry())
	table := NewTable("help")

	table.MustIntern(command.Describe(command.Spec{
		Summary:     "Ban an entity",
		Description: "Bans a user or server from every protected room.",
		Category:    command.CategoryModeration,
		Parameters: []command.Parameter{
			{Name: "entity", Description: "Who to ban", Acceptor: presentation.Single(types.UserID)},
		},
		Rest: &command.Parameter{Name: "reason", Acceptor: presentation.Single(types.String)},
		Keywords: command.Keywords{Descriptions: map[string]command.KeywordParameter{
			"dry-run": {IsFlag: true, Description: "Only report what would happen"},
			"room":    {Acceptor: types.RoomReference()},
		}},
	}), "bot", "ban")
	table.MustIntern(command.Describe(command.Spec{
		Summary:  "List protected rooms",
		Category: command.CategoryRooms,
	}), "bot", "rooms", "list")
	table.MustIntern(command.Describe(command.Spec{
		Summary:  "Join a room",
		Category: command.CategoryRooms,
	}), "bot", "rooms", "join")
	table.MustIntern(HelpCommand(table, "bot"), "bot", "help")
	return table
}

func TestRenderHelp_Table(t *testing.T) {
	out, err := RenderHelp(newHelpTable(), nil, nil)
	require.NoError(t, err)

	require.Contains(t, out, "COMMANDS")
	require.Contains(t, out, "moderation\n   bot ban <entity> [reason...] [--dry-run] [--room <MatrixRoomID | MatrixRoomAlias>]\n      Ban an entity")
	require.Contains(t, out, "manage rooms\n   bot rooms join\n      Join a room\n   bot rooms list")
	require.Contains(t, out, "information\n   bot help [command...]")
	require.Less(t, indexOf(out, "moderation"), indexOf(out, "manage rooms"))
	require.Less(t, indexOf(out, "manage rooms"), indexOf(out, "information"))
}

func TestRenderHelp_Command(t *testing.T) {
	table := newHelpTable()

	for _, words := range [][]string{{"bot", "ban"}, {"ban"}} {
		out, err := RenderHelp(table, []string{"bot"}, words)
		require.NoError(t, err)
		require.Contains(t, out, "bot ban - Ban an entity")
		require.Contains(t, out, "USAGE\n   bot ban <entity>")
		require.Contains(t, out, "Bans a user or server from every protected room.")
		require.Contains(t, out, "entity            Who to ban (MatrixUserID)")
		require.Contains(t, out, "reason            (string)")
		require.Contains(t, out, "--dry-run         Only report what would happen")
		require.Contains(t, out, "--room            (MatrixRoomID | MatrixRoomAlias)")
	}
}

func TestRenderHelp_Group(t *testing.T) {
	out, err := RenderHelp(newHelpTable(), []string{"bot"}, []string{"rooms"})
	require.NoError(t, err)
	require.Contains(t, out, "bot rooms\n\nCOMMANDS\n")
	require.Contains(t, out, "bot rooms join  Join a room")
	require.Contains(t, out, "bot rooms list  List protected rooms")
	require.NotContains(t, out, "bot ban")
}

func TestRenderHelp_UnknownCommand(t *testing.T) {
	_, err := RenderHelp(newHelpTable(), []string{"bot"}, []string{"bot", "rooms", "lst"})
	require.Error(t, err)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, usage.ErrUnknownCommand, usageErr.Kind)
	require.Contains(t, usageErr.Message, "'bot rooms lst' is not a command")
	require.Contains(t, usageErr.Message, "bot rooms list")
}

func TestHelpCommand_Executor(t *testing.T) {
	table := newHelpTable()
	entry, ok := table.Lookup([]string{"bot", "help"})
	require.True(t, ok)

	result, err := entry.Command.Executor(context.Background(), nil, nil, nil, []any{"rooms", 12})
	require.NoError(t, err)
	require.Contains(t, result, "bot rooms list")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
