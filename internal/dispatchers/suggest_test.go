package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSimilarCommands(t *testing.T) {
	table := NewTable("test")
	for _, d := range [][]string{
		{"bot", "ban"},
		{"bot", "unban"},
		{"bot", "rooms", "list"},
		{"bot", "rooms", "join"},
		{"bot", "echo"},
	} {
		table.MustIntern(newCommand(d[len(d)-1]), d...)
	}

	tests := []struct {
		name  string
		input string
		path  []string
		max   int
		want  []string
	}{
		{"single typo", "ecoh", []string{"bot"}, 3, []string{"bot echo"}},
		{"ties sorted by name", "uban", []string{"bot"}, 3, []string{"bot ban", "bot unban"}},
		{"case insensitive", "ECHOO", []string{"bot"}, 3, []string{"bot echo"}},
		{"nested", "lst", []string{"bot", "rooms"}, 3, []string{"bot rooms list"}},
		{"limited", "ban", []string{"bot"}, 1, []string{"bot unban"}},
		{"exact match excluded", "ban", []string{"bot"}, 3, []string{"bot unban"}},
		{"nothing close", "xyzzyplugh", []string{"bot"}, 3, []string{}},
		{"unknown path", "ban", []string{"nope"}, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, table.FindSimilarCommands(tt.input, tt.path, tt.max))
		})
	}
}
