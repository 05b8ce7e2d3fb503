package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/matrixid"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

func newTestReader() (*Reader, *presentation.Standard) {
	types := presentation.MustRegisterStandard(presentation.NewRegistry())
	return New(types), types
}

func TestRead_Strings(t *testing.T) {
	r, types := newTestReader()

	got := r.Read("hello")
	require.Len(t, got, 1)
	require.Equal(t, "hello", got[0].Object())
	require.True(t, got[0].Type().Is(types.String))
}

func TestRead_EmptyAndWhitespace(t *testing.T) {
	r, _ := newTestReader()

	require.Empty(t, r.Read(""))
	require.Empty(t, r.Read("  \t\n "))
	require.Len(t, r.Read("  a \t b\n"), 2)
}

func TestRead_ComplexCommand(t *testing.T) {
	r, types := newTestReader()

	got := r.Read("!draupnir ban @spam:example.com https://matrix.to/#/#coc:example.com spam --some-flag-idk")
	require.Len(t, got, 6)

	require.Equal(t, "!draupnir", got[0].Object())
	require.True(t, got[2].Type().Is(types.UserID))
	require.True(t, got[3].Type().Is(types.RoomAlias))
	require.Equal(t, "#coc:example.com", got[3].Object().(matrixid.RoomAlias).String())
	require.Equal(t, "spam", got[4].Object())
	require.Equal(t, presentation.Keyword{Designator: "some-flag-idk"}, got[5].Object())
}

func TestRead_OnlyStrings(t *testing.T) {
	r, types := newTestReader()
	command := "!mjolnir list rooms"

	for _, p := range r.Read(command) {
		require.True(t, p.Type().Is(types.String))
		require.Contains(t, command, p.Object().(string))
	}
}

func TestRead_RoomReferences(t *testing.T) {
	r, types := newTestReader()

	tests := []struct {
		name     string
		input    string
		wantType *presentation.Type
	}{
		{"alias", "#meow:example.org", types.RoomAlias},
		{"room id", "!foijoiejfoij:example.org", types.RoomID},
		{"alias with port", "#bar:localhost:9999", types.RoomAlias},
		{"alias without server", "#singasongaboutlife", types.String},
		{"room id without server", "!mjolnir", types.String},
		{"empty server", "!mjolnir: ban", types.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Read(tt.input)
			require.NotEmpty(t, got)
			require.True(t, got[0].Type().Is(tt.wantType), "got %s", got[0].Type())
			if tt.wantType.Is(types.String) {
				require.Equal(t, strings.Fields(tt.input)[0], got[0].Object())
			} else {
				require.Equal(t, tt.input, got[0].Object().(matrixid.RoomReference).String())
			}
		})
	}
}

func TestRead_UserIDs(t *testing.T) {
	r, types := newTestReader()

	got := r.Read("@spam:example.com")
	require.True(t, got[0].Type().Is(types.UserID))
	user := got[0].Object().(id.UserID)
	require.Equal(t, "spam", user.Localpart())

	got = r.Read("@nobody")
	require.True(t, got[0].Type().Is(types.String))
	require.Equal(t, "@nobody", got[0].Object())
}

func TestRead_Keywords(t *testing.T) {
	r, types := newTestReader()

	tests := []struct {
		input string
		want  string
	}{
		{"--foo", "foo"},
		{"-foo", "foo"},
		{"-f", "f"},
		{":foo", "foo"},
		{":f", "f"},
		{"--dry-run", "dry-run"},
		{"--", ""},
		{"-", ""},
		{"--5", "5"},
		{":5", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := r.Read(tt.input)
			require.Len(t, got, 1)
			require.True(t, got[0].Type().Is(types.Keyword))
			require.Equal(t, tt.want, got[0].Object().(presentation.Keyword).Designator)
		})
	}
}

func TestRead_EmptyKeywordBeforeWord(t *testing.T) {
	r, types := newTestReader()

	got := r.Read("-- foo")
	require.Len(t, got, 2)
	require.Equal(t, presentation.Keyword{}, got[0].Object())
	require.True(t, got[1].Type().Is(types.String))
}

func TestRead_Numbers(t *testing.T) {
	r, types := newTestReader()

	tests := []struct {
		input string
		want  int
	}{
		{"123", 123},
		{"-123", -123},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := r.Read(tt.input)
			require.True(t, got[0].Type().Is(types.Number))
			require.Equal(t, tt.want, got[0].Object())
		})
	}

	got := r.Read("12abc")
	require.True(t, got[0].Type().Is(types.String))
}

func TestRead_Booleans(t *testing.T) {
	r, types := newTestReader()

	got := r.Read("true false truely")
	require.True(t, got[0].Type().Is(types.Boolean))
	require.Equal(t, true, got[0].Object())
	require.Equal(t, false, got[1].Object())
	require.True(t, got[2].Type().Is(types.String))
}

func TestRead_QuotedStrings(t *testing.T) {
	r, types := newTestReader()

	tests := []struct {
		name  string
		input string
		want  []any
	}{
		{"simple", `"hello world"`, []any{"hello world"}},
		{"unbalanced", `"unbalanced quote`, []any{`"unbalanced`, "quote"}},
		{"escaped quotes", `"\"hello \"`, []any{`"hello "`}},
		{"empty", `""`, []any{""}},
		{"followed by word", `"a b" c`, []any{"a b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Read(tt.input)
			require.Equal(t, tt.want, presentation.Objects(got))
			for _, p := range got {
				require.True(t, p.Type().Is(types.String))
			}
		})
	}
}

func TestRead_QuotingPreventsCoercion(t *testing.T) {
	r, types := newTestReader()

	for _, input := range []string{`"true"`, `"123"`, `"https://matrix.to/#/@a:b.c"`} {
		got := r.Read(input)
		require.True(t, got[0].Type().Is(types.String), input)
	}
}

func TestRead_Permalinks(t *testing.T) {
	r, types := newTestReader()

	tests := []struct {
		name     string
		input    string
		wantType *presentation.Type
	}{
		{"user", "https://matrix.to/#/@alice:example.com", types.UserID},
		{"room id", "https://matrix.to/#/!foo:example.com?via=example.com", types.RoomID},
		{"escaped alias", "https://matrix.to/#/%23bar%3Alocalhost%3A9999", types.RoomAlias},
		{"event", "https://matrix.to/#/!foo:example.com/$ev?via=example.com", types.EventReference},
		{"garbage", "https://matrix.to/nothing-here", types.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Read(tt.input)
			require.Len(t, got, 1)
			require.True(t, got[0].Type().Is(tt.wantType), "got %s", got[0].Type())
		})
	}
}

func TestRead_PlainWordsRoundTrip(t *testing.T) {
	r, _ := newTestReader()

	for _, input := range []string{"hello", "ban spammer now", "a b c d e"} {
		first := r.Read(input)
		words := make([]string, len(first))
		for i, p := range first {
			words[i] = p.Object().(string)
		}
		second := r.Read(strings.Join(words, " "))
		require.Equal(t, presentation.Objects(first), presentation.Objects(second))
	}
}
