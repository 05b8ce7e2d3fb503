package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/matrixid"
	"github.com/footprint-tools/botcmd/internal/presentation"
	"github.com/footprint-tools/botcmd/internal/reader"
)

type bindFixture struct {
	types  *presentation.Standard
	reader *reader.Reader
	binder *Binder
}

func newBindFixture() *bindFixture {
	types := presentation.MustRegisterStandard(presentation.NewRegistry())
	return &bindFixture{
		types:  types,
		reader: reader.New(types),
		binder: &Binder{Renderer: types.TextRenderer()},
	}
}

func (f *bindFixture) partial(desc *Description, text string) *PartialCommand {
	return NewPartialCommand(desc, []string{"test"}, NewStream(f.reader.Read(text)))
}

func noPrompt(context.Context, any) (PromptOptions, error) {
	return PromptOptions{}, nil
}

func TestBind_KeywordsAndRoom(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Keywords: Keywords{Descriptions: map[string]KeywordParameter{
		"dry-run": {IsFlag: true},
		"room":    {Acceptor: f.types.RoomReference()},
	}}})

	complete, err := f.binder.Bind(f.partial(desc, "--dry-run --room !foo:example.com"))
	require.NoError(t, err)

	require.True(t, complete.Keywords.Flag("dry-run"))
	room, ok := complete.Keywords.Value("room", nil).(matrixid.RoomReference)
	require.True(t, ok)
	require.Equal(t, "!foo:example.com", room.String())
}

func TestBind_Positional(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Parameters: []Parameter{
		{Name: "user", Acceptor: presentation.Single(f.types.UserID)},
		{Name: "count", Acceptor: presentation.Single(f.types.Number)},
	}})

	complete, err := f.binder.Bind(f.partial(desc, "@spam:example.com 3"))
	require.NoError(t, err)
	require.Equal(t, []any{id.UserID("@spam:example.com"), 3}, complete.Arguments)
	require.Nil(t, complete.Rest)
	require.Equal(t, []string{"test"}, complete.Designator)
}

func TestBind_MissingArgumentWithoutPrompt(t *testing.T) {
	f := newBindFixture()
	f.binder.Promptable = true
	desc := Describe(Spec{Parameters: []Parameter{
		{Name: "count", Acceptor: presentation.Single(f.types.Number)},
	}})

	_, err := f.binder.Bind(f.partial(desc, ""))
	require.Error(t, err)

	var argErr *ArgumentParseError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "count", argErr.Parameter.Name)
	require.Contains(t, argErr.Message, "was expected but was not provided")
	_, isPrompt := AsPromptRequired(err)
	require.False(t, isPrompt)
}

func TestBind_MissingArgumentWithPrompt(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Parameters: []Parameter{
		{Name: "count", Acceptor: presentation.Single(f.types.Number), Prompt: noPrompt},
	}})

	t.Run("prompting enabled", func(t *testing.T) {
		f.binder.Promptable = true
		_, err := f.binder.Bind(f.partial(desc, ""))

		prompt, ok := AsPromptRequired(err)
		require.True(t, ok)
		require.Equal(t, "count", prompt.Parameter.Name)
		require.False(t, prompt.Rest)
		require.False(t, IsParseError(err))
	})

	t.Run("prompting disabled", func(t *testing.T) {
		f.binder.Promptable = false
		_, err := f.binder.Bind(f.partial(desc, ""))

		var argErr *ArgumentParseError
		require.True(t, errors.As(err, &argErr))
		require.True(t, IsParseError(err))
	})
}

func TestBind_SchemaMismatch(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Parameters: []Parameter{
		{Name: "count", Acceptor: presentation.Single(f.types.Number)},
	}})

	_, err := f.binder.Bind(f.partial(desc, "many"))

	var argErr *ArgumentParseError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "Was expecting a match for the presentation type: number but got many.", argErr.Message)
	require.Equal(t, 0, argErr.Position)
}

func TestBind_UnexpectedTrailingArgument(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Parameters: []Parameter{
		{Name: "user", Acceptor: presentation.Single(f.types.UserID)},
	}})

	_, err := f.binder.Bind(f.partial(desc, "@spam:example.com extra"))

	var unexpected *UnexpectedArgumentError
	require.True(t, errors.As(err, &unexpected))
	require.Equal(t, 1, unexpected.Position)
	require.Contains(t, unexpected.Message, "extra")
}

func TestBind_UnknownKeyword(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{})

	_, err := f.binder.Bind(f.partial(desc, "--nope"))

	var unexpected *UnexpectedArgumentError
	require.True(t, errors.As(err, &unexpected))
	require.Contains(t, unexpected.Message, "--nope")
}

func TestBind_AllowOtherKeys(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{
		Rest:     &Parameter{Name: "words", Acceptor: presentation.Single(f.types.String)},
		Keywords: Keywords{AllowOtherKeys: true},
	})

	complete, err := f.binder.Bind(f.partial(desc, "--colour blue --loud hello"))
	require.NoError(t, err)
	require.Equal(t, "blue", complete.Keywords.String("colour", ""))
	require.Equal(t, "hello", complete.Keywords.Value("loud", nil))
	require.Empty(t, complete.Rest)

	complete, err = f.binder.Bind(f.partial(desc, "--loud --quiet"))
	require.NoError(t, err)
	require.True(t, complete.Keywords.Flag("loud"))
	require.True(t, complete.Keywords.Flag("quiet"))
}

func TestBind_KeywordMissingValue(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Keywords: Keywords{Descriptions: map[string]KeywordParameter{
		"room": {Acceptor: f.types.RoomReference()},
	}}})

	_, err := f.binder.Bind(f.partial(desc, "--room"))

	var argErr *ArgumentParseError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "room", argErr.Parameter.Name)

	_, err = f.binder.Bind(f.partial(desc, "--room notaroom"))
	require.True(t, errors.As(err, &argErr))
	require.Contains(t, argErr.Message, "MatrixRoomID | MatrixRoomAlias")
}

func TestBind_KeywordsInterleaved(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{
		Parameters: []Parameter{
			{Name: "user", Acceptor: presentation.Single(f.types.UserID)},
		},
		Rest: &Parameter{Name: "reason", Acceptor: presentation.Single(f.types.String)},
		Keywords: Keywords{Descriptions: map[string]KeywordParameter{
			"dry-run": {IsFlag: true},
			"limit":   {Acceptor: presentation.Single(f.types.Number)},
		}},
	})

	complete, err := f.binder.Bind(f.partial(desc, "--limit 5 @spam:example.com being a --dry-run spammer"))
	require.NoError(t, err)

	require.Equal(t, []any{id.UserID("@spam:example.com")}, complete.Arguments)
	require.Equal(t, []any{"being", "a", "spammer"}, complete.Rest)
	require.Equal(t, 5, complete.Keywords.Int("limit", 0))
	require.True(t, complete.Keywords.Flag("dry-run"))
	require.Equal(t, []any{presentation.Keyword{Designator: "limit"}, 5, id.UserID("@spam:example.com")}, complete.ImmediateArguments)
}

func TestBind_ImmediateArgumentsUseCursorNotValue(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{
		Parameters: []Parameter{{Name: "word", Acceptor: presentation.Single(f.types.String)}},
		Rest:       &Parameter{Name: "rest", Acceptor: presentation.Single(f.types.String)},
	})

	complete, err := f.binder.Bind(f.partial(desc, "same same same"))
	require.NoError(t, err)
	require.Equal(t, []any{"same"}, complete.ImmediateArguments)
	require.Equal(t, []any{"same", "same"}, complete.Rest)
}

func TestBind_RestPrompt(t *testing.T) {
	f := newBindFixture()
	f.binder.Promptable = true
	desc := Describe(Spec{
		Rest: &Parameter{Name: "rooms", Acceptor: f.types.RoomReference(), Prompt: noPrompt},
	})

	_, err := f.binder.Bind(f.partial(desc, ""))
	prompt, ok := AsPromptRequired(err)
	require.True(t, ok)
	require.True(t, prompt.Rest)
	require.Equal(t, "rooms", prompt.Parameter.Name)

	complete, err := f.binder.Bind(f.partial(desc, "#a:example.com !b:example.com"))
	require.NoError(t, err)
	require.Len(t, complete.Rest, 2)
}

func TestBind_RestSchemaMismatch(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{
		Rest: &Parameter{Name: "rooms", Acceptor: f.types.RoomReference()},
	})

	_, err := f.binder.Bind(f.partial(desc, "#a:example.com nope"))
	var argErr *ArgumentParseError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, "rooms", argErr.Parameter.Name)
	require.Equal(t, 1, argErr.Position)
}

func TestBind_Translators(t *testing.T) {
	f := newBindFixture()
	ts := presentation.NewTranslators()
	for _, tr := range f.types.StringTranslators(f.binder.Renderer) {
		require.NoError(t, ts.Intern(tr))
	}
	desc := Describe(Spec{
		Rest: &Parameter{Name: "reason", Acceptor: presentation.Single(f.types.String)},
	})

	withoutTranslators, err := f.binder.Bind(f.partial(desc, "hello"))
	require.NoError(t, err)
	require.Equal(t, []any{"hello"}, withoutTranslators.Rest)

	_, err = f.binder.Bind(f.partial(desc, "hello 1234"))
	require.Error(t, err)

	f.binder.Translators = ts
	complete, err := f.binder.Bind(f.partial(desc, "hello 1234 @foo:localhost:9999 false"))
	require.NoError(t, err)
	require.Equal(t, []any{"hello", "1234", "@foo:localhost:9999", "false"}, complete.Rest)
}

func TestCompleteCommand_ToPartialCommand(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Parameters: []Parameter{
		{Name: "user", Acceptor: presentation.Single(f.types.UserID)},
	}})
	source := f.reader.Read("ban @spam:example.com")
	stream := NewStream(source)
	stream.Read()

	complete, err := f.binder.Bind(NewPartialCommand(desc, []string{"ban"}, stream))
	require.NoError(t, err)

	partial := complete.ToPartialCommand()
	require.Equal(t, desc, partial.Description)
	require.Equal(t, []string{"ban"}, partial.Designator)
	require.Equal(t, 1, partial.Stream.Position())
	require.Len(t, partial.Stream.Source(), 2)

	again, err := f.binder.Bind(partial)
	require.NoError(t, err)
	require.Equal(t, complete.Arguments, again.Arguments)
}

func TestBind_KeywordStoredByDesignator(t *testing.T) {
	f := newBindFixture()
	desc := Describe(Spec{Keywords: Keywords{Descriptions: map[string]KeywordParameter{
		"room": {Name: "target", Acceptor: presentation.Single(f.types.String)},
	}}})

	kp, ok := desc.Parameters.Keywords.Lookup("room")
	require.True(t, ok)
	require.Equal(t, "room", kp.Name)

	complete, err := f.binder.Bind(f.partial(desc, "--room lobby"))
	require.NoError(t, err)
	require.Equal(t, "lobby", complete.Keywords.Value("room", "<default>"))
	require.Equal(t, []string{"room"}, complete.Keywords.Names())
}

func TestBind_KeywordValueIsAnotherKeyword(t *testing.T) {
	f := newBindFixture()

	tests := []struct {
		name     string
		acceptor presentation.Schema
		wantErr  bool
	}{
		{"any value refuses a keyword", presentation.Top(), true},
		{"string value refuses a keyword", presentation.Single(f.types.String), true},
		{"keyword value accepts a keyword", presentation.Single(f.types.Keyword), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := Describe(Spec{Keywords: Keywords{Descriptions: map[string]KeywordParameter{
				"reason":  {Acceptor: tt.acceptor},
				"dry-run": {IsFlag: true},
			}}})

			complete, err := f.binder.Bind(f.partial(desc, "--reason --dry-run"))
			if tt.wantErr {
				var argErr *ArgumentParseError
				require.True(t, errors.As(err, &argErr))
				require.Equal(t, "reason", argErr.Parameter.Name)
				require.Contains(t, argErr.Message, "An associated argument was not provided for the keyword")
				return
			}
			require.NoError(t, err)
			require.Equal(t, presentation.Keyword{Designator: "dry-run"}, complete.Keywords.Value("reason", nil))
			require.False(t, complete.Keywords.Flag("dry-run"))
		})
	}
}
