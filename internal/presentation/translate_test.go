package presentation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/errors"
)

func TestTranslators_InternAndFind(t *testing.T) {
	std := MustRegisterStandard(NewRegistry())
	ts := NewTranslators()

	for _, tr := range std.StringTranslators(std.TextRenderer()) {
		require.NoError(t, ts.Intern(tr))
	}
	require.Equal(t, 6, ts.Len())

	tr, ok := ts.Find(std.String, std.Number)
	require.True(t, ok)
	got := tr.Translate(New(std.Number, 1234))
	require.True(t, got.Type().Is(std.String))
	require.Equal(t, "1234", got.Object())

	tr, ok = ts.Find(std.String, std.UserID)
	require.True(t, ok)
	require.Equal(t, "@foo:localhost:9999", tr.Translate(New(std.UserID, id.UserID("@foo:localhost:9999"))).Object())

	_, ok = ts.Find(std.Number, std.String)
	require.False(t, ok)
}

func TestTranslators_DuplicatePair(t *testing.T) {
	std := MustRegisterStandard(NewRegistry())
	ts := NewTranslators()
	tr := std.StringTranslators(std.TextRenderer())[0]

	require.NoError(t, ts.Intern(tr))
	err := ts.Intern(tr)
	require.True(t, errors.Is(err, errors.ErrDuplicateTranslator))
}

func TestTranslators_NilSet(t *testing.T) {
	var ts *Translators
	_, ok := ts.Find(nil, nil)
	require.False(t, ok)
	require.Equal(t, 0, ts.Len())
}
