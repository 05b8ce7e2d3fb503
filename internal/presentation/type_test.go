package presentation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/botcmd/internal/errors"
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	name, err := r.Register("name", isString)
	require.NoError(t, err)
	require.Equal(t, "name", name.Name())

	_, err = r.Register("name", isString)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrDuplicateType))
	require.Contains(t, err.Error(), `"name"`)

	other, err := r.Register("other", isString)
	require.NoError(t, err)
	require.False(t, other.Is(name))
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("string", isString)

	require.Panics(t, func() {
		r.MustRegister("string", isString)
	})
}

func TestRegistry_IndependentInstances(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	ta := a.MustRegister("string", isString)
	tb := b.MustRegister("string", isString)

	require.NotEqual(t, ta.ID(), tb.ID())
	require.False(t, ta.Is(tb))
	require.False(t, Single(ta).Check(New(tb, "hello")))
}

func TestNew_PanicsOnInvalidObject(t *testing.T) {
	r := NewRegistry()
	str := r.MustRegister("string", isString)

	require.Panics(t, func() { New(str, 42) })

	_, ok := Wrap(str, 42)
	require.False(t, ok)

	p, ok := Wrap(str, "ok")
	require.True(t, ok)
	require.Equal(t, "ok", p.Object())
	require.True(t, p.Type().Is(str))
}

func TestObjects(t *testing.T) {
	std := MustRegisterStandard(NewRegistry())
	ps := []Presentation{New(std.String, "a"), New(std.Number, 3), New(std.Boolean, true)}

	require.Equal(t, []any{"a", 3, true}, Objects(ps))
}
