package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/botcmd/internal/usage"
)

type capture struct {
	lines []string
}

func (c *capture) deps(values map[string]string) Deps {
	return Deps{
		Get: func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		},
		GetAll: func() (map[string]string, error) {
			return values, nil
		},
		Set: func(key, value string) error {
			if _, ok := values[key]; !ok {
				return usage.InvalidConfigKey(key)
			}
			values[key] = value
			return nil
		},
		Unset: func(key string) error {
			if _, ok := values[key]; !ok {
				return usage.InvalidConfigKey(key)
			}
			values[key] = "default"
			return nil
		},
		Printf: func(format string, a ...any) (int, error) {
			c.lines = append(c.lines, fmt.Sprintf(format, a...))
			return 0, nil
		},
		Println: func(a ...any) (int, error) {
			c.lines = append(c.lines, fmt.Sprintln(a...))
			return 0, nil
		},
	}
}

func (c *capture) String() string {
	return strings.Join(c.lines, "")
}

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	var c capture
	err := Get([]string{"prefix"}, c.deps(map[string]string{"prefix": "draupnir"}))

	require.NoError(t, err)
	require.Equal(t, "draupnir\n", c.String())
}

func TestGet_MissingKey(t *testing.T) {
	var c capture
	err := Get([]string{}, c.deps(nil))

	require.Error(t, err)
	require.Contains(t, err.Error(), "key")
}

func TestGet_KeyNotFound(t *testing.T) {
	var c capture
	err := Get([]string{"nonexistent"}, c.deps(map[string]string{}))

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, usage.ErrInvalidConfigKey, usageErr.Kind)
	require.Contains(t, err.Error(), "nonexistent")
}

// =========== SET TESTS ===========

func TestSet_Success(t *testing.T) {
	var c capture
	values := map[string]string{"prefix": "botcmd"}

	err := Set([]string{"prefix", "draupnir"}, c.deps(values))

	require.NoError(t, err)
	require.Equal(t, "draupnir", values["prefix"])
	require.Equal(t, "set prefix=draupnir\n", c.String())
}

func TestSet_MissingValue(t *testing.T) {
	var c capture
	err := Set([]string{"prefix"}, c.deps(nil))

	require.Error(t, err)
	require.Contains(t, err.Error(), "key value")
}

func TestSet_InvalidKey(t *testing.T) {
	var c capture
	err := Set([]string{"pager", "less"}, c.deps(map[string]string{}))

	require.Error(t, err)
	require.Empty(t, c.lines)
}

// =========== UNSET TESTS ===========

func TestUnset_Success(t *testing.T) {
	var c capture
	values := map[string]string{"prefix": "draupnir"}

	err := Unset([]string{"prefix"}, c.deps(values))

	require.NoError(t, err)
	require.Equal(t, "unset prefix (now default)\n", c.String())
}

func TestUnset_MissingKey(t *testing.T) {
	var c capture
	err := Unset(nil, c.deps(nil))

	require.Error(t, err)
}

// =========== LIST TESTS ===========

func TestList_GroupsBySection(t *testing.T) {
	var c capture
	values := map[string]string{
		"prefix":    "botcmd",
		"color":     "true",
		"log_level": "warn",
	}

	err := List(nil, c.deps(values))
	require.NoError(t, err)

	out := c.String()
	require.Contains(t, out, "Commands\nprefix=botcmd\n")
	require.Contains(t, out, "Display\ncolor=true\n")
	require.Contains(t, out, "Logging\nlog_level=warn\n")
	require.Less(t, strings.Index(out, "Commands"), strings.Index(out, "Display"))
}

func TestList_Error(t *testing.T) {
	var c capture
	deps := c.deps(nil)
	deps.GetAll = func() (map[string]string, error) {
		return nil, errors.New("read failed")
	}

	err := List(nil, deps)
	require.EqualError(t, err, "read failed")
}
