package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/usage"
)

type harness struct {
	configPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("BOTCMD_ENABLE_LOG", "false")
	return &harness{configPath: filepath.Join(t.TempDir(), "botcmd.toml")}
}

func (h *harness) exec(input string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRoot(strings.NewReader(input), &out, &errOut)
	root.SetArgs(append([]string{"--config", h.configPath, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "single argument",
			args: []string{"run", "!botcmd echo hi"},
			want: "hi\n",
		},
		{
			name: "words joined",
			args: []string{"run", "!botcmd", "echo", "hello", "there"},
			want: "hello there\n",
		},
		{
			name: "bot keywords pass through",
			args: []string{"run", "!botcmd", "echo", "hi", "--loud"},
			want: "hi --loud\n",
		},
		{
			name: "dry run ban",
			args: []string{"run", "--sender", "@mod:localhost", "!botcmd ban --dry-run @spam:example.org spam"},
			want: "Would ban @spam:example.org from #moderators:localhost: spam\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			out, _, err := h.exec("", tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRun_NotACommand(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.exec("", "run", "hello")

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, usage.ErrNoCommand, usageErr.Kind)
}

func TestRun_RequiresMessage(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.exec("", "run")
	require.Error(t, err)
}

func TestRepl_KeepsState(t *testing.T) {
	h := newHarness(t)
	input := strings.Join([]string{
		"!botcmd ban @spam:example.org spam",
		"",
		"!botcmd unban @spam:example.org",
		"!botcmd unban @spam:example.org",
		"hello",
	}, "\n") + "\n"

	out, errOut, err := h.exec(input, "repl", "--sender", "@mod:localhost")
	require.NoError(t, err)

	require.Equal(t, "Banned @spam:example.org from #moderators:localhost: spam\nUnbanned @spam:example.org\n", out)
	require.Contains(t, errOut, "Failed to run 'botcmd unban'")
	require.Contains(t, errOut, "No command found in the message.")
}

func TestConfig_SetThenGet(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.exec("", "config", "set", "prefix", "draupnir")
	require.NoError(t, err)
	require.Equal(t, "set prefix=draupnir\n", out)

	out, _, err = h.exec("", "config", "get", "prefix")
	require.NoError(t, err)
	require.Equal(t, "draupnir\n", out)

	out, _, err = h.exec("", "run", "!draupnir echo renamed")
	require.NoError(t, err)
	require.Equal(t, "renamed\n", out)
}

func TestConfig_InvalidKey(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.exec("", "config", "get", "pager")

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, usage.ErrInvalidConfigKey, usageErr.Kind)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.exec("", "version")
	require.NoError(t, err)
	require.Equal(t, "botcmd version dev\n", out)
}

func TestTheme_Set(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.exec("", "theme", "set", "neon-dark")
	require.NoError(t, err)
	require.Contains(t, out, "theme set to neon-dark")

	out, _, err = h.exec("", "config", "get", "theme")
	require.NoError(t, err)
	require.Equal(t, "neon-dark\n", out)
}

func TestTheme_PickNeedsTerminal(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.exec("", "theme", "pick")
	require.Error(t, err)
	require.Contains(t, err.Error(), "interactive terminal")
}
