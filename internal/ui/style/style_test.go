package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("BOTCMD_NO_COLOR", "")
	t.Setenv("BOTCMD_COLOR_THEME", "")
	t.Cleanup(func() { Init(false, nil) })
}

var semantic = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, "test message", tt.fn("test message"))
		})
	}
	require.Equal(t, "--dry-run", Token("Keyword", "--dry-run"))
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	Init(true, map[string]string{"theme": "default-dark"})

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.fn("test message")
			require.Contains(t, out, "test message")
			require.Contains(t, out, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "BOTCMD_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(env, "1")

			Init(true, nil)
			require.Equal(t, "test", Success("test"))
			require.Equal(t, "12", Token("number", "12"))
		})
	}
}

func TestToken(t *testing.T) {
	clearColorEnv(t)
	Init(true, map[string]string{"theme": "default-dark"})

	tests := []struct {
		kind  string
		color string
	}{
		{"string", "\x1b[92m"},
		{"number", "\x1b[95m"},
		{"boolean", "\x1b[94m"},
		{"Keyword", "\x1b[96m"},
		{"MatrixRoomID", "\x1b[93m"},
		{"MatrixRoomAlias", "\x1b[93m"},
		{"MatrixUserID", "\x1b[90m"},
		{"MatrixEventReference", "\x1b[97m"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out := Token(tt.kind, "x")
			require.Contains(t, out, tt.color)
			require.Contains(t, out, "x")
		})
	}

	require.Equal(t, "x", Token("unregistered", "x"))
}

func TestToken_EnvOverride(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("BOTCMD_COLOR_KEYWORD", "196")

	Init(true, map[string]string{"theme": "default-dark"})
	require.Contains(t, Token("Keyword", "--room"), "38;5;196m")
	require.Contains(t, Token("string", "x"), "\x1b[92m")
}

func TestLoadColorConfig(t *testing.T) {
	clearColorEnv(t)

	require.Equal(t, Themes["neon-light"], LoadColorConfig(map[string]string{"theme": "neon-light"}))
	require.Equal(t, Themes["default-dark"], LoadColorConfig(map[string]string{"theme": "plaid-dark"}))

	t.Setenv("BOTCMD_COLOR_THEME", "mono-dark")
	require.Equal(t, Themes["mono-dark"], LoadColorConfig(map[string]string{"theme": "neon-light"}))
}
