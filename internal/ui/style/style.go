// Package style provides semantic terminal styling using lipgloss.
//
// Helpers are named for what the text is (Success, Warning, a keyword
// token) rather than how it looks. When disabled, every helper returns its
// input unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style

	// tokenStyles is keyed by presentation type name.
	tokenStyles map[string]lipgloss.Style
)

// Init turns styling on or off and loads colors from cfg (nil for the
// theme defaults). NO_COLOR or BOTCMD_NO_COLOR, set to anything, always
// wins over enable.
//
// Call it before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("BOTCMD_NO_COLOR") != "" {
		enable = false
	}
	enabled = enable
	if enabled {
		initStyles(LoadColorConfig(cfg))
	}
}

func initStyles(colors ColorConfig) {
	// ANSI256 regardless of TTY detection: themes use 0-255.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)

	tokenStyles = map[string]lipgloss.Style{
		"string":               makeStyle(colors.String),
		"number":               makeStyle(colors.Number),
		"boolean":              makeStyle(colors.Boolean),
		"Keyword":              makeStyle(colors.Keyword),
		"MatrixRoomID":         makeStyle(colors.Room),
		"MatrixRoomAlias":      makeStyle(colors.Room),
		"MatrixUserID":         makeStyle(colors.User),
		"MatrixEventReference": makeStyle(colors.Event),
	}
}

// makeStyle turns "bold" or an ANSI color number into a style.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

func Success(text string) string { return render(successStyle, text) }
func Warning(text string) string { return render(warningStyle, text) }
func Error(text string) string   { return render(errorStyle, text) }
func Info(text string) string    { return render(infoStyle, text) }
func Header(text string) string  { return render(headerStyle, text) }

// Muted is for secondary information.
func Muted(text string) string { return render(mutedStyle, text) }

// Token colors text by the kind of token it was read as. Kinds are the
// names of the standard presentation types; unknown kinds are unstyled.
func Token(kind, text string) string {
	s, ok := tokenStyles[kind]
	if !ok {
		return text
	}
	return render(s, text)
}
