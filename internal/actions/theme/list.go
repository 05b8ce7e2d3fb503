package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/botcmd/internal/ui/style"
)

func List(_ []string, deps Deps) error {
	current := currentTheme(deps)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		theme := deps.Themes[name]
		preview := renderColorPreview(theme)

		_, _ = deps.Printf("%s%-14s  %s\n", marker, name, preview)
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'botcmd theme set <name>' or 'botcmd theme pick' to change")

	return nil
}

// renderColorPreview returns colored samples of the token kinds a theme paints.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("string ", cfg.String) +
		colorize("number ", cfg.Number) +
		colorize("boolean ", cfg.Boolean) +
		colorize("--keyword ", cfg.Keyword) +
		colorize("!room ", cfg.Room) +
		colorize("@user ", cfg.User) +
		colorize("event", cfg.Event)
}
