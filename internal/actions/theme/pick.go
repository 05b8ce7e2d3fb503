package theme

import (
	"context"

	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

// Pick lets the user choose a theme from a list, starting at the current one.
func Pick(ctx context.Context, _ []string, deps Deps) error {
	if deps.Prompter == nil {
		return errors.New("theme picker requires an interactive terminal")
	}

	current := currentTheme(deps)

	choices := make([]domain.Choice, len(deps.ThemeNames))
	cursor := -1
	for i, name := range deps.ThemeNames {
		choices[i] = domain.Choice{Label: name, Description: renderColorPreview(deps.Themes[name])}
		if name == current {
			cursor = i
		}
	}

	index, ok, err := deps.Prompter.Choose(ctx, "Choose a theme", choices, cursor)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	chosen := deps.ThemeNames[index]
	if chosen == current {
		_, _ = deps.Printf("Theme %s is already active\n", style.Info(chosen))
		return nil
	}
	if err := deps.Set("theme", chosen); err != nil {
		return err
	}
	_, _ = deps.Printf("Theme set to %s\n", style.Success(chosen))
	return nil
}
