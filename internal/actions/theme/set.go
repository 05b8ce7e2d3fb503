package theme

import (
	"fmt"

	"github.com/footprint-tools/botcmd/internal/ui/style"
	"github.com/footprint-tools/botcmd/internal/usage"
)

func Set(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme")
	}

	themeName := args[0]

	// Validate theme exists
	if _, ok := deps.Themes[themeName]; !ok {
		_, _ = deps.Printf("%s unknown theme: %s\n", style.Error("error:"), themeName)
		_, _ = deps.Println("")
		_, _ = deps.Println("available themes:")
		for _, name := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		return fmt.Errorf("unknown theme: %s", themeName)
	}

	if err := deps.Set("theme", themeName); err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))

	return nil
}
