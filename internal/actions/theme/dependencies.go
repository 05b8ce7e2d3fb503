package theme

import (
	"fmt"
	"io"

	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	Set        func(string, string) error
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	Prompter   domain.Prompter
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

// DefaultDeps returns Deps backed by provider, writing to out. prompter
// may be nil when no terminal is attached.
func DefaultDeps(provider domain.ConfigProvider, prompter domain.Prompter, out io.Writer) Deps {
	return Deps{
		Get: provider.Get,
		Set: provider.Set,
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		Println: func(a ...any) (int, error) {
			return fmt.Fprintln(out, a...)
		},
		Prompter:   prompter,
		ThemeNames: style.ThemeNames, // All variants (dark/light) explicitly
		Themes:     style.Themes,
	}
}

func currentTheme(deps Deps) string {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	return style.ResolveThemeName(current)
}
