package actions

import (
	"fmt"
	"io"

	"github.com/footprint-tools/botcmd/internal/app"
)

type actionDependencies struct {
	Printf  func(format string, a ...any) (n int, err error)
	Version func() string
}

func defaultDeps(out io.Writer) actionDependencies {
	return actionDependencies{
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		Version: func() string { return app.Version },
	}
}
