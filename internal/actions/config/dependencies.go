package config

import (
	"fmt"
	"io"

	"github.com/footprint-tools/botcmd/internal/domain"
)

type Deps struct {
	Get     func(string) (string, bool)
	GetAll  func() (map[string]string, error)
	Set     func(string, string) error
	Unset   func(string) error
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

// DefaultDeps returns Deps backed by provider and writing to out.
func DefaultDeps(provider domain.ConfigProvider, out io.Writer) Deps {
	return Deps{
		Get:    provider.Get,
		GetAll: provider.GetAll,
		Set:    provider.Set,
		Unset:  provider.Unset,
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		Println: func(a ...any) (int, error) {
			return fmt.Fprintln(out, a...)
		},
	}
}
