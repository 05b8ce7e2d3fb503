package config

import (
	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/ui/style"
)

// List prints every key grouped by section, in declaration order.
func List(_ []string, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	for i, section := range domain.ConfigSections() {
		if i > 0 {
			_, _ = deps.Println()
		}
		_, _ = deps.Println(style.Header(section))
		for _, key := range bySection[section] {
			if value, exists := configMap[key.Name]; exists {
				_, _ = deps.Printf("%s=%s\n", key.Name, value)
			}
		}
	}

	return nil
}
