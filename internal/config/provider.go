package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/footprint-tools/botcmd/internal/domain"
	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/usage"
)

// Provider reads configuration from defaults, the TOML file at its path and
// BOTCMD_* environment variables, in increasing order of precedence.
// Set and Unset only ever write the file.
type Provider struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
}

// Load returns a Provider for the file at path, or DefaultPath when path is
// empty. A missing file is not an error.
func Load(path string) (*Provider, error) {
	if path == "" {
		path = DefaultPath()
	}
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return &Provider{v: v, path: path}, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for key, valueFn := range Defaults {
		v.SetDefault(key, valueFn())
	}

	if err := readFile(v, path); err != nil {
		return nil, err
	}
	return v, nil
}

// readFile loads path into v if it exists.
func readFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat config file %s", path)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}
	return nil
}

// Path returns the configuration file path.
func (p *Provider) Path() string {
	return p.path
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	if !domain.IsValidConfigKey(key) {
		return "", false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return stringValue(p.v.Get(key)), true
}

// GetBool returns a boolean key, false when unset or unparsable.
func (p *Provider) GetBool(key string) bool {
	value, _ := p.Get(key)
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// GetList returns a comma separated key as a list, skipping empty items.
func (p *Provider) GetList(key string) []string {
	value, _ := p.Get(key)
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetAll returns all config values (file and environment merged with defaults).
func (p *Provider) GetAll() (map[string]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[string]string, len(Defaults))
	for key := range Defaults {
		result[key] = stringValue(p.v.Get(key))
	}
	return result, nil
}

// Set writes key to the configuration file.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return p.rewrite(func(settings map[string]any) {
		settings[key] = value
	})
}

// Unset removes key from the configuration file.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return p.rewrite(func(settings map[string]any) {
		delete(settings, key)
	})
}

// rewrite applies edit to the settings stored in the file only, writes
// them back and reloads the provider.
func (p *Provider) rewrite(edit func(settings map[string]any)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	file := viper.New()
	file.SetConfigType("toml")
	if err := readFile(file, p.path); err != nil {
		return err
	}

	settings := file.AllSettings()
	edit(settings)

	out := viper.New()
	out.SetConfigType("toml")
	if err := out.MergeConfigMap(settings); err != nil {
		return errors.Wrap(err, "merge config")
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0700); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	if err := out.WriteConfigAs(p.path); err != nil {
		return errors.Wrapf(err, "write config file %s", p.path)
	}

	v, err := newViper(p.path)
	if err != nil {
		return err
	}
	p.v = v
	return nil
}

func stringValue(raw any) string {
	switch value := raw.(type) {
	case nil:
		return ""
	case string:
		return value
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(value)
	}
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
