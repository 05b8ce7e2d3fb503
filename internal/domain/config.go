package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `botcmd config list`
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `botcmd config list`.
var ConfigKeys = []ConfigKey{
	// Commands
	{
		Name:        "prefix",
		Default:     "botcmd",
		Description: "First word of every command after normalisation",
		Section:     "Commands",
	},
	{
		Name:        "symbol_prefixes",
		Default:     "!",
		Description: "Comma separated symbols that introduce a command, e.g. !botcmd",
		Section:     "Commands",
	},
	{
		Name:        "additional_prefixes",
		Default:     "",
		Description: "Comma separated names accepted in place of the prefix",
		Section:     "Commands",
	},
	{
		Name:        "allow_only_symbol_prefixes",
		Default:     "false",
		Description: "Accept a bare symbol as the prefix, e.g. !ban (true/false)",
		Section:     "Commands",
	},
	{
		Name:        "display_name",
		Default:     "botcmd",
		Description: "Display name the bot can be addressed by",
		Section:     "Commands",
	},
	{
		Name:        "bot_user_id",
		Default:     "@botcmd:localhost",
		Description: "Matrix user ID of the bot, used for mentions",
		Section:     "Commands",
	},
	{
		Name:        "prompt",
		Default:     "true",
		Description: "Ask interactively for missing arguments (true/false)",
		Section:     "Commands",
	},
	// Display
	{
		Name:        "color",
		Default:     "true",
		Description: "Colorize output on a terminal (true/false)",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, neon, mono, contrast (append -dark or -light to pin a variant)",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "log_path",
		Default:     "", // Set dynamically to the user cache directory
		Description: "Path to the log file",
		Section:     "Logging",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Commands", "Display", "Logging"}
}

// ConfigKeysBySection returns config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		result[key.Section] = append(result[key.Section], key)
	}
	return result
}
