package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string

	// Token kinds, painted by Token.
	String  string
	Number  string
	Boolean string
	Keyword string
	Room    string
	User    string
	Event   string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"neon",
	"mono",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"neon-dark", "neon-light",
	"mono-dark", "mono-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	// Classic dark - traditional bright terminal colors for dark backgrounds.
	// Uses the standard 16-color palette for maximum compatibility.
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		String:  "10",  // bright green
		Number:  "13",  // bright magenta
		Boolean: "12",  // bright blue
		Keyword: "14",  // bright cyan
		Room:    "11",  // bright yellow
		User:    "8",   // dark gray
		Event:   "15",  // white
	},

	// Classic light - dark saturated colors for light/white backgrounds.
	// Each color is dark enough to contrast with white text background.
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
		String:  "28",  // dark green
		Number:  "90",  // dark magenta
		Boolean: "27",  // dark blue
		Keyword: "30",  // dark cyan
		Room:    "130", // dark orange
		User:    "240", // dark gray
		Event:   "235", // near black
	},

	// Neon dark - vivid saturated colors, cyberpunk aesthetic.
	// High-contrast bright colors that pop on dark backgrounds.
	"neon-dark": {
		Success: "48",  // bright teal
		Warning: "220", // gold
		Error:   "197", // hot pink
		Info:    "51",  // electric cyan
		Muted:   "244", // gray
		Header:  "bold",
		String:  "46",  // neon green
		Number:  "201", // hot magenta
		Boolean: "39",  // deep sky blue
		Keyword: "51",  // cyan
		Room:    "226", // yellow
		User:    "242", // gray
		Event:   "231", // white
	},

	// Neon light - deep saturated colors for light backgrounds.
	// Rich jewel tones that remain vibrant but readable.
	"neon-light": {
		Success: "29",  // deep teal
		Warning: "166", // dark orange
		Error:   "161", // dark pink
		Info:    "32",  // deep blue
		Muted:   "245", // gray
		Header:  "bold",
		String:  "28",  // forest green
		Number:  "127", // dark magenta
		Boolean: "26",  // navy
		Keyword: "37",  // teal
		Room:    "166", // dark orange
		User:    "241", // gray
		Event:   "236", // dark gray
	},

	// Mono dark - minimalist grayscale with cyan accent.
	// Clean, distraction-free aesthetic.
	"mono-dark": {
		Success: "50",  // cyan (the one accent)
		Warning: "229", // pale yellow
		Error:   "210", // light red
		Info:    "50",  // cyan
		Muted:   "245", // gray
		Header:  "bold",
		String:  "50",  // cyan
		Number:  "251", // light gray
		Boolean: "248", // gray
		Keyword: "50",  // cyan
		Room:    "229", // pale yellow
		User:    "243", // dim gray
		Event:   "255", // white
	},

	// Mono light - minimalist grayscale with teal accent.
	// Clean, professional look for light backgrounds.
	"mono-light": {
		Success: "30",  // dark teal (the one accent)
		Warning: "136", // amber
		Error:   "124", // dark red
		Info:    "30",  // dark teal
		Muted:   "244", // gray
		Header:  "bold",
		String:  "30",  // teal
		Number:  "241", // dark gray
		Boolean: "244", // gray
		Keyword: "30",  // teal
		Room:    "136", // amber
		User:    "247", // light gray
		Event:   "235", // near black
	},

	// Contrast dark - maximum readability with pure primaries.
	// High contrast, accessibility-focused.
	"contrast-dark": {
		Success: "46",  // pure bright green
		Warning: "226", // pure bright yellow
		Error:   "196", // pure bright red
		Info:    "51",  // pure bright cyan
		Muted:   "250", // bright gray
		Header:  "bold",
		String:  "46",  // green
		Number:  "201", // magenta
		Boolean: "21",  // blue
		Keyword: "51",  // cyan
		Room:    "226", // yellow
		User:    "245", // gray
		Event:   "231", // white
	},

	// Contrast light - maximum readability for light backgrounds.
	// Pure dark primaries, very accessible.
	"contrast-light": {
		Success: "22",  // dark green
		Warning: "130", // dark orange (yellow hard to read on white)
		Error:   "124", // dark red
		Info:    "21",  // dark blue
		Muted:   "240", // dark gray
		Header:  "bold",
		String:  "22",  // dark green
		Number:  "90",  // dark magenta
		Boolean: "19",  // dark blue
		Keyword: "30",  // dark cyan
		Room:    "130", // dark orange
		User:    "243", // gray
		Event:   "232", // near black
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
	"color_string":  "String",
	"color_number":  "Number",
	"color_boolean": "Boolean",
	"color_keyword": "Keyword",
	"color_room":    "Room",
	"color_user":    "User",
	"color_event":   "Event",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	// If already has suffix, return as-is
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	// Auto-detect and append suffix
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (BOTCMD_COLOR_*)
// 2. Config file value
// 3. Theme value (from theme config)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	// Start with auto-detected default
	themeName := ResolveThemeName("default")

	// Check env for theme override
	if envTheme := os.Getenv("BOTCMD_COLOR_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	// Get base theme (fall back to default-dark if unknown)
	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	// Apply overrides from config and env
	result := theme

	for configKey, fieldName := range colorConfigKeys {
		// Check env first (highest priority)
		envKey := "BOTCMD_" + toUpperSnake(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		// Check config file
		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "String":
		c.String = value
	case "Number":
		c.Number = value
	case "Boolean":
		c.Boolean = value
	case "Keyword":
		c.Keyword = value
	case "Room":
		c.Room = value
	case "User":
		c.User = value
	case "Event":
		c.Event = value
	}
}

// toUpperSnake converts "color_success" to "COLOR_SUCCESS".
func toUpperSnake(s string) string {
	result := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			result[i] = c - 'a' + 'A'
		} else {
			result[i] = c
		}
	}
	return string(result)
}
