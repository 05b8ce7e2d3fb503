package command

import (
	"fmt"
	"sort"
)

// ParsedKeywords provides typed access to the keywords bound for a command.
// Flags are stored as true; other keywords store the bound object.
type ParsedKeywords struct {
	declared Keywords
	values   map[string]any
}

// NewParsedKeywords creates ParsedKeywords from bound values.
func NewParsedKeywords(declared Keywords, values map[string]any) *ParsedKeywords {
	if values == nil {
		values = map[string]any{}
	}
	return &ParsedKeywords{declared: declared, values: values}
}

// Value returns the value bound to name, or defaultVal if it was not given.
// Asking for a keyword the command never declared is a programming error
// and panics, unless the command accepts other keys.
func (k *ParsedKeywords) Value(name string, defaultVal any) any {
	if _, ok := k.declared.Lookup(name); !ok && !k.declared.AllowOtherKeys {
		panic(fmt.Sprintf("command: %q is not a keyword that has been described for this command", name))
	}
	if v, ok := k.values[name]; ok {
		return v
	}
	return defaultVal
}

// Has returns true if the keyword was given.
func (k *ParsedKeywords) Has(name string) bool {
	return k.Value(name, nil) != nil
}

// Flag returns true if the flag was given.
func (k *ParsedKeywords) Flag(name string) bool {
	v, _ := k.Value(name, false).(bool)
	return v
}

// String returns a string keyword value, or defaultVal if absent or not a string.
func (k *ParsedKeywords) String(name, defaultVal string) string {
	if s, ok := k.Value(name, defaultVal).(string); ok {
		return s
	}
	return defaultVal
}

// Int returns an integer keyword value, or defaultVal if absent or not a number.
func (k *ParsedKeywords) Int(name string, defaultVal int) int {
	if n, ok := k.Value(name, defaultVal).(int); ok {
		return n
	}
	return defaultVal
}

// Names returns the keywords that were given, sorted.
func (k *ParsedKeywords) Names() []string {
	names := make([]string, 0, len(k.values))
	for name := range k.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
