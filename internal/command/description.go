package command

import (
	"context"
	"sort"
	"strings"

	"github.com/footprint-tools/botcmd/internal/presentation"
)

// Executor runs a bound command. args are the positional values in
// declaration order; rest holds the values bound to the rest parameter.
type Executor func(ctx context.Context, commandContext any, info any, keywords *ParsedKeywords, rest []any, args ...any) (any, error)

// PromptFunc supplies choices for a parameter that is missing a value.
type PromptFunc func(ctx context.Context, commandContext any) (PromptOptions, error)

// PromptOptions are offered to the user when a prompt is required.
type PromptOptions struct {
	Suggestions []presentation.Presentation
	Default     *presentation.Presentation
}

// Parameter describes a positional or rest parameter.
type Parameter struct {
	Name        string
	Description string
	Acceptor    presentation.Schema
	Prompt      PromptFunc
}

// KeywordParameter describes a --name option. Flags take no value and bind true.
type KeywordParameter struct {
	Name        string
	Description string
	Acceptor    presentation.Schema
	IsFlag      bool
}

// Keywords describes the options a command accepts.
type Keywords struct {
	Descriptions   map[string]KeywordParameter
	AllowOtherKeys bool
}

// Lookup returns the keyword described under name.
func (k Keywords) Lookup(name string) (KeywordParameter, bool) {
	kp, ok := k.Descriptions[name]
	return kp, ok
}

// Parameters is the full parameter list of a command.
type Parameters struct {
	Positional []Parameter
	Rest       *Parameter
	Keywords   Keywords
}

// Spec is the input to Describe.
type Spec struct {
	Summary     string
	Description string
	Category    Category
	Parameters  []Parameter
	Rest        *Parameter
	Keywords    Keywords
	Executor    Executor
}

// Description is an immutable registered command.
type Description struct {
	Summary     string
	Description string
	Category    Category
	Parameters  Parameters
	Executor    Executor
}

// Describe builds a Description from spec. The map key of a keyword is the
// designator it is typed and looked up by, and becomes its Name.
func Describe(spec Spec) *Description {
	keywords := make(map[string]KeywordParameter, len(spec.Keywords.Descriptions))
	for designator, kp := range spec.Keywords.Descriptions {
		kp.Name = designator
		keywords[designator] = kp
	}

	positional := make([]Parameter, len(spec.Parameters))
	copy(positional, spec.Parameters)

	var rest *Parameter
	if spec.Rest != nil {
		r := *spec.Rest
		rest = &r
	}

	return &Description{
		Summary:     spec.Summary,
		Description: spec.Description,
		Category:    spec.Category,
		Executor:    spec.Executor,
		Parameters: Parameters{
			Positional: positional,
			Rest:       rest,
			Keywords: Keywords{
				Descriptions:   keywords,
				AllowOtherKeys: spec.Keywords.AllowOtherKeys,
			},
		},
	}
}

// Usage renders a synopsis such as "ban <entity> [reason...] [--dry-run]".
func (d *Description) Usage(designator []string) string {
	parts := append([]string{}, designator...)

	for _, p := range d.Parameters.Positional {
		parts = append(parts, "<"+p.Name+">")
	}
	if r := d.Parameters.Rest; r != nil {
		parts = append(parts, "["+r.Name+"...]")
	}

	names := make([]string, 0, len(d.Parameters.Keywords.Descriptions))
	for name := range d.Parameters.Keywords.Descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kp := d.Parameters.Keywords.Descriptions[name]
		if kp.IsFlag {
			parts = append(parts, "[--"+name+"]")
		} else {
			parts = append(parts, "[--"+name+" <"+kp.Acceptor.Describe()+">]")
		}
	}

	return strings.Join(parts, " ")
}
