package presentation

import "strings"

// SchemaKind selects how a Schema matches presentations.
type SchemaKind int

const (
	SchemaTop SchemaKind = iota
	SchemaSingle
	SchemaUnion
)

// Schema is the acceptance rule a parameter places on presentations.
// The zero Schema is Top.
type Schema struct {
	kind  SchemaKind
	types []*Type
}

// Single accepts exactly one type.
func Single(t *Type) Schema {
	return Schema{kind: SchemaSingle, types: []*Type{t}}
}

// Union accepts any of the given types.
func Union(types ...*Type) Schema {
	return Schema{kind: SchemaUnion, types: types}
}

// Top accepts anything.
func Top() Schema {
	return Schema{kind: SchemaTop}
}

func (s Schema) Kind() SchemaKind { return s.kind }

// Types returns the variants of a Single or Union schema.
func (s Schema) Types() []*Type {
	return s.types
}

// Check reports whether p satisfies the schema.
func (s Schema) Check(p Presentation) bool {
	switch s.kind {
	case SchemaTop:
		return true
	case SchemaSingle, SchemaUnion:
		for _, t := range s.types {
			if t.Is(p.Type()) {
				return true
			}
		}
	}
	return false
}

// Describe renders the expectation for error messages.
func (s Schema) Describe() string {
	switch s.kind {
	case SchemaSingle, SchemaUnion:
		names := make([]string, len(s.types))
		for i, t := range s.types {
			names[i] = t.Name()
		}
		return strings.Join(names, " | ")
	default:
		return "any"
	}
}
