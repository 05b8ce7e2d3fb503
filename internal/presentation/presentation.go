package presentation

import "fmt"

// Presentation is an immutable (object, type) pair.
type Presentation struct {
	object any
	typ    *Type
}

// New wraps object as a presentation of t. It panics if object does not
// satisfy the type's validator, since that can only be a programming error.
func New(t *Type, object any) Presentation {
	if !t.Validate(object) {
		panic(fmt.Sprintf("presentation: %T is not a valid %s", object, t.Name()))
	}
	return Presentation{object: object, typ: t}
}

// Wrap is like New but reports validation failure instead of panicking.
func Wrap(t *Type, object any) (Presentation, bool) {
	if !t.Validate(object) {
		return Presentation{}, false
	}
	return Presentation{object: object, typ: t}, true
}

func (p Presentation) Object() any { return p.object }
func (p Presentation) Type() *Type { return p.typ }

// IsZero reports whether p was never initialised.
func (p Presentation) IsZero() bool {
	return p.typ == nil
}

// Objects extracts the object of every presentation.
func Objects(ps []Presentation) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = p.object
	}
	return out
}
