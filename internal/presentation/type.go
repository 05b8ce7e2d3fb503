// Package presentation is the runtime type system shared by the tokenizer,
// the command table and the argument binder.
//
// A Presentation pairs a decoded value with the registered Type it was read
// as. Types are compared by their numeric ID, never by name or by shape, so
// two domains can register look-alike types without cross-matching.
package presentation

import (
	"sync"
	"sync/atomic"

	"github.com/footprint-tools/botcmd/internal/errors"
)

// TypeID is the stable discriminant of a registered Type. IDs are unique
// across every Registry in the process.
type TypeID uint32

var lastTypeID atomic.Uint32

// Validator reports whether a value may be wrapped by a Type.
type Validator func(object any) bool

// Type is a named, registered presentation type.
type Type struct {
	id        TypeID
	name      string
	validator Validator
}

func (t *Type) ID() TypeID     { return t.id }
func (t *Type) Name() string   { return t.name }
func (t *Type) String() string { return t.name }

// Validate runs the type's validator against object.
func (t *Type) Validate(object any) bool {
	if t.validator == nil {
		return true
	}
	return t.validator(object)
}

// Is reports whether t and other are the same registered type.
func (t *Type) Is(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	return t.id == other.id
}

// Registry owns a set of presentation types keyed by name.
// Registration happens at startup; lookups are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register adds a new type. Registering a name twice returns ErrDuplicateType.
func (r *Registry) Register(name string, validator Validator) (*Type, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return nil, errors.Wrapf(errors.ErrDuplicateType, "%q", name)
	}

	t := &Type{
		id:        TypeID(lastTypeID.Add(1)),
		name:      name,
		validator: validator,
	}
	r.types[name] = t
	return t, nil
}

// MustRegister is like Register but panics on a duplicate name.
func (r *Registry) MustRegister(name string, validator Validator) *Type {
	t, err := r.Register(name, validator)
	if err != nil {
		panic(err)
	}
	return t
}

