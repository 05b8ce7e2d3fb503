package presentation

import (
	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/matrixid"
)

// Standard holds the types produced by the text tokenizer.
type Standard struct {
	String         *Type
	Number         *Type
	Boolean        *Type
	Keyword        *Type
	RoomID         *Type
	RoomAlias      *Type
	UserID         *Type
	EventReference *Type
}

// RegisterStandard registers the text types in r.
func RegisterStandard(r *Registry) (*Standard, error) {
	defs := []struct {
		name      string
		validator Validator
	}{
		{"string", func(v any) bool { _, ok := v.(string); return ok }},
		{"number", func(v any) bool { _, ok := v.(int); return ok }},
		{"boolean", func(v any) bool { _, ok := v.(bool); return ok }},
		{"Keyword", func(v any) bool { _, ok := v.(Keyword); return ok }},
		{"MatrixRoomID", func(v any) bool { _, ok := v.(matrixid.RoomID); return ok }},
		{"MatrixRoomAlias", func(v any) bool { _, ok := v.(matrixid.RoomAlias); return ok }},
		{"MatrixUserID", func(v any) bool { _, ok := v.(id.UserID); return ok }},
		{"MatrixEventReference", func(v any) bool { _, ok := v.(matrixid.EventReference); return ok }},
	}

	s := &Standard{}
	targets := []**Type{&s.String, &s.Number, &s.Boolean, &s.Keyword, &s.RoomID, &s.RoomAlias, &s.UserID, &s.EventReference}
	for i, def := range defs {
		t, err := r.Register(def.name, def.validator)
		if err != nil {
			return nil, err
		}
		*targets[i] = t
	}
	return s, nil
}

// MustRegisterStandard is like RegisterStandard but panics on error.
func MustRegisterStandard(r *Registry) *Standard {
	s, err := RegisterStandard(r)
	if err != nil {
		panic(err)
	}
	return s
}

// RoomReference accepts either a room ID or a room alias.
func (s *Standard) RoomReference() Schema {
	return Union(s.RoomID, s.RoomAlias)
}

// Room wraps a decoded room reference with the matching type.
func (s *Standard) Room(ref matrixid.RoomReference) Presentation {
	if alias, ok := ref.(matrixid.RoomAlias); ok {
		return New(s.RoomAlias, alias)
	}
	return New(s.RoomID, ref)
}
