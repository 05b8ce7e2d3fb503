package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/botcmd/internal/errors"
	"github.com/footprint-tools/botcmd/internal/matrixid"
)

// RenderFunc turns a presentation back into text.
type RenderFunc func(p Presentation) string

// TextRenderer renders presentations as the text a user would type.
type TextRenderer struct {
	renderers map[TypeID]RenderFunc
}

// NewTextRenderer returns a renderer with no registered types.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{renderers: make(map[TypeID]RenderFunc)}
}

// Register installs fn for t. A type can only have one renderer.
func (r *TextRenderer) Register(t *Type, fn RenderFunc) error {
	if _, exists := r.renderers[t.ID()]; exists {
		return errors.Newf("text renderer already registered for %s", t.Name())
	}
	r.renderers[t.ID()] = fn
	return nil
}

// Has reports whether t has a renderer.
func (r *TextRenderer) Has(t *Type) bool {
	_, ok := r.renderers[t.ID()]
	return ok
}

// Render renders p. Types without a renderer fall back to fmt formatting.
func (r *TextRenderer) Render(p Presentation) string {
	if p.IsZero() {
		return ""
	}
	if r == nil {
		return fmt.Sprint(p.Object())
	}
	if fn, ok := r.renderers[p.Type().ID()]; ok {
		return fn(p)
	}
	return fmt.Sprint(p.Object())
}

// RenderAll renders ps separated by single spaces.
func (r *TextRenderer) RenderAll(ps []Presentation) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = r.Render(p)
	}
	return strings.Join(parts, " ")
}

// TextRenderer returns a renderer for every standard type.
func (s *Standard) TextRenderer() *TextRenderer {
	r := NewTextRenderer()
	toString := func(p Presentation) string { return fmt.Sprint(p.Object()) }

	_ = r.Register(s.String, func(p Presentation) string { return p.Object().(string) })
	_ = r.Register(s.Number, func(p Presentation) string { return strconv.Itoa(p.Object().(int)) })
	_ = r.Register(s.Boolean, func(p Presentation) string { return strconv.FormatBool(p.Object().(bool)) })
	_ = r.Register(s.Keyword, func(p Presentation) string { return p.Object().(Keyword).String() })
	_ = r.Register(s.RoomID, toString)
	_ = r.Register(s.RoomAlias, toString)
	_ = r.Register(s.UserID, toString)
	_ = r.Register(s.EventReference, func(p Presentation) string {
		return p.Object().(matrixid.EventReference).Permalink()
	})
	return r
}
