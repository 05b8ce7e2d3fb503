package presentation

import "github.com/footprint-tools/botcmd/internal/errors"

// Translator converts a presentation of one type into another type.
type Translator struct {
	From      *Type
	To        *Type
	Translate func(from Presentation) Presentation
}

type translatorKey struct {
	to, from TypeID
}

// Translators is a set of translators keyed by (to, from).
type Translators struct {
	entries map[translatorKey]Translator
}

// NewTranslators returns an empty set.
func NewTranslators() *Translators {
	return &Translators{entries: make(map[translatorKey]Translator)}
}

// Intern adds tr. A second translator for the same pair returns ErrDuplicateTranslator.
func (ts *Translators) Intern(tr Translator) error {
	key := translatorKey{to: tr.To.ID(), from: tr.From.ID()}
	if _, exists := ts.entries[key]; exists {
		return errors.Wrapf(errors.ErrDuplicateTranslator, "%s from %s", tr.To.Name(), tr.From.Name())
	}
	ts.entries[key] = tr
	return nil
}

// Find returns the translator producing to from from.
func (ts *Translators) Find(to, from *Type) (Translator, bool) {
	if ts == nil || to == nil || from == nil {
		return Translator{}, false
	}
	tr, ok := ts.entries[translatorKey{to: to.ID(), from: from.ID()}]
	return tr, ok
}

// Len returns the number of interned translators.
func (ts *Translators) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.entries)
}

// StringTranslators returns translators that turn every other standard
// type into a string, rendered with r.
func (s *Standard) StringTranslators(r *TextRenderer) []Translator {
	var out []Translator
	for _, from := range []*Type{s.Number, s.Boolean, s.RoomID, s.RoomAlias, s.UserID, s.EventReference} {
		out = append(out, Translator{
			From: from,
			To:   s.String,
			Translate: func(p Presentation) Presentation {
				return New(s.String, r.Render(p))
			},
		})
	}
	return out
}
