package reader

import "unicode"

// charStream is a rune cursor over the message body.
type charStream struct {
	runes []rune
	pos   int
}

func newCharStream(text string) *charStream {
	return &charStream{runes: []rune(text)}
}

// peek returns the next rune without consuming it.
func (s *charStream) peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

func (s *charStream) read() rune {
	r := s.runes[s.pos]
	s.pos++
	return r
}

func (s *charStream) eof() bool {
	return s.pos >= len(s.runes)
}

// atSpace reports whether the next rune is whitespace.
func (s *charStream) atSpace() bool {
	r, ok := s.peek()
	return ok && unicode.IsSpace(r)
}

// readUntil consumes runes into out until stop matches the next rune or input ends.
func (s *charStream) readUntil(stop func(rune) bool, out []rune) []rune {
	for {
		r, ok := s.peek()
		if !ok || stop(r) {
			return out
		}
		out = append(out, s.read())
	}
}

func (s *charStream) skipSpace() {
	s.readUntil(func(r rune) bool { return !unicode.IsSpace(r) }, nil)
}

func isSpace(r rune) bool { return unicode.IsSpace(r) }

func isSpaceOrColon(r rune) bool { return r == ':' || unicode.IsSpace(r) }
