package command

import "github.com/footprint-tools/botcmd/internal/presentation"

// Stream is a cursor over tokenized presentations. A Stream belongs to a
// single dispatch and must not be shared between goroutines.
type Stream struct {
	source []presentation.Presentation
	pos    int
}

// NewStream returns a stream positioned at the first presentation.
func NewStream(source []presentation.Presentation) *Stream {
	return &Stream{source: source}
}

// Peek returns the next presentation without consuming it.
func (s *Stream) Peek() (presentation.Presentation, bool) {
	if s.pos >= len(s.source) {
		return presentation.Presentation{}, false
	}
	return s.source[s.pos], true
}

// Read consumes and returns the next presentation.
func (s *Stream) Read() (presentation.Presentation, bool) {
	p, ok := s.Peek()
	if ok {
		s.pos++
	}
	return p, ok
}

func (s *Stream) Position() int { return s.pos }

// SetPosition moves the cursor. Positions outside the source panic.
func (s *Stream) SetPosition(pos int) {
	if pos < 0 || pos > len(s.source) {
		panic("command: stream position out of range")
	}
	s.pos = pos
}

// Source returns every presentation, read or not.
func (s *Stream) Source() []presentation.Presentation {
	return s.source
}

// Append adds presentations to the end of the stream, used after a prompt.
func (s *Stream) Append(ps ...presentation.Presentation) {
	s.source = append(s.source[:len(s.source):len(s.source)], ps...)
}

// SavingPositionIf runs body and rewinds the stream when rewind reports
// true for its result.
func SavingPositionIf[T any](s *Stream, body func(*Stream) T, rewind func(T) bool) T {
	start := s.pos
	result := body(s)
	if rewind(result) {
		s.pos = start
	}
	return result
}
