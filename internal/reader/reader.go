// Package reader turns a message body into a flat list of presentations.
//
// Each word is read according to its first character:
//
//	# !   room ID or alias, falling back to plain text
//	@     user ID, falling back to plain text
//	- :   keyword (--name, -n, :name), or a negative integer (-12)
//	"     quoted string, with \" as an escaped quote
//
// Words that were not typed by a read rule then pass through the post-read
// transforms: matrix.to permalinks, integers and booleans. Anything left over
// is a string. Quoted strings and keywords never reach the transforms.
package reader

import (
	"regexp"
	"strconv"

	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/matrixid"
	"github.com/footprint-tools/botcmd/internal/presentation"
)

// Reader tokenizes text into presentations of the standard types.
type Reader struct {
	types      *presentation.Standard
	transforms []transform
}

// item is either an already typed presentation or a raw word that still
// has to go through the post-read transforms.
type item struct {
	typed presentation.Presentation
	word  string
}

type transform struct {
	pattern *regexp.Regexp
	apply   func(word string) (presentation.Presentation, bool)
}

// New returns a Reader producing presentations of the given types.
func New(types *presentation.Standard) *Reader {
	r := &Reader{types: types}
	r.transforms = []transform{
		{regexp.MustCompile(`^https://matrix\.to`), r.fromPermalink},
		{regexp.MustCompile(`^-?[0-9]+$`), r.fromInteger},
		{regexp.MustCompile(`^(true|false)$`), r.fromBoolean},
	}
	return r
}

// Read tokenizes text. It never fails: malformed identifiers and unbalanced
// quotes degrade to plain strings.
func (r *Reader) Read(text string) []presentation.Presentation {
	s := newCharStream(text)
	var items []item

	s.skipSpace()
	for !s.eof() {
		items = append(items, r.readItem(s))
		s.skipSpace()
	}

	out := make([]presentation.Presentation, len(items))
	for i, it := range items {
		out[i] = r.finish(it)
	}
	return out
}

func (r *Reader) readItem(s *charStream) item {
	c, _ := s.peek()
	switch c {
	case '#', '!':
		return r.readRoomReference(s)
	case '@':
		return r.readUserID(s)
	case '-', ':':
		return r.readKeywordOrInteger(s)
	case '"':
		return r.readQuoted(s)
	default:
		return item{word: readWord(s)}
	}
}

func readWord(s *charStream) string {
	word := []rune{s.read()}
	return string(s.readUntil(isSpace, word))
}

// readSigilWord reads up to the authority separator. It returns ok=false
// with the consumed text when no ':' follows before whitespace or the end.
func readSigilWord(s *charStream) (string, bool) {
	word := s.readUntil(isSpaceOrColon, []rune{s.read()})
	if s.eof() || s.atSpace() {
		return string(word), false
	}
	return string(s.readUntil(isSpace, word)), true
}

func (r *Reader) readRoomReference(s *charStream) item {
	word, ok := readSigilWord(s)
	if !ok {
		return item{word: word}
	}

	switch {
	case matrixid.IsRoomID(word):
		room, _ := matrixid.NewRoomID(word)
		return item{typed: presentation.New(r.types.RoomID, room)}
	case matrixid.IsRoomAlias(word):
		alias, _ := matrixid.NewRoomAlias(word)
		return item{typed: presentation.New(r.types.RoomAlias, alias)}
	default:
		return item{word: word}
	}
}

func (r *Reader) readUserID(s *charStream) item {
	word, ok := readSigilWord(s)
	if !ok {
		return item{word: word}
	}
	userID, err := matrixid.ParseUserID(word)
	if err != nil {
		return item{word: word}
	}
	return item{typed: presentation.New(r.types.UserID, userID)}
}

func (r *Reader) readKeywordOrInteger(s *charStream) item {
	if n, ok := r.maybeReadNegativeInteger(s); ok {
		return item{typed: n}
	}
	return item{typed: r.readKeyword(s)}
}

// maybeReadNegativeInteger reads "-<digits>" when it makes up the whole word.
// The stream is left untouched otherwise.
func (r *Reader) maybeReadNegativeInteger(s *charStream) (presentation.Presentation, bool) {
	start := s.pos
	if c, _ := s.peek(); c != '-' {
		return presentation.Presentation{}, false
	}
	word := string(s.readUntil(isSpace, []rune{s.read()}))
	if p, ok := r.fromInteger(word); ok && len(word) > 1 {
		return p, true
	}
	s.pos = start
	return presentation.Presentation{}, false
}

func (r *Reader) readKeyword(s *charStream) presentation.Presentation {
	s.readUntil(func(c rune) bool { return c != '-' && c != ':' }, nil)
	if s.eof() || s.atSpace() {
		return presentation.New(r.types.Keyword, presentation.Keyword{})
	}
	name := s.readUntil(isSpace, nil)
	return presentation.New(r.types.Keyword, presentation.Keyword{Designator: string(name)})
}

func (r *Reader) readQuoted(s *charStream) item {
	start := s.pos
	if text, ok := readQuotedString(s); ok {
		return item{typed: presentation.New(r.types.String, text)}
	}
	s.pos = start
	return item{word: readWord(s)}
}

// readQuotedString consumes a "..." string. An escaped quote that ends the
// input also ends the string. A missing closing quote reports ok=false.
func readQuotedString(s *charStream) (string, bool) {
	s.read()
	var text []rune
	for {
		text = s.readUntil(func(c rune) bool { return c == '"' }, text)
		if s.eof() {
			return "", false
		}
		s.read()
		if n := len(text); n > 0 && text[n-1] == '\\' {
			text[n-1] = '"'
			if s.eof() {
				return string(text), true
			}
			continue
		}
		return string(text), true
	}
}

func (r *Reader) finish(it item) presentation.Presentation {
	if !it.typed.IsZero() {
		return it.typed
	}
	for _, t := range r.transforms {
		if !t.pattern.MatchString(it.word) {
			continue
		}
		if p, ok := t.apply(it.word); ok {
			return p
		}
	}
	return presentation.New(r.types.String, it.word)
}

func (r *Reader) fromPermalink(word string) (presentation.Presentation, bool) {
	decoded, err := matrixid.ParsePermalink(word)
	if err != nil {
		return presentation.Presentation{}, false
	}
	switch v := decoded.(type) {
	case matrixid.EventReference:
		return presentation.New(r.types.EventReference, v), true
	case id.UserID:
		return presentation.New(r.types.UserID, v), true
	case matrixid.RoomReference:
		return r.types.Room(v), true
	default:
		return presentation.Presentation{}, false
	}
}

func (r *Reader) fromInteger(word string) (presentation.Presentation, bool) {
	n, err := strconv.Atoi(word)
	if err != nil {
		return presentation.Presentation{}, false
	}
	return presentation.New(r.types.Number, n), true
}

func (r *Reader) fromBoolean(word string) (presentation.Presentation, bool) {
	return presentation.New(r.types.Boolean, word == "true"), true
}
