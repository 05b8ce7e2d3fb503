// Package matrixid decodes Matrix room, user and event references.
//
// It is a thin layer over maunium.net/go/mautrix/id that adds the "via"
// servers a room reference may carry and the validation rules the tokenizer
// relies on to decide whether a word is an identifier or plain text.
package matrixid

import (
	"strings"

	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/errors"
)

var (
	// ErrInvalidRoomReference is returned for text that is neither a room ID nor an alias.
	ErrInvalidRoomReference = errors.New("invalid room reference")

	// ErrInvalidUserID is returned for text that is not a well formed user ID.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidPermalink is returned for URLs that are not usable matrix.to links.
	ErrInvalidPermalink = errors.New("invalid permalink")
)

// Sigils of the identifiers in a matrix URI.
const (
	sigilRoomID    = '!'
	sigilRoomAlias = '#'
	sigilEvent     = '$'
	sigilUser      = '@'
)

// RoomReference is either a RoomID or a RoomAlias.
type RoomReference interface {
	String() string
	Via() []string
	Permalink() string
}

// RoomID is an opaque room identifier, e.g. !abc:example.com.
type RoomID struct {
	id  id.RoomID
	via []string
}

// RoomAlias is a human readable room address, e.g. #lobby:example.com.
type RoomAlias struct {
	alias id.RoomAlias
	via   []string
}

// EventReference points at a single event inside a room.
type EventReference struct {
	Room    RoomReference
	EventID id.EventID
}

// NewRoomID validates raw and returns a RoomID.
func NewRoomID(raw string, via ...string) (RoomID, error) {
	if !IsRoomID(raw) {
		return RoomID{}, errors.Wrapf(ErrInvalidRoomReference, "%q", raw)
	}
	return RoomID{id: id.RoomID(raw), via: via}, nil
}

// NewRoomAlias validates raw and returns a RoomAlias.
func NewRoomAlias(raw string, via ...string) (RoomAlias, error) {
	if !IsRoomAlias(raw) {
		return RoomAlias{}, errors.Wrapf(ErrInvalidRoomReference, "%q", raw)
	}
	return RoomAlias{alias: id.RoomAlias(raw), via: via}, nil
}

func (r RoomID) ID() id.RoomID { return r.id }
func (r RoomID) String() string { return string(r.id) }
func (r RoomID) Via() []string  { return r.via }

func (r RoomAlias) Alias() id.RoomAlias { return r.alias }
func (r RoomAlias) String() string      { return string(r.alias) }
func (r RoomAlias) Via() []string       { return r.via }

// Permalink returns the matrix.to URL for the room.
func (r RoomID) Permalink() string {
	uri := id.MatrixURI{Sigil1: sigilRoomID, MXID1: strings.TrimPrefix(string(r.id), "!"), Via: r.via}
	return uri.MatrixToURL()
}

// Permalink returns the matrix.to URL for the alias.
func (r RoomAlias) Permalink() string {
	uri := id.MatrixURI{Sigil1: sigilRoomAlias, MXID1: strings.TrimPrefix(string(r.alias), "#"), Via: r.via}
	return uri.MatrixToURL()
}

// Permalink returns the matrix.to URL for the event.
func (e EventReference) Permalink() string {
	uri := id.MatrixURI{
		Sigil1: roomSigil(e.Room),
		MXID1:  strings.TrimLeft(e.Room.String(), "!#"),
		Sigil2: sigilEvent,
		MXID2:  strings.TrimPrefix(string(e.EventID), "$"),
		Via:    e.Room.Via(),
	}
	return uri.MatrixToURL()
}

func (e EventReference) String() string {
	return e.Permalink()
}

func roomSigil(ref RoomReference) rune {
	if _, ok := ref.(RoomAlias); ok {
		return sigilRoomAlias
	}
	return sigilRoomID
}

// IsRoomID reports whether s looks like !opaque:server.
func IsRoomID(s string) bool {
	return hasSigilAndServer(s, sigilRoomID)
}

// IsRoomAlias reports whether s looks like #local:server.
func IsRoomAlias(s string) bool {
	return hasSigilAndServer(s, sigilRoomAlias)
}

// IsUserID reports whether s looks like @local:server.
func IsUserID(s string) bool {
	_, err := ParseUserID(s)
	return err == nil
}

func hasSigilAndServer(s string, sigil rune) bool {
	if len(s) < 4 || rune(s[0]) != sigil || strings.ContainsAny(s, " \t\r\n\f\v") {
		return false
	}
	local, server, found := strings.Cut(s[1:], ":")
	return found && local != "" && server != ""
}

// ParseRoomReference decodes a room ID or alias.
func ParseRoomReference(s string) (RoomReference, error) {
	switch {
	case IsRoomID(s):
		return RoomID{id: id.RoomID(s)}, nil
	case IsRoomAlias(s):
		return RoomAlias{alias: id.RoomAlias(s)}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidRoomReference, "%q", s)
	}
}

// ParseUserID decodes a user ID such as @alice:example.com.
func ParseUserID(s string) (id.UserID, error) {
	if strings.ContainsAny(s, " \t\r\n\f\v") {
		return "", errors.Wrapf(ErrInvalidUserID, "%q", s)
	}
	userID := id.UserID(s)
	localpart, homeserver, err := userID.Parse()
	if err != nil || localpart == "" || homeserver == "" {
		return "", errors.Wrapf(ErrInvalidUserID, "%q", s)
	}
	return userID, nil
}

// ParsePermalink decodes a matrix.to URL into a RoomID, RoomAlias,
// id.UserID or EventReference.
func ParsePermalink(link string) (any, error) {
	uri, err := id.ParseMatrixURIOrMatrixToURL(link)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPermalink, "%q: %v", link, err)
	}

	switch uri.Sigil1 {
	case sigilUser:
		return ParseUserID(string(uri.UserID()))
	case sigilRoomID, sigilRoomAlias:
		room, err := roomFromURI(uri)
		if err != nil {
			return nil, err
		}
		if uri.Sigil2 == sigilEvent && uri.MXID2 != "" {
			return EventReference{Room: room, EventID: uri.EventID()}, nil
		}
		return room, nil
	default:
		return nil, errors.Wrapf(ErrInvalidPermalink, "%q", link)
	}
}

func roomFromURI(uri *id.MatrixURI) (RoomReference, error) {
	if uri.Sigil1 == sigilRoomAlias {
		return NewRoomAlias(string(uri.RoomAlias()), uri.Via...)
	}
	return NewRoomID(string(uri.RoomID()), uri.Via...)
}
