package cli

import (
	"sort"
	"sync"

	"maunium.net/go/mautrix/id"

	"github.com/footprint-tools/botcmd/internal/matrixid"
)

// Context is the application state the console adaptor hands to every
// command. It lives for one process; nothing is persisted.
type Context struct {
	Sender      id.UserID
	Rooms       *RoomSet
	Protections *ProtectionSet
	Bans        *BanList
}

// NewContext returns a Context with the demo rooms and protections. The
// bot starts out in the first known room.
func NewContext() *Context {
	known := knownRooms()
	rooms := NewRoomSet(known...)
	rooms.Join(known[0])
	return &Context{
		Rooms:       rooms,
		Protections: NewProtectionSet(knownProtections...),
		Bans:        &BanList{},
	}
}

// WithSender returns a shallow copy of c for a message from sender.
func (c *Context) WithSender(sender id.UserID) *Context {
	cp := *c
	cp.Sender = sender
	return &cp
}

func knownRooms() []matrixid.RoomReference {
	var rooms []matrixid.RoomReference
	for _, raw := range []string{"#moderators:localhost", "#general:localhost", "#offtopic:localhost"} {
		alias, err := matrixid.NewRoomAlias(raw)
		if err != nil {
			panic(err)
		}
		rooms = append(rooms, alias)
	}
	return rooms
}

var knownProtections = []string{"BasicFlooding", "FirstMessageIsImage", "MentionLimit", "WordList"}

// RoomSet tracks which known rooms the bot has joined.
type RoomSet struct {
	mu     sync.RWMutex
	known  []matrixid.RoomReference
	joined map[string]bool
}

func NewRoomSet(known ...matrixid.RoomReference) *RoomSet {
	return &RoomSet{known: known, joined: make(map[string]bool)}
}

// Join marks room as joined. It reports false when already joined.
func (s *RoomSet) Join(room matrixid.RoomReference) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joined[room.String()] {
		return false
	}
	if !s.isKnown(room) {
		s.known = append(s.known, room)
	}
	s.joined[room.String()] = true
	return true
}

func (s *RoomSet) isKnown(room matrixid.RoomReference) bool {
	for _, k := range s.known {
		if k.String() == room.String() {
			return true
		}
	}
	return false
}

// Joined returns the joined rooms in the order they became known.
func (s *RoomSet) Joined() []matrixid.RoomReference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []matrixid.RoomReference
	for _, k := range s.known {
		if s.joined[k.String()] {
			out = append(out, k)
		}
	}
	return out
}

// Unjoined returns known rooms the bot is not in.
func (s *RoomSet) Unjoined() []matrixid.RoomReference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []matrixid.RoomReference
	for _, k := range s.known {
		if !s.joined[k.String()] {
			out = append(out, k)
		}
	}
	return out
}

// ProtectionSet tracks which named protections are enabled.
type ProtectionSet struct {
	mu      sync.RWMutex
	enabled map[string]bool
}

func NewProtectionSet(names ...string) *ProtectionSet {
	enabled := make(map[string]bool, len(names))
	for _, name := range names {
		enabled[name] = false
	}
	return &ProtectionSet{enabled: enabled}
}

// Set changes the state of name. It reports false for an unknown protection.
func (s *ProtectionSet) Set(name string, enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.enabled[name]; !ok {
		return false
	}
	s.enabled[name] = enabled
	return true
}

// Names returns every protection with the given state, sorted.
func (s *ProtectionSet) Names(enabled bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for name, on := range s.enabled {
		if on == enabled {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Ban is one entry in a BanList.
type Ban struct {
	Entity string
	Reason string
	Room   string
	Sender id.UserID
}

// BanList records bans made during the session.
type BanList struct {
	mu   sync.Mutex
	bans []Ban
}

// Add records b, replacing any earlier ban of the same entity.
func (l *BanList) Add(b Ban) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.remove(b.Entity)
	l.bans = append(l.bans, b)
}

// Remove drops every ban of entity. It reports false when there was none.
func (l *BanList) Remove(entity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remove(entity)
}

func (l *BanList) remove(entity string) bool {
	kept := l.bans[:0]
	for _, b := range l.bans {
		if b.Entity != entity {
			kept = append(kept, b)
		}
	}
	removed := len(kept) != len(l.bans)
	l.bans = kept
	return removed
}

func (l *BanList) All() []Ban {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Ban(nil), l.bans...)
}

// BanContext is the capability the ban commands receive.
type BanContext struct {
	Sender id.UserID
	Bans   *BanList
	Rooms  []matrixid.RoomReference
}

// RoomsContext is the capability the room commands receive.
type RoomsContext struct {
	Rooms *RoomSet
}

// ProtectionsContext is the capability the protection commands receive.
type ProtectionsContext struct {
	Protections *ProtectionSet
}
