package layout

import (
	"fmt"
	"sort"
)

// Snapshot is one immutable rooms+doors capture from the generator.
// Rooms and Doors are sorted by ascending ID so every pass over the
// snapshot is deterministic. Diagnostics records rows that were
// dropped at load time (malformed fields, dangling room references).
type Snapshot struct {
	Rooms       []Room
	Doors       []Door
	Diagnostics []string

	roomsByID map[int]Room
}

// NewSnapshot assembles a snapshot from loaded rows. Doors referencing
// rooms that are not present are dropped and recorded as diagnostics;
// everything else is kept as-is.
func NewSnapshot(rooms []Room, doors []Door, diagnostics []string) *Snapshot {
	s := &Snapshot{
		Rooms:       append([]Room(nil), rooms...),
		Diagnostics: append([]string(nil), diagnostics...),
		roomsByID:   make(map[int]Room, len(rooms)),
	}
	sort.Slice(s.Rooms, func(i, j int) bool { return s.Rooms[i].ID < s.Rooms[j].ID })
	for _, r := range s.Rooms {
		s.roomsByID[r.ID] = r
	}

	kept := make([]Door, 0, len(doors))
	for _, d := range doors {
		if _, ok := s.roomsByID[d.RoomA]; !ok {
			s.Diagnostics = append(s.Diagnostics, fmt.Sprintf("door %d: room_a=%d not found", d.ID, d.RoomA))
			continue
		}
		if _, ok := s.roomsByID[d.RoomB]; !ok {
			s.Diagnostics = append(s.Diagnostics, fmt.Sprintf("door %d: room_b=%d not found", d.ID, d.RoomB))
			continue
		}
		kept = append(kept, d)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].ID < kept[j].ID })
	s.Doors = kept
	return s
}

// Room looks a room up by ID.
func (s *Snapshot) Room(id int) (Room, bool) {
	r, ok := s.roomsByID[id]
	return r, ok
}

// Decks returns every deck that has at least one room, ascending.
func (s *Snapshot) Decks() []int {
	seen := make(map[int]bool)
	var decks []int
	for _, r := range s.Rooms {
		if !seen[r.Deck] {
			seen[r.Deck] = true
			decks = append(decks, r.Deck)
		}
	}
	sort.Ints(decks)
	return decks
}

// RoomsOnDeck returns the rooms of one deck in ascending ID order.
func (s *Snapshot) RoomsOnDeck(deck int) []Room {
	var out []Room
	for _, r := range s.Rooms {
		if r.Deck == deck {
			out = append(out, r)
		}
	}
	return out
}

// CrossDeck reports whether a door connects rooms on different decks.
// Cross-deck doors are vertical shaft passages and are exempt from the
// in-plane wall checks.
func (s *Snapshot) CrossDeck(d Door) bool {
	a, okA := s.Room(d.RoomA)
	b, okB := s.Room(d.RoomB)
	if !okA || !okB {
		return false
	}
	return a.Deck != b.Deck
}
