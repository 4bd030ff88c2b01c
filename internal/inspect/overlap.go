package inspect

import (
	"github.com/progship/layoutcheck/internal/layout"
)

// Rooms that merely share a touching wall have zero or near-zero
// intersection; only extents beyond this count as real overlap.
const minOverlapExtent = 0.1

// Overlap is one pair of same-deck rooms whose footprints intersect
// beyond a trivial touch.
type Overlap struct {
	Deck    int
	RoomA   int
	RoomB   int
	TypeA   int
	TypeB   int
	ExtentX float64
	ExtentY float64
}

// DetectOverlaps tests every unordered pair of rooms on each deck for
// axis-aligned bounding-box intersection. Decks ascending, pairs in
// ascending (RoomA, RoomB) order.
func DetectOverlaps(snap *layout.Snapshot) []Overlap {
	var overlaps []Overlap
	for _, deck := range snap.Decks() {
		rooms := snap.RoomsOnDeck(deck)
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				a, b := rooms[i], rooms[j]
				northA, southA, eastA, westA := a.Edges()
				northB, southB, eastB, westB := b.Edges()
				extentX := min(eastA, eastB) - max(westA, westB)
				extentY := min(southA, southB) - max(northA, northB)
				if extentX > minOverlapExtent && extentY > minOverlapExtent {
					overlaps = append(overlaps, Overlap{
						Deck:    deck,
						RoomA:   a.ID,
						RoomB:   b.ID,
						TypeA:   a.Type,
						TypeB:   b.Type,
						ExtentX: extentX,
						ExtentY: extentY,
					})
				}
			}
		}
	}
	return overlaps
}
