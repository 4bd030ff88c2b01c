package layout

import "fmt"

// Wall identifies one side of a room's rectangular footprint.
// North is the low-Y side, south the high-Y side, east the high-X
// side, west the low-X side.
type Wall int

const (
	North Wall = 0
	South Wall = 1
	East  Wall = 2
	West  Wall = 3
)

func (w Wall) String() string {
	switch w {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	}
	return fmt.Sprintf("WALL(%d)", int(w))
}

// Valid reports whether w is one of the four footprint walls.
func (w Wall) Valid() bool {
	return w >= North && w <= West
}

// Raw wall values at or above this are the generator's sentinel for a
// door that opens flush into an enclosing space: the far room has no
// wall gap of its own.
const embeddedSentinel = 200

// canonical raw value the generator emits for embedded walls
const embeddedRaw = 255

// WallRef is a door's reference to a wall on one of its rooms: either
// a bound footprint wall, or embedded (no wall gap on that side).
type WallRef struct {
	raw int
}

// BoundWall returns a WallRef for a regular footprint wall.
func BoundWall(w Wall) WallRef {
	return WallRef{raw: int(w)}
}

// EmbeddedWall returns the embedded WallRef.
func EmbeddedWall() WallRef {
	return WallRef{raw: embeddedRaw}
}

// WallRefFromRaw interprets a raw wall field from a snapshot row.
func WallRefFromRaw(v int) WallRef {
	return WallRef{raw: v}
}

// Embedded reports whether the reference is the embedded sentinel.
func (r WallRef) Embedded() bool {
	return r.raw >= embeddedSentinel
}

// Wall returns the bound wall, or false for embedded references.
func (r WallRef) Wall() (Wall, bool) {
	if r.Embedded() {
		return 0, false
	}
	return Wall(r.raw), true
}

// Raw returns the value as it appeared in the snapshot, so archived
// snapshots round-trip exactly.
func (r WallRef) Raw() int {
	return r.raw
}

func (r WallRef) String() string {
	if r.Embedded() {
		return "EMBEDDED"
	}
	return Wall(r.raw).String()
}

// Room type codes the validator interprets. Everything else is opaque
// to it.
const (
	RoomCorridor        = 100
	RoomServiceCorridor = 101
	RoomCrossCorridor   = 102
	RoomElevatorShaft   = 110
	RoomLadderShaft     = 111
)

// Room is one rectangular, axis-aligned footprint on a deck. X and Y
// are the footprint center in plan-space meters.
type Room struct {
	ID   int
	Type int
	Deck int
	X    float64
	Y    float64
	W    float64
	H    float64
}

// Door is a passage between exactly two rooms. WallA and WallB are
// keyed to RoomA and RoomB respectively. X and Y are the point on the
// shared boundary where passage occurs.
type Door struct {
	ID    int
	RoomA int
	RoomB int
	WallA Wall
	WallB WallRef
	X     float64
	Y     float64
	Width float64
}
