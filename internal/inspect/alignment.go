package inspect

import (
	"fmt"
	"math"

	"github.com/progship/layoutcheck/internal/layout"
)

// AlignDoors runs the per-door geometric checks over every door in
// ascending ID order: wall-plane fit on both rooms, span bounds on
// both rooms, wall adjacency, wall pairing, and the hull boundary
// margin. Cross-deck doors (vertical shaft passages) skip all in-plane
// checks; embedded doors skip the room-b side and the adjacency and
// pairing checks. Every check runs independently, so one door can
// yield several findings.
func AlignDoors(snap *layout.Snapshot, tol Tolerances) []Finding {
	var findings []Finding
	for _, d := range snap.Doors {
		findings = append(findings, alignDoor(snap, d, tol)...)
	}
	return findings
}

func alignDoor(snap *layout.Snapshot, d layout.Door, tol Tolerances) []Finding {
	roomA, _ := snap.Room(d.RoomA)
	roomB, _ := snap.Room(d.RoomB)
	crossDeck := roomA.Deck != roomB.Deck

	var findings []Finding
	add := func(kind Kind, deviation float64, msg string) {
		findings = append(findings, Finding{
			DoorID:    d.ID,
			RoomA:     d.RoomA,
			RoomB:     d.RoomB,
			WallA:     d.WallA,
			WallB:     d.WallB,
			Kind:      kind,
			Message:   msg,
			Deviation: deviation,
		})
	}

	// Wall-plane coordinates on both sides. The room-b plane is only
	// meaningful for bound (non-embedded) references.
	axisA, planeA := roomA.WallPlane(d.WallA)
	wallB, boundB := d.WallB.Wall()
	var axisB layout.Axis
	var planeB float64
	if boundB {
		axisB, planeB = roomB.WallPlane(wallB)
	}

	// Check 1: door sits on room_a's wall plane.
	if !crossDeck {
		off := math.Abs(layout.Coord(axisA, d.X, d.Y) - planeA)
		if off > tol.Plane {
			add(KindAlignment, off, fmt.Sprintf(
				"door_%s=%g NOT on room_a(%d) %s wall at %s=%g (off by %.1f)",
				axisA, layout.Coord(axisA, d.X, d.Y), d.RoomA, d.WallA, axisA, planeA, off))
		}
	}

	// Check 2: door sits on room_b's wall plane.
	if !crossDeck && boundB {
		off := math.Abs(layout.Coord(axisB, d.X, d.Y) - planeB)
		if off > tol.Plane {
			add(KindAlignment, off, fmt.Sprintf(
				"door_%s=%g NOT on room_b(%d) %s wall at %s=%g (off by %.1f)",
				axisB, layout.Coord(axisB, d.X, d.Y), d.RoomB, wallB, axisB, planeB, off))
		}
	}

	// Check 3: door within room_a's span along the wall.
	if !crossDeck {
		if f := boundsCheck("a", roomA, axisA.Other(), d, tol.Bounds); f != nil {
			add(KindBounds, f.deviation, f.message)
		}
	}

	// Check 4: door within room_b's span along the wall.
	if !crossDeck && boundB {
		if f := boundsCheck("b", roomB, axisB.Other(), d, tol.Bounds); f != nil {
			add(KindBounds, f.deviation, f.message)
		}
	}

	// Check 5: paired walls actually touch.
	if !crossDeck && boundB {
		gap := math.Abs(planeA - planeB)
		if gap > tol.Adjacency {
			add(KindAdjacency, gap, fmt.Sprintf(
				"walls NOT adjacent - room_a(%d) %s at %.1f, room_b(%d) %s at %.1f (gap=%.1f)",
				d.RoomA, d.WallA, planeA, d.RoomB, wallB, planeB, gap))
		}
	}

	// Check 6: pairing should be one of the opposing-wall combinations.
	if !crossDeck && boundB && !opposingWalls(d.WallA, wallB) {
		add(KindPairing, 0, fmt.Sprintf(
			"unusual wall pairing %s/%s between rooms %d/%d",
			d.WallA, wallB, d.RoomA, d.RoomB))
	}

	// Check 7: hull boundary margin around the origin, always applied.
	if d.X < tol.HullMargin || d.Y < tol.HullMargin {
		add(KindBoundary, math.Min(d.X, d.Y), fmt.Sprintf(
			"at hull boundary door_x=%g, door_y=%g", d.X, d.Y))
	}

	return findings
}

type boundsFailure struct {
	deviation float64
	message   string
}

// boundsCheck verifies the door's coordinate along the wall's free
// axis against the room's span there, with slack on both ends.
func boundsCheck(side string, room layout.Room, free layout.Axis, d layout.Door, slack float64) *boundsFailure {
	lo, hi := room.Span(free)
	coord := layout.Coord(free, d.X, d.Y)
	if coord >= lo-slack && coord <= hi+slack {
		return nil
	}
	deviation := lo - coord
	if coord > hi {
		deviation = coord - hi
	}
	return &boundsFailure{
		deviation: deviation,
		message: fmt.Sprintf("door_%s=%g outside room_%s(%d) %s range [%.1f, %.1f]",
			free, coord, side, room.ID, free, lo, hi),
	}
}

func opposingWalls(a, b layout.Wall) bool {
	switch {
	case a == layout.East && b == layout.West,
		a == layout.West && b == layout.East,
		a == layout.North && b == layout.South,
		a == layout.South && b == layout.North:
		return true
	}
	return false
}
