package inspect

import (
	"fmt"
	"math"

	"github.com/progship/layoutcheck/internal/layout"
)

// SimulateTraversals models an agent crossing each same-deck door into
// room_b: the entry point is the door position clamped into room_b's
// bounds inset by the player radius. An entry point implausibly far
// from the door means the recorded door position does not correspond
// to a real opening into room_b (a teleport-class bug in the layout).
// Cross-deck doors are vertical shaft transits with no 2D entry point,
// so they are skipped.
func SimulateTraversals(snap *layout.Snapshot, tol Tolerances) []Finding {
	var findings []Finding
	for _, d := range snap.Doors {
		if f := traverseDoor(snap, d, tol); f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

func traverseDoor(snap *layout.Snapshot, d layout.Door, tol Tolerances) *Finding {
	roomA, _ := snap.Room(d.RoomA)
	roomB, _ := snap.Room(d.RoomB)
	if roomA.Deck != roomB.Deck {
		return nil
	}
	return simulateEntry(d, roomB, tol)
}

func simulateEntry(d layout.Door, roomB layout.Room, tol Tolerances) *Finding {
	halfW := roomB.W/2 - tol.PlayerRadius
	halfH := roomB.H/2 - tol.PlayerRadius

	entryX := clamp(d.X, roomB.X-halfW, roomB.X+halfW)
	entryY := clamp(d.Y, roomB.Y-halfH, roomB.Y+halfH)
	dist := math.Hypot(entryX-d.X, entryY-d.Y)

	finding := Finding{
		DoorID:    d.ID,
		RoomA:     d.RoomA,
		RoomB:     d.RoomB,
		WallA:     d.WallA,
		WallB:     d.WallB,
		Deviation: dist,
	}
	switch {
	case dist > roomB.W/2+roomB.H/2:
		finding.Kind = KindTeleport
		finding.Message = fmt.Sprintf(
			"TELEPORT! Entry in room_b(%d) at (%.1f,%.1f) is %.1fm from door (%g,%g)",
			d.RoomB, entryX, entryY, dist, d.X, d.Y)
	case dist > tol.FarEntry:
		finding.Kind = KindFarEntry
		finding.Message = fmt.Sprintf(
			"far entry in room_b(%d) at (%.1f,%.1f), %.1fm from door (%g,%g)",
			d.RoomB, entryX, entryY, dist, d.X, d.Y)
	default:
		return nil
	}
	return &finding
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
