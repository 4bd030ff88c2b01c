package inspect

import (
	"github.com/progship/layoutcheck/internal/layout"
)

// OrphanDoor is an adjacency failure whose room-type pair matches no
// known systemic generator issue. These stay an explicit, inspectable
// bucket: whether they are generator bugs or intentional irregular
// ("force-connected") passages is for a human to decide, so the full
// numeric detail is kept.
type OrphanDoor struct {
	DoorID int
	RoomA  layout.Room
	RoomB  layout.Room
	WallA  layout.Wall
	WallB  layout.WallRef
	Gap    float64
}

// AdjacencySummary buckets adjacency errors by the type codes of the
// two rooms involved, to split systemic generator issues from one-off
// anomalies. Purely diagnostic; it never changes validity.
type AdjacencySummary struct {
	// ServiceCross counts service-corridor <-> cross-corridor pairs.
	ServiceCross int
	// ShaftCross counts pairs involving a vertical shaft.
	ShaftCross int
	// Other holds the full detail of everything unclassified.
	Other []OrphanDoor
}

// CategorizeAdjacency runs a read-only pass over the adjacency
// findings. Input order is preserved, so the summary is as
// deterministic as the findings.
func CategorizeAdjacency(snap *layout.Snapshot, findings []Finding) AdjacencySummary {
	var summary AdjacencySummary
	for _, f := range findings {
		if f.Kind != KindAdjacency {
			continue
		}
		roomA, okA := snap.Room(f.RoomA)
		roomB, okB := snap.Room(f.RoomB)
		if !okA || !okB {
			continue
		}
		switch {
		case serviceCrossPair(roomA.Type, roomB.Type):
			summary.ServiceCross++
		case shaftInvolved(roomA.Type, roomB.Type):
			summary.ShaftCross++
		default:
			summary.Other = append(summary.Other, OrphanDoor{
				DoorID: f.DoorID,
				RoomA:  roomA,
				RoomB:  roomB,
				WallA:  f.WallA,
				WallB:  f.WallB,
				Gap:    f.Deviation,
			})
		}
	}
	return summary
}

func serviceCrossPair(typeA, typeB int) bool {
	return (typeA == layout.RoomServiceCorridor && typeB == layout.RoomCrossCorridor) ||
		(typeA == layout.RoomCrossCorridor && typeB == layout.RoomServiceCorridor)
}

func shaftInvolved(typeA, typeB int) bool {
	return isShaft(typeA) || isShaft(typeB)
}

func isShaft(roomType int) bool {
	return roomType == layout.RoomElevatorShaft || roomType == layout.RoomLadderShaft
}
