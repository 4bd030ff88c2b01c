package inspect

import (
	"github.com/progship/layoutcheck/internal/layout"
)

// Kind classifies one per-door finding.
type Kind int

const (
	// KindAlignment: the door coordinate is off its wall plane beyond
	// tolerance.
	KindAlignment Kind = iota
	// KindBounds: the door sits outside the wall's span on a room.
	KindBounds
	// KindAdjacency: the two paired walls are not actually touching;
	// the door bridges a gap that should not exist.
	KindAdjacency
	// KindPairing: the wall pairing is not one of the canonical
	// opposing pairs. Suspicious but not always wrong.
	KindPairing
	// KindBoundary: the door is within the hull-boundary exclusion
	// margin of the coordinate origin.
	KindBoundary
	// KindTeleport: the simulated entry point is implausibly far from
	// the door.
	KindTeleport
	// KindFarEntry: the simulated entry point is far but plausible.
	KindFarEntry
)

func (k Kind) String() string {
	switch k {
	case KindAlignment:
		return "alignment"
	case KindBounds:
		return "bounds"
	case KindAdjacency:
		return "adjacency"
	case KindPairing:
		return "pairing"
	case KindBoundary:
		return "boundary"
	case KindTeleport:
		return "teleport"
	case KindFarEntry:
		return "far-entry"
	}
	return "unknown"
}

// Severity splits findings into the error listing and the warning
// listing of the report.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Severity returns the reporting severity of a finding kind.
func (k Kind) Severity() Severity {
	switch k {
	case KindPairing, KindFarEntry:
		return SeverityWarning
	}
	return SeverityError
}

// Finding is one failed per-door check. A door can contribute several
// findings; the checks are independent.
type Finding struct {
	DoorID    int
	RoomA     int
	RoomB     int
	WallA     layout.Wall
	WallB     layout.WallRef
	Kind      Kind
	Message   string
	Deviation float64
}
