package main

import (
	"github.com/progship/layoutcheck/internal/inspect"
	"github.com/progship/layoutcheck/internal/layout"
	"github.com/progship/layoutcheck/internal/protocol"
	"github.com/progship/layoutcheck/internal/report"
)

func snapshotPayload(snap *layout.Snapshot) protocol.SnapshotPayload {
	payload := protocol.SnapshotPayload{
		Rooms: make([]protocol.RoomLite, 0, len(snap.Rooms)),
		Doors: make([]protocol.DoorLite, 0, len(snap.Doors)),
	}
	for _, r := range snap.Rooms {
		payload.Rooms = append(payload.Rooms, protocol.RoomLite{
			ID: r.ID, Type: r.Type, Deck: r.Deck, X: r.X, Y: r.Y, W: r.W, H: r.H,
		})
	}
	for _, d := range snap.Doors {
		payload.Doors = append(payload.Doors, protocol.DoorLite{
			ID:       d.ID,
			RoomA:    d.RoomA,
			RoomB:    d.RoomB,
			WallA:    d.WallA.String(),
			WallB:    d.WallB.String(),
			X:        d.X,
			Y:        d.Y,
			Width:    d.Width,
			Embedded: d.WallB.Embedded(),
		})
	}
	return payload
}

func reportPayload(snap *layout.Snapshot, result *inspect.Result, limits report.Limits) protocol.ReportPayload {
	payload := protocol.ReportPayload{
		Errors:   findingLites(result.Errors()),
		Warnings: findingLites(result.Warnings()),
		Text:     renderText(snap, result, limits),
	}
	for _, o := range result.Overlaps {
		payload.Overlaps = append(payload.Overlaps, protocol.OverlapLite{
			Deck: o.Deck, RoomA: o.RoomA, RoomB: o.RoomB,
			ExtentX: o.ExtentX, ExtentY: o.ExtentY,
		})
	}
	for _, deck := range result.Connectivity {
		lite := protocol.DeckConnectivityLite{
			Deck:      deck.Deck,
			HasStart:  deck.HasStart,
			StartRoom: deck.StartRoom,
			Reachable: deck.Reachable,
			Total:     deck.Total,
		}
		for _, r := range deck.Unreachable {
			lite.Unreachable = append(lite.Unreachable, r.ID)
		}
		payload.Connectivity = append(payload.Connectivity, lite)
	}
	return payload
}

func findingLites(findings []inspect.Finding) []protocol.FindingLite {
	out := make([]protocol.FindingLite, 0, len(findings))
	for _, f := range findings {
		out = append(out, protocol.FindingLite{
			DoorID:    f.DoorID,
			Kind:      f.Kind.String(),
			Severity:  f.Kind.Severity().String(),
			Message:   f.Message,
			Deviation: f.Deviation,
		})
	}
	return out
}
