package main

import (
	"testing"

	"github.com/progship/layoutcheck/internal/inspect"
	"github.com/progship/layoutcheck/internal/layout"
	"github.com/progship/layoutcheck/internal/protocol"
	"github.com/progship/layoutcheck/internal/report"
)

func testServer(t *testing.T) *server {
	t.Helper()
	rooms := []layout.Room{
		{ID: 1, Type: layout.RoomCorridor, Deck: 0, X: 10, Y: 10, W: 4, H: 4},
		{ID: 2, Type: layout.RoomElevatorShaft, Deck: 0, X: 80, Y: 80, W: 2, H: 2},
	}
	doors := []layout.Door{
		{ID: 1, RoomA: 1, RoomB: 2, WallA: layout.East, WallB: layout.EmbeddedWall(), X: 12, Y: 10, Width: 1.5},
	}
	snap := layout.NewSnapshot(rooms, doors, nil)
	if len(snap.Diagnostics) != 0 {
		t.Fatalf("scenario rows were dropped: %v", snap.Diagnostics)
	}
	return &server{
		tolerances: inspect.DefaultTolerances(),
		limits:     report.DefaultLimits(),
		snap:       snap,
		result:     inspect.Run(snap, inspect.DefaultTolerances()),
	}
}

func TestStateEnvelopes_SnapshotThenReport(t *testing.T) {
	s := testServer(t)
	envs := s.stateEnvelopes()

	if len(envs) != 2 {
		t.Fatalf("expected 2 envelopes, got %d", len(envs))
	}
	if envs[0].Type != protocol.TypeSnapshot || envs[1].Type != protocol.TypeReport {
		t.Fatalf("types = %s, %s; want snapshot then report", envs[0].Type, envs[1].Type)
	}
	if envs[1].Sequence <= envs[0].Sequence {
		t.Errorf("sequences must increase: %d then %d", envs[0].Sequence, envs[1].Sequence)
	}

	payload, ok := envs[0].Payload.(protocol.SnapshotPayload)
	if !ok {
		t.Fatalf("snapshot payload has wrong type %T", envs[0].Payload)
	}
	if len(payload.Rooms) != 2 || len(payload.Doors) != 1 {
		t.Fatalf("payload sizes = %d rooms, %d doors", len(payload.Rooms), len(payload.Doors))
	}
	door := payload.Doors[0]
	if !door.Embedded || door.WallB != "EMBEDDED" {
		t.Errorf("door payload = %+v, want the embedded wall spelled out", door)
	}
	if door.WallA != "EAST" {
		t.Errorf("wallA = %q, want EAST", door.WallA)
	}
}

func TestStateEnvelopes_SequenceAdvancesAcrossCalls(t *testing.T) {
	s := testServer(t)
	first := s.stateEnvelopes()
	second := s.stateEnvelopes()
	if second[0].Sequence <= first[1].Sequence {
		t.Errorf("sequence must keep climbing: %d then %d", first[1].Sequence, second[0].Sequence)
	}
}
