package archive

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/progship/layoutcheck/internal/layout"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	rooms := []layout.Room{
		{ID: 1, Type: layout.RoomCorridor, Deck: 0, X: 10.5, Y: 10, W: 4, H: 4},
		{ID: 2, Type: layout.RoomElevatorShaft, Deck: -1, X: 14, Y: 10, W: 2, H: 2},
	}
	doors := []layout.Door{
		{ID: 1, RoomA: 1, RoomB: 2, WallA: layout.East, WallB: layout.EmbeddedWall(), X: 12, Y: 10, Width: 1.5},
		{ID: 2, RoomA: 2, RoomB: 1, WallA: layout.North, WallB: layout.BoundWall(layout.South), X: 13, Y: 9, Width: 1},
	}
	snap := layout.NewSnapshot(rooms, doors, nil)

	runID, err := store.RecordRun(snap, "rooms_dump.txt", "doors_dump.txt")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	loaded, err := store.LoadRun(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Rooms, snap.Rooms) {
		t.Errorf("rooms did not round-trip:\n got %+v\nwant %+v", loaded.Rooms, snap.Rooms)
	}
	if !reflect.DeepEqual(loaded.Doors, snap.Doors) {
		t.Errorf("doors did not round-trip:\n got %+v\nwant %+v", loaded.Doors, snap.Doors)
	}
	if !loaded.Doors[0].WallB.Embedded() {
		t.Error("embedded wall reference lost in the round-trip")
	}
}

func TestStore_ListRuns(t *testing.T) {
	store := openTestStore(t)
	snap := layout.NewSnapshot(
		[]layout.Room{{ID: 1, Type: 100, X: 10, Y: 10, W: 4, H: 4}}, nil, nil)

	if _, err := store.RecordRun(snap, "a.txt", "b.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordRun(snap, "c.txt", "d.txt"); err != nil {
		t.Fatal(err)
	}

	runs, err := store.ListRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Rooms != 1 || runs[0].Doors != 0 {
		t.Errorf("run meta counts wrong: %+v", runs[0])
	}
}

func TestStore_LoadRunNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.LoadRun("no-such-run")
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("err = %v, want ErrRunNotFound", err)
	}
}
