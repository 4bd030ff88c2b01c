package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestParseRooms_Table(t *testing.T) {
	input := `
 1 | 100 |  0 | 10.5 | 20 | 4 | 6
 7 |  40 | -2 | 3    | 4  | 2 | 2
`
	rooms, diags, err := ParseRooms(strings.NewReader(input), "rooms")
	if err != nil {
		t.Fatalf("ParseRooms: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].ID != 1 || rooms[0].Type != 100 || rooms[0].X != 10.5 {
		t.Errorf("room 0 parsed wrong: %+v", rooms[0])
	}
	if rooms[1].Deck != -2 {
		t.Errorf("negative decks must parse, got %+v", rooms[1])
	}
}

func TestParseRooms_MalformedRowsAreDiagnosedAndSkipped(t *testing.T) {
	input := `
1 | 100 | 0 | 10 | 20 | 4 | 6
this is not a row
2 | oops | 0 | 10 | 20 | 4 | 6
3 | 100 | 0 | 10 | 20 | 0 | 6
4 | 100 | 0 | 12 | 20 | 4 | 6
`
	rooms, diags, err := ParseRooms(strings.NewReader(input), "rooms")
	if err != nil {
		t.Fatalf("ParseRooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected the 2 good rows, got %d: %+v", len(rooms), rooms)
	}
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d: %v", len(diags), diags)
	}
	for _, d := range diags {
		if !strings.Contains(d, "rooms line") {
			t.Errorf("diagnostic should name source and line: %q", d)
		}
	}
}

func TestParseDoors_EmbeddedWall(t *testing.T) {
	input := `12 | 3 | 4 | 2 | 255 | 10 | 20 | 1.5`
	doors, diags, err := ParseDoors(strings.NewReader(input), "doors")
	if err != nil {
		t.Fatalf("ParseDoors: %v", err)
	}
	if len(diags) != 0 || len(doors) != 1 {
		t.Fatalf("doors=%d diags=%v", len(doors), diags)
	}
	d := doors[0]
	if d.WallA != East {
		t.Errorf("wall_a = %s, want EAST", d.WallA)
	}
	if !d.WallB.Embedded() {
		t.Errorf("wall_b raw 255 should be embedded")
	}
}

func TestParseDoors_RejectsBadWallIndex(t *testing.T) {
	input := `12 | 3 | 4 | 9 | 3 | 10 | 20 | 1.5`
	doors, diags, err := ParseDoors(strings.NewReader(input), "doors")
	if err != nil {
		t.Fatalf("ParseDoors: %v", err)
	}
	if len(doors) != 0 || len(diags) != 1 {
		t.Fatalf("expected the row to be diagnosed, doors=%d diags=%v", len(doors), diags)
	}
}

func TestNewSnapshot_DanglingDoorReference(t *testing.T) {
	rooms := []Room{{ID: 1, Type: 100, W: 4, H: 4, X: 10, Y: 10}}
	doors := []Door{
		{ID: 5, RoomA: 1, RoomB: 99, WallA: East, WallB: BoundWall(West), X: 12, Y: 10},
	}
	snap := NewSnapshot(rooms, doors, nil)
	if len(snap.Doors) != 0 {
		t.Fatalf("door with dangling reference must be dropped, got %+v", snap.Doors)
	}
	if len(snap.Diagnostics) != 1 || !strings.Contains(snap.Diagnostics[0], "room_b=99") {
		t.Fatalf("expected one dangling-reference diagnostic, got %v", snap.Diagnostics)
	}
}

func TestNewSnapshot_SortsByID(t *testing.T) {
	rooms := []Room{
		{ID: 3, W: 1, H: 1}, {ID: 1, W: 1, H: 1}, {ID: 2, W: 1, H: 1},
	}
	snap := NewSnapshot(rooms, nil, nil)
	for i, want := range []int{1, 2, 3} {
		if snap.Rooms[i].ID != want {
			t.Fatalf("rooms not sorted: %+v", snap.Rooms)
		}
	}
}

func TestLoadRooms_ZstDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms_dump.txt.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write([]byte("1 | 100 | 0 | 10 | 20 | 4 | 6\n")); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	rooms, diags, err := LoadRooms(path)
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	if len(rooms) != 1 || len(diags) != 0 {
		t.Fatalf("rooms=%d diags=%v", len(rooms), diags)
	}
	if rooms[0].ID != 1 {
		t.Errorf("room parsed wrong: %+v", rooms[0])
	}
}
