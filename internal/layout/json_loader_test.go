package layout

import (
	"strings"
	"testing"
)

func TestParseJSONSnapshot_Valid(t *testing.T) {
	doc := `{
		"rooms": [
			{"id": 1, "type": 100, "deck": 0, "x": 10, "y": 10, "w": 4, "h": 4},
			{"id": 2, "type": 40, "deck": 0, "x": 14, "y": 10, "w": 4, "h": 4}
		],
		"doors": [
			{"id": 1, "room_a": 1, "room_b": 2, "wall_a": 2, "wall_b": 3,
			 "door_x": 12, "door_y": 10, "width": 1.5}
		]
	}`
	snap, err := ParseJSONSnapshot([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSONSnapshot: %v", err)
	}
	if len(snap.Rooms) != 2 || len(snap.Doors) != 1 {
		t.Fatalf("rooms=%d doors=%d", len(snap.Rooms), len(snap.Doors))
	}
	if snap.Doors[0].WallA != East {
		t.Errorf("wall_a = %s, want EAST", snap.Doors[0].WallA)
	}
}

func TestParseJSONSnapshot_SchemaRejectsMissingField(t *testing.T) {
	doc := `{
		"rooms": [{"id": 1, "type": 100, "deck": 0, "x": 10, "y": 10, "w": 4}],
		"doors": []
	}`
	_, err := ParseJSONSnapshot([]byte(doc))
	if err == nil {
		t.Fatal("expected schema violation for missing h")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error should come from the schema check: %v", err)
	}
}

// wall_b values between the footprint walls (0-3) and the embedded
// sentinel (>=200) reference nothing; they must not slip through as
// bound walls.
func TestParseJSONSnapshot_SchemaRejectsJunkWallB(t *testing.T) {
	doc := `{
		"rooms": [
			{"id": 1, "type": 100, "deck": 0, "x": 10, "y": 10, "w": 4, "h": 4},
			{"id": 2, "type": 40, "deck": 0, "x": 14, "y": 10, "w": 4, "h": 4}
		],
		"doors": [
			{"id": 1, "room_a": 1, "room_b": 2, "wall_a": 2, "wall_b": 150,
			 "door_x": 12, "door_y": 10, "width": 1.5}
		]
	}`
	if _, err := ParseJSONSnapshot([]byte(doc)); err == nil {
		t.Fatal("expected schema violation for wall_b=150")
	}
}

func TestParseJSONSnapshot_EmbeddedWallBAccepted(t *testing.T) {
	doc := `{
		"rooms": [
			{"id": 1, "type": 100, "deck": 0, "x": 10, "y": 10, "w": 4, "h": 4},
			{"id": 2, "type": 110, "deck": 0, "x": 80, "y": 80, "w": 2, "h": 2}
		],
		"doors": [
			{"id": 1, "room_a": 1, "room_b": 2, "wall_a": 2, "wall_b": 255,
			 "door_x": 12, "door_y": 10, "width": 1.5}
		]
	}`
	snap, err := ParseJSONSnapshot([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSONSnapshot: %v", err)
	}
	if len(snap.Doors) != 1 || !snap.Doors[0].WallB.Embedded() {
		t.Fatalf("wall_b=255 should parse as embedded, got %+v", snap.Doors)
	}
}

func TestParseJSONSnapshot_SchemaRejectsBadWallIndex(t *testing.T) {
	doc := `{
		"rooms": [
			{"id": 1, "type": 100, "deck": 0, "x": 10, "y": 10, "w": 4, "h": 4},
			{"id": 2, "type": 40, "deck": 0, "x": 14, "y": 10, "w": 4, "h": 4}
		],
		"doors": [
			{"id": 1, "room_a": 1, "room_b": 2, "wall_a": 7, "wall_b": 3,
			 "door_x": 12, "door_y": 10, "width": 1.5}
		]
	}`
	if _, err := ParseJSONSnapshot([]byte(doc)); err == nil {
		t.Fatal("expected schema violation for wall_a=7")
	}
}
