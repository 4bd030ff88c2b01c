package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// JSON snapshots carry both tables in one document. The document is
// checked against the schema below before decoding so a malformed
// export fails with a precise path instead of a half-loaded snapshot.

const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["rooms", "doors"],
  "properties": {
    "rooms": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "deck", "x", "y", "w", "h"],
        "properties": {
          "id": {"type": "integer", "minimum": 0},
          "type": {"type": "integer", "minimum": 0},
          "deck": {"type": "integer"},
          "x": {"type": "number"},
          "y": {"type": "number"},
          "w": {"type": "number", "exclusiveMinimum": 0},
          "h": {"type": "number", "exclusiveMinimum": 0}
        }
      }
    },
    "doors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "room_a", "room_b", "wall_a", "wall_b", "door_x", "door_y", "width"],
        "properties": {
          "id": {"type": "integer", "minimum": 0},
          "room_a": {"type": "integer", "minimum": 0},
          "room_b": {"type": "integer", "minimum": 0},
          "wall_a": {"type": "integer", "minimum": 0, "maximum": 3},
          "wall_b": {
            "type": "integer",
            "anyOf": [
              {"minimum": 0, "maximum": 3},
              {"minimum": 200}
            ]
          },
          "door_x": {"type": "number"},
          "door_y": {"type": "number"},
          "width": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`

type jsonRoom struct {
	ID   int     `json:"id"`
	Type int     `json:"type"`
	Deck int     `json:"deck"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

type jsonDoor struct {
	ID    int     `json:"id"`
	RoomA int     `json:"room_a"`
	RoomB int     `json:"room_b"`
	WallA int     `json:"wall_a"`
	WallB int     `json:"wall_b"`
	X     float64 `json:"door_x"`
	Y     float64 `json:"door_y"`
	Width float64 `json:"width"`
}

type jsonSnapshot struct {
	Rooms []jsonRoom `json:"rooms"`
	Doors []jsonDoor `json:"doors"`
}

// LoadJSONSnapshot reads a single-document JSON snapshot.
func LoadJSONSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseJSONSnapshot(data)
}

// ParseJSONSnapshot validates and decodes a JSON snapshot document.
func ParseJSONSnapshot(data []byte) (*Snapshot, error) {
	schema, err := jsonschema.CompileString("snapshot.schema.json", snapshotSchema)
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse snapshot JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("snapshot schema: %w", err)
	}

	var js jsonSnapshot
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("decode snapshot JSON: %w", err)
	}

	rooms := make([]Room, 0, len(js.Rooms))
	for _, r := range js.Rooms {
		rooms = append(rooms, Room{ID: r.ID, Type: r.Type, Deck: r.Deck, X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	doors := make([]Door, 0, len(js.Doors))
	for _, d := range js.Doors {
		doors = append(doors, Door{
			ID:    d.ID,
			RoomA: d.RoomA,
			RoomB: d.RoomB,
			WallA: Wall(d.WallA),
			WallB: WallRefFromRaw(d.WallB),
			X:     d.X,
			Y:     d.Y,
			Width: d.Width,
		})
	}
	return NewSnapshot(rooms, doors, nil), nil
}
