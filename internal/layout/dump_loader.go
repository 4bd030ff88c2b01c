package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// The generator dumps rooms and doors as pipe-separated tables, one
// entity per row:
//
//	rooms: id | type | deck | x | y | w | h
//	doors: id | room_a | room_b | wall_a | wall_b | door_x | door_y | width
//
// Rows that fail to parse are recorded as diagnostics and skipped;
// a bad row never aborts the rest of the load.

const (
	roomFieldCount = 7
	doorFieldCount = 8
)

// LoadSnapshot reads a rooms dump and a doors dump and assembles a
// snapshot. Files ending in .zst are decompressed transparently.
func LoadSnapshot(roomsPath, doorsPath string) (*Snapshot, error) {
	rooms, roomDiags, err := LoadRooms(roomsPath)
	if err != nil {
		return nil, err
	}
	doors, doorDiags, err := LoadDoors(doorsPath)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(rooms, doors, append(roomDiags, doorDiags...)), nil
}

// LoadRooms reads one rooms dump file.
func LoadRooms(path string) ([]Room, []string, error) {
	r, closeFn, err := openDump(path)
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()
	return ParseRooms(r, dumpLabel(path))
}

// LoadDoors reads one doors dump file.
func LoadDoors(path string) ([]Door, []string, error) {
	r, closeFn, err := openDump(path)
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()
	return ParseDoors(r, dumpLabel(path))
}

// ParseRooms parses a rooms table. The label names the source in
// diagnostics (usually the file name).
func ParseRooms(r io.Reader, label string) ([]Room, []string, error) {
	var rooms []Room
	var diags []string
	err := scanRows(r, func(line string, lineNo int) {
		fields, ok := splitRow(line, roomFieldCount)
		if !ok {
			diags = append(diags, fmt.Sprintf("%s line %d: expected %d fields: %q", label, lineNo, roomFieldCount, line))
			return
		}
		room, err := parseRoomRow(fields)
		if err != nil {
			diags = append(diags, fmt.Sprintf("%s line %d: %v", label, lineNo, err))
			return
		}
		rooms = append(rooms, room)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", label, err)
	}
	return rooms, diags, nil
}

// ParseDoors parses a doors table.
func ParseDoors(r io.Reader, label string) ([]Door, []string, error) {
	var doors []Door
	var diags []string
	err := scanRows(r, func(line string, lineNo int) {
		fields, ok := splitRow(line, doorFieldCount)
		if !ok {
			diags = append(diags, fmt.Sprintf("%s line %d: expected %d fields: %q", label, lineNo, doorFieldCount, line))
			return
		}
		door, err := parseDoorRow(fields)
		if err != nil {
			diags = append(diags, fmt.Sprintf("%s line %d: %v", label, lineNo, err))
			return
		}
		doors = append(doors, door)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", label, err)
	}
	return doors, diags, nil
}

func parseRoomRow(f []string) (Room, error) {
	id, err := parseInt("id", f[0])
	if err != nil {
		return Room{}, err
	}
	typ, err := parseInt("type", f[1])
	if err != nil {
		return Room{}, err
	}
	deck, err := parseInt("deck", f[2])
	if err != nil {
		return Room{}, err
	}
	var coords [4]float64
	names := [4]string{"x", "y", "w", "h"}
	for i := range coords {
		coords[i], err = parseFloat(names[i], f[3+i])
		if err != nil {
			return Room{}, err
		}
	}
	if coords[2] <= 0 || coords[3] <= 0 {
		return Room{}, fmt.Errorf("room %d: footprint %gx%g is not positive", id, coords[2], coords[3])
	}
	return Room{ID: id, Type: typ, Deck: deck, X: coords[0], Y: coords[1], W: coords[2], H: coords[3]}, nil
}

func parseDoorRow(f []string) (Door, error) {
	var ints [5]int
	intNames := [5]string{"id", "room_a", "room_b", "wall_a", "wall_b"}
	for i := range ints {
		v, err := parseInt(intNames[i], f[i])
		if err != nil {
			return Door{}, err
		}
		ints[i] = v
	}
	var floats [3]float64
	floatNames := [3]string{"door_x", "door_y", "width"}
	for i := range floats {
		v, err := parseFloat(floatNames[i], f[5+i])
		if err != nil {
			return Door{}, err
		}
		floats[i] = v
	}
	wallA := Wall(ints[3])
	if !wallA.Valid() {
		return Door{}, fmt.Errorf("door %d: wall_a=%d is not a footprint wall", ints[0], ints[3])
	}
	wallB := WallRefFromRaw(ints[4])
	if w, ok := wallB.Wall(); ok && !w.Valid() {
		return Door{}, fmt.Errorf("door %d: wall_b=%d is not a footprint wall", ints[0], ints[4])
	}
	return Door{
		ID:    ints[0],
		RoomA: ints[1],
		RoomB: ints[2],
		WallA: wallA,
		WallB: wallB,
		X:     floats[0],
		Y:     floats[1],
		Width: floats[2],
	}, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return v, nil
}

// scanRows feeds non-blank lines to fn with 1-based line numbers.
func scanRows(r io.Reader, fn func(line string, lineNo int)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(line, lineNo)
	}
	return sc.Err()
}

func splitRow(line string, want int) ([]string, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != want {
		return nil, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// openDump opens a dump file, decompressing .zst archives on the fly.
func openDump(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dump: %w", err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, func() { _ = f.Close() }, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("open zstd dump %s: %w", path, err)
	}
	return dec, func() {
		dec.Close()
		_ = f.Close()
	}, nil
}

// dumpLabel trims directories and the .zst suffix off a dump path for
// use in diagnostics.
func dumpLabel(path string) string {
	label := path
	if i := strings.LastIndexByte(label, '/'); i >= 0 {
		label = label[i+1:]
	}
	return strings.TrimSuffix(label, ".zst")
}
