// Package archive records loaded snapshots in a SQLite database so a
// generator run can be re-validated later without keeping the dump
// files around. Findings are never stored, only input snapshots.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/progship/layoutcheck/internal/layout"
)

// ErrRunNotFound is returned when a run ID is not in the archive.
var ErrRunNotFound = errors.New("run not found")

// Store is one open snapshot archive.
type Store struct {
	db *sql.DB
}

// RunMeta describes one recorded snapshot.
type RunMeta struct {
	ID          string
	RecordedAt  time.Time
	RoomsSource string
	DoorsSource string
	Rooms       int
	Doors       int
}

// Open opens (creating if necessary) an archive database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty archive path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	recorded_at  TEXT NOT NULL,
	rooms_source TEXT NOT NULL,
	doors_source TEXT NOT NULL,
	room_count   INTEGER NOT NULL,
	door_count   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS rooms (
	run_id TEXT NOT NULL REFERENCES runs(id),
	id     INTEGER NOT NULL,
	type   INTEGER NOT NULL,
	deck   INTEGER NOT NULL,
	x REAL NOT NULL, y REAL NOT NULL, w REAL NOT NULL, h REAL NOT NULL,
	PRIMARY KEY (run_id, id)
);
CREATE TABLE IF NOT EXISTS doors (
	run_id TEXT NOT NULL REFERENCES runs(id),
	id     INTEGER NOT NULL,
	room_a INTEGER NOT NULL,
	room_b INTEGER NOT NULL,
	wall_a INTEGER NOT NULL,
	wall_b INTEGER NOT NULL,
	x REAL NOT NULL, y REAL NOT NULL, width REAL NOT NULL,
	PRIMARY KEY (run_id, id)
);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// RecordRun stores the snapshot under a fresh run ID and returns it.
func (s *Store) RecordRun(snap *layout.Snapshot, roomsSource, doorsSource string) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO runs (id, recorded_at, rooms_source, doors_source, room_count, door_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), roomsSource, doorsSource,
		len(snap.Rooms), len(snap.Doors))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	roomStmt, err := tx.Prepare(
		`INSERT INTO rooms (run_id, id, type, deck, x, y, w, h) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer roomStmt.Close()
	for _, r := range snap.Rooms {
		if _, err := roomStmt.Exec(runID, r.ID, r.Type, r.Deck, r.X, r.Y, r.W, r.H); err != nil {
			return "", fmt.Errorf("insert room %d: %w", r.ID, err)
		}
	}

	doorStmt, err := tx.Prepare(
		`INSERT INTO doors (run_id, id, room_a, room_b, wall_a, wall_b, x, y, width)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer doorStmt.Close()
	for _, d := range snap.Doors {
		_, err := doorStmt.Exec(runID, d.ID, d.RoomA, d.RoomB,
			int(d.WallA), d.WallB.Raw(), d.X, d.Y, d.Width)
		if err != nil {
			return "", fmt.Errorf("insert door %d: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// LoadRun reads a recorded snapshot back.
func (s *Store) LoadRun(runID string) (*layout.Snapshot, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&count)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := s.db.Query(
		`SELECT id, type, deck, x, y, w, h FROM rooms WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rooms []layout.Room
	for rows.Next() {
		var r layout.Room
		if err := rows.Scan(&r.ID, &r.Type, &r.Deck, &r.X, &r.Y, &r.W, &r.H); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	doorRows, err := s.db.Query(
		`SELECT id, room_a, room_b, wall_a, wall_b, x, y, width FROM doors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer doorRows.Close()
	var doors []layout.Door
	for doorRows.Next() {
		var d layout.Door
		var wallA, wallB int
		if err := doorRows.Scan(&d.ID, &d.RoomA, &d.RoomB, &wallA, &wallB, &d.X, &d.Y, &d.Width); err != nil {
			return nil, err
		}
		d.WallA = layout.Wall(wallA)
		d.WallB = layout.WallRefFromRaw(wallB)
		doors = append(doors, d)
	}
	if err := doorRows.Err(); err != nil {
		return nil, err
	}

	return layout.NewSnapshot(rooms, doors, nil), nil
}

// ListRuns returns every recorded run, newest first.
func (s *Store) ListRuns() ([]RunMeta, error) {
	rows, err := s.db.Query(
		`SELECT id, recorded_at, rooms_source, doors_source, room_count, door_count
		 FROM runs ORDER BY recorded_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		var m RunMeta
		var recordedAt string
		if err := rows.Scan(&m.ID, &recordedAt, &m.RoomsSource, &m.DoorsSource, &m.Rooms, &m.Doors); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, recordedAt); err == nil {
			m.RecordedAt = t
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}
