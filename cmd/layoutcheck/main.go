// layoutcheck validates a generated ship layout snapshot and writes a
// diagnostic report to stdout.
//
// Usage:
//
//	layoutcheck [flags] rooms_dump.txt doors_dump.txt
//	layoutcheck -snapshot layout.json
//	layoutcheck -archive runs.db -replay <run-id>
//	layoutcheck -archive runs.db -runs
//
// The exit status is 0 whenever a full pass completes, regardless of
// findings: the tool diagnoses layouts, it does not gate them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/progship/layoutcheck/internal/archive"
	"github.com/progship/layoutcheck/internal/config"
	"github.com/progship/layoutcheck/internal/inspect"
	"github.com/progship/layoutcheck/internal/layout"
	"github.com/progship/layoutcheck/internal/report"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("layoutcheck: ")

	cfgPath := flag.String("config", "", "YAML file overriding tolerances and print limits")
	snapshotPath := flag.String("snapshot", "", "single JSON snapshot instead of rooms/doors dumps")
	archivePath := flag.String("archive", "", "SQLite archive database to record the snapshot into")
	replayID := flag.String("replay", "", "re-validate a recorded run from the archive")
	listRuns := flag.Bool("runs", false, "list recorded runs in the archive and exit")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var store *archive.Store
	if *archivePath != "" {
		store, err = archive.Open(*archivePath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer store.Close()
	}

	if *listRuns {
		if store == nil {
			log.Fatalf("-runs requires -archive")
		}
		printRuns(store)
		return
	}

	snap, err := loadSnapshot(store, *snapshotPath, *replayID, flag.Args())
	if err != nil {
		log.Fatalf("%v", err)
	}

	if store != nil && *replayID == "" {
		roomsSource, doorsSource := sourceNames(*snapshotPath, flag.Args())
		runID, err := store.RecordRun(snap, roomsSource, doorsSource)
		if err != nil {
			log.Fatalf("record run: %v", err)
		}
		log.Printf("recorded run %s", runID)
	}

	result := inspect.Run(snap, cfg.CheckTolerances())
	if err := report.Render(os.Stdout, snap, result, cfg.PrintLimits()); err != nil {
		log.Fatalf("write report: %v", err)
	}
}

func loadSnapshot(store *archive.Store, snapshotPath, replayID string, args []string) (*layout.Snapshot, error) {
	switch {
	case replayID != "":
		if store == nil {
			return nil, fmt.Errorf("-replay requires -archive")
		}
		return store.LoadRun(replayID)
	case snapshotPath != "":
		return layout.LoadJSONSnapshot(snapshotPath)
	case len(args) == 2:
		return layout.LoadSnapshot(args[0], args[1])
	}
	usage()
	os.Exit(2)
	return nil, nil
}

func sourceNames(snapshotPath string, args []string) (roomsSource, doorsSource string) {
	if snapshotPath != "" {
		return snapshotPath, snapshotPath
	}
	return args[0], args[1]
}

func printRuns(store *archive.Store) {
	runs, err := store.ListRuns()
	if err != nil {
		log.Fatalf("list runs: %v", err)
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %d rooms, %d doors  (%s, %s)\n",
			r.ID, r.RecordedAt.Format("2006-01-02 15:04:05"),
			r.Rooms, r.Doors, r.RoomsSource, r.DoorsSource)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  layoutcheck [flags] <rooms_dump> <doors_dump>
  layoutcheck -snapshot <layout.json>
  layoutcheck -archive <runs.db> -replay <run-id>
  layoutcheck -archive <runs.db> -runs

Dump files ending in .zst are decompressed transparently.

flags:
`)
	flag.PrintDefaults()
}
