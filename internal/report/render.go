// Package report renders an inspection result as the plain-text
// summary the triage workflow reads. Rendering is pure formatting:
// given the same snapshot and result it produces byte-identical
// output, so repeated runs on identical input diff clean.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/progship/layoutcheck/internal/inspect"
	"github.com/progship/layoutcheck/internal/layout"
)

// Limits cap how much detail each section prints before collapsing
// into a "+N more" line. They cap printing only; the counts always
// reflect everything found.
type Limits struct {
	MaxErrors       int
	MaxWarnings     int
	MaxOverlaps     int
	MaxOtherSamples int
}

// DefaultLimits returns the print caps used when no config overrides
// them.
func DefaultLimits() Limits {
	return Limits{
		MaxErrors:       60,
		MaxWarnings:     30,
		MaxOverlaps:     20,
		MaxOtherSamples: 10,
	}
}

// Render writes the full report: load diagnostics, overlap section,
// error and warning listings, categorized adjacency summary, overall
// counts, and per-deck connectivity.
func Render(w io.Writer, snap *layout.Snapshot, res *inspect.Result, limits Limits) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Loaded %d rooms, %d doors\n", len(snap.Rooms), len(snap.Doors))

	if len(snap.Diagnostics) > 0 {
		fmt.Fprintf(&b, "\n=== LOAD DIAGNOSTICS (%d) ===\n", len(snap.Diagnostics))
		for _, d := range snap.Diagnostics {
			fmt.Fprintf(&b, "  %s\n", d)
		}
	}

	renderOverlaps(&b, res.Overlaps, limits.MaxOverlaps)

	errs := res.Errors()
	warns := res.Warnings()
	renderFindings(&b, "ERRORS", errs, limits.MaxErrors)
	renderFindings(&b, "WARNINGS", warns, limits.MaxWarnings)
	renderAdjacencySummary(&b, res.Adjacency, limits.MaxOtherSamples)

	fmt.Fprintf(&b, "\nSUMMARY: %d errors, %d warnings across %d doors\n",
		len(errs), len(warns), len(snap.Doors))

	for _, deck := range res.Connectivity {
		renderDeckConnectivity(&b, deck)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderOverlaps(b *strings.Builder, overlaps []inspect.Overlap, limit int) {
	fmt.Fprintf(b, "\n=== ROOM OVERLAP CHECK ===\n")
	for i, o := range overlaps {
		if i >= limit {
			fmt.Fprintf(b, "  ... and %d more\n", len(overlaps)-limit)
			break
		}
		fmt.Fprintf(b, "  Deck %d: Room %d(type=%d) and Room %d(type=%d) overlap by %.1fx%.1fm\n",
			o.Deck, o.RoomA, o.TypeA, o.RoomB, o.TypeB, o.ExtentX, o.ExtentY)
	}
	fmt.Fprintf(b, "  Total overlapping room pairs: %d\n", len(overlaps))
}

func renderFindings(b *strings.Builder, title string, findings []inspect.Finding, limit int) {
	fmt.Fprintf(b, "\n=== %s (%d) ===\n", title, len(findings))
	for i, f := range findings {
		if i >= limit {
			fmt.Fprintf(b, "  ... and %d more\n", len(findings)-limit)
			break
		}
		fmt.Fprintf(b, "  Door %d: %s\n", f.DoorID, f.Message)
	}
}

func renderAdjacencySummary(b *strings.Builder, summary inspect.AdjacencySummary, maxSamples int) {
	fmt.Fprintf(b, "\n=== CATEGORIZED ADJACENCY ERRORS ===\n")
	fmt.Fprintf(b, "Service-corridor <-> cross-corridor misaligned: %d\n", summary.ServiceCross)
	fmt.Fprintf(b, "Shaft <-> cross-corridor misaligned: %d\n", summary.ShaftCross)
	fmt.Fprintf(b, "Other misaligned (orphan/force-connect): %d\n", len(summary.Other))

	if len(summary.Other) == 0 {
		return
	}
	sample := summary.Other
	if len(sample) > maxSamples {
		sample = sample[:maxSamples]
	}
	fmt.Fprintf(b, "\nFirst %d 'other' misaligned doors:\n", len(sample))
	for _, o := range sample {
		fmt.Fprintf(b, "  Door %d: room %d(type=%d,x=%g,y=%g,w=%g) %s -> room %d(type=%d,x=%g,y=%g,w=%g) %s, gap=%.1f\n",
			o.DoorID,
			o.RoomA.ID, o.RoomA.Type, o.RoomA.X, o.RoomA.Y, o.RoomA.W, o.WallA,
			o.RoomB.ID, o.RoomB.Type, o.RoomB.X, o.RoomB.Y, o.RoomB.W, o.WallB,
			o.Gap)
	}
}

func renderDeckConnectivity(b *strings.Builder, deck inspect.DeckConnectivity) {
	fmt.Fprintf(b, "\n=== CONNECTIVITY CHECK (Deck %d) ===\n", deck.Deck)
	if !deck.HasStart {
		fmt.Fprintf(b, "  No corridor start room on deck %d; skipping\n", deck.Deck)
		return
	}
	fmt.Fprintf(b, "  Starting from room %d (corridor)\n", deck.StartRoom)
	fmt.Fprintf(b, "  Reachable: %d/%d rooms\n", deck.Reachable, deck.Total)
	for _, r := range deck.Unreachable {
		fmt.Fprintf(b, "  UNREACHABLE: Room %d (type=%d, pos=(%g,%g))\n", r.ID, r.Type, r.X, r.Y)
	}
}
