// Package inspect certifies a generated deck/room/door layout against
// the geometric and connectivity invariants the generator is supposed
// to satisfy. It never mutates the snapshot and never stops early:
// every analyzer runs to completion and every finding is accumulated,
// because the point is exhaustive diagnosis of imperfect generator
// output, not gatekeeping.
package inspect

import (
	"github.com/progship/layoutcheck/internal/layout"
)

// Result aggregates one full pass over a snapshot.
type Result struct {
	// Findings holds every per-door finding in ascending door-ID
	// order, each door's alignment findings followed by its traversal
	// finding.
	Findings []Finding
	// Overlaps are same-deck room pairs intersecting beyond a trivial
	// touch. Reported, but not counted as errors.
	Overlaps []Overlap
	// Connectivity holds one entry per deck, ascending.
	Connectivity []DeckConnectivity
	// Adjacency buckets the adjacency findings for triage.
	Adjacency AdjacencySummary
}

// Run executes the four analyzers over the snapshot. Doors are walked
// once, so a door's alignment and traversal findings sit together in
// the report. The analyzers are independent of each other; only the
// categorizer feeds on the alignment output.
func Run(snap *layout.Snapshot, tol Tolerances) *Result {
	res := &Result{
		Overlaps:     DetectOverlaps(snap),
		Connectivity: AnalyzeConnectivity(snap),
	}
	for _, d := range snap.Doors {
		res.Findings = append(res.Findings, alignDoor(snap, d, tol)...)
		if f := traverseDoor(snap, d, tol); f != nil {
			res.Findings = append(res.Findings, *f)
		}
	}
	res.Adjacency = CategorizeAdjacency(snap, res.Findings)
	return res
}

// Errors returns the error-severity findings in report order.
func (r *Result) Errors() []Finding {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning-severity findings in report order.
func (r *Result) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

func (r *Result) bySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Kind.Severity() == s {
			out = append(out, f)
		}
	}
	return out
}
