package inspect

import (
	"sort"

	"github.com/progship/layoutcheck/internal/layout"
)

// DeckConnectivity is the reachability result for one deck.
type DeckConnectivity struct {
	Deck int
	// HasStart is false when the deck has no corridor room to start
	// from; the deck is then reported as skipped, not failed.
	HasStart bool
	// StartRoom is the lowest-ID corridor room on the deck.
	StartRoom int
	Reachable int
	Total     int
	// Unreachable rooms in ascending ID order.
	Unreachable []layout.Room
}

// AnalyzeConnectivity builds, per deck, an undirected adjacency graph
// whose edges are the deck's same-deck doors, then breadth-first walks
// it from the lowest-ID corridor room. Rooms the walk never reaches
// have no valid door path back to the main circulation graph.
// Cross-deck doors are excluded: they connect different decks' graphs,
// not nodes within one.
func AnalyzeConnectivity(snap *layout.Snapshot) []DeckConnectivity {
	var results []DeckConnectivity
	for _, deck := range snap.Decks() {
		results = append(results, analyzeDeck(snap, deck))
	}
	return results
}

func analyzeDeck(snap *layout.Snapshot, deck int) DeckConnectivity {
	rooms := snap.RoomsOnDeck(deck)
	onDeck := make(map[int]bool, len(rooms))
	for _, r := range rooms {
		onDeck[r.ID] = true
	}

	adjacency := make(map[int][]int)
	for _, d := range snap.Doors {
		if !onDeck[d.RoomA] || !onDeck[d.RoomB] {
			continue
		}
		adjacency[d.RoomA] = append(adjacency[d.RoomA], d.RoomB)
		adjacency[d.RoomB] = append(adjacency[d.RoomB], d.RoomA)
	}
	// Neighbors expand in ascending ID order so the walk, and with it
	// the report, is deterministic.
	for id, neighbors := range adjacency {
		sort.Ints(neighbors)
		adjacency[id] = dedupSorted(neighbors)
	}

	result := DeckConnectivity{Deck: deck, Total: len(rooms)}

	start := -1
	for _, r := range rooms {
		if r.Type == layout.RoomCorridor {
			start = r.ID
			break
		}
	}
	if start < 0 {
		return result
	}
	result.HasStart = true
	result.StartRoom = start

	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range adjacency[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	result.Reachable = len(visited)

	for _, r := range rooms {
		if !visited[r.ID] {
			result.Unreachable = append(result.Unreachable, r)
		}
	}
	return result
}

func dedupSorted(xs []int) []int {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}
