// Package overworld is ZORA's C7 "Overworld Randomizer" (spec.md §4.7):
// start-screen shuffle, and bait-blocker partition analysis used to
// validate that a start-screen candidate doesn't strand the player behind
// a Bait-gated passage.
//
// The BFS/adjacency helpers (reachable, partition) are adapted from
// teacher's pkg/graph/graph.go GetReachable (plain BFS over an adjacency
// map) and IsWeaklyConnected (building an undirected adjacency map from
// directed edges before the BFS) — generalized from string room IDs to
// uint8 overworld screen IDs.
package overworld

import "sort"

// Shuffle holds one start-screen shuffle outcome: the original and new
// spawn screens. ApplyStartScreenShuffle uses them to swap the two
// screens' enemy groups and to record the new start screen.
type Shuffle struct {
	OriginalScreen uint8
	NewScreen      uint8
}

// ChooseStartScreen sorts a copy of candidates by ID (for determinism,
// per spec.md §4.1/§9), passes it to pick, and returns the Shuffle from
// original to the screen pick returns. It does not filter candidates:
// excluding original and non-spawnable screens is left to the caller.
func ChooseStartScreen(original uint8, candidates []uint8, pick func(sorted []uint8) uint8) Shuffle {
	sorted := append([]uint8(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Shuffle{OriginalScreen: original, NewScreen: pick(sorted)}
}

// AdjacencyGraph is an undirected overworld screen-adjacency graph
// restricted to passable terrain, built the same way teacher's
// IsWeaklyConnected turns a directed edge list into an undirected one:
// every recorded edge is added in both directions.
type AdjacencyGraph struct {
	adj map[uint8][]uint8
}

// NewAdjacencyGraph returns an empty AdjacencyGraph.
func NewAdjacencyGraph() *AdjacencyGraph {
	return &AdjacencyGraph{adj: make(map[uint8][]uint8)}
}

// AddEdge records a passable connection between two screens, in both
// directions.
func (g *AdjacencyGraph) AddEdge(a, b uint8) {
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// RemoveEdge deletes a passable connection in both directions — used to
// model "this door is Bait-gated" by cutting the edge before partition
// analysis.
func (g *AdjacencyGraph) RemoveEdge(a, b uint8) {
	g.adj[a] = removeValue(g.adj[a], b)
	g.adj[b] = removeValue(g.adj[b], a)
}

func removeValue(xs []uint8, v uint8) []uint8 {
	out := xs[:0]
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// Reachable returns every screen reachable from start via a BFS over g's
// adjacency, start included.
func (g *AdjacencyGraph) Reachable(start uint8) map[uint8]bool {
	reachable := map[uint8]bool{start: true}
	queue := []uint8{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.adj[current] {
			if !reachable[neighbor] {
				reachable[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return reachable
}

// Partition describes the two sides of a bait-blocker passage once its
// gating edge has been conceptually removed.
type Partition struct {
	A []uint8 // screens reachable from sideA, sorted ascending
	B []uint8 // screens reachable from sideB but not in A, sorted ascending
}

// PartitionAcrossBaitBlocker computes the two reachability partitions on
// either side of a Bait-gated edge (sideA, sideB): the graph's edge
// between them is removed first, then each side's component is computed
// independently via Reachable, mirroring how IsWeaklyConnected treats
// "restricted to passable terrain" edges as the only traversal medium.
func (g *AdjacencyGraph) PartitionAcrossBaitBlocker(sideA, sideB uint8) Partition {
	cut := NewAdjacencyGraph()
	for from, neighbors := range g.adj {
		for _, to := range neighbors {
			cut.adj[from] = append(cut.adj[from], to)
		}
	}
	cut.RemoveEdge(sideA, sideB)

	reachA := cut.Reachable(sideA)
	reachB := cut.Reachable(sideB)
	for id := range reachA {
		delete(reachB, id)
	}

	return Partition{A: sortedKeys(reachA), B: sortedKeys(reachB)}
}

func sortedKeys(m map[uint8]bool) []uint8 {
	out := make([]uint8, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BaitGateConnects reports whether sideB is still in sideA's partition
// after the gating edge was cut, i.e. whether sideA and sideB connect
// without the bait-blocker's passage. True means the blocker's passage
// is redundant and Bait isn't required to reach sideB; false means the
// blocker is load-bearing.
func BaitGateConnects(p Partition, sideB uint8) bool {
	for _, screen := range p.A {
		if screen == sideB {
			return true
		}
	}
	return false
}
