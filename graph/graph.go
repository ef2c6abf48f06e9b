// Package graph defines the vertex collaborator used by the
// shortest-path algorithm: vertices with a stable integer index, an
// ordered neighbor list, and a predecessor-backtracking helper for
// path reconstruction.
//
// The index is the key into every per-run bookkeeping array (explored
// flags, best-known costs, predecessors), so indices must be unique,
// 0-based and stable for the duration of a run. Constructing whole
// graphs (grids, random topologies, adjacency generation) is out of
// scope here — callers supply the vertex list and wiring, using the
// linking helpers below.
package graph

import (
	"errors"
	"fmt"
)

// NoPredecessor marks a vertex with no recorded predecessor in a
// predecessor slice passed to BacktrackIndices.
const NoPredecessor = -1

// Sentinel errors for path reconstruction.
var (
	// ErrIndexOutOfRange indicates a vertex index outside the
	// predecessor slice bounds.
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrPredecessorCycle indicates the predecessor chain never reaches
	// a root, i.e. it contains a cycle.
	ErrPredecessorCycle = errors.New("graph: predecessor chain contains a cycle")
)

// Vertex is a node in a fixed vertex list.
//
// Index is the vertex's position in that list and must equal its slice
// position. Position is an optional embedding of the vertex in the
// oracle's input domain, used by cost evaluators to form query points.
// Neighbors is the ordered adjacency list; order is significant because
// it fixes the edge-expansion order of the search.
type Vertex struct {
	// Index uniquely identifies this vertex within its vertex list.
	Index int

	// Position locates the vertex in the oracle's input domain.
	Position []float64

	// Neighbors lists adjacent vertices in expansion order.
	Neighbors []*Vertex
}

// NewVertex returns a vertex with the given index and optional position
// coordinates, and an empty neighbor list.
// Complexity: O(d) for d coordinates.
func NewVertex(index int, position ...float64) *Vertex {
	return &Vertex{Index: index, Position: position}
}

// Connect links u and v bidirectionally, appending each to the other's
// neighbor list. No-op safety is the caller's concern: duplicates are
// not filtered, matching ordered-adjacency semantics.
// Complexity: amortized O(1)
func Connect(u, v *Vertex) {
	u.Neighbors = append(u.Neighbors, v)
	v.Neighbors = append(v.Neighbors, u)
}

// Arc links u to v one-way: v becomes a neighbor of u but not vice versa.
// Complexity: amortized O(1)
func Arc(u, v *Vertex) {
	u.Neighbors = append(u.Neighbors, v)
}

// BacktrackIndices follows predecessor links from terminal back to the
// chain's root (the entry whose predecessor is NoPredecessor) and
// returns the index sequence in root→terminal order.
//
// prev[i] holds the index of the vertex that most recently improved
// vertex i's best-known cost, or NoPredecessor. Returns
// ErrIndexOutOfRange if terminal or any link escapes the slice bounds,
// and ErrPredecessorCycle if the chain is longer than the vertex count.
// Complexity: O(k) for a path of k vertices.
func BacktrackIndices(terminal int, prev []int) ([]int, error) {
	if terminal < 0 || terminal >= len(prev) {
		return nil, fmt.Errorf("%w: terminal %d with %d vertices", ErrIndexOutOfRange, terminal, len(prev))
	}

	// Walk backwards, collecting indices terminal-first.
	path := []int{terminal}
	cur := terminal
	for prev[cur] != NoPredecessor {
		cur = prev[cur]
		if cur < 0 || cur >= len(prev) {
			return nil, fmt.Errorf("%w: predecessor %d with %d vertices", ErrIndexOutOfRange, cur, len(prev))
		}
		// A valid predecessor chain visits each vertex at most once.
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: starting from %d", ErrPredecessorCycle, terminal)
		}
		path = append(path, cur)
	}

	// Reverse in place to obtain root→terminal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
