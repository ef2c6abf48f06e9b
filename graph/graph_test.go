package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcloud2/bayesian-algorithm-execution/graph"
)

func TestNewVertex(t *testing.T) {
	v := graph.NewVertex(3, 1.5, -2.0)
	assert.Equal(t, 3, v.Index)
	assert.Equal(t, []float64{1.5, -2.0}, v.Position)
	assert.Empty(t, v.Neighbors)
}

// TestConnect verifies bidirectional linking preserves insertion order.
func TestConnect(t *testing.T) {
	a, b, c := graph.NewVertex(0), graph.NewVertex(1), graph.NewVertex(2)
	graph.Connect(a, b)
	graph.Connect(a, c)

	require.Len(t, a.Neighbors, 2)
	assert.Same(t, b, a.Neighbors[0])
	assert.Same(t, c, a.Neighbors[1])
	require.Len(t, b.Neighbors, 1)
	assert.Same(t, a, b.Neighbors[0])
}

// TestArc verifies one-way linking.
func TestArc(t *testing.T) {
	a, b := graph.NewVertex(0), graph.NewVertex(1)
	graph.Arc(a, b)

	require.Len(t, a.Neighbors, 1)
	assert.Same(t, b, a.Neighbors[0])
	assert.Empty(t, b.Neighbors)
}

func TestBacktrackIndices_Chain(t *testing.T) {
	// prev encodes 0 → 2 → 1 → 3 (root is 0).
	prev := []int{graph.NoPredecessor, 2, 0, 1}

	path, err := graph.BacktrackIndices(3, prev)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)
}

func TestBacktrackIndices_TerminalIsRoot(t *testing.T) {
	prev := []int{graph.NoPredecessor, 0}

	path, err := graph.BacktrackIndices(0, prev)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestBacktrackIndices_TerminalOutOfRange(t *testing.T) {
	_, err := graph.BacktrackIndices(5, []int{graph.NoPredecessor})
	assert.ErrorIs(t, err, graph.ErrIndexOutOfRange)

	_, err = graph.BacktrackIndices(-1, []int{graph.NoPredecessor})
	assert.ErrorIs(t, err, graph.ErrIndexOutOfRange)
}

func TestBacktrackIndices_LinkOutOfRange(t *testing.T) {
	_, err := graph.BacktrackIndices(1, []int{graph.NoPredecessor, 7})
	assert.ErrorIs(t, err, graph.ErrIndexOutOfRange)
}

func TestBacktrackIndices_Cycle(t *testing.T) {
	// 1 → 2 → 1: the chain never reaches a root.
	_, err := graph.BacktrackIndices(1, []int{graph.NoPredecessor, 2, 1})
	assert.ErrorIs(t, err, graph.ErrPredecessorCycle)
}
