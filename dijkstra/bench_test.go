package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/dijkstra"
	"github.com/bitcloud2/bayesian-algorithm-execution/graph"
)

// buildChain wires n vertices into a line 0—1—…—(n-1).
func buildChain(n int) []*graph.Vertex {
	vs := make([]*graph.Vertex, n)
	for i := range vs {
		vs[i] = graph.NewVertex(i)
	}
	for i := 1; i < n; i++ {
		graph.Connect(vs[i-1], vs[i])
	}

	return vs
}

// BenchmarkShortestPath_Chain measures a full run over a 1000-vertex
// chain with a query-free unit-cost evaluator, isolating the search and
// frontier overhead from oracle cost.
func BenchmarkShortestPath_Chain(b *testing.B) {
	vs := buildChain(1000)
	unit := func(u, v *graph.Vertex, f algorithm.Oracle, _ *rand.Rand) (float64, [][]float64, []float64) {
		return 1, nil, nil
	}

	sp, err := dijkstra.New(
		dijkstra.Start(vs[0]),
		dijkstra.Goal(vs[len(vs)-1]),
		dijkstra.WithVertices(vs...),
		dijkstra.WithCostFunc(unit),
	)
	if err != nil {
		b.Fatal(err)
	}

	oracle := func(x []float64) float64 { return 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := sp.Run(oracle); err != nil {
			b.Fatal(err)
		}
	}
}
