// Package dijkstra: convenience edge-cost evaluators.
package dijkstra

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/graph"
)

// SampledCost returns a CostFunc that estimates the cost of edge (u, v)
// by querying the oracle at `samples` points interpolated strictly
// between the two vertex positions, averaging the responses, and
// scaling by the Euclidean edge length. Every query is reported back
// for trace recording.
//
// Both vertices must carry positions of equal dimension; the evaluator
// interpolates component-wise. Panics if samples < 1 (programmer error
// in configuration, caught at wiring time).
// Complexity: O(samples · d) per edge for dimension d.
func SampledCost(samples int) CostFunc {
	if samples < 1 {
		panic(fmt.Sprintf("SampledCost: samples must be ≥ 1, got %d", samples))
	}

	return func(u, v *graph.Vertex, f algorithm.Oracle, _ *rand.Rand) (float64, [][]float64, []float64) {
		xs := make([][]float64, 0, samples)
		ys := make([]float64, 0, samples)

		var sum float64
		for i := 1; i <= samples; i++ {
			t := float64(i) / float64(samples+1)
			x := lerp(u.Position, v.Position, t)
			y := f(x)
			xs = append(xs, x)
			ys = append(ys, y)
			sum += y
		}

		return (sum / float64(samples)) * euclidean(u.Position, v.Position), xs, ys
	}
}

// lerp interpolates component-wise between a and b at fraction t.
func lerp(a, b []float64, t float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + t*(b[i]-a[i])
	}

	return out
}

// euclidean returns the straight-line distance between positions a and b.
func euclidean(a, b []float64) float64 {
	var sq float64
	for i := range a {
		d := b[i] - a[i]
		sq += d * d
	}

	return math.Sqrt(sq)
}
