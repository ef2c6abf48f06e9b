// Package bax simulates the stepwise execution of algorithms against a
// black-box oracle function, recording every query and response into an
// execution trace and deriving a final output from it. The sequence of
// queries — not just the final answer — is the object of interest.
//
// What's inside?
//
//	A small, pure-Go library organized as one package per concern:
//		• trace     — the append-only execution trace of (input, output) pairs
//		• algorithm — the pull-based execution protocol every variant shares
//		• graph     — index-stable vertices and predecessor backtracking
//		• dijkstra  — oracle-driven shortest-path search (the core variant)
//		• scan      — grid-scanning variants built on the generic pull loop
//
// The execution model:
//
//	An algorithm is driven by repeatedly asking "what is the next input
//	to query?" until it signals completion; each (input, oracle output)
//	pair lands in the trace. Variants whose control flow cannot be
//	expressed one query at a time — the shortest-path search needs edge
//	costs eagerly to order its frontier — implement their own run
//	procedure behind the same interface and still produce a trace of
//	the identical shape.
//
// Quick example:
//
//	avg, _ := scan.NewAverageOutputs([][]float64{{0}, {1}, {2}, {3}})
//	tr, mean, _ := algorithm.Run[float64](avg, func(x []float64) float64 {
//	    return x[0] * x[0]
//	})
//	// tr holds 4 queries; mean == 3.5
//
// Every run is single-threaded and synchronous; independent runs may
// execute concurrently because each owns its trace, its bookkeeping,
// and (for stochastic variants) a freshly seeded random source.
package bax
