// Package dijkstra implements the shortest-path algorithm variant: a
// priority-queue single-source search whose edge traversal costs are
// not known in advance, but are obtained lazily through one or more
// oracle queries per edge, with every query accumulated into the run's
// execution trace.
//
// Overview:
//
//   - Classic uniform-cost search over a fixed vertex list with dense
//     0-based indices; per-vertex bookkeeping (explored flags,
//     best-known costs, predecessors) is array-backed and allocated
//     fresh for every run.
//   - The edge-cost function is a CostFunc that may issue zero, one, or
//     many oracle queries to estimate a traversal cost; the returned
//     query pairs are appended verbatim to the shared trace.
//   - The frontier is a min-heap of (candidate cost, vertex) entries
//     under the “lazy decrease-key” strategy: superseded entries stay
//     in the heap and are discarded at pop time via the explored flag.
//   - Because the search needs edge costs eagerly to order its frontier,
//     it bypasses the generic pull loop: ShortestPath implements
//     algorithm.Runner and produces its (cost, path) result directly
//     from Run. Deriving an output from the completed trace alone is
//     unsupported and fails with algorithm.ErrUnsupportedOutput.
//
// Correctness preconditions:
//
//   - Edge costs must be non-negative: a CostFunc returning a negative
//     cost aborts the run with ErrNegativeCost immediately, because the
//     no-revisit-after-finalization property no longer holds.
//   - No path from start to goal is NOT an error: the run completes
//     with Cost = +Inf and an empty Path once the frontier drains.
//
// Tie-breaks:
//
//   - When two frontier entries carry equal cost, pop order follows the
//     binary heap's internal sift order and is otherwise unspecified.
//     Equal-cost paths may therefore differ between implementations;
//     the returned cost never does.
//
// Randomness isolation:
//
//   - Each run owns a fresh *rand.Rand, seeded from WithSeed or the
//     wall clock at run entry, and hands it to the CostFunc. Ambient
//     process-global random state is never read, so concurrent runs
//     cannot observe or share random state.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work plus the cost of the oracle
//     queries issued by the CostFunc (up to E evaluations).
//   - Space: O(V) bookkeeping + O(E) worst-case frontier entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilStart / ErrNilGoal: start or goal vertex missing at construction.
//   - ErrNoVertices:            empty vertex list at construction.
//   - ErrNilCostFunc:           no edge-cost evaluator at construction.
//   - ErrBadVertexIndex:        a vertex's Index disagrees with its list position.
//   - ErrVertexNotListed:       start or goal is not an element of the vertex list.
//   - ErrNegativeCost:          the evaluator produced a negative edge cost mid-run.
//   - ErrQueryMismatch:         the evaluator returned input/output sequences of unequal length.
package dijkstra
