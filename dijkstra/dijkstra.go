// Package dijkstra: oracle-driven uniform-cost search implementation.
//
// ShortestPath satisfies algorithm.Algorithm[Result] for protocol
// uniformity and algorithm.Runner[Result] for its actual control flow:
// the generic pull loop cannot drive this variant because edge costs
// are needed eagerly to order the internal frontier.
package dijkstra

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/graph"
	"github.com/bitcloud2/bayesian-algorithm-execution/trace"
)

// ShortestPath is the shortest-path algorithm variant. Construct with
// New; the parameter bundle is immutable afterwards, and every Run
// allocates its own bookkeeping, so a single instance may be run
// concurrently against independent oracles.
type ShortestPath struct {
	opts Options
}

// New validates the parameter bundle assembled from opts and returns a
// ready-to-run ShortestPath.
//
// Validation (in order):
//  1. Start must be non-nil (ErrNilStart).
//  2. Goal must be non-nil (ErrNilGoal).
//  3. Vertices must be non-empty (ErrNoVertices).
//  4. Cost must be non-nil (ErrNilCostFunc).
//  5. Every Vertices[i] must be non-nil with Index == i (ErrBadVertexIndex).
//  6. Start and Goal must be elements of Vertices (ErrVertexNotListed).
//
// Complexity: O(V) for the index validation scan.
func New(opts ...Option) (*ShortestPath, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Start == nil {
		return nil, ErrNilStart
	}
	if cfg.Goal == nil {
		return nil, ErrNilGoal
	}
	if len(cfg.Vertices) == 0 {
		return nil, ErrNoVertices
	}
	if cfg.Cost == nil {
		return nil, ErrNilCostFunc
	}

	// Bookkeeping is array-backed, so indices must be dense and stable.
	for i, v := range cfg.Vertices {
		if v == nil || v.Index != i {
			return nil, fmt.Errorf("%w: position %d", ErrBadVertexIndex, i)
		}
	}
	if cfg.Start.Index < 0 || cfg.Start.Index >= len(cfg.Vertices) || cfg.Vertices[cfg.Start.Index] != cfg.Start {
		return nil, fmt.Errorf("%w: start", ErrVertexNotListed)
	}
	if cfg.Goal.Index < 0 || cfg.Goal.Index >= len(cfg.Vertices) || cfg.Vertices[cfg.Goal.Index] != cfg.Goal {
		return nil, fmt.Errorf("%w: goal", ErrVertexNotListed)
	}

	return &ShortestPath{opts: cfg}, nil
}

// Name returns the diagnostic label.
func (s *ShortestPath) Name() string { return s.opts.Name }

// NextQuery always reports completion: the search drives the oracle
// itself and never exposes queries one at a time.
func (s *ShortestPath) NextQuery(_ *trace.Trace) ([]float64, bool) {
	return nil, false
}

// Output fails with algorithm.ErrUnsupportedOutput: the (cost, path)
// result is produced directly by Run and cannot be rederived from a
// generic trace.
func (s *ShortestPath) Output(_ *trace.Trace) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s result must be consumed from Run", algorithm.ErrUnsupportedOutput, s.opts.Name)
}

// Run executes the search against oracle f and returns the execution
// trace together with the (cost, path) result.
//
// A fresh random source is created at entry (WithSeed, else wall
// clock) and handed to every CostFunc call, so parallel runs never
// share random state. On an error (negative edge cost, malformed
// evaluator result) the trace recorded so far is still returned.
func (s *ShortestPath) Run(f algorithm.Oracle) (*trace.Trace, Result, error) {
	if f == nil {
		return nil, Result{}, algorithm.ErrNilOracle
	}

	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := newRunner(s.opts, rand.New(rand.NewSource(seed)))
	res, err := r.search(f)
	if err != nil {
		return r.tr, Result{}, err
	}

	return r.tr, res, nil
}

// frontierItem is one (candidate cost, vertex) frontier entry. The
// frontier may hold several entries for the same vertex with different
// costs; stale ones are filtered at pop time via runner.explored.
type frontierItem struct {
	cost float64
	v    *graph.Vertex
}

// byCost orders frontier entries ascending by candidate cost.
func byCost(a, b interface{}) int {
	ca, cb := a.(*frontierItem).cost, b.(*frontierItem).cost
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	default:
		return 0
	}
}

// runner holds the mutable state of a single search run. All fields are
// allocated fresh per run and owned exclusively by it.
type runner struct {
	opts     Options
	rng      *rand.Rand       // per-run random source for the evaluator
	tr       *trace.Trace     // shared execution trace for this run
	explored []bool           // vertex finalized, never reconsidered
	minCost  []float64        // best-known cost from start, +Inf initially
	prev     []int            // predecessor index, graph.NoPredecessor initially
	frontier *binaryheap.Heap // min-heap of *frontierItem, lazy decrease-key
}

// newRunner allocates per-run bookkeeping sized by the vertex list.
// Complexity: O(V)
func newRunner(opts Options, rng *rand.Rand) *runner {
	n := len(opts.Vertices)
	r := &runner{
		opts:     opts,
		rng:      rng,
		tr:       trace.New(),
		explored: make([]bool, n),
		minCost:  make([]float64, n),
		prev:     make([]int, n),
		frontier: binaryheap.NewWith(byCost),
	}
	for i := 0; i < n; i++ {
		r.minCost[i] = math.Inf(1)
		r.prev[i] = graph.NoPredecessor
	}

	return r
}

// search is the main loop: pop the minimum-cost frontier entry, skip it
// if stale, finalize it, stop at the goal, otherwise relax its edges.
// A drained frontier means no path exists — a defined terminal outcome.
func (r *runner) search(f algorithm.Oracle) (Result, error) {
	r.minCost[r.opts.Start.Index] = 0
	r.frontier.Push(&frontierItem{cost: 0, v: r.opts.Start})

	expanded := 0
	for !r.frontier.Empty() {
		raw, _ := r.frontier.Pop()
		item := raw.(*frontierItem)
		cur := item.v

		// Stale duplicate: the vertex was finalized under a lower cost.
		if r.explored[cur.Index] {
			continue
		}
		r.explored[cur.Index] = true
		expanded++

		if cur.Index == r.opts.Goal.Index {
			return r.finish(item.cost, cur, expanded)
		}

		if err := r.relax(item.cost, cur, f); err != nil {
			return Result{}, err
		}
	}

	return Result{Cost: math.Inf(1), TrueCost: math.NaN(), Expanded: expanded}, nil
}

// relax evaluates the cost of each edge from u to a not-yet-explored
// neighbor, records the evaluator's queries in the trace, and pushes an
// improved (cost, neighbor) entry when a strictly better path is found.
//
// Assumes minCost[u] == base is finalized before the call.
func (r *runner) relax(base float64, u *graph.Vertex, f algorithm.Oracle) error {
	for _, v := range u.Neighbors {
		if r.explored[v.Index] {
			continue
		}

		cost, xs, ys := r.opts.Cost(u, v, f, r.rng)

		// The evaluator's queries enter the trace verbatim, in lockstep.
		if len(xs) != len(ys) {
			return fmt.Errorf("%w: edge %d→%d returned %d inputs, %d outputs",
				ErrQueryMismatch, u.Index, v.Index, len(xs), len(ys))
		}
		for i := range xs {
			r.tr.Append(xs[i], ys[i])
		}

		// Non-negativity is a correctness precondition, not a warning.
		if cost < 0 {
			return fmt.Errorf("%w: edge %d→%d cost=%g", ErrNegativeCost, u.Index, v.Index, cost)
		}

		candidate := base + cost
		if candidate < r.minCost[v.Index] {
			r.minCost[v.Index] = candidate
			r.prev[v.Index] = u.Index
			r.frontier.Push(&frontierItem{cost: candidate, v: v})
		}
	}

	return nil
}

// finish reconstructs the start→goal path from the predecessor array
// and, when a ground-truth cost function is configured, recomputes the
// path's cost under it for diagnostic reporting only.
func (r *runner) finish(cost float64, goal *graph.Vertex, expanded int) (Result, error) {
	indices, err := graph.BacktrackIndices(goal.Index, r.prev)
	if err != nil {
		return Result{}, fmt.Errorf("dijkstra: path reconstruction failed: %w", err)
	}

	path := make([]*graph.Vertex, len(indices))
	for i, idx := range indices {
		path[i] = r.opts.Vertices[idx]
	}

	res := Result{Cost: cost, Path: path, TrueCost: math.NaN(), Expanded: expanded}
	if r.opts.TrueCost != nil {
		var sum float64
		for i := 0; i+1 < len(path); i++ {
			sum += r.opts.TrueCost(path[i], path[i+1])
		}
		res.TrueCost = sum
	}

	return res, nil
}
