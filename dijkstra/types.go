// Package dijkstra defines the parameter bundle, functional options and
// sentinel errors for the oracle-driven shortest-path search.
//
// The parameter bundle is assembled once at construction via functional
// options, validated by New, and is immutable for the duration of every
// run. Malformed bundles (missing start/goal/vertices/cost evaluator)
// fail fast at construction, before any oracle query is issued.
package dijkstra

import (
	"errors"
	"math/rand"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/graph"
)

// Sentinel errors returned by the shortest-path implementation.
var (
	// ErrNilStart indicates no start vertex was configured.
	ErrNilStart = errors.New("dijkstra: start vertex is nil")

	// ErrNilGoal indicates no goal vertex was configured.
	ErrNilGoal = errors.New("dijkstra: goal vertex is nil")

	// ErrNoVertices indicates an empty vertex list was configured.
	ErrNoVertices = errors.New("dijkstra: vertex list is empty")

	// ErrNilCostFunc indicates no edge-cost evaluator was configured.
	ErrNilCostFunc = errors.New("dijkstra: cost function is nil")

	// ErrBadVertexIndex indicates a vertex whose Index field disagrees
	// with its position in the vertex list; per-vertex bookkeeping is
	// array-backed, so indices must be dense and 0-based.
	ErrBadVertexIndex = errors.New("dijkstra: vertex index does not match list position")

	// ErrVertexNotListed indicates the start or goal vertex is not an
	// element of the configured vertex list.
	ErrVertexNotListed = errors.New("dijkstra: vertex not present in vertex list")

	// ErrNegativeCost indicates the cost evaluator returned a negative
	// edge cost; search correctness requires non-negative costs, so the
	// run aborts immediately.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost")

	// ErrQueryMismatch indicates the cost evaluator returned query input
	// and output sequences of unequal length, which would break the
	// trace's lockstep invariant.
	ErrQueryMismatch = errors.New("dijkstra: evaluator query inputs and outputs differ in length")
)

// CostFunc estimates the traversal cost of edge (u, v). It may issue
// zero, one, or many queries against the oracle f; the returned xs/ys
// sequences (same length, in query order) are appended verbatim to the
// run's execution trace. rng is the run's private random source — a
// stochastic evaluator must draw from it, never from global state.
//
// The returned cost must be non-negative.
type CostFunc func(u, v *graph.Vertex, f algorithm.Oracle, rng *rand.Rand) (cost float64, xs [][]float64, ys []float64)

// TrueCostFunc reports the ground-truth cost of edge (u, v). It is used
// only to recompute the discovered path's cost for diagnostic reporting
// after a successful search — never for search decisions.
type TrueCostFunc func(u, v *graph.Vertex) float64

// Options configures the shortest-path search.
//
// Start/Goal/Vertices/Cost are required; New validates them. Vertices
// must be the full fixed vertex list with Vertices[i].Index == i, since
// it sizes the per-run bookkeeping arrays.
type Options struct {
	// Name is the diagnostic label for this algorithm instance.
	Name string

	// Start is the source vertex of the search.
	Start *graph.Vertex

	// Goal is the target vertex of the search.
	Goal *graph.Vertex

	// Vertices is the full fixed vertex list, indexed by Vertex.Index.
	Vertices []*graph.Vertex

	// Cost evaluates edge costs lazily through the oracle.
	Cost CostFunc

	// TrueCost optionally reports ground-truth edge costs for the
	// post-hoc path-cost diagnostic. Nil disables the diagnostic.
	TrueCost TrueCostFunc

	// Seed seeds the per-run random source. Zero (the default) derives
	// a fresh seed from the wall clock at run entry, so parallel runs
	// never share random state. Set a non-zero seed for reproducible
	// stochastic evaluators.
	Seed int64
}

// Option is a functional option for configuring the search.
type Option func(*Options)

// Start sets the source vertex. Required.
func Start(v *graph.Vertex) Option {
	return func(o *Options) { o.Start = v }
}

// Goal sets the target vertex. Required.
func Goal(v *graph.Vertex) Option {
	return func(o *Options) { o.Goal = v }
}

// WithVertices sets the full fixed vertex list. Required; must satisfy
// Vertices[i].Index == i.
func WithVertices(vs ...*graph.Vertex) Option {
	return func(o *Options) { o.Vertices = vs }
}

// WithCostFunc sets the lazy edge-cost evaluator. Required.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) { o.Cost = fn }
}

// WithTrueCost enables the ground-truth path-cost diagnostic using fn.
func WithTrueCost(fn TrueCostFunc) Option {
	return func(o *Options) { o.TrueCost = fn }
}

// WithName overrides the diagnostic label (default "Dijkstras").
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithSeed fixes the per-run random source's seed for reproducibility.
// Zero keeps the default clock-derived seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns an Options value with defaults applied.
// Start/Goal/Vertices/Cost stay unset and must be provided via options.
func DefaultOptions() Options {
	return Options{
		Name: "Dijkstras",
	}
}

// Result is the output of a shortest-path run.
//
// When no path exists, Cost is +Inf and Path is empty; this is a
// defined terminal outcome, not an error.
type Result struct {
	// Cost is the minimum start→goal cost under the evaluated edge
	// costs, or +Inf if the goal is unreachable.
	Cost float64

	// Path is the discovered start→goal vertex sequence, empty if the
	// goal is unreachable.
	Path []*graph.Vertex

	// TrueCost is the path's cost recomputed under the ground-truth
	// cost function, purely for diagnostics. NaN unless WithTrueCost
	// was configured and a path was found.
	TrueCost float64

	// Expanded counts the vertices finalized before termination.
	Expanded int
}
