// Package scan: fixed-grid variants (LinearScan, AverageOutputs,
// SortOutputs) and the shared option plumbing.
package scan

import (
	"errors"
	"sort"

	"github.com/bitcloud2/bayesian-algorithm-execution/trace"
)

// Sentinel errors for scan-variant construction and output derivation.
var (
	// ErrEmptyGrid indicates a grid-based variant was constructed
	// without any query points.
	ErrEmptyGrid = errors.New("scan: query grid is empty")

	// ErrEmptyTrace indicates an output was requested from a trace with
	// no observations, where the reduction is undefined.
	ErrEmptyTrace = errors.New("scan: execution trace is empty")
)

// settings carries the configuration shared by all scan variants.
type settings struct {
	name string
	seed int64
}

// Option is a functional option for configuring a scan variant.
type Option func(*settings)

// WithName overrides the variant's diagnostic label.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithSeed fixes the per-run random seed of randomized variants
// (RandGapScan) for reproducibility. Zero keeps the default
// clock-derived seeding. Non-randomized variants ignore it.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed }
}

// newSettings applies opts over the given default name.
func newSettings(defaultName string, opts []Option) settings {
	s := settings{name: defaultName}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// gridScan is the shared pull policy of the fixed-grid variants: the
// next query is simply the grid point at the trace's current length.
type gridScan struct {
	settings
	grid [][]float64
}

// Name returns the variant's diagnostic label.
func (g *gridScan) Name() string { return g.name }

// NextQuery returns the grid point at the trace's current position, or
// done once every grid point has been queried. Pure in the trace: only
// its length is consulted.
func (g *gridScan) NextQuery(tr *trace.Trace) ([]float64, bool) {
	if tr.Len() == len(g.grid) {
		return nil, false
	}

	return g.grid[tr.Len()], true
}

// cloneGrid defensively copies the caller's grid so the parameter
// bundle stays immutable for the variant's lifetime.
func cloneGrid(grid [][]float64) [][]float64 {
	out := make([][]float64, len(grid))
	for i, x := range grid {
		out[i] = append([]float64(nil), x...)
	}

	return out
}

// LinearScan scans a fixed grid and returns the oracle response at
// every grid point as its output.
type LinearScan struct {
	gridScan
}

// NewLinearScan returns a LinearScan over the given grid.
// Returns ErrEmptyGrid if the grid holds no points.
func NewLinearScan(grid [][]float64, opts ...Option) (*LinearScan, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	return &LinearScan{gridScan{settings: newSettings("LinearScan", opts), grid: cloneGrid(grid)}}, nil
}

// Output returns a copy of every recorded oracle response, in query order.
func (s *LinearScan) Output(tr *trace.Trace) ([]float64, error) {
	return append([]float64(nil), tr.Outputs...), nil
}

// AverageOutputs scans a fixed grid and returns the mean of the oracle
// responses as its output.
type AverageOutputs struct {
	gridScan
}

// NewAverageOutputs returns an AverageOutputs over the given grid.
// Returns ErrEmptyGrid if the grid holds no points.
func NewAverageOutputs(grid [][]float64, opts ...Option) (*AverageOutputs, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	return &AverageOutputs{gridScan{settings: newSettings("AverageOutputs", opts), grid: cloneGrid(grid)}}, nil
}

// Output returns the mean recorded response.
// Returns ErrEmptyTrace when no observations exist.
func (s *AverageOutputs) Output(tr *trace.Trace) (float64, error) {
	if tr.Len() == 0 {
		return 0, ErrEmptyTrace
	}

	var sum float64
	for _, y := range tr.Outputs {
		sum += y
	}

	return sum / float64(tr.Len()), nil
}

// SortOutputs scans a fixed grid and returns the ascending argsort of
// the oracle responses: the query indices reordered so that their
// responses are non-decreasing. The sort is stable, so equal responses
// keep query order.
type SortOutputs struct {
	gridScan
}

// NewSortOutputs returns a SortOutputs over the given grid.
// Returns ErrEmptyGrid if the grid holds no points.
func NewSortOutputs(grid [][]float64, opts ...Option) (*SortOutputs, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	return &SortOutputs{gridScan{settings: newSettings("SortOutputs", opts), grid: cloneGrid(grid)}}, nil
}

// Output returns the ascending argsort of the recorded responses.
func (s *SortOutputs) Output(tr *trace.Trace) ([]int, error) {
	order := make([]int, tr.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return tr.Outputs[order[i]] < tr.Outputs[order[j]]
	})

	return order, nil
}
