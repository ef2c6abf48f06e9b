// Package scan: RandGapScan, the randomized-grid variant.
package scan

import (
	"math"
	"math/rand"
	"time"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/trace"
)

// regridFactor bounds the randomized point count at ±20% of the
// original grid size.
const regridFactor = 0.2

// RandGapScan scans a one-dimensional grid whose point count is redrawn
// on every run: uniformly in [⌈0.8·n⌉, ⌈1.2·n⌉) for an n-point original
// grid, evenly spaced over the original grid's [min, max] range. The
// output, like LinearScan's, is every recorded oracle response.
//
// The original grid is retained untouched; each Run derives a fresh
// grid from its own random source, so the parameter bundle stays
// immutable and parallel runs never share random state.
type RandGapScan struct {
	gridScan
}

// NewRandGapScan returns a RandGapScan over the given one-dimensional
// grid (the first coordinate of each point spans the scan range).
// Returns ErrEmptyGrid if the grid holds no points.
func NewRandGapScan(grid [][]float64, opts ...Option) (*RandGapScan, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	return &RandGapScan{gridScan{settings: newSettings("RandGapScan", opts), grid: cloneGrid(grid)}}, nil
}

// Output returns a copy of every recorded oracle response, in query order.
func (s *RandGapScan) Output(tr *trace.Trace) ([]float64, error) {
	return append([]float64(nil), tr.Outputs...), nil
}

// Run redraws the grid with this run's private random source, then
// delegates to the generic pull loop over a plain LinearScan of the
// new grid.
func (s *RandGapScan) Run(f algorithm.Oracle) (*trace.Trace, []float64, error) {
	if f == nil {
		return nil, nil, algorithm.ErrNilOracle
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	inner := &LinearScan{gridScan{settings: s.settings, grid: s.regrid(rng)}}

	return algorithm.Run[[]float64](inner, f)
}

// regrid draws the new point count and lays the points out evenly over
// the original grid's scalar range.
func (s *RandGapScan) regrid(rng *rand.Rand) [][]float64 {
	n := len(s.grid)
	minPoints := int(math.Ceil((1 - regridFactor) * float64(n)))
	maxPoints := int(math.Ceil((1 + regridFactor) * float64(n)))
	points := minPoints
	if maxPoints > minPoints {
		points += rng.Intn(maxPoints - minPoints)
	}

	lo, hi := s.grid[0][0], s.grid[0][0]
	for _, x := range s.grid {
		if x[0] < lo {
			lo = x[0]
		}
		if x[0] > hi {
			hi = x[0]
		}
	}

	grid := make([][]float64, points)
	for i := range grid {
		if points == 1 {
			grid[i] = []float64{lo}
			continue
		}
		grid[i] = []float64{lo + (hi-lo)*float64(i)/float64(points-1)}
	}

	return grid
}
