// Package scan: RightScan, the rightward local-minimization variant.
package scan

import (
	"errors"
	"fmt"

	"github.com/bitcloud2/bayesian-algorithm-execution/trace"
)

// RightScan defaults, applied by NewRightScan to zero-valued fields.
const (
	// DefaultGridGap is the rightward step between consecutive queries.
	DefaultGridGap = 0.1

	// DefaultConvThresh is the allowed degradation over the best
	// previous response before the scan stops.
	DefaultConvThresh = 0.2

	// DefaultMaxIter bounds the number of scan steps.
	DefaultMaxIter = 100
)

// DefaultInitX is the starting point when none is configured.
var DefaultInitX = []float64{4.0}

// Sentinel errors for RightScan construction.
var (
	// ErrBadGridGap indicates a non-positive scan step.
	ErrBadGridGap = errors.New("scan: GridGap must be positive")

	// ErrBadConvThresh indicates a negative convergence threshold.
	ErrBadConvThresh = errors.New("scan: ConvThresh must be non-negative")

	// ErrBadMaxIter indicates a negative step budget.
	ErrBadMaxIter = errors.New("scan: MaxIter must be non-negative")
)

// RightScanParams configures RightScan. Zero-valued fields take the
// package defaults; the resulting bundle is validated by NewRightScan
// and immutable afterwards.
type RightScanParams struct {
	// Name is the diagnostic label (default "RightScan").
	Name string

	// InitX is the first query point (default DefaultInitX).
	InitX []float64

	// GridGap is the rightward step added to the previous query's first
	// coordinate (default DefaultGridGap). Must be positive.
	GridGap float64

	// ConvThresh stops the scan once the last response exceeds the
	// minimum previous response by more than this margin (default
	// DefaultConvThresh). Must be non-negative.
	ConvThresh float64

	// MaxIter bounds the number of steps (default DefaultMaxIter);
	// exhausting it is a defined terminal outcome, not an error.
	MaxIter int
}

// RightScan minimizes by scanning rightward from an initial point until
// the oracle's response starts to degrade past ConvThresh, then reports
// the last queried input as its output.
type RightScan struct {
	params RightScanParams
}

// NewRightScan applies defaults to zero-valued fields of p, validates
// the bundle, and returns the variant.
func NewRightScan(p RightScanParams) (*RightScan, error) {
	if p.Name == "" {
		p.Name = "RightScan"
	}
	if p.InitX == nil {
		p.InitX = DefaultInitX
	}
	if p.GridGap == 0 {
		p.GridGap = DefaultGridGap
	}
	if p.ConvThresh == 0 {
		p.ConvThresh = DefaultConvThresh
	}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}

	if p.GridGap < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadGridGap, p.GridGap)
	}
	if p.ConvThresh < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadConvThresh, p.ConvThresh)
	}
	if p.MaxIter < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxIter, p.MaxIter)
	}
	// Immutable from here on; copy the caller's slice.
	p.InitX = append([]float64(nil), p.InitX...)

	return &RightScan{params: p}, nil
}

// Name returns the diagnostic label.
func (s *RightScan) Name() string { return s.params.Name }

// NextQuery steps right from the previous query, or reports completion
// once the last response degraded past the threshold or the step budget
// ran out. Pure in the trace and the immutable parameters.
func (s *RightScan) NextQuery(tr *trace.Trace) ([]float64, bool) {
	n := tr.Len()
	if n > s.params.MaxIter {
		return nil, false
	}

	// Converged: the last response exceeds the best previous one by
	// more than the allowed margin.
	if n >= 2 {
		best := tr.Outputs[0]
		for _, y := range tr.Outputs[:n-1] {
			if y < best {
				best = y
			}
		}
		if tr.Outputs[n-1] > best+s.params.ConvThresh {
			return nil, false
		}
	}

	if n == 0 {
		return append([]float64(nil), s.params.InitX...), true
	}

	return []float64{tr.Inputs[n-1][0] + s.params.GridGap}, true
}

// Output returns the last queried input — the point reached when the
// scan stopped. Returns ErrEmptyTrace for a trace with no observations.
func (s *RightScan) Output(tr *trace.Trace) ([]float64, error) {
	if tr.Len() == 0 {
		return nil, ErrEmptyTrace
	}

	return append([]float64(nil), tr.Inputs[tr.Len()-1]...), nil
}
