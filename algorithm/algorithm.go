// Package algorithm defines the pull-based execution protocol shared by
// every algorithm variant in this module.
//
// An Algorithm is driven against a black-box Oracle by repeatedly asking
// "what is the next input to query?" until the algorithm signals
// completion; every (input, output) pair is recorded in a trace.Trace,
// and a final output is derived from the completed trace. The protocol
// is deliberately small:
//
//   - NextQuery must be a pure function of the trace and the algorithm's
//     immutable parameters: re-running against an identical oracle must
//     reproduce an identical trace (unless the variant itself injects
//     randomness through its own per-run source).
//   - Output derives the final result from a completed trace. Variants
//     whose result cannot be reconstructed from a generic trace (the
//     shortest-path search) return ErrUnsupportedOutput here.
//   - Run executes the default pull loop built only from the two
//     operations above. Variants needing oracle-driven internal control
//     implement Runner; Run dispatches to it and never touches
//     NextQuery/Output for such variants.
//
// Every run is single-threaded and synchronous: oracle calls block, in
// the exact order the algorithm's policy determines. Independent runs
// may execute concurrently because no state is shared across runs.
package algorithm

import (
	"errors"

	"github.com/bitcloud2/bayesian-algorithm-execution/trace"
)

// Sentinel errors for the execution protocol.
var (
	// ErrNilAlgorithm indicates Run was invoked with a nil algorithm.
	ErrNilAlgorithm = errors.New("algorithm: algorithm is nil")

	// ErrNilOracle indicates Run was invoked with a nil oracle function.
	ErrNilOracle = errors.New("algorithm: oracle is nil")

	// ErrUnsupportedOutput indicates the variant cannot derive its output
	// from a generic execution trace; its result must be consumed from
	// the variant's own Run return value instead.
	ErrUnsupportedOutput = errors.New("algorithm: output cannot be derived from the execution trace")
)

// Oracle is the black-box function under study. It is queried strictly
// sequentially, is side-effect-free from the algorithm's perspective,
// and may be stochastic.
type Oracle func(x []float64) float64

// Algorithm is the contract every variant satisfies, parameterized by
// its output type O.
//
// NextQuery returns the next input to submit to the oracle, or ok=false
// once the algorithm is complete. Output computes the final result from
// a completed trace.
type Algorithm[O any] interface {
	// Name returns the variant's diagnostic label.
	Name() string

	// NextQuery returns the next query input given the trace so far,
	// or ok=false when the algorithm has finished querying.
	NextQuery(tr *trace.Trace) (x []float64, ok bool)

	// Output derives the final result from a completed trace.
	// Returns ErrUnsupportedOutput for variants whose result is
	// produced directly by their own run procedure.
	Output(tr *trace.Trace) (O, error)
}

// Runner is implemented by variants that drive the oracle internally
// (e.g. a priority-queue search that needs edge costs eagerly) instead
// of exposing one query at a time through NextQuery. Run dispatches to
// it when present. A Runner still populates a trace of the same shape,
// so downstream consumers see a uniform result.
type Runner[O any] interface {
	Run(f Oracle) (*trace.Trace, O, error)
}

// Run executes algorithm a against oracle f and returns the recorded
// execution trace together with the derived output.
//
// Default control flow (for variants without a Runner implementation):
//
//  1. Ask a.NextQuery for the next input; stop on the done signal.
//  2. Query the oracle, append the (input, output) pair to the trace.
//  3. Once done, derive the output via a.Output.
//
// Complexity: O(q) oracle calls for q queries plus the cost of a's own
// policy; the trace grows by exactly one pair per query.
func Run[O any](a Algorithm[O], f Oracle) (*trace.Trace, O, error) {
	var zero O
	if a == nil {
		return nil, zero, ErrNilAlgorithm
	}
	if f == nil {
		return nil, zero, ErrNilOracle
	}

	// Variants with their own control flow bypass the pull loop entirely.
	if r, ok := a.(Runner[O]); ok {
		return r.Run(f)
	}

	tr := trace.New()
	for {
		x, ok := a.NextQuery(tr)
		if !ok {
			break
		}
		tr.Append(x, f(x))
	}

	out, err := a.Output(tr)
	if err != nil {
		return tr, zero, err
	}

	return tr, out, nil
}
