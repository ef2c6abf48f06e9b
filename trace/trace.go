// Package trace defines the execution trace: the ordered record of every
// (input, output) pair observed while an algorithm queries a black-box
// oracle function.
//
// A Trace is the one result shape shared by every algorithm variant.
// The two sequences grow in lockstep — Outputs[i] is always the oracle's
// response to Inputs[i] — and a trace is append-only: entries are never
// removed or rewritten. Once a run completes, its trace must be treated
// as read-only by callers.
//
// Complexity:
//
//   - Append: amortized O(1)
//   - Len:    O(1)
//   - Space:  O(n · d) for n observations of dimension d
package trace

// Trace records the sequence of oracle queries made during one
// algorithm run. Inputs and Outputs always have equal length.
//
// A Trace is owned by exactly one run; it is not safe for concurrent
// mutation, matching the strictly sequential query model.
type Trace struct {
	// Inputs holds each query point, in query order.
	Inputs [][]float64

	// Outputs holds the oracle response for the same-index input.
	Outputs []float64
}

// New returns an empty trace, ready to record a run.
// Complexity: O(1)
func New() *Trace {
	return &Trace{}
}

// Append records one observation: the query point x and the oracle's
// response y. The pair is appended atomically with respect to the
// lockstep invariant — both sequences grow together or not at all.
// Complexity: amortized O(1)
func (t *Trace) Append(x []float64, y float64) {
	t.Inputs = append(t.Inputs, x)
	t.Outputs = append(t.Outputs, y)
}

// Len returns the number of recorded (input, output) pairs.
// Complexity: O(1)
func (t *Trace) Len() int {
	return len(t.Inputs)
}
