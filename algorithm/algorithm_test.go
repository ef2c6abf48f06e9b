package algorithm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/trace"
)

// listAlg is a minimal protocol implementation: it queries a fixed list
// of points and reports the number of observations as its output.
type listAlg struct {
	points [][]float64
}

func (a *listAlg) Name() string { return "listAlg" }

func (a *listAlg) NextQuery(tr *trace.Trace) ([]float64, bool) {
	if tr.Len() == len(a.points) {
		return nil, false
	}

	return a.points[tr.Len()], true
}

func (a *listAlg) Output(tr *trace.Trace) (int, error) {
	return tr.Len(), nil
}

// failingAlg cannot derive an output from a trace.
type failingAlg struct{ listAlg }

func (a *failingAlg) Output(_ *trace.Trace) (int, error) {
	return 0, algorithm.ErrUnsupportedOutput
}

// selfRunner overrides the control flow entirely; the pull loop must
// never be consulted.
type selfRunner struct{ listAlg }

func (a *selfRunner) Run(f algorithm.Oracle) (*trace.Trace, int, error) {
	tr := trace.New()
	tr.Append([]float64{42}, f([]float64{42}))

	return tr, -1, nil
}

func TestRun_NilAlgorithm(t *testing.T) {
	_, _, err := algorithm.Run[int](nil, func(x []float64) float64 { return 0 })
	require.ErrorIs(t, err, algorithm.ErrNilAlgorithm)
}

func TestRun_NilOracle(t *testing.T) {
	_, _, err := algorithm.Run[int](&listAlg{}, nil)
	require.ErrorIs(t, err, algorithm.ErrNilOracle)
}

// TestRun_PullLoop verifies the default loop: every NextQuery input is
// submitted to the oracle, each pair is appended in order, and Output
// sees the completed trace.
func TestRun_PullLoop(t *testing.T) {
	a := &listAlg{points: [][]float64{{0}, {1}, {2}}}
	tr, out, err := algorithm.Run[int](a, func(x []float64) float64 { return 2 * x[0] })
	require.NoError(t, err)

	require.Equal(t, 3, tr.Len())
	assert.Equal(t, 3, out)
	for i := 0; i < 3; i++ {
		assert.Equal(t, []float64{float64(i)}, tr.Inputs[i])
		assert.Equal(t, 2*float64(i), tr.Outputs[i])
	}
}

// TestRun_Deterministic verifies that two runs of a non-randomized
// variant against a deterministic oracle produce identical traces and
// outputs.
func TestRun_Deterministic(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] - x[0] }

	a := &listAlg{points: [][]float64{{0}, {1}, {2}, {3}}}
	tr1, out1, err1 := algorithm.Run[int](a, f)
	tr2, out2, err2 := algorithm.Run[int](a, f)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, tr1.Inputs, tr2.Inputs)
	assert.Equal(t, tr1.Outputs, tr2.Outputs)
	assert.Equal(t, out1, out2)
}

// TestRun_OutputError verifies the trace is still returned when the
// output cannot be derived.
func TestRun_OutputError(t *testing.T) {
	a := &failingAlg{listAlg{points: [][]float64{{1}}}}
	tr, _, err := algorithm.Run[int](a, func(x []float64) float64 { return 0 })

	require.Error(t, err)
	assert.True(t, errors.Is(err, algorithm.ErrUnsupportedOutput))
	require.NotNil(t, tr)
	assert.Equal(t, 1, tr.Len())
}

// TestRun_RunnerDispatch verifies variants with their own control flow
// bypass the pull loop entirely.
func TestRun_RunnerDispatch(t *testing.T) {
	a := &selfRunner{listAlg{points: [][]float64{{0}, {1}}}}
	tr, out, err := algorithm.Run[int](a, func(x []float64) float64 { return x[0] })
	require.NoError(t, err)

	// The runner queried once at 42, not the two listed points.
	assert.Equal(t, -1, out)
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, []float64{42}, tr.Inputs[0])
}
