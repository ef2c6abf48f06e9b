// Package scan provides the grid-scanning algorithm variants built
// entirely on the generic pull protocol in package algorithm: each
// variant answers "what is the next query input?" from a precomputed
// (possibly randomized, possibly early-terminating) sequence and
// reduces the completed trace's outputs into its final result.
//
// Variants:
//
//   - LinearScan:     fixed grid; output is every recorded oracle response.
//   - RandGapScan:    re-grids each run with a randomly drawn point count
//     (±20% of the original grid) over the original
//     grid's [min, max] range; otherwise a LinearScan.
//   - AverageOutputs: fixed grid; output is the mean response.
//   - SortOutputs:    fixed grid; output is the ascending argsort of the
//     responses (stable: equal responses keep query order).
//   - RightScan:      local minimization; starts at InitX, steps right by
//     GridGap until the last response exceeds the best
//     previous response by ConvThresh, or MaxIter steps;
//     output is the last queried input.
//
// None of the variants hold mutable search state: NextQuery is a pure
// function of the trace and the immutable parameters, so a run against
// a deterministic oracle is fully reproducible. RandGapScan injects
// randomness only through its own per-run source, freshly seeded at
// run entry (WithSeed, else wall clock), never through global state.
//
// Parameter bundles are validated at construction and immutable during
// runs; step-budget exhaustion (RightScan's MaxIter) is a defined
// terminal outcome, not an error.
package scan
