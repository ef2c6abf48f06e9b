package scan_test

import (
	"fmt"

	"github.com/bitcloud2/bayesian-algorithm-execution/algorithm"
	"github.com/bitcloud2/bayesian-algorithm-execution/scan"
)

// ExampleAverageOutputs runs the averaging variant over a 4-point grid
// against the oracle f(x) = x².
func ExampleAverageOutputs() {
	avg, err := scan.NewAverageOutputs([][]float64{{0}, {1}, {2}, {3}})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	tr, mean, err := algorithm.Run[float64](avg, func(x []float64) float64 {
		return x[0] * x[0]
	})
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	fmt.Println("queries:", tr.Len())
	fmt.Println("mean:", mean)
	// Output:
	// queries: 4
	// mean: 3.5
}

// ExampleSortOutputs ranks grid points by their oracle response.
func ExampleSortOutputs() {
	srt, err := scan.NewSortOutputs([][]float64{{3}, {1}, {2}, {0}})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	_, order, err := algorithm.Run[[]int](srt, func(x []float64) float64 {
		return x[0] * x[0]
	})
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	fmt.Println("ascending:", order)
	// Output:
	// ascending: [3 1 2 0]
}
