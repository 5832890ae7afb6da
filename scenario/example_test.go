package scenario_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chronocluster/scenario"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two tiny scenarios reduced independently. Results come back in job
//	order with each scenario's weights summing to its own period count.
//
// Use case:
//
//	Reducing many historical weather years in parallel before feeding a
//	duration-weighted optimization model.
func ExampleRun() {
	jobs := []scenario.Job{
		{ID: "1995", Periods: [][]float64{{0}, {1}, {2}, {10}}, TargetCount: 2},
		{ID: "1996", Periods: [][]float64{{5}, {5}, {9}}, TargetCount: 1},
	}

	results, err := scenario.Run(context.Background(), jobs, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range results {
		total := 0
		for _, c := range r.Clusters {
			total += c.Weight
		}
		fmt.Printf("%s: %d clusters, weights sum to %d\n", r.ID, len(r.Clusters), total)
	}
	// Output:
	// 1995: 2 clusters, weights sum to 4
	// 1996: 1 clusters, weights sum to 3
}
