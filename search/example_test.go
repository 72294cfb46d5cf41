package search_test

import (
	"fmt"

	"github.com/katalvlaran/foundry/blueprint"
	"github.com/katalvlaran/foundry/search"
)

// ExampleMaxYield searches the first published blueprint for 24 minutes.
func ExampleMaxYield() {
	bp, err := blueprint.Parse("Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. " +
		"Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.MaxYield(bp, 24)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("geodes:", res.Yield)
	// Output:
	// geodes: 9
}

// ExampleExhaustive cross-checks the tuned search against plain enumeration.
func ExampleExhaustive() {
	bp, _ := blueprint.New(1, [blueprint.NumResources][]int{
		blueprint.Ore:      {1},
		blueprint.Clay:     {1},
		blueprint.Obsidian: {1, 1},
		blueprint.Geode:    {1, 1},
	})

	tuned, _ := search.MaxYield(bp, 10)
	plain, _ := search.MaxYield(bp, 10, search.Exhaustive())
	fmt.Println(tuned.Yield, plain.Yield, tuned.Stats.Nodes < plain.Stats.Nodes)
	// Output:
	// 10 10 true
}
