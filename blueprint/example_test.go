package blueprint_test

import (
	"fmt"

	"github.com/katalvlaran/foundry/blueprint"
)

// ExampleNew builds the first published blueprint and prints its caps.
func ExampleNew() {
	bp, err := blueprint.New(1, [blueprint.NumResources][]int{
		blueprint.Ore:      {4},
		blueprint.Clay:     {2},
		blueprint.Obsidian: {3, 14},
		blueprint.Geode:    {2, 7},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range []blueprint.Resource{blueprint.Ore, blueprint.Clay, blueprint.Obsidian} {
		fmt.Printf("%s cap: %d\n", r, bp.Cap(r))
	}
	// Output:
	// ore cap: 3
	// clay cap: 14
	// obsidian cap: 7
}

// ExampleParseJSON reads a blueprint list and prints it in puzzle wording.
func ExampleParseJSON() {
	bps, err := blueprint.ParseJSON(`[{"id":2,"ore":[2],"clay":[3],"obsidian":[3,8],"geode":[3,12]}]`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bps[0])
	// Output:
	// Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
}
