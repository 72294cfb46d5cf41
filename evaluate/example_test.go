package evaluate_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/foundry/blueprint"
	"github.com/katalvlaran/foundry/evaluate"
)

const published = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.`

// ExampleQualitySum sums id·yield over both published blueprints.
func ExampleQualitySum() {
	models, err := blueprint.ParseAll(strings.NewReader(published))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sum, err := evaluate.QualitySum(context.Background(), models, 24)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("quality:", sum)
	// Output:
	// quality: 33
}

// ExampleEvaluate prints the per-blueprint yields behind the sum.
func ExampleEvaluate() {
	models, _ := blueprint.ParseAll(strings.NewReader(published))

	s, err := evaluate.Evaluate(context.Background(), models, 24, 0, nil, evaluate.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, my := range s.Quality {
		fmt.Printf("blueprint %d: %d\n", my.ID, my.Yield)
	}
	// Output:
	// blueprint 1: 9
	// blueprint 2: 12
}
