// Package search_test provides helpers shared across *_test.go files in this
// package: fixture blueprints and small assertions.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foundry/blueprint"
)

// mkBlueprint builds a blueprint from the six prices of the puzzle wording.
func mkBlueprint(t testing.TB, id, oreOre, clayOre, obsOre, obsClay, geoOre, geoObs int) *blueprint.Blueprint {
	t.Helper()
	bp, err := blueprint.New(id, [blueprint.NumResources][]int{
		blueprint.Ore:      {oreOre},
		blueprint.Clay:     {clayOre},
		blueprint.Obsidian: {obsOre, obsClay},
		blueprint.Geode:    {geoOre, geoObs},
	})
	require.NoError(t, err)

	return bp
}

// example1 and example2 are the two published example blueprints.
func example1(t testing.TB) *blueprint.Blueprint { return mkBlueprint(t, 1, 4, 2, 3, 14, 2, 7) }
func example2(t testing.TB) *blueprint.Blueprint { return mkBlueprint(t, 2, 2, 3, 3, 8, 3, 12) }

// cheap makes every robot cost one unit of each input: geodes appear early,
// which gives small horizons a non-trivial search.
func cheap(t testing.TB) *blueprint.Blueprint { return mkBlueprint(t, 3, 1, 1, 1, 1, 1, 1) }

// medium sits between cheap and the published examples.
func medium(t testing.TB) *blueprint.Blueprint { return mkBlueprint(t, 4, 2, 2, 2, 3, 2, 2) }

// fixtures returns all four blueprints with readable names.
func fixtures(t testing.TB) map[string]*blueprint.Blueprint {
	return map[string]*blueprint.Blueprint{
		"example1": example1(t),
		"example2": example2(t),
		"cheap":    cheap(t),
		"medium":   medium(t),
	}
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
