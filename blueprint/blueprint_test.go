package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foundry/blueprint"
)

// exampleCosts is the first blueprint of the published puzzle example.
func exampleCosts() [blueprint.NumResources][]int {
	return [blueprint.NumResources][]int{
		blueprint.Ore:      {4},
		blueprint.Clay:     {2},
		blueprint.Obsidian: {3, 14},
		blueprint.Geode:    {2, 7},
	}
}

// TestNew_DenseCostsAndCaps checks the dense price table and derived caps.
func TestNew_DenseCostsAndCaps(t *testing.T) {
	bp, err := blueprint.New(1, exampleCosts())
	require.NoError(t, err)

	assert.Equal(t, 1, bp.ID())
	assert.Equal(t, [blueprint.NumResources]int{4, 0, 0, 0}, bp.Cost(blueprint.Ore))
	assert.Equal(t, [blueprint.NumResources]int{2, 0, 0, 0}, bp.Cost(blueprint.Clay))
	assert.Equal(t, [blueprint.NumResources]int{3, 14, 0, 0}, bp.Cost(blueprint.Obsidian))
	assert.Equal(t, [blueprint.NumResources]int{2, 0, 7, 0}, bp.Cost(blueprint.Geode))

	// Ore cap ignores the ore robot's own price (4): max(2, 3, 2) = 3.
	assert.Equal(t, 3, bp.Cap(blueprint.Ore))
	assert.Equal(t, 14, bp.Cap(blueprint.Clay))
	assert.Equal(t, 7, bp.Cap(blueprint.Obsidian))
	assert.Equal(t, blueprint.Unbounded, bp.Cap(blueprint.Geode))

	assert.Equal(t, exampleCosts(), bp.Costs())
}

// TestNew_Errors verifies the validation sentinels.
func TestNew_Errors(t *testing.T) {
	_, err := blueprint.New(0, exampleCosts())
	assert.ErrorIs(t, err, blueprint.ErrBadID)

	short := exampleCosts()
	short[blueprint.Obsidian] = []int{3}
	_, err = blueprint.New(1, short)
	assert.ErrorIs(t, err, blueprint.ErrCostShape, "obsidian robot needs ore and clay")

	missing := exampleCosts()
	missing[blueprint.Geode] = nil
	_, err = blueprint.New(1, missing)
	assert.ErrorIs(t, err, blueprint.ErrCostShape, "missing geode cost")

	long := exampleCosts()
	long[blueprint.Ore] = []int{4, 1}
	_, err = blueprint.New(1, long)
	assert.ErrorIs(t, err, blueprint.ErrCostShape)

	negative := exampleCosts()
	negative[blueprint.Clay] = []int{-1}
	_, err = blueprint.New(1, negative)
	assert.ErrorIs(t, err, blueprint.ErrCostRange)

	huge := exampleCosts()
	huge[blueprint.Geode] = []int{2, blueprint.MaxCost + 1}
	_, err = blueprint.New(1, huge)
	assert.ErrorIs(t, err, blueprint.ErrCostRange)
}

// TestAffordable covers exact, short and surplus stocks.
func TestAffordable(t *testing.T) {
	bp, err := blueprint.New(1, exampleCosts())
	require.NoError(t, err)

	assert.True(t, bp.Affordable(blueprint.Geode, [blueprint.NumResources]int{2, 0, 7, 0}))
	assert.False(t, bp.Affordable(blueprint.Geode, [blueprint.NumResources]int{1, 0, 7, 0}))
	assert.False(t, bp.Affordable(blueprint.Geode, [blueprint.NumResources]int{9, 9, 6, 9}))
	assert.True(t, bp.Affordable(blueprint.Clay, [blueprint.NumResources]int{5, 0, 0, 0}))
	assert.False(t, bp.Affordable(blueprint.Resource(9), [blueprint.NumResources]int{9, 9, 9, 9}))
}

// TestResource_Names checks names, validity and input lists.
func TestResource_Names(t *testing.T) {
	assert.Equal(t, "ore", blueprint.Ore.String())
	assert.Equal(t, "geode", blueprint.Geode.String())
	assert.Equal(t, "unknown", blueprint.Resource(7).String())
	assert.False(t, blueprint.Resource(4).Valid())

	assert.Equal(t, []blueprint.Resource{blueprint.Ore, blueprint.Obsidian}, blueprint.Inputs(blueprint.Geode))
	assert.Nil(t, blueprint.Inputs(blueprint.Resource(4)))
	assert.Equal(t, blueprint.Geode, blueprint.Resources()[blueprint.NumResources-1])
}
