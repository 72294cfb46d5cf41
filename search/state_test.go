package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foundry/blueprint"
	"github.com/katalvlaran/foundry/search"
)

// TestInitial checks the start state: one ore robot, nothing else.
func TestInitial(t *testing.T) {
	s := search.Initial(24)
	assert.Equal(t, int16(24), s.Minutes)
	assert.Equal(t, [blueprint.NumResources]int16{1, 0, 0, 0}, s.Rate)
	assert.Equal(t, [blueprint.NumResources]int16{}, s.Stock)
	assert.False(t, s.Terminal())
	assert.Equal(t, 0, s.Yield())
}

// TestAdvance collects one unit per robot and clears the skip set.
func TestAdvance(t *testing.T) {
	s := search.State{
		Minutes: 5,
		Stock:   [blueprint.NumResources]int16{1, 2, 3, 4},
		Rate:    [blueprint.NumResources]int16{1, 2, 0, 3},
		Skip:    search.SkipSet(0).With(blueprint.Clay),
	}
	n := s.Advance()
	assert.Equal(t, int16(4), n.Minutes)
	assert.Equal(t, [blueprint.NumResources]int16{2, 4, 3, 7}, n.Stock)
	assert.Equal(t, s.Rate, n.Rate)
	assert.False(t, n.Skip.Has(blueprint.Clay))
	assert.Equal(t, 7, n.Yield())

	// s is a value: advancing never mutates it.
	assert.Equal(t, int16(5), s.Minutes)
}

// TestPurchase pays from the advanced stock and adds the robot afterwards.
func TestPurchase(t *testing.T) {
	bp := example1(t)
	s := search.State{
		Minutes: 10,
		Stock:   [blueprint.NumResources]int16{3, 14, 0, 0},
		Rate:    [blueprint.NumResources]int16{1, 4, 0, 0},
	}

	n, ok := s.Purchase(bp, blueprint.Obsidian)
	require.True(t, ok)
	assert.Equal(t, int16(9), n.Minutes)
	assert.Equal(t, [blueprint.NumResources]int16{1, 4, 0, 0}, n.Stock)
	assert.Equal(t, [blueprint.NumResources]int16{1, 4, 1, 0}, n.Rate)

	_, ok = s.Purchase(bp, blueprint.Ore)
	assert.False(t, ok, "ore robot costs 4 ore")

	_, ok = search.State{Stock: s.Stock, Rate: s.Rate}.Purchase(bp, blueprint.Clay)
	assert.False(t, ok, "no time left")

	_, ok = s.Purchase(nil, blueprint.Clay)
	assert.False(t, ok)
}

// TestSkipSet covers membership and value semantics.
func TestSkipSet(t *testing.T) {
	var k search.SkipSet
	assert.False(t, k.Has(blueprint.Ore))

	k2 := k.With(blueprint.Ore).With(blueprint.Obsidian)
	assert.True(t, k2.Has(blueprint.Ore))
	assert.True(t, k2.Has(blueprint.Obsidian))
	assert.False(t, k2.Has(blueprint.Clay))
	assert.False(t, k.Has(blueprint.Ore), "With returns a new set")
}

// TestState_MemoKey ensures the skip set distinguishes otherwise equal states.
func TestState_MemoKey(t *testing.T) {
	a := search.Initial(10)
	b := search.Initial(10)
	b.Skip = b.Skip.With(blueprint.Ore)

	m := map[search.State]int{a: 1, b: 2}
	assert.Len(t, m, 2)
	assert.Equal(t, "m=10 stock=[0 0 0 0] rate=[1 0 0 0] skip=0001", b.String())
}
