package search

import (
	"fmt"

	"github.com/katalvlaran/foundry/blueprint"
)

// State is one point of the search space. It is a comparable value and is
// used directly as the memo key, so every field takes part in equality.
type State struct {
	// Minutes is the time remaining.
	Minutes int16

	// Stock is the amount of each resource on hand, indexed by blueprint.Resource.
	Stock [blueprint.NumResources]int16

	// Rate is the number of robots of each kind.
	Rate [blueprint.NumResources]int16

	// Skip holds robot kinds declined by idling since the last purchase.
	Skip SkipSet
}

// Initial returns the start state: one ore robot, empty stock.
func Initial(horizon int) State {
	var s State
	s.Minutes = int16(horizon)
	s.Rate[blueprint.Ore] = 1

	return s
}

// Terminal reports whether no time remains.
func (s State) Terminal() bool { return s.Minutes == 0 }

// Yield is the current geode stock.
func (s State) Yield() int { return int(s.Stock[blueprint.Geode]) }

// Advance spends one minute without buying anything. The skip set is cleared.
func (s State) Advance() State {
	n := s
	n.Minutes--
	for r := range n.Stock {
		n.Stock[r] += s.Rate[r]
	}
	n.Skip = 0

	return n
}

// Purchase spends one minute buying a robot of kind robot. It reports false
// when no time remains or the current stock does not cover the price.
func (s State) Purchase(b *blueprint.Blueprint, robot blueprint.Resource) (State, bool) {
	if s.Terminal() || b == nil || !b.Affordable(robot, s.stock()) {
		return s, false
	}
	cost := b.Cost(robot)
	n := s.Advance()
	for r := range n.Stock {
		n.Stock[r] -= int16(cost[r])
	}
	n.Rate[robot]++

	return n, true
}

// stock widens Stock for blueprint lookups.
func (s State) stock() [blueprint.NumResources]int {
	var out [blueprint.NumResources]int
	for r, v := range s.Stock {
		out[r] = int(v)
	}

	return out
}

// String renders s for diagnostics.
func (s State) String() string {
	return fmt.Sprintf("m=%d stock=%v rate=%v skip=%04b", s.Minutes, s.Stock, s.Rate, uint8(s.Skip))
}

// valid checks a caller-supplied start state.
func (s State) valid() bool {
	if s.Minutes < 0 || s.Minutes > MaxHorizon {
		return false
	}
	for r := range s.Stock {
		if s.Stock[r] < 0 || s.Stock[r] > MaxStock || s.Rate[r] < 0 || s.Rate[r] > MaxRate {
			return false
		}
	}

	return true
}
