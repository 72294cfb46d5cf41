package blueprint

import (
	"fmt"
	"strings"
)

// Blueprint is an immutable robot price list with derived production caps.
// A *Blueprint is safe for concurrent reads.
type Blueprint struct {
	id int

	// cost[robot][resource] is the dense price of one robot.
	cost [NumResources][NumResources]int

	// caps[resource] is the largest useful production rate.
	caps [NumResources]int
}

// New validates costs and builds a Blueprint.
//
// costs[r] lists the price of one robot of kind r, one entry per resource
// of Inputs(r) and in that order:
//
//	Ore:      {ore}
//	Clay:     {ore}
//	Obsidian: {ore, clay}
//	Geode:    {ore, obsidian}
//
// Errors: ErrBadID, ErrCostShape, ErrCostRange.
//
// Complexity: O(1).
func New(id int, costs [NumResources][]int) (*Blueprint, error) {
	if err := validate(id, costs); err != nil {
		return nil, err
	}

	b := &Blueprint{id: id}
	var (
		robot Resource
		i     int
	)
	for robot = Ore; robot <= Geode; robot++ {
		for i = range inputs[robot] {
			b.cost[robot][inputs[robot][i]] = costs[robot][i]
		}
	}
	b.deriveCaps()

	return b, nil
}

// deriveCaps sets each non-terminal cap to the largest amount of that
// resource any other robot purchase consumes in a single minute.
func (b *Blueprint) deriveCaps() {
	b.caps[Ore] = max(b.cost[Clay][Ore], b.cost[Obsidian][Ore], b.cost[Geode][Ore])
	b.caps[Clay] = b.cost[Obsidian][Clay]
	b.caps[Obsidian] = b.cost[Geode][Obsidian]
	b.caps[Geode] = Unbounded
}

// ID returns the blueprint's identifying index (≥ 1).
func (b *Blueprint) ID() int { return b.id }

// Cost returns the dense price of one robot of kind robot, indexed by
// Resource. Resources the robot is not paid with are zero.
func (b *Blueprint) Cost(robot Resource) [NumResources]int {
	if !robot.Valid() {
		return [NumResources]int{}
	}

	return b.cost[robot]
}

// Cap returns the largest useful production rate of resource r.
// Cap(Geode) is Unbounded.
func (b *Blueprint) Cap(r Resource) int {
	if !r.Valid() {
		return 0
	}

	return b.caps[r]
}

// Affordable reports whether stock covers the full price of one robot of
// kind robot.
func (b *Blueprint) Affordable(robot Resource, stock [NumResources]int) bool {
	if !robot.Valid() {
		return false
	}
	var r int
	for r = 0; r < NumResources; r++ {
		if stock[r] < b.cost[robot][r] {
			return false
		}
	}

	return true
}

// Costs returns the price list in the sparse form accepted by New.
func (b *Blueprint) Costs() [NumResources][]int {
	var out [NumResources][]int
	var robot Resource
	for robot = Ore; robot <= Geode; robot++ {
		out[robot] = make([]int, len(inputs[robot]))
		for i, in := range inputs[robot] {
			out[robot][i] = b.cost[robot][in]
		}
	}

	return out
}

// String renders b in the puzzle text format accepted by Parse.
func (b *Blueprint) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blueprint %d:", b.id)
	var robot Resource
	for robot = Ore; robot <= Geode; robot++ {
		fmt.Fprintf(&sb, " Each %s robot costs", robot)
		for i, in := range inputs[robot] {
			if i > 0 {
				sb.WriteString(" and")
			}
			fmt.Fprintf(&sb, " %d %s", b.cost[robot][in], in)
		}
		sb.WriteByte('.')
	}

	return sb.String()
}
