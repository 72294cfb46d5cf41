package search

import "github.com/katalvlaran/foundry/blueprint"

// Bound over-approximates the final geode stock reachable from s, assuming a
// new geode robot could be bought in every remaining minute:
//
//	Stock[Geode] + Rate[Geode]·m + m·(m−1)/2
//
// A robot bought with k minutes left cracks k−1 geodes, and Σ(k−1) over
// k = m..1 is the triangular term. Bound is never below the true optimum.
func Bound(s State) int {
	m := int(s.Minutes)

	return int(s.Stock[blueprint.Geode]) + int(s.Rate[blueprint.Geode])*m + m*(m-1)/2
}
