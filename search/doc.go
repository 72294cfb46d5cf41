// Package search finds the largest number of geodes a blueprint can crack
// open within a fixed horizon, starting from a single ore robot.
//
// Each minute the factory may buy at most one robot, paid from the stock on
// hand at the start of the minute; every robot then collects one unit of its
// resource, and the new robot starts working the minute after. MaxYield
// explores these decisions with a depth-first branch-and-bound search.
//
// Rationale (succinct):
//  1. Memoization: subtree values are cached by the exact State, so build
//     orders that converge to the same stocks and rates are solved once.
//  2. Forced geode purchase: whenever a geode robot is affordable it is
//     bought and no alternative is explored.
//  3. Last-step shortcuts: with one minute left (or two, with no geode robot
//     affordable) the yield is a closed form. A non-geode robot bought with
//     m minutes left first adds stock at m−2, so ore and obsidian robots are
//     only offered while m ≥ 4 and clay robots while m ≥ 6.
//  4. Caps: a resource is never collected faster than any single purchase can
//     spend it (blueprint.Cap).
//  5. Bound pruning: Bound(s) over-approximates the best yield reachable from
//     s by assuming a new geode robot every remaining minute. Branches whose
//     bound does not beat the incumbent are abandoned.
//  6. Duplicate-branch suppression: a robot that was affordable but declined
//     by idling is not offered again until something is bought, since buying
//     it one minute earlier dominates.
//
// Every rule can be switched off through Options; Exhaustive() disables all
// of them except memoization and serves as a reference search in tests.
//
// Complexity:
//   - Worst case exponential in the horizon; practical speed comes from
//     pruning (horizon 32 on the published blueprints visits ~10⁵ nodes).
//   - Memory: O(distinct states) for the memo + O(horizon) recursion depth.
//
// Errors:
//   - ErrNilBlueprint  — blueprint is nil.
//   - ErrBadHorizon    — horizon outside [1, MaxHorizon].
//   - ErrBadState      — a start State outside [0, MaxHorizon] minutes, [0, MaxStock]
//     stock or [0, MaxRate] robots.
//   - ctx.Err()        — the context was cancelled during the search.
package search
