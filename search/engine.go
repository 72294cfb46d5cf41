package search

import (
	"context"

	"github.com/katalvlaran/foundry/blueprint"
)

const (
	ore      = blueprint.Ore
	clay     = blueprint.Clay
	obsidian = blueprint.Obsidian
	geode    = blueprint.Geode
)

// usefulFrom is the smallest number of minutes left at which buying a robot
// of each kind can still raise the final yield. A geode robot bought at m
// cracks m−1 geodes; an ore or obsidian robot adds stock at m−2 that a geode
// robot can spend; a clay robot needs one more obsidian robot in between.
var usefulFrom = [blueprint.NumResources]int16{
	ore:      4,
	clay:     6,
	obsidian: 4,
	geode:    2,
}

// Branching order: highest tier first tightens the incumbent early. Geode
// robots are left out when their purchase is forced.
var (
	offerAll       = []blueprint.Resource{geode, obsidian, clay, ore}
	offerNonForced = []blueprint.Resource{obsidian, clay, ore}
)

// engine holds all search data and policies for one blueprint.
// It is never shared: each top-level search owns its memo and incumbent.
type engine struct {
	// Policy
	memo      bool
	forced    bool
	shortcuts bool
	prune     bool
	suppress  bool
	useCaps   bool
	onVisit   func(State)
	order     []blueprint.Resource

	// Cancellation
	ctx   context.Context
	steps int
	err   error

	// Blueprint data, prefetched into the State's integer width.
	cost [blueprint.NumResources][blueprint.NumResources]int16
	caps [blueprint.NumResources]int16

	// Search state
	cache map[State]int
	best  int // incumbent; never decreases
	stats Stats
}

// newEngine prefetches bp and applies opts.
func newEngine(bp *blueprint.Blueprint, opts Options) *engine {
	e := &engine{
		memo:      opts.Memo,
		forced:    opts.ForcedTerminal,
		shortcuts: opts.Shortcuts,
		prune:     opts.BoundPruning,
		suppress:  opts.Suppression,
		useCaps:   opts.Caps,
		onVisit:   opts.OnVisit,
		ctx:       opts.Ctx,
	}
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	e.order = offerAll
	if e.forced {
		e.order = offerNonForced
	}

	var robot blueprint.Resource
	for robot = ore; robot <= geode; robot++ {
		c := bp.Cost(robot)
		for r := range c {
			e.cost[robot][r] = int16(c[r])
		}
		e.caps[robot] = int16(bp.Cap(robot))
	}
	if e.memo {
		e.cache = make(map[State]int, 1<<12)
	}

	return e
}

// cancelled performs a rare context test (on the first node, then every 4096
// nodes) and latches the first error.
func (e *engine) cancelled() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if e.steps&4095 != 1 {
		return false
	}
	select {
	case <-e.ctx.Done():
		e.err = e.ctx.Err()
		return true
	default:
		return false
	}
}

// affordable reports whether s covers the price of one robot.
func (e *engine) affordable(s State, robot blueprint.Resource) bool {
	var r int
	for r = 0; r < blueprint.NumResources; r++ {
		if s.Stock[r] < e.cost[robot][r] {
			return false
		}
	}

	return true
}

// purchase advances one minute, pays for robot from the advanced stock and
// adds the robot. The skip set of the child is empty.
func (e *engine) purchase(s State, robot blueprint.Resource) State {
	n := s.Advance()
	var r int
	for r = 0; r < blueprint.NumResources; r++ {
		n.Stock[r] -= e.cost[robot][r]
	}
	n.Rate[robot]++

	return n
}

// offerable tells whether buying robot in s is worth a branch, ignoring
// suppression.
func (e *engine) offerable(s State, robot blueprint.Resource) bool {
	if e.useCaps && robot != geode && s.Rate[robot] >= e.caps[robot] {
		return false
	}
	if e.shortcuts && s.Minutes < usefulFrom[robot] {
		return false
	}

	return e.affordable(s, robot)
}

// record raises the incumbent to v if larger and returns v.
func (e *engine) record(v int) int {
	if v > e.best {
		e.best = v
	}

	return v
}

// dfs returns the best yield found below s. Values of pruned subtrees may be
// lower than their true optimum, but never above e.best at the time they are
// produced, so the incumbent stays exact.
func (e *engine) dfs(s State) int {
	if e.cancelled() {
		return 0
	}
	e.stats.Nodes++
	if e.onVisit != nil {
		e.onVisit(s)
	}

	// Terminal.
	if s.Minutes == 0 {
		return e.record(int(s.Stock[geode]))
	}

	if e.memo {
		if v, ok := e.cache[s]; ok {
			e.stats.CacheHits++
			return v
		}
	}

	// Forced geode purchase: no alternative branch.
	canGeode := e.affordable(s, geode)
	if e.forced && canGeode {
		e.stats.Forced++
		return e.dfs(e.purchase(s, geode))
	}

	// Closed forms: nothing bought now can add a geode before time runs out.
	if e.shortcuts && (s.Minutes == 1 || (s.Minutes == 2 && !canGeode)) {
		e.stats.Shortcuts++
		return e.record(int(s.Stock[geode]) + int(s.Rate[geode])*int(s.Minutes))
	}

	if e.prune && Bound(s) <= e.best {
		e.stats.Pruned++
		return 0
	}

	var (
		best     int
		v        int
		declined = s.Skip
		robot    blueprint.Resource
	)
	for _, robot = range e.order {
		if !e.offerable(s, robot) {
			continue
		}
		if e.suppress {
			declined = declined.With(robot)
			if s.Skip.Has(robot) {
				e.stats.Suppressed++
				continue
			}
		}
		if v = e.dfs(e.purchase(s, robot)); v > best {
			best = v
		}
	}

	// Idle branch carries every robot it declines.
	idle := s.Advance()
	if e.suppress {
		idle.Skip = declined
	}
	if v = e.dfs(idle); v > best {
		best = v
	}

	if e.memo && e.err == nil {
		e.cache[s] = best
	}

	return best
}
