package search

import (
	"github.com/katalvlaran/foundry/blueprint"
)

// MaxYield returns the largest geode stock reachable by bp within horizon
// minutes, starting from Initial(horizon).
//
// Errors: ErrNilBlueprint, ErrBadHorizon, or the context error when
// cancelled.
func MaxYield(bp *blueprint.Blueprint, horizon int, opts ...Option) (Result, error) {
	if horizon < 1 || horizon > MaxHorizon {
		return Result{}, ErrBadHorizon
	}

	return MaxYieldFrom(bp, Initial(horizon), opts...)
}

// MaxYieldFrom searches from an arbitrary start state. The start state's
// skip set is honoured as given.
//
// Errors: ErrNilBlueprint, ErrBadState, or the context error when cancelled.
func MaxYieldFrom(bp *blueprint.Blueprint, start State, opts ...Option) (Result, error) {
	if bp == nil {
		return Result{}, ErrNilBlueprint
	}
	if !start.valid() {
		return Result{}, ErrBadState
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	e := newEngine(bp, o)
	root := e.dfs(start)
	if e.err != nil {
		return Result{}, e.err
	}

	e.stats.CacheSize = len(e.cache)

	return Result{Yield: max(root, e.best), Stats: e.stats}, nil
}
