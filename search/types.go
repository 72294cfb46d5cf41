package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/foundry/blueprint"
)

// MaxHorizon is the longest supported horizon. With blueprint.MaxCost it
// keeps every State field well inside int16.
const MaxHorizon = 32

// Limits on a caller-supplied start state. Stock grows by at most
// Rate·m + m·(m−1)/2 within m minutes, so with MaxHorizon these keep every
// reachable stock and rate below math.MaxInt16.
const (
	MaxStock = 16384
	MaxRate  = 256
)

var (
	// ErrNilBlueprint is returned when a nil *blueprint.Blueprint is searched.
	ErrNilBlueprint = errors.New("search: blueprint is nil")

	// ErrBadHorizon is returned for a horizon outside [1, MaxHorizon].
	ErrBadHorizon = errors.New("search: horizon out of range")

	// ErrBadState is returned when a start State has minutes outside
	// [0, MaxHorizon], stock outside [0, MaxStock] or rate outside
	// [0, MaxRate].
	ErrBadState = errors.New("search: invalid start state")
)

// Option configures a search. Use with MaxYield(bp, horizon, opts...).
type Option func(*Options)

// Options holds the search policies. Every pruning rule can be disabled
// independently; none of them changes the result on sound inputs, only the
// number of visited nodes.
type Options struct {
	// Ctx allows cancellation; checked every 4096 nodes.
	Ctx context.Context

	// Memo caches subtree values by exact State.
	Memo bool

	// ForcedTerminal buys a geode robot whenever affordable, without
	// exploring alternatives. When false, geode robots are ordinary branches.
	ForcedTerminal bool

	// Shortcuts enables the closed-form last minutes and the per-kind
	// usefulness horizon.
	Shortcuts bool

	// BoundPruning abandons branches whose Bound does not beat the incumbent.
	BoundPruning bool

	// Suppression stops re-offering robots declined by idling.
	Suppression bool

	// Caps stops buying robots of a resource already at blueprint.Cap.
	Caps bool

	// OnVisit, if non-nil, is invoked for every node entered, before any rule
	// is applied.
	OnVisit func(s State)
}

// DefaultOptions returns Options with every rule enabled and a background
// context.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Memo:           true,
		ForcedTerminal: true,
		Shortcuts:      true,
		BoundPruning:   true,
		Suppression:    true,
		Caps:           true,
		OnVisit:        nil,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMemo toggles memoization.
func WithMemo(on bool) Option { return func(o *Options) { o.Memo = on } }

// WithForcedTerminal toggles the forced geode purchase.
func WithForcedTerminal(on bool) Option { return func(o *Options) { o.ForcedTerminal = on } }

// WithShortcuts toggles the last-minute closed forms and usefulness horizon.
func WithShortcuts(on bool) Option { return func(o *Options) { o.Shortcuts = on } }

// WithBoundPruning toggles pruning against the incumbent.
func WithBoundPruning(on bool) Option { return func(o *Options) { o.BoundPruning = on } }

// WithSuppression toggles duplicate-branch suppression.
func WithSuppression(on bool) Option { return func(o *Options) { o.Suppression = on } }

// WithCaps toggles the production-rate caps.
func WithCaps(on bool) Option { return func(o *Options) { o.Caps = on } }

// WithOnVisit installs a hook called for every node entered.
func WithOnVisit(fn func(s State)) Option { return func(o *Options) { o.OnVisit = fn } }

// Exhaustive disables every pruning rule but keeps memoization: a plain
// enumeration of all purchase sequences.
func Exhaustive() Option {
	return func(o *Options) {
		o.ForcedTerminal = false
		o.Shortcuts = false
		o.BoundPruning = false
		o.Suppression = false
		o.Caps = false
	}
}

// Stats are per-search diagnostics.
type Stats struct {
	Nodes      int // nodes entered
	CacheHits  int // memo lookups that hit
	CacheSize  int // distinct states memoized
	Pruned     int // nodes abandoned by Bound
	Forced     int // forced geode purchases
	Shortcuts  int // closed-form returns
	Suppressed int // robot offers withheld by suppression
}

// Result is the outcome of one search.
type Result struct {
	// Yield is the largest final geode stock found.
	Yield int

	Stats Stats
}

// skipBit is the SkipSet bit of each resource kind.
func skipBit(r blueprint.Resource) SkipSet { return 1 << r }

// SkipSet is the set of robot kinds declined by idling since the last
// purchase.
type SkipSet uint8

// Has reports whether r is in the set.
func (k SkipSet) Has(r blueprint.Resource) bool { return k&skipBit(r) != 0 }

// With returns the set plus r.
func (k SkipSet) With(r blueprint.Resource) SkipSet { return k | skipBit(r) }
