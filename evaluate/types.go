package evaluate

import (
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/katalvlaran/foundry/search"
	"github.com/katalvlaran/foundry/yieldcache"
)

// DefaultProductSize is how many leading blueprints form the product subset
// when none is given.
const DefaultProductSize = 3

var (
	// ErrNoModels is returned when no blueprint is given.
	ErrNoModels = errors.New("evaluate: no blueprints")

	// ErrNilModel is returned when the blueprint list holds nil.
	ErrNilModel = errors.New("evaluate: nil blueprint")

	// ErrDuplicateModel is returned when two blueprints share an id.
	ErrDuplicateModel = errors.New("evaluate: duplicate blueprint id")

	// ErrUnknownModel is returned when a subset id matches no blueprint.
	ErrUnknownModel = errors.New("evaluate: unknown blueprint id")

	// ErrOverflow is returned when an aggregate exceeds int64.
	ErrOverflow = errors.New("evaluate: aggregate overflows int64")
)

// Option configures an evaluation.
type Option func(*Options)

// Options controls the worker pool and what each search does.
type Options struct {
	// Workers is the number of worker goroutines; values < 1 mean GOMAXPROCS.
	Workers int

	// Verbose prints one line per finished search to Log.
	Verbose bool

	// Log receives progress lines when Verbose is set.
	Log io.Writer

	// Search is forwarded to every search.MaxYield call.
	Search []search.Option

	// Cache, if non-nil, is consulted before and filled after each search.
	// See WithCache for which option sets may share one.
	Cache *yieldcache.Cache
}

// DefaultOptions returns GOMAXPROCS workers, quiet logging to stderr, the
// default search rules and no cache.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Verbose: false,
		Log:     os.Stderr,
		Search:  nil,
		Cache:   nil,
	}
}

// WithWorkers sets the pool size; n < 1 keeps GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithVerbose enables progress lines.
func WithVerbose() Option { return func(o *Options) { o.Verbose = true } }

// WithLogWriter redirects progress lines. A nil writer has no effect.
func WithLogWriter(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Log = w
		}
	}
}

// WithSearchOptions appends options forwarded to every search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithCache enables cross-call reuse of yields. Entries are keyed by prices
// and horizon only, not by the forwarded search options, so a cache may be
// shared only by evaluations whose search options all return the true
// optimum. Every rule toggle of package search qualifies; a custom option
// that changes the yield needs its own cache.
func WithCache(c *yieldcache.Cache) Option { return func(o *Options) { o.Cache = c } }

// ModelYield is the outcome of one blueprint at one horizon.
type ModelYield struct {
	ID      int
	Horizon int
	Yield   int

	// Cached reports that Yield came from the yield cache; Stats is then zero.
	Cached bool
	Stats  search.Stats
}

// Summary holds both aggregates and the per-blueprint yields behind them,
// each list in input order.
type Summary struct {
	QualitySum int64
	Product    int64

	Quality  []ModelYield // every blueprint at horizon A
	Selected []ModelYield // the product subset at horizon B
}
