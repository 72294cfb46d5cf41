// Package evaluate runs the yield search over many blueprints in parallel
// and folds the yields into the two aggregate scores:
//
//   - QualitySum: Σ id·yield over every blueprint at one horizon.
//   - Product:    Π yield over a chosen subset of blueprints at another horizon.
//
// Every blueprint is searched by its own engine with its own memo and
// incumbent; workers share nothing but the optional yieldcache.Cache, which
// only holds finished yields. Both reductions are commutative, so results do
// not depend on scheduling.
//
// Options:
//
//   - WithWorkers(n)          worker goroutines (default GOMAXPROCS).
//   - WithVerbose()           one progress line per finished search.
//   - WithLogWriter(w)        destination of progress lines (default stderr).
//   - WithSearchOptions(...)  options forwarded to every search.
//   - WithCache(c)            reuse yields across calls.
//
// Errors:
//
//   - ErrNoModels        if the model list is empty.
//   - ErrNilModel        if the list holds a nil blueprint.
//   - ErrDuplicateModel  if two blueprints share an id.
//   - ErrUnknownModel    if a product subset names a missing id.
//   - ErrOverflow        if an aggregate does not fit int64.
//   - any search error; the first one cancels the remaining jobs.
package evaluate
