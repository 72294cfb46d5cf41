package evaluate

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/foundry/blueprint"
	"github.com/katalvlaran/foundry/search"
)

// job is one search; idx is its slot in the result slice.
type job struct {
	idx     int
	bp      *blueprint.Blueprint
	horizon int
}

// outcome is what a worker reports back for one job.
type outcome struct {
	idx int
	my  ModelYield
	err error
}

// run executes jobs on a pool of workers and returns yields in job order.
// The first failing job cancels the rest and its error is returned.
func run(ctx context.Context, jobs []job, o Options) ([]ModelYield, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	resultCh := make(chan outcome, len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				if ctx.Err() != nil {
					resultCh <- outcome{idx: j.idx, err: ctx.Err()}
					continue
				}
				my, err := evaluateOne(ctx, j, o)
				resultCh <- outcome{idx: j.idx, my: my, err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]ModelYield, len(jobs))
	var firstErr error
	for r := range resultCh {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
				cancel()
			}
			continue
		}
		out[r.idx] = r.my
		if o.Verbose {
			fmt.Fprintf(o.Log, "[evaluate] blueprint %d @%d: yield=%d nodes=%d cached=%t\n",
				r.my.ID, r.my.Horizon, r.my.Yield, r.my.Stats.Nodes, r.my.Cached)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

// evaluateOne searches a single blueprint with a fresh engine, going through
// the yield cache when one is configured.
func evaluateOne(ctx context.Context, j job, o Options) (ModelYield, error) {
	my := ModelYield{ID: j.bp.ID(), Horizon: j.horizon}
	if o.Cache != nil {
		if y, ok := o.Cache.Get(j.bp, j.horizon); ok {
			my.Yield, my.Cached = y, true
			return my, nil
		}
	}

	opts := make([]search.Option, 0, len(o.Search)+1)
	opts = append(opts, o.Search...)
	opts = append(opts, search.WithContext(ctx))
	res, err := search.MaxYield(j.bp, j.horizon, opts...)
	if err != nil {
		return ModelYield{}, fmt.Errorf("evaluate: blueprint %d @%d: %w", j.bp.ID(), j.horizon, err)
	}
	my.Yield, my.Stats = res.Yield, res.Stats
	if o.Cache != nil {
		o.Cache.Put(j.bp, j.horizon, res.Yield)
	}

	return my, nil
}
