package evaluate

import (
	"context"
	"math"

	"github.com/katalvlaran/foundry/blueprint"
)

// QualitySum searches every blueprint at horizon and returns Σ id·yield.
//
// Errors: ErrNoModels, ErrNilModel, ErrDuplicateModel, ErrOverflow, or a
// search error.
func QualitySum(ctx context.Context, models []*blueprint.Blueprint, horizon int, opts ...Option) (int64, error) {
	s, err := Evaluate(ctx, models, horizon, 0, []int{}, opts...)
	if err != nil {
		return 0, err
	}

	return s.QualitySum, nil
}

// Product searches the blueprints whose ids are listed in subset at horizon
// and returns the product of their yields. A nil subset selects the first
// DefaultProductSize blueprints; an empty product is 1.
//
// Errors: ErrNoModels, ErrNilModel, ErrDuplicateModel, ErrUnknownModel,
// ErrOverflow, or a search error.
func Product(ctx context.Context, models []*blueprint.Blueprint, horizon int, subset []int, opts ...Option) (int64, error) {
	s, err := Evaluate(ctx, models, 0, horizon, subset, opts...)
	if err != nil {
		return 0, err
	}

	return s.Product, nil
}

// Evaluate computes both aggregates in one worker pool: QualitySum over all
// models at horizonA and Product over subset at horizonB. A horizon of 0
// skips that aggregate (its value is then 0 for the sum and 1 for the
// product). A nil subset selects the first DefaultProductSize models.
//
// Errors: ErrNoModels, ErrNilModel, ErrDuplicateModel, ErrUnknownModel,
// ErrOverflow, or a search error.
func Evaluate(ctx context.Context, models []*blueprint.Blueprint, horizonA, horizonB int, subset []int, opts ...Option) (Summary, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	byID, err := index(models)
	if err != nil {
		return Summary{}, err
	}
	selected, err := pick(models, byID, subset)
	if err != nil {
		return Summary{}, err
	}

	// Stage 1: one job per (model, horizon) pair.
	var jobs []job
	if horizonA != 0 {
		for _, bp := range models {
			jobs = append(jobs, job{idx: len(jobs), bp: bp, horizon: horizonA})
		}
	}
	nA := len(jobs)
	if horizonB != 0 {
		for _, bp := range selected {
			jobs = append(jobs, job{idx: len(jobs), bp: bp, horizon: horizonB})
		}
	}

	// Stage 2: run.
	var yields []ModelYield
	if len(jobs) > 0 {
		if yields, err = run(ctx, jobs, o); err != nil {
			return Summary{}, err
		}
	}

	// Stage 3: fold.
	s := Summary{Product: 1, Quality: yields[:nA], Selected: yields[nA:]}
	for _, my := range s.Quality {
		if s.QualitySum, err = addMul(s.QualitySum, int64(my.ID), int64(my.Yield)); err != nil {
			return Summary{}, err
		}
	}
	for _, my := range s.Selected {
		if s.Product, err = mul(s.Product, int64(my.Yield)); err != nil {
			return Summary{}, err
		}
	}

	return s, nil
}

// index validates models and maps ids to blueprints.
func index(models []*blueprint.Blueprint) (map[int]*blueprint.Blueprint, error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	byID := make(map[int]*blueprint.Blueprint, len(models))
	for _, bp := range models {
		if bp == nil {
			return nil, ErrNilModel
		}
		if _, dup := byID[bp.ID()]; dup {
			return nil, ErrDuplicateModel
		}
		byID[bp.ID()] = bp
	}

	return byID, nil
}

// pick resolves the product subset in the order given.
func pick(models []*blueprint.Blueprint, byID map[int]*blueprint.Blueprint, subset []int) ([]*blueprint.Blueprint, error) {
	if subset == nil {
		return models[:min(DefaultProductSize, len(models))], nil
	}
	out := make([]*blueprint.Blueprint, 0, len(subset))
	for _, id := range subset {
		bp, ok := byID[id]
		if !ok {
			return nil, ErrUnknownModel
		}
		out = append(out, bp)
	}

	return out, nil
}

// addMul returns acc + a·b, or ErrOverflow. Inputs are non-negative.
func addMul(acc, a, b int64) (int64, error) {
	p, err := mul(a, b)
	if err != nil {
		return 0, err
	}
	if acc > math.MaxInt64-p {
		return 0, ErrOverflow
	}

	return acc + p, nil
}

// mul returns a·b, or ErrOverflow. Inputs are non-negative.
func mul(a, b int64) (int64, error) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, ErrOverflow
	}

	return a * b, nil
}
