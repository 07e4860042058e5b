// Package analysis runs optimization experiments across seed sets and
// summarizes the outcomes.
package analysis

import (
	"context"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/burnwise/burnsched/core/anneal"
	"github.com/burnwise/burnsched/core/logger"
	coremetrics "github.com/burnwise/burnsched/core/metrics"
	"github.com/burnwise/burnsched/core/model"
	"github.com/burnwise/burnsched/internal/eventbus"
)

// Runner executes one optimization run per seed. Runs are independent and
// execute concurrently; each owns its schedules exclusively, so the only
// shared values are the read-only config and scorer.
type Runner struct {
	Cfg       anneal.Config
	Objective anneal.Scorer
	Bus       eventbus.EventBus
	Sink      coremetrics.MetricsSink
	Log       logger.Logger
}

// Run optimizes the initial schedule once per seed and returns the results
// in seed order. The first run error, if any, is returned.
func (r Runner) Run(ctx context.Context, initial model.Schedule, seeds []int64) ([]anneal.Result, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("at least one seed is required")
	}
	results := make([]anneal.Result, len(seeds))
	errs := make([]error, len(seeds))

	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			cfg := r.Cfg
			cfg.Seed = seed
			opt, err := anneal.NewOptimizer(cfg, r.Objective, r.Bus, r.Sink, r.Log)
			if err != nil {
				errs[i] = err
				return
			}
			res, err := opt.Optimize(ctx, initial)
			if err != nil {
				errs[i] = fmt.Errorf("seed %d: %w", seed, err)
				return
			}
			results[i] = res
		}(i, seed)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Summary aggregates best scores across a set of runs.
type Summary struct {
	Runs           int
	MeanBest       float64
	StdDevBest     float64
	MinBest        float64
	MaxBest        float64
	MeanIterations float64
}

// Summarize computes score statistics over the results.
func Summarize(results []anneal.Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	best := make([]float64, len(results))
	iters := make([]float64, len(results))
	for i, r := range results {
		best[i] = r.BestScore
		iters[i] = float64(r.Iterations)
	}
	s := Summary{
		Runs:           len(results),
		MeanBest:       stat.Mean(best, nil),
		MinBest:        floats.Min(best),
		MaxBest:        floats.Max(best),
		MeanIterations: stat.Mean(iters, nil),
	}
	if len(results) > 1 {
		s.StdDevBest = stat.StdDev(best, nil)
	}
	return s
}
