package anneal

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/burnwise/burnsched/core/events"
	"github.com/burnwise/burnsched/core/logger"
	coremetrics "github.com/burnwise/burnsched/core/metrics"
	"github.com/burnwise/burnsched/core/model"
	"github.com/burnwise/burnsched/internal/eventbus"
)

// Scorer evaluates a candidate schedule. Implementations must not retain or
// mutate the schedule they are handed.
type Scorer interface {
	Score(s model.Schedule) (float64, error)
}

// Result is the outcome of one optimization run.
type Result struct {
	RunID        string
	Best         model.Schedule
	BestScore    float64
	InitialScore float64
	Iterations   int
	Duration     time.Duration
}

// Optimizer runs simulated annealing over burn schedules. A run is a single
// sequential process; independent runs with separate Optimizer values (or
// separate seeds) may execute concurrently since schedules are never shared
// mutably between them.
type Optimizer struct {
	cfg  Config
	obj  Scorer
	gen  NeighborGenerator
	bus  eventbus.EventBus
	sink coremetrics.MetricsSink
	log  logger.Logger
}

// NewOptimizer creates an optimizer. bus and sink may be nil; a nil log
// disables logging.
func NewOptimizer(cfg Config, obj Scorer, bus eventbus.EventBus, sink coremetrics.MetricsSink, log logger.Logger) (*Optimizer, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("anneal config: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("scorer is required")
	}
	maxShift := time.Duration(cfg.MaxShiftHours * float64(time.Hour))
	return &Optimizer{
		cfg:  cfg,
		obj:  obj,
		gen:  NeighborGenerator{MaxShift: maxShift},
		bus:  bus,
		sink: sink,
		log:  log,
	}, nil
}

// Optimize searches for a schedule maximizing the objective, starting from
// initial. It terminates when the temperature reaches the configured floor
// or the iteration cap is hit, whichever comes first. The returned best
// score is never below the initial schedule's score.
//
// Cancellation is cooperative: the context is checked between iterations.
func (o *Optimizer) Optimize(ctx context.Context, initial model.Schedule) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	seed := o.cfg.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	current := initial.Clone()
	currentScore, err := o.obj.Score(current)
	if err != nil {
		return Result{}, fmt.Errorf("score initial schedule: %w", err)
	}
	best := current.Clone()
	bestScore := currentScore
	initialScore := currentScore

	o.publish(events.RunStartedEvent{RunID: runID, Events: len(initial), InitialScore: initialScore})
	if o.log != nil {
		o.log.Debugw("run started", map[string]any{
			"run_id": runID, "events": len(initial), "initial_score": initialScore, "seed": seed,
		})
	}

	temperature := o.cfg.InitialTemp
	iterations := 0
	for temperature > o.cfg.MinTemp && iterations < o.cfg.MaxIterations {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		neighbor := o.gen.Neighbor(current, rng)
		neighborScore, err := o.obj.Score(neighbor)
		if err != nil {
			return Result{}, fmt.Errorf("score neighbor at iteration %d: %w", iterations, err)
		}

		if neighborScore > currentScore {
			current, currentScore = neighbor, neighborScore
		} else if rng.Float64() < math.Exp((neighborScore-currentScore)/temperature) {
			// Metropolis acceptance of a worse candidate.
			current, currentScore = neighbor, neighborScore
		}

		if currentScore > bestScore {
			best = current.Clone()
			bestScore = currentScore
			o.publish(events.ImprovementEvent{RunID: runID, Iteration: iterations, Score: bestScore, Temperature: temperature})
			o.recordImprovement(coremetrics.Improvement{
				RunID: runID, Iteration: iterations, Score: bestScore, Temperature: temperature, Time: time.Now(),
			})
		}

		temperature *= o.cfg.CoolingRate
		iterations++
	}

	res := Result{
		RunID:        runID,
		Best:         best,
		BestScore:    bestScore,
		InitialScore: initialScore,
		Iterations:   iterations,
		Duration:     time.Since(start),
	}
	o.publish(events.RunCompletedEvent{
		RunID:        runID,
		Best:         best,
		BestScore:    bestScore,
		InitialScore: initialScore,
		Iterations:   iterations,
		Duration:     res.Duration,
	})
	if o.sink != nil {
		if err := o.sink.RecordRunResult(coremetrics.RunResult{
			RunID:        runID,
			ScheduleSize: len(initial),
			InitialScore: initialScore,
			BestScore:    bestScore,
			Iterations:   iterations,
			Start:        start,
			End:          time.Now(),
		}); err != nil && o.log != nil {
			o.log.Errorf("record run result: %v", err)
		}
	}
	if o.log != nil {
		o.log.Infof("run %s finished: best %.1f after %d iterations", runID, bestScore, iterations)
	}
	return res, nil
}

func (o *Optimizer) publish(e eventbus.Event) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}

func (o *Optimizer) recordImprovement(imp coremetrics.Improvement) {
	if o.sink == nil {
		return
	}
	if rec, ok := o.sink.(coremetrics.ImprovementRecorder); ok {
		if err := rec.RecordImprovement(imp); err != nil && o.log != nil {
			o.log.Errorf("record improvement: %v", err)
		}
	}
}
