package app

import (
	"context"
	"fmt"

	"github.com/burnwise/burnsched/analysis"
	"github.com/burnwise/burnsched/config"
	coremetrics "github.com/burnwise/burnsched/core/metrics"
	"github.com/burnwise/burnsched/core/schedule"
	"github.com/burnwise/burnsched/infra/logger"
	"github.com/burnwise/burnsched/infra/metrics"
	"github.com/burnwise/burnsched/internal/eventbus"
)

// Service wires the configuration into optimization runs with logging and
// metrics attached.
type Service struct {
	cfg  *config.Config
	obj  *schedule.Objective
	bus  eventbus.EventBus
	sink coremetrics.MetricsSink
	log  logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	cfg.Logging.Apply()
	logg := logger.New("service")

	obj, err := cfg.Objective.Build(cfg.Exposure)
	if err != nil {
		return nil, fmt.Errorf("build objective: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		cfg:  cfg,
		obj:  obj,
		bus:  eventbus.New(),
		sink: sink,
		log:  logg,
	}, nil
}

// Run executes the configured scenario and blocks until the runs complete,
// or until the context is canceled when the Prometheus endpoint is enabled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if s.cfg.Metrics.PrometheusEnabled() {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	initial, err := s.cfg.Scenario.LoadSchedule()
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	seeds := s.cfg.Scenario.Seeds
	if len(seeds) == 0 {
		seeds = []int64{s.cfg.Annealing.Seed}
	}

	runner := analysis.Runner{
		Cfg:       s.cfg.Annealing,
		Objective: s.obj,
		Bus:       s.bus,
		Log:       s.log,
	}
	results, err := runner.Run(ctx, initial, seeds)
	if err != nil {
		return err
	}

	summary := analysis.Summarize(results)
	s.log.Infof("completed %d runs: best %.1f, mean %.1f (stddev %.1f)",
		summary.Runs, summary.MaxBest, summary.MeanBest, summary.StdDevBest)
	before := s.obj.Rule.Count(initial)
	for _, res := range results {
		after := s.obj.Rule.Count(res.Best)
		s.log.Debugw("run detail", map[string]any{
			"run_id":           res.RunID,
			"initial_score":    res.InitialScore,
			"best_score":       res.BestScore,
			"iterations":       res.Iterations,
			"conflicts_before": before,
			"conflicts_after":  after,
		})
	}

	if s.cfg.Metrics.PrometheusEnabled() {
		<-ctx.Done()
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
