package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/burnwise/burnsched/core/metrics"
	"github.com/burnwise/burnsched/infra/logger"
)

// PromSink records optimization runs in Prometheus metrics.
type PromSink struct {
	runs         prometheus.Counter
	improvements prometheus.Counter
	bestScore    prometheus.Gauge
	iterations   prometheus.Histogram
	duration     prometheus.Histogram
}

// NewPromSink registers optimization metrics on the default Prometheus
// registerer. The metrics HTTP server is started separately via
// StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "anneal_runs_total",
		Help: "Total number of completed optimization runs",
	})
	improvements := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "anneal_improvements_total",
		Help: "Total number of best-score improvements across runs",
	})
	bestScore := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "anneal_best_score",
		Help: "Best score of the most recently completed run",
	})
	iterations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "anneal_run_iterations",
		Help:    "Iterations executed per optimization run",
		Buckets: prometheus.ExponentialBuckets(100, 2, 8),
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "anneal_run_duration_seconds",
		Help:    "Wall-clock duration per optimization run",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(improvements); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			improvements = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bestScore); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bestScore = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(iterations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			iterations = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		runs:         runs,
		improvements: improvements,
		bestScore:    bestScore,
		iterations:   iterations,
		duration:     duration,
	}, nil
}

// RecordRunResult updates the run counters and histograms.
func (s *PromSink) RecordRunResult(res coremetrics.RunResult) error {
	s.runs.Inc()
	s.bestScore.Set(res.BestScore)
	s.iterations.Observe(float64(res.Iterations))
	s.duration.Observe(res.End.Sub(res.Start).Seconds())
	return nil
}

// RecordImprovement counts best-score improvements.
func (s *PromSink) RecordImprovement(coremetrics.Improvement) error {
	s.improvements.Inc()
	return nil
}

// StartPromServer starts an HTTP server exposing Prometheus metrics on the
// given address. The server runs until the provided context is canceled.
// A dedicated ServeMux is used to avoid interfering with other handlers.
func StartPromServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.New("prom-server").Errorf("shutdown: %v", err)
		}
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
