package metrics

import "time"

// RunResult summarizes a completed optimization run for observability
// purposes.
type RunResult struct {
	RunID        string
	ScheduleSize int
	InitialScore float64
	BestScore    float64
	Iterations   int
	Start        time.Time
	End          time.Time
}

// Improvement records a new best score found during a run.
type Improvement struct {
	RunID       string
	Iteration   int
	Score       float64
	Temperature float64
	Time        time.Time
}

// MetricsSink records optimization results for observability purposes.
type MetricsSink interface {
	RecordRunResult(res RunResult) error
}

// ImprovementRecorder records intermediate best-score improvements. Sinks
// may implement it in addition to MetricsSink.
type ImprovementRecorder interface {
	RecordImprovement(imp Improvement) error
}

// NopSink discards all records.
type NopSink struct{}

// RecordRunResult implements MetricsSink.
func (NopSink) RecordRunResult(RunResult) error { return nil }

// RecordImprovement implements ImprovementRecorder.
func (NopSink) RecordImprovement(Improvement) error { return nil }

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRunResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordRunResult(res RunResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordRunResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordImprovement forwards improvements to sinks that record them.
func (m *MultiSink) RecordImprovement(imp Improvement) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ImprovementRecorder); ok {
			if err := rec.RecordImprovement(imp); err != nil {
				return err
			}
		}
	}
	return nil
}
