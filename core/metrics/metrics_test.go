package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/burnwise/burnsched/core/factory"
)

type recordingSink struct {
	runs         []RunResult
	improvements []Improvement
	err          error
}

func (r *recordingSink) RecordRunResult(res RunResult) error {
	if r.err != nil {
		return r.err
	}
	r.runs = append(r.runs, res)
	return nil
}

func (r *recordingSink) RecordImprovement(imp Improvement) error {
	if r.err != nil {
		return r.err
	}
	r.improvements = append(r.improvements, imp)
	return nil
}

func TestMultiSink_Forwards(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := NewMultiSink(a, b)
	res := RunResult{RunID: "r1", BestScore: 55, Iterations: 1379, End: time.Now()}
	if err := m.RecordRunResult(res); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(a.runs) != 1 || len(b.runs) != 1 {
		t.Fatalf("expected both sinks recorded, got %d/%d", len(a.runs), len(b.runs))
	}
	if err := m.RecordImprovement(Improvement{RunID: "r1", Score: 10}); err != nil {
		t.Fatalf("record improvement: %v", err)
	}
	if len(a.improvements) != 1 || len(b.improvements) != 1 {
		t.Fatalf("expected both sinks recorded improvements")
	}
}

func TestMultiSink_FirstError(t *testing.T) {
	sentinel := errors.New("sink down")
	m := NewMultiSink(&recordingSink{err: sentinel}, &recordingSink{})
	if err := m.RecordRunResult(RunResult{}); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestNewMetricsSink_EmptyIsNop(t *testing.T) {
	s, err := NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if _, ok := s.(NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}
	if err := s.RecordRunResult(RunResult{}); err != nil {
		t.Fatalf("nop record: %v", err)
	}
}

func TestConfig_PrometheusEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.PrometheusEnabled() {
		t.Fatal("expected disabled with no sinks")
	}
	cfg.Sinks = []factory.ModuleConfig{{Type: "influx"}, {Type: "prometheus"}}
	if !cfg.PrometheusEnabled() {
		t.Fatal("expected enabled with a prometheus sink")
	}
}
