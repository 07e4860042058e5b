package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/burnwise/burnsched/core/metrics"
)

func TestPromSink_RecordsRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	start := time.Now()
	err = sink.RecordRunResult(coremetrics.RunResult{
		RunID:        "r1",
		ScheduleSize: 3,
		InitialScore: -240,
		BestScore:    55,
		Iterations:   1379,
		Start:        start,
		End:          start.Add(200 * time.Millisecond),
	})
	require.NoError(t, err)

	rec, ok := sink.(coremetrics.ImprovementRecorder)
	require.True(t, ok)
	require.NoError(t, rec.RecordImprovement(coremetrics.Improvement{RunID: "r1", Score: 10}))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["anneal_runs_total"])
	assert.True(t, names["anneal_improvements_total"])
	assert.True(t, names["anneal_best_score"])
	assert.True(t, names["anneal_run_iterations"])
	assert.True(t, names["anneal_run_duration_seconds"])
}

func TestPromSink_ReregisterSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	_, err = NewPromSinkWithRegistry(reg)
	assert.NoError(t, err)
}
