package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/burnwise/burnsched/core/metrics"
	"github.com/burnwise/burnsched/infra/logger"
)

// InfluxSink writes optimization events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRunResult writes the run summary as a line protocol point.
func (s *InfluxSink) RecordRunResult(res coremetrics.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("anneal_run").
		AddTag("run_id", res.RunID).
		AddTag("component", "annealer").
		AddField("schedule_size", res.ScheduleSize).
		AddField("initial_score", round3(res.InitialScore)).
		AddField("best_score", round3(res.BestScore)).
		AddField("iterations", res.Iterations).
		AddField("duration_s", round3(res.End.Sub(res.Start).Seconds())).
		SetTime(res.End)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordImprovement writes a best-score improvement point.
func (s *InfluxSink) RecordImprovement(imp coremetrics.Improvement) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("anneal_improvement").
		AddTag("run_id", imp.RunID).
		AddField("iteration", imp.Iteration).
		AddField("score", round3(imp.Score)).
		AddField("temperature", round3(imp.Temperature)).
		SetTime(imp.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
