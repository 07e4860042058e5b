package metrics

import (
	"context"
	"time"

	"github.com/burnwise/burnsched/core/events"
	coremetrics "github.com/burnwise/burnsched/core/metrics"
	"github.com/burnwise/burnsched/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// optimization events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.ImprovementEvent:
					if r, ok := sink.(coremetrics.ImprovementRecorder); ok {
						_ = r.RecordImprovement(coremetrics.Improvement{
							RunID:       e.RunID,
							Iteration:   e.Iteration,
							Score:       e.Score,
							Temperature: e.Temperature,
							Time:        time.Now(),
						})
					}
				case events.RunCompletedEvent:
					// The event carries the run duration; reconstruct the
					// start/end pair the sinks derive their timings from.
					end := time.Now()
					_ = sink.RecordRunResult(coremetrics.RunResult{
						RunID:        e.RunID,
						ScheduleSize: len(e.Best),
						InitialScore: e.InitialScore,
						BestScore:    e.BestScore,
						Iterations:   e.Iterations,
						Start:        end.Add(-e.Duration),
						End:          end,
					})
				}
			}
		}
	}()
}
