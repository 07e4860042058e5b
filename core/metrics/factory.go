package metrics

import (
	"fmt"

	"github.com/burnwise/burnsched/core/factory"
)

var sinkRegistry = factory.NewRegistry[MetricsSink]()

// RegisterMetricsSink adds a metrics sink factory identified by name.
func RegisterMetricsSink(name string, f factory.Factory[MetricsSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewMetricsSink builds the configured sink. No configuration means no
// recording; a single sink is returned directly; several fan out through a
// MultiSink.
func NewMetricsSink(cfgs []factory.ModuleConfig) (MetricsSink, error) {
	switch len(cfgs) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]MetricsSink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, fmt.Errorf("sink %q: %w", c.Type, err)
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}
