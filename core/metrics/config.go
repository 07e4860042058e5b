package metrics

import "github.com/burnwise/burnsched/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusPort is the listen address for the metrics HTTP server,
	// used when a prometheus sink is configured.
	PrometheusPort string `json:"prometheus_port"`
}

// PrometheusEnabled reports whether a prometheus sink is configured.
func (c Config) PrometheusEnabled() bool {
	for _, s := range c.Sinks {
		if s.Type == "prometheus" {
			return true
		}
	}
	return false
}
