package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/burnwise/burnsched/core/anneal"
	coremetrics "github.com/burnwise/burnsched/core/metrics"
)

type Config struct {
	Annealing anneal.Config      `json:"annealing"`
	Objective ObjectiveConfig    `json:"objective"`
	Exposure  ExposureConfig     `json:"exposure"`
	Scenario  ScenarioConfig     `json:"scenario"`
	Metrics   coremetrics.Config `json:"metrics"`
	Logging   LoggingConfig      `json:"logging"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("BURN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "burn_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Annealing.SetDefaults()
	cfg.Objective.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Annealing.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Exposure.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
