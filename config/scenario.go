package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/burnwise/burnsched/core/model"
)

// BurnConfig is one scheduled burn in a scenario file.
type BurnConfig struct {
	Time  string  `json:"time"` // RFC 3339
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Acres float64 `json:"acres"`
}

// ScenarioConfig describes the schedule to optimize. Burns come either from
// an external scenario file or inline from the main config; the file wins
// when both are set.
type ScenarioConfig struct {
	Path  string       `json:"path"`
	Burns []BurnConfig `json:"burns"`
	// Seeds lists the RNG seeds to run; one optimization run per seed.
	Seeds []int64 `json:"seeds"`
}

// LoadSchedule resolves the configured burns into a Schedule.
func (c ScenarioConfig) LoadSchedule() (model.Schedule, error) {
	burns := c.Burns
	if c.Path != "" {
		loaded, err := loadScenarioFile(c.Path)
		if err != nil {
			return nil, err
		}
		burns = loaded
	}
	s := make(model.Schedule, len(burns))
	for i, b := range burns {
		t, err := time.Parse(time.RFC3339, b.Time)
		if err != nil {
			return nil, fmt.Errorf("burn %d: parse time: %w", i, err)
		}
		s[i] = model.BurnEvent{Time: t, Lat: b.Lat, Lng: b.Lng, Acres: b.Acres}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadScenarioFile(path string) ([]BurnConfig, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported scenario format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var out struct {
		Burns []BurnConfig `json:"burns"`
	}
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if len(out.Burns) == 0 {
		return nil, fmt.Errorf("scenario %s contains no burns", path)
	}
	return out.Burns, nil
}
