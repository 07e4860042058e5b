package config

import (
	"fmt"
	"time"

	"github.com/burnwise/burnsched/core/geo"
	"github.com/burnwise/burnsched/core/model"
	"github.com/burnwise/burnsched/core/schedule"
)

// ObjectiveConfig tunes the schedule scoring weights. Zero values fall back
// to the standard weights.
type ObjectiveConfig struct {
	ConflictWindowHours float64 `json:"conflict_window_hours"`
	ConflictRadiusKm    float64 `json:"conflict_radius_km"`
	ConflictPenalty     float64 `json:"conflict_penalty"`
	MorningBonus        float64 `json:"morning_bonus"`
	MiddayBonus         float64 `json:"midday_bonus"`
	OffWindowPenalty    float64 `json:"off_window_penalty"`
	SpacingBonus        float64 `json:"spacing_bonus"`
	SpacingGapHours     float64 `json:"spacing_gap_hours"`
}

// SetDefaults applies the standard weights.
func (c *ObjectiveConfig) SetDefaults() {
	if c.ConflictWindowHours == 0 {
		c.ConflictWindowHours = 2
	}
	if c.ConflictRadiusKm == 0 {
		c.ConflictRadiusKm = 10
	}
	if c.ConflictPenalty == 0 {
		c.ConflictPenalty = 100
	}
	if c.MorningBonus == 0 {
		c.MorningBonus = 20
	}
	if c.MiddayBonus == 0 {
		c.MiddayBonus = 10
	}
	if c.OffWindowPenalty == 0 {
		c.OffWindowPenalty = 10
	}
	if c.SpacingBonus == 0 {
		c.SpacingBonus = 15
	}
	if c.SpacingGapHours == 0 {
		c.SpacingGapHours = 2
	}
}

// Build assembles the objective, attaching the exposure term when enabled.
func (c ObjectiveConfig) Build(exposure ExposureConfig) (*schedule.Objective, error) {
	obj := &schedule.Objective{
		Rule: schedule.ConflictRule{
			Window:   time.Duration(c.ConflictWindowHours * float64(time.Hour)),
			RadiusKm: c.ConflictRadiusKm,
		},
		ConflictPenalty:  c.ConflictPenalty,
		MorningBonus:     c.MorningBonus,
		MiddayBonus:      c.MiddayBonus,
		OffWindowPenalty: c.OffWindowPenalty,
		SpacingBonus:     c.SpacingBonus,
		SpacingGap:       time.Duration(c.SpacingGapHours * float64(time.Hour)),
	}
	if exposure.Enabled {
		term, err := exposure.Build()
		if err != nil {
			return nil, err
		}
		obj.Exposure = term
	}
	return obj, nil
}

// ReceptorConfig is a sensitive location evaluated by the exposure term.
type ReceptorConfig struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ExposureConfig enables plume-based exposure penalties in the objective.
type ExposureConfig struct {
	Enabled         bool             `json:"enabled"`
	Receptors       []ReceptorConfig `json:"receptors"`
	WindSpeed       float64          `json:"wind_speed"`
	Stability       string           `json:"stability"`
	EmissionPerAcre float64          `json:"emission_per_acre"`
	PlumeHeight     float64          `json:"plume_height"`
	Threshold       float64          `json:"threshold"`
	Penalty         float64          `json:"penalty"`
}

// Validate checks mandatory fields when the term is enabled.
func (c ExposureConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.WindSpeed <= 0 {
		return fmt.Errorf("exposure wind_speed must be positive")
	}
	if _, err := model.ParseStabilityClass(c.Stability); err != nil {
		return fmt.Errorf("exposure: %w", err)
	}
	if len(c.Receptors) == 0 {
		return fmt.Errorf("exposure requires at least one receptor")
	}
	return nil
}

// Build converts the config into a schedule.ExposureTerm.
func (c ExposureConfig) Build() (*schedule.ExposureTerm, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	class, err := model.ParseStabilityClass(c.Stability)
	if err != nil {
		return nil, err
	}
	receptors := make([]geo.Point, len(c.Receptors))
	for i, r := range c.Receptors {
		receptors[i] = geo.Point{Lat: r.Lat, Lng: r.Lng}
	}
	return &schedule.ExposureTerm{
		Receptors:       receptors,
		WindSpeed:       c.WindSpeed,
		Stability:       class,
		EmissionPerAcre: c.EmissionPerAcre,
		PlumeHeight:     c.PlumeHeight,
		Threshold:       c.Threshold,
		Penalty:         c.Penalty,
	}, nil
}
