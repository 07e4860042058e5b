package anneal

import "fmt"

// Config defines annealing parameters loaded from configuration.
type Config struct {
	InitialTemp   float64 `json:"initial_temp"`
	CoolingRate   float64 `json:"cooling_rate"`
	MinTemp       float64 `json:"min_temp"`
	MaxIterations int     `json:"max_iterations"`
	// MaxShiftHours bounds the uniform time perturbation applied to one
	// event per iteration.
	MaxShiftHours float64 `json:"max_shift_hours"`
	// Seed makes a run reproducible. A zero seed selects a time-derived
	// seed at run start.
	Seed int64 `json:"seed"`
}

// SetDefaults applies the standard annealing schedule.
func (c *Config) SetDefaults() {
	if c.InitialTemp == 0 {
		c.InitialTemp = 1000
	}
	if c.CoolingRate == 0 {
		c.CoolingRate = 0.995
	}
	if c.MinTemp == 0 {
		c.MinTemp = 1
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 10000
	}
	if c.MaxShiftHours == 0 {
		c.MaxShiftHours = 2
	}
}

// Validate checks that the cooling schedule terminates.
func (c Config) Validate() error {
	if c.InitialTemp <= 0 {
		return fmt.Errorf("initial_temp must be positive")
	}
	if c.CoolingRate <= 0 || c.CoolingRate >= 1 {
		return fmt.Errorf("cooling_rate must be in (0,1)")
	}
	if c.MinTemp <= 0 {
		return fmt.Errorf("min_temp must be positive")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive")
	}
	if c.MaxShiftHours <= 0 {
		return fmt.Errorf("max_shift_hours must be positive")
	}
	return nil
}
