// Package simulator generates synthetic burn schedules for benchmarks and
// tests. Generation is fully determined by the configured seed.
package simulator

import (
	"math/rand"
	"time"

	"github.com/burnwise/burnsched/core/model"
)

// Region is a latitude/longitude bounding box.
type Region struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Config holds parameters for schedule generation.
type Config struct {
	Events   int       `json:"events"`
	Day      time.Time `json:"day"` // date of the generated burns; times span [0,24)
	Region   Region    `json:"region"`
	MinAcres float64   `json:"min_acres"`
	MaxAcres float64   `json:"max_acres"`
	Seed     int64     `json:"seed"`
}

// SetDefaults applies a Sacramento-valley sized default scenario.
func (c *Config) SetDefaults() {
	if c.Events == 0 {
		c.Events = 10
	}
	if c.Day.IsZero() {
		c.Day = time.Now().Truncate(24 * time.Hour)
	}
	if c.Region == (Region{}) {
		c.Region = Region{MinLat: 38.3, MaxLat: 38.8, MinLng: -122.0, MaxLng: -121.4}
	}
	if c.MinAcres == 0 {
		c.MinAcres = 20
	}
	if c.MaxAcres == 0 {
		c.MaxAcres = 200
	}
}

// Generate creates Events random burns uniformly placed in the region with
// ignition times spread across the day.
func Generate(cfg Config) model.Schedule {
	cfg.SetDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))
	day := time.Date(cfg.Day.Year(), cfg.Day.Month(), cfg.Day.Day(), 0, 0, 0, 0, cfg.Day.Location())

	s := make(model.Schedule, cfg.Events)
	for i := range s {
		s[i] = model.BurnEvent{
			Time:  day.Add(time.Duration(rng.Float64() * 24 * float64(time.Hour))),
			Lat:   cfg.Region.MinLat + rng.Float64()*(cfg.Region.MaxLat-cfg.Region.MinLat),
			Lng:   cfg.Region.MinLng + rng.Float64()*(cfg.Region.MaxLng-cfg.Region.MinLng),
			Acres: cfg.MinAcres + rng.Float64()*(cfg.MaxAcres-cfg.MinAcres),
		}
	}
	return s
}
