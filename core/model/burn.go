package model

import (
	"fmt"
	"time"

	"github.com/burnwise/burnsched/core/geo"
)

// BurnEvent is a scheduled agricultural burn. Events are identified by their
// position within a Schedule while a search is running; there is no persistent
// identifier.
type BurnEvent struct {
	Time  time.Time // planned ignition time
	Lat   float64   // field latitude in degrees
	Lng   float64   // field longitude in degrees
	Acres float64   // burn size, used to scale emissions
}

// Location returns the burn coordinate as a geo.Point.
func (b BurnEvent) Location() geo.Point {
	return geo.Point{Lat: b.Lat, Lng: b.Lng}
}

// Validate checks that the event carries usable values.
func (b BurnEvent) Validate() error {
	if b.Time.IsZero() {
		return fmt.Errorf("burn time is required")
	}
	if b.Lat < -90 || b.Lat > 90 {
		return fmt.Errorf("latitude %v out of range", b.Lat)
	}
	if b.Lng < -180 || b.Lng > 180 {
		return fmt.Errorf("longitude %v out of range", b.Lng)
	}
	if b.Acres < 0 {
		return fmt.Errorf("acreage must not be negative")
	}
	return nil
}

// Schedule is a working collection of burn events under optimization. Order
// carries no meaning. The search never mutates a Schedule in place: both the
// current and best schedules of a run are retained at once and must evolve
// independently, so all mutations go through Clone or WithTime.
type Schedule []BurnEvent

// Clone returns a structurally independent copy of the schedule.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	cp := make(Schedule, len(s))
	copy(cp, s)
	return cp
}

// WithTime returns a copy of the schedule with event i rescheduled to t.
// The receiver is left untouched.
func (s Schedule) WithTime(i int, t time.Time) Schedule {
	cp := s.Clone()
	cp[i].Time = t
	return cp
}

// Validate checks every event in the schedule.
func (s Schedule) Validate() error {
	for i, b := range s {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}
