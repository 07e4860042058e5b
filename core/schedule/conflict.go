package schedule

import (
	"time"

	"github.com/burnwise/burnsched/core/geo"
	"github.com/burnwise/burnsched/core/model"
)

// ConflictRule decides whether two burns interfere with each other. Two
// burns conflict only when they are close in both time and space: smoke
// from a distant simultaneous burn, or from a nearby burn hours away, is
// not flagged.
type ConflictRule struct {
	Window   time.Duration // maximum time separation that still conflicts
	RadiusKm float64       // maximum great-circle distance that still conflicts
}

// DefaultConflictRule returns the 2 hour / 10 km rule.
func DefaultConflictRule() ConflictRule {
	return ConflictRule{Window: 2 * time.Hour, RadiusKm: 10}
}

// Conflicts reports whether the two burns interfere. The check is symmetric.
func (r ConflictRule) Conflicts(a, b model.BurnEvent) bool {
	diff := a.Time.Sub(b.Time)
	if diff < 0 {
		diff = -diff
	}
	if diff >= r.Window {
		return false
	}
	return geo.Haversine(a.Location(), b.Location()) < r.RadiusKm
}

// Count returns the number of conflicting unordered pairs in the schedule.
func (r ConflictRule) Count(s model.Schedule) int {
	n := 0
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if r.Conflicts(s[i], s[j]) {
				n++
			}
		}
	}
	return n
}
