package anneal

import (
	"math/rand"
	"time"

	"github.com/burnwise/burnsched/core/model"
)

// NeighborGenerator produces schedule candidates for the search by shifting
// one randomly chosen event's time by a uniform offset in
// [-MaxShift, +MaxShift].
type NeighborGenerator struct {
	MaxShift time.Duration
}

// Neighbor returns a new schedule differing from s in exactly one event's
// timestamp. The input is never mutated; the result is always a
// structurally independent copy so the caller's retained current and best
// schedules stay valid. An empty schedule has no neighbors and is returned
// as an unchanged copy.
func (g NeighborGenerator) Neighbor(s model.Schedule, rng *rand.Rand) model.Schedule {
	if len(s) == 0 {
		return s.Clone()
	}
	idx := rng.Intn(len(s))
	shift := time.Duration((rng.Float64()*2 - 1) * float64(g.MaxShift))
	return s.WithTime(idx, s[idx].Time.Add(shift))
}
