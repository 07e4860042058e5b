package schedule

import (
	"sort"
	"time"

	"github.com/burnwise/burnsched/core/model"
)

// Objective scores a schedule; higher is better. Scores are absolute,
// schedule-size-dependent quantities: comparing two scores is only
// meaningful for schedules with the same event count. The weights can be
// tuned; NewObjective returns the standard values.
//
// An Objective is read-only after construction and safe for concurrent use
// by independent optimization runs.
type Objective struct {
	Rule             ConflictRule
	ConflictPenalty  float64       // subtracted per conflicting pair
	MorningBonus     float64       // added per burn starting in [6,10)
	MiddayBonus      float64       // added per burn starting in [10,14)
	OffWindowPenalty float64       // subtracted per burn outside both windows
	SpacingBonus     float64       // added per consecutive gap >= SpacingGap
	SpacingGap       time.Duration // minimum gap rewarded between sorted burns

	// Exposure, when set, adds a plume-based penalty for predicted smoke at
	// sensitive receptors.
	Exposure *ExposureTerm
}

// NewObjective returns an objective with the standard weights.
func NewObjective() *Objective {
	return &Objective{
		Rule:             DefaultConflictRule(),
		ConflictPenalty:  100,
		MorningBonus:     20,
		MiddayBonus:      10,
		OffWindowPenalty: 10,
		SpacingBonus:     15,
		SpacingGap:       2 * time.Hour,
	}
}

// Score evaluates the schedule. An empty schedule scores zero. The only
// error source is the optional exposure term, which surfaces DomainErrors
// from the plume model.
func (o *Objective) Score(s model.Schedule) (float64, error) {
	score := 0.0

	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if o.Rule.Conflicts(s[i], s[j]) {
				score -= o.ConflictPenalty
			}
		}
	}

	for _, b := range s {
		switch h := b.Time.Hour(); {
		case h >= 6 && h < 10:
			score += o.MorningBonus
		case h >= 10 && h < 14:
			score += o.MiddayBonus
		default:
			score -= o.OffWindowPenalty
		}
	}

	if len(s) > 1 {
		times := make([]time.Time, len(s))
		for i, b := range s {
			times[i] = b.Time
		}
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
		for i := 1; i < len(times); i++ {
			if times[i].Sub(times[i-1]) >= o.SpacingGap {
				score += o.SpacingBonus
			}
		}
	}

	if o.Exposure != nil {
		penalty, err := o.Exposure.penalty(s)
		if err != nil {
			return 0, err
		}
		score -= penalty
	}

	return score, nil
}
