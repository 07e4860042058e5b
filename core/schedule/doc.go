// Package schedule scores burn schedules. A weighted objective combines
// pairwise conflict penalties, time-of-day preferences and inter-burn
// spacing bonuses, with an optional plume-based exposure penalty for
// sensitive receptors.
package schedule
