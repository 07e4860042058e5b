package schedule

import (
	"testing"
	"time"

	"github.com/burnwise/burnsched/core/model"
)

func mustScore(t *testing.T, o *Objective, s model.Schedule) float64 {
	t.Helper()
	score, err := o.Score(s)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	return score
}

func TestObjective_EmptySchedule(t *testing.T) {
	if got := mustScore(t, NewObjective(), model.Schedule{}); got != 0 {
		t.Fatalf("expected 0 for empty schedule, got %v", got)
	}
}

func TestObjective_HourBands(t *testing.T) {
	obj := NewObjective()
	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		hour int
		want float64
	}{
		{6, 20},
		{9, 20},
		{10, 10}, // boundary hour belongs to the midday band only
		{13, 10},
		{14, -10},
		{5, -10},
		{22, -10},
	}
	for _, c := range cases {
		s := model.Schedule{{Time: day.Add(time.Duration(c.hour) * time.Hour), Lat: 38.5, Lng: -121.7, Acres: 50}}
		if got := mustScore(t, obj, s); got != c.want {
			t.Fatalf("hour %d: expected %v, got %v", c.hour, c.want, got)
		}
	}
}

func TestObjective_ConflictPenalty(t *testing.T) {
	obj := NewObjective()
	base := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	s := model.Schedule{
		{Time: base, Lat: 38.5, Lng: -121.7, Acres: 100},
		{Time: base.Add(time.Hour), Lat: 38.5, Lng: -121.7, Acres: 100},
	}
	// One conflicting pair (-100), two morning burns (+40), gap below the
	// spacing threshold.
	if got := mustScore(t, obj, s); got != -60 {
		t.Fatalf("expected -60, got %v", got)
	}
}

func TestObjective_SpacingBonus(t *testing.T) {
	obj := NewObjective()
	base := time.Date(2025, 10, 1, 6, 0, 0, 0, time.UTC)
	s := model.Schedule{
		{Time: base.Add(3 * time.Hour), Lat: 38.5, Lng: -121.7, Acres: 100},
		{Time: base, Lat: 39.5, Lng: -120.7, Acres: 100},
	}
	// No conflicts (far apart), 9:00 and 6:00 both morning (+40), one gap
	// of 3 hours (+15). Order in the slice must not matter.
	if got := mustScore(t, obj, s); got != 55 {
		t.Fatalf("expected 55, got %v", got)
	}
}

func TestObjective_ThreeBurnReference(t *testing.T) {
	obj := NewObjective()
	base := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	s := model.Schedule{
		{Time: base, Lat: 38.5, Lng: -121.7, Acres: 100},
		{Time: base.Add(time.Hour), Lat: 38.55, Lng: -121.75, Acres: 150},
		{Time: base.Add(90 * time.Minute), Lat: 38.52, Lng: -121.72, Acres: 80},
	}
	// Three conflicting pairs (-300), three morning burns (+60), no
	// rewarded gaps.
	if got := mustScore(t, obj, s); got != -240 {
		t.Fatalf("expected -240, got %v", got)
	}
}
