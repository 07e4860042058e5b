package anneal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/burnwise/burnsched/core/model"
)

func testSchedule() model.Schedule {
	base := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	return model.Schedule{
		{Time: base, Lat: 38.5, Lng: -121.7, Acres: 100},
		{Time: base.Add(time.Hour), Lat: 38.55, Lng: -121.75, Acres: 150},
		{Time: base.Add(90 * time.Minute), Lat: 38.52, Lng: -121.72, Acres: 80},
	}
}

func TestNeighbor_SingleEventShifted(t *testing.T) {
	gen := NeighborGenerator{MaxShift: 2 * time.Hour}
	rng := rand.New(rand.NewSource(1))
	s := testSchedule()
	for i := 0; i < 100; i++ {
		n := gen.Neighbor(s, rng)
		if len(n) != len(s) {
			t.Fatalf("neighbor changed schedule length: %d", len(n))
		}
		changed := 0
		for j := range s {
			if !n[j].Time.Equal(s[j].Time) {
				changed++
				shift := n[j].Time.Sub(s[j].Time)
				if shift < -2*time.Hour || shift > 2*time.Hour {
					t.Fatalf("shift %v outside [-2h, 2h]", shift)
				}
			}
			if n[j].Lat != s[j].Lat || n[j].Lng != s[j].Lng || n[j].Acres != s[j].Acres {
				t.Fatalf("neighbor altered non-time fields of event %d", j)
			}
		}
		if changed != 1 {
			t.Fatalf("expected exactly one shifted event, got %d", changed)
		}
	}
}

func TestNeighbor_InputUnmutated(t *testing.T) {
	gen := NeighborGenerator{MaxShift: 2 * time.Hour}
	rng := rand.New(rand.NewSource(7))
	s := testSchedule()
	want := s.Clone()
	for i := 0; i < 50; i++ {
		_ = gen.Neighbor(s, rng)
	}
	for j := range want {
		if s[j] != want[j] {
			t.Fatalf("input schedule mutated at event %d", j)
		}
	}
}

func TestNeighbor_EmptySchedule(t *testing.T) {
	gen := NeighborGenerator{MaxShift: 2 * time.Hour}
	rng := rand.New(rand.NewSource(3))
	n := gen.Neighbor(model.Schedule{}, rng)
	if len(n) != 0 {
		t.Fatalf("expected empty neighbor, got %d events", len(n))
	}
}
