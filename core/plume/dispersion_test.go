package plume

import (
	"errors"
	"math"
	"testing"

	"github.com/burnwise/burnsched/core/model"
)

func TestCoefficients_NonNegativeAndFinite(t *testing.T) {
	classes := []model.StabilityClass{
		model.StabilityA, model.StabilityB, model.StabilityC,
		model.StabilityD, model.StabilityE, model.StabilityF,
	}
	distances := []float64{0, 1, 50, 100, 500, 1000, 5000, 20000}
	for _, class := range classes {
		for _, x := range distances {
			sy, sz, err := Coefficients(x, class)
			if err != nil {
				t.Fatalf("class %s x %v: %v", class, x, err)
			}
			if sy < 0 || sz < 0 {
				t.Fatalf("class %s x %v: negative spread %v %v", class, x, sy, sz)
			}
			if math.IsNaN(sy) || math.IsInf(sy, 0) || math.IsNaN(sz) || math.IsInf(sz, 0) {
				t.Fatalf("class %s x %v: non-finite spread %v %v", class, x, sy, sz)
			}
		}
	}
}

func TestCoefficients_ZeroDistance(t *testing.T) {
	sy, sz, err := Coefficients(0, model.StabilityD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sy != 0 || sz != 0 {
		t.Fatalf("expected zero spread at zero distance, got %v %v", sy, sz)
	}
}

func TestCoefficients_NegativeDistance(t *testing.T) {
	_, _, err := Coefficients(-1, model.StabilityD)
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
}

func TestCoefficients_UnknownClass(t *testing.T) {
	_, _, err := Coefficients(100, model.StabilityClass(42))
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
}

func TestCoefficients_StableBranch(t *testing.T) {
	// E and F use the plain power law; at 1 km for class F the values are
	// exactly c and a since x_km == 1.
	sy, sz, err := Coefficients(1000, model.StabilityF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sy-34) > 1e-9 {
		t.Fatalf("expected sigma_y 34 at 1 km for class F, got %v", sy)
	}
	if math.Abs(sz-14.35) > 1e-9 {
		t.Fatalf("expected sigma_z 14.35 at 1 km for class F, got %v", sz)
	}
}

func TestCoefficients_CorrectionApplied(t *testing.T) {
	// Class B carries a positive correction: its sigma_z at 1 km must
	// exceed the uncorrected power law.
	_, sz, err := Coefficients(1000, model.StabilityB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sz <= 106.6 {
		t.Fatalf("expected corrected sigma_z above 106.6, got %v", sz)
	}
}
