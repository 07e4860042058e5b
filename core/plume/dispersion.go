package plume

import (
	"math"

	"github.com/burnwise/burnsched/core/model"
)

// coeffs holds the Pasquill-Gifford curve coefficients for one stability
// class. a and b drive the horizontal spread, c through g the vertical one.
type coeffs struct {
	a, b, c, d, f, g float64
}

// Standard Pasquill-Gifford values, distances in kilometers.
var stabilityParams = map[model.StabilityClass]coeffs{
	model.StabilityA: {a: 213, b: 0.894, c: 440.8, d: 1.041, f: 9.27, g: 0.459},
	model.StabilityB: {a: 156, b: 0.894, c: 106.6, d: 1.149, f: 3.3, g: 0.382},
	model.StabilityC: {a: 104, b: 0.894, c: 61.0, d: 0.911, f: 0.0, g: 0.0},
	model.StabilityD: {a: 68, b: 0.894, c: 33.2, d: 0.725, f: -1.7, g: -0.031},
	model.StabilityE: {a: 50.5, b: 0.894, c: 22.8, d: 0.678, f: -1.3, g: -0.031},
	model.StabilityF: {a: 34, b: 0.894, c: 14.35, d: 0.740, f: -0.35, g: -0.048},
}

// Coefficients returns the horizontal and vertical dispersion coefficients
// (sigma y, sigma z) in meters for a receptor xMeters downwind under the
// given stability class. The distance must be non-negative; zero distance
// yields zero spread.
func Coefficients(xMeters float64, class model.StabilityClass) (sigmaY, sigmaZ float64, err error) {
	if xMeters < 0 {
		return 0, 0, &DomainError{Quantity: "downwind distance", Reason: "must not be negative"}
	}
	p, ok := stabilityParams[class]
	if !ok {
		return 0, 0, &DomainError{Quantity: "stability class", Reason: "is not a defined category"}
	}

	xKm := xMeters / 1000
	sigmaY = p.a * math.Pow(xKm, p.b)
	if class.Stable() {
		sigmaZ = sigmaZStable(p, xKm)
	} else {
		sigmaZ = sigmaZCorrected(p, xKm)
	}
	return sigmaY, sigmaZ, nil
}

// sigmaZStable is the plain power-law fit used for classes E and F. The
// stable-condition curves are published without the secondary correction
// term.
func sigmaZStable(p coeffs, xKm float64) float64 {
	return p.c * math.Pow(xKm, p.d)
}

// sigmaZCorrected applies the (1 + f*x)^g correction used for classes A-D.
// The correction base can cross zero far downwind for classes with negative
// f; beyond that point the fit is outside its published validity range and
// the correction is dropped to keep the coefficient finite.
func sigmaZCorrected(p coeffs, xKm float64) float64 {
	base := 1 + p.f*xKm
	if base <= 0 {
		return p.c * math.Pow(xKm, p.d)
	}
	return p.c * math.Pow(xKm, p.d) * math.Pow(base, p.g)
}
