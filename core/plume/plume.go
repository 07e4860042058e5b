package plume

import (
	"math"

	"github.com/burnwise/burnsched/core/model"
)

// GramsToMicrograms converts a concentration computed from a g/s emission
// rate into micrograms per cubic meter.
const GramsToMicrograms = 1e6

// Query describes one concentration request. The model is unit-agnostic
// apart from requiring consistent length units for X, Y, Z and Height;
// the output unit follows the emission-rate unit (a g/s rate yields g/m3,
// see GramsToMicrograms).
type Query struct {
	EmissionRate float64 // Q, mass per second
	WindSpeed    float64 // u, meters per second, must be positive
	Height       float64 // H, effective source height in meters
	X            float64 // downwind distance in meters
	Y            float64 // crosswind offset in meters
	Z            float64 // receptor height in meters
	Stability    model.StabilityClass
}

// Concentration evaluates the Gaussian plume equation with complete ground
// reflection for the given query.
//
// A receptor at or upwind of the source (X <= 0) sees no plume in this
// steady-state model and gets a zero concentration; so does the degenerate
// zero-spread case at X == 0. A non-positive wind speed or an unrecognized
// stability class is a DomainError.
func Concentration(q Query) (float64, error) {
	if q.WindSpeed <= 0 {
		return 0, &DomainError{Quantity: "wind speed", Reason: "must be positive"}
	}
	if !q.Stability.Valid() {
		return 0, &DomainError{Quantity: "stability class", Reason: "is not a defined category"}
	}
	if q.X <= 0 {
		return 0, nil
	}

	sigmaY, sigmaZ, err := Coefficients(q.X, q.Stability)
	if err != nil {
		return 0, err
	}
	if sigmaY <= 0 || sigmaZ <= 0 {
		return 0, nil
	}

	crosswind := math.Exp(-0.5 * (q.Y / sigmaY) * (q.Y / sigmaY))
	// Real source at +H plus its ground-reflected image at -H.
	dz1 := (q.Z - q.Height) / sigmaZ
	dz2 := (q.Z + q.Height) / sigmaZ
	vertical := math.Exp(-0.5*dz1*dz1) + math.Exp(-0.5*dz2*dz2)

	return q.EmissionRate / (2 * math.Pi * q.WindSpeed * sigmaY * sigmaZ) * crosswind * vertical, nil
}
