package schedule

import (
	"fmt"

	"github.com/burnwise/burnsched/core/geo"
	"github.com/burnwise/burnsched/core/model"
	"github.com/burnwise/burnsched/core/plume"
)

// ExposureTerm penalizes schedules whose predicted smoke concentration at
// sensitive receptors exceeds a threshold. Each burn is treated as a steady
// source emitting EmissionPerAcre times its acreage, and each receptor is
// evaluated on the worst case: directly downwind on the plume centerline at
// ground level.
type ExposureTerm struct {
	Receptors       []geo.Point
	WindSpeed       float64 // m/s
	Stability       model.StabilityClass
	EmissionPerAcre float64 // g/s emitted per acre burned
	PlumeHeight     float64 // effective source height in meters
	Threshold       float64 // micrograms per cubic meter
	Penalty         float64 // subtracted per burn/receptor exceedance
}

// penalty sums the exceedance penalties over every burn/receptor pair.
func (e *ExposureTerm) penalty(s model.Schedule) (float64, error) {
	total := 0.0
	for i, b := range s {
		rate := b.Acres * e.EmissionPerAcre
		for _, r := range e.Receptors {
			x := geo.Haversine(b.Location(), r) * 1000
			c, err := plume.Concentration(plume.Query{
				EmissionRate: rate,
				WindSpeed:    e.WindSpeed,
				Height:       e.PlumeHeight,
				X:            x,
				Stability:    e.Stability,
			})
			if err != nil {
				return 0, fmt.Errorf("exposure for event %d: %w", i, err)
			}
			if c*plume.GramsToMicrograms > e.Threshold {
				total += e.Penalty
			}
		}
	}
	return total, nil
}
