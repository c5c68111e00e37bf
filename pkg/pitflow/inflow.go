package pitflow

import (
	"math"

	"github.com/groundwaterkit/pitflow/pkg/errors"
)

// InflowZone1 returns the horizontal groundwater inflow through the pit
// walls (m³/s): the recharge captured by the annulus between the pit and
// the influence boundary,
//
//	Q₁ = W·π·(R² − r_e²)
//
// The value is derived from the memoized influence radius; a ROOT_FINDING
// error is returned when the solve fails.
func (m *Model) InflowZone1() (float64, error) {
	if err := m.solve(); err != nil {
		return 0, err
	}
	return m.solved.inflowZone1, nil
}

// InflowZone2 returns the vertical groundwater inflow through the pit
// floor (m³/s):
//
//	Q₂ = 4·r_e·(Kh/√(1/anisotropy))·(s_w − d_lake)
//
// The √(1/anisotropy) term is a seepage-face correction; with isotropic
// conductivity (anisotropy = 1) it reduces to 4·r_e·Kh·(s_w − d_lake).
// Zone 2 does not depend on the influence radius, so no solve is needed
// and no error can occur.
func (m *Model) InflowZone2() float64 {
	p := m.params
	return 4 * p.RadiusEff * (p.CondH / math.Sqrt(1/p.Anisotropy)) *
		(p.DrawdownStab - p.DepthPitLake)
}

// InflowTotal returns InflowZone1 + InflowZone2 (m³/s).
func (m *Model) InflowTotal() (float64, error) {
	if err := m.solve(); err != nil {
		return 0, err
	}
	return m.solved.inflowTotal, nil
}

// InflowPrecipitation returns the direct precipitation load on the pit
// footprint (m³/s). rate is the precipitation rate in m/s, not reduced by
// an infiltration coefficient since rain falling into the pit is captured
// in full; area is the pit plan area in m².
func InflowPrecipitation(rate, area float64) float64 {
	return rate * area
}

// InflowMeltwater returns the snowmelt load on the pit footprint (m³/s).
// Snow accumulated over accumulationPeriod is released over the shorter
// meltPeriod, amplifying the mean precipitation rate by their ratio. The
// periods share an arbitrary unit (commonly days) and must be positive.
func InflowMeltwater(rate, accumulationPeriod, meltPeriod, area float64) (float64, error) {
	if err := errors.ValidatePositive("period_snow_accumulation", accumulationPeriod); err != nil {
		return 0, err
	}
	if err := errors.ValidatePositive("period_melting", meltPeriod); err != nil {
		return 0, err
	}
	return rate * (accumulationPeriod / meltPeriod) * area, nil
}
