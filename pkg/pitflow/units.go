package pitflow

import (
	"math"

	"github.com/groundwaterkit/pitflow/pkg/errors"
)

// Unit conversion factors between field-practical and SI units.
const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerYear = 365.25 * secondsPerDay

	// DefaultInfilCoef is the fraction of precipitation that infiltrates
	// to recharge. 0.1 is a typical value for glacial till covers.
	DefaultInfilCoef = 0.1
)

// EffectiveRadius converts a pit's plan area (m²) into the radius of the
// circle with equal area (m). The area must be positive.
func EffectiveRadius(area float64) (float64, error) {
	if err := errors.ValidatePositive("area", area); err != nil {
		return 0, err
	}
	return math.Sqrt(area / math.Pi), nil
}

// FieldParameters holds model inputs in the units they are usually
// reported in: conductivity in m/d, pit area in m², precipitation in
// mm/yr. [FieldParameters.ToSI] converts them into [Parameters]; this is
// plain unit arithmetic with no independent model logic.
type FieldParameters struct {
	// DrawdownStab is the stabilized drawdown at the pit wall (m).
	DrawdownStab float64

	// CondHPerDay is the horizontal hydraulic conductivity (m/d).
	CondHPerDay float64

	// Area is the true (possibly irregular) pit plan area (m²).
	Area float64

	// Precipitation is the mean annual precipitation (mm/yr).
	Precipitation float64

	// InfilCoef is the infiltration coefficient applied to precipitation
	// to obtain recharge. Defaults to [DefaultInfilCoef] when zero.
	InfilCoef float64

	// DrawdownEdge, Anisotropy and DepthPitLake pass through unchanged;
	// see [Parameters] for their meaning and defaults.
	DrawdownEdge float64
	Anisotropy   float64
	DepthPitLake float64

	// SnowDays and MeltDays define the meltwater amplification: snow
	// accumulated over SnowDays is released over MeltDays. Both are only
	// consulted by [FieldCase.InflowMeltwater].
	SnowDays float64
	MeltDays float64
}

// withDefaults fills optional fields that were left at their zero value.
func (f FieldParameters) withDefaults() FieldParameters {
	if f.InfilCoef == 0 {
		f.InfilCoef = DefaultInfilCoef
	}
	return f
}

// PrecipRateSI returns the precipitation rate in m/s, without the
// infiltration reduction.
func (f FieldParameters) PrecipRateSI() float64 {
	return f.Precipitation / (1000 * secondsPerYear)
}

// ToSI converts field units into SI [Parameters]:
//
//	cond_h   = cond_h_md / 86400
//	recharge = precip_mm_yr / (1000·365.25·86400) · infil_coef
//	radius_eff = sqrt(area / π)
//
// Returns an INVALID_INPUT error when the area is not positive or the
// infiltration coefficient is negative.
func (f FieldParameters) ToSI() (Parameters, error) {
	f = f.withDefaults()
	if err := errors.ValidatePositive("infil_coef", f.InfilCoef); err != nil {
		return Parameters{}, err
	}
	radiusEff, err := EffectiveRadius(f.Area)
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{
		DrawdownStab: f.DrawdownStab,
		DrawdownEdge: f.DrawdownEdge,
		RadiusEff:    radiusEff,
		Recharge:     f.PrecipRateSI() * f.InfilCoef,
		CondH:        f.CondHPerDay / secondsPerDay,
		Anisotropy:   f.Anisotropy,
		DepthPitLake: f.DepthPitLake,
	}, nil
}

// FieldCase couples a solved [Model] with the field-unit inputs it was
// derived from. The coupling is composition, not inheritance: unit
// conversion produces Parameters, and the embedded model is constructed
// through the same [New] as any SI-unit caller. The extra methods cover
// the inflow variants that need the pit area and precipitation rate,
// which the SI parameter set does not carry.
type FieldCase struct {
	*Model
	field FieldParameters
}

// NewFieldCase converts f to SI units and constructs the model.
func NewFieldCase(f FieldParameters, opts ...Option) (*FieldCase, error) {
	f = f.withDefaults()
	p, err := f.ToSI()
	if err != nil {
		return nil, err
	}
	m, err := New(p, opts...)
	if err != nil {
		return nil, err
	}
	return &FieldCase{Model: m, field: f}, nil
}

// Field returns the field-unit inputs the case was built from.
func (c *FieldCase) Field() FieldParameters { return c.field }

// InflowPrecipitation returns the direct precipitation load on the pit
// footprint (m³/s).
func (c *FieldCase) InflowPrecipitation() float64 {
	return InflowPrecipitation(c.field.PrecipRateSI(), c.field.Area)
}

// InflowMeltwater returns the snowmelt load on the pit footprint (m³/s),
// using the SnowDays/MeltDays amplification from the field parameters.
func (c *FieldCase) InflowMeltwater() (float64, error) {
	return InflowMeltwater(c.field.PrecipRateSI(), c.field.SnowDays, c.field.MeltDays, c.field.Area)
}

// InflowZone1PlusPrecipitation returns zone 1 inflow augmented by the
// direct precipitation load (m³/s).
func (c *FieldCase) InflowZone1PlusPrecipitation() (float64, error) {
	q1, err := c.InflowZone1()
	if err != nil {
		return 0, err
	}
	return q1 + c.InflowPrecipitation(), nil
}

// InflowZone1PlusMeltwater returns zone 1 inflow augmented by the
// snowmelt load (m³/s).
func (c *FieldCase) InflowZone1PlusMeltwater() (float64, error) {
	q1, err := c.InflowZone1()
	if err != nil {
		return 0, err
	}
	qm, err := c.InflowMeltwater()
	if err != nil {
		return 0, err
	}
	return q1 + qm, nil
}
