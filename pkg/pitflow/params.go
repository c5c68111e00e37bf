package pitflow

import (
	"github.com/groundwaterkit/pitflow/pkg/errors"
)

// Parameters holds the SI-unit inputs of the drawdown model.
// All lengths are meters, all rates are meters per second.
//
// The zero value is not usable: DrawdownStab, RadiusEff and CondH must be
// set. Anisotropy defaults to 1 (isotropic) when left zero.
type Parameters struct {
	// DrawdownStab is the stabilized drawdown at the pit wall (m).
	DrawdownStab float64

	// DrawdownEdge is the residual drawdown at the radius of influence (m).
	// Zero is the conservative choice: no residual head at the boundary.
	DrawdownEdge float64

	// RadiusEff is the effective (circularized) pit radius (m).
	RadiusEff float64

	// Recharge is the net aquifer recharge feeding the depression cone (m/s).
	Recharge float64

	// CondH is the horizontal hydraulic conductivity (m/s).
	CondH float64

	// Anisotropy is the vertical/horizontal conductivity ratio used in the
	// zone 2 seepage-face correction. Dimensionless; 1 means isotropic.
	Anisotropy float64

	// DepthPitLake is the standing water depth in the pit (m). It reduces
	// the head difference driving vertical inflow through the pit floor.
	DepthPitLake float64
}

// withDefaults fills optional fields that were left at their zero value.
func (p Parameters) withDefaults() Parameters {
	if p.Anisotropy == 0 {
		p.Anisotropy = 1
	}
	return p
}

// Validate checks the physical-domain constraints and returns an
// INVALID_INPUT error naming the first violated parameter. It is called
// by [New] before any solving is attempted.
func (p Parameters) Validate() error {
	if err := errors.ValidatePositive("radius_eff", p.RadiusEff); err != nil {
		return err
	}
	if err := errors.ValidatePositive("cond_h", p.CondH); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("recharge", p.Recharge); err != nil {
		return err
	}
	if err := errors.ValidatePositive("anisotropy", p.Anisotropy); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("drawdown_edge", p.DrawdownEdge); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("depth_pitlake", p.DepthPitLake); err != nil {
		return err
	}
	// A root of the governing equation only exists when the wall drawdown
	// exceeds the boundary drawdown.
	if !(p.DrawdownStab > p.DrawdownEdge) {
		return errors.New(errors.ErrCodeInvalidInput,
			"drawdown_stab (%g) must exceed drawdown_edge (%g)", p.DrawdownStab, p.DrawdownEdge)
	}
	return nil
}
