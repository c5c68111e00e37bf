// Package pitflow computes the steady-state groundwater drawdown field
// induced by an open-pit excavation using the semi-analytical
// Marinelli & Niccoli (2000) model.
//
// # Overview
//
// Dewatering an open pit (quarry or mine) lowers the surrounding water
// table. The model answers three questions: how far the depression cone
// extends (the radius of influence), how much drawdown occurs at any
// radial distance from the pit, and what inflow rates must be managed:
// horizontal flow through the pit walls (zone 1), vertical flow through
// the pit floor (zone 2), plus direct precipitation and snowmelt.
//
// The radius of influence R is the root of an implicit equation with no
// closed form,
//
//	s_w = sqrt( s_R² + (W/Kh)·[ R²·ln(R/r_e) − (R²−r_e²)/2 ] )
//
// where s_w is the stabilized drawdown at the pit wall, s_R the residual
// drawdown at the influence boundary, W the recharge rate, Kh the
// horizontal hydraulic conductivity and r_e the effective pit radius.
// The root is found numerically by [github.com/groundwaterkit/pitflow/pkg/rootfind].
//
// # Basic Usage
//
// Construct a [Model] from SI-unit [Parameters] and query it:
//
//	m, err := pitflow.New(pitflow.Parameters{
//	    DrawdownStab: 6,
//	    CondH:        20.0 / 86400,
//	    RadiusEff:    35.68,
//	    Recharge:     2.41e-9,
//	})
//	if err != nil {
//	    // INVALID_INPUT: a parameter violates a physical constraint
//	}
//	r, err := m.RadiusOfInfluence() // ROOT_FINDING on solver failure
//	s, err := m.DrawdownAt(100)     // drawdown 100 m from the pit wall
//
// Field measurements rarely arrive in SI units. [FieldParameters] accepts
// conductivity in m/d, pit area in m² and precipitation in mm/yr, and
// [NewFieldCase] converts them before delegating to the same model:
//
//	c, err := pitflow.NewFieldCase(pitflow.FieldParameters{
//	    DrawdownStab:  6,
//	    CondHPerDay:   20,
//	    Area:          4000,
//	    Precipitation: 761,
//	})
//
// # Sign Convention
//
// Drawdown is non-negative everywhere: [Model.DrawdownAt] returns
// DrawdownStab at and inside the pit wall, zero at and beyond the
// influence boundary, and a monotonically non-increasing value in
// between. There is no negated "depression" variant.
//
// # Concurrency
//
// A Model is immutable after construction. The influence-radius solve
// runs once, on first access, guarded by sync.Once; concurrent first
// access from multiple goroutines is safe and performs a single solve.
// All query methods may be called from multiple goroutines.
//
// # Errors
//
// Constructors return INVALID_INPUT errors for parameters outside their
// physical domain, before any solving is attempted. Queries that depend
// on the solved radius return ROOT_FINDING errors when the iterative
// solver fails to converge; the error carries the last residual and the
// iteration count. The package never logs, prints, or substitutes
// defaults for a failed solve.
package pitflow
