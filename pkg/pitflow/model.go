package pitflow

import (
	"math"
	"sync"

	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/rootfind"
)

// Default initial guesses for the two root-finding problems. Both match
// field-scale magnitudes: influence radii of open pits are typically
// hundreds to thousands of meters, threshold distances tens of meters.
const (
	// DefaultInfluenceGuess seeds the radius-of-influence solve (m).
	DefaultInfluenceGuess = 10000.0

	// DefaultThresholdGuess seeds threshold-radius solves (m).
	DefaultThresholdGuess = 10.0
)

// Option configures a Model at construction time.
type Option func(*Model)

// WithInitialGuess overrides the starting point of the influence-radius
// solve. Useful for retrying after a ROOT_FINDING failure.
func WithInitialGuess(radius float64) Option {
	return func(m *Model) { m.guess = radius }
}

// solution holds every value derived from the influence-radius root.
// It is computed once and reused for the lifetime of the model.
type solution struct {
	radiusInfl     float64 // root of the governing equation (m, from pit center)
	radiusFromEdge float64 // radiusInfl - radiusEff (m, from pit wall)
	inflowZone1    float64 // horizontal inflow through pit walls (m³/s)
	inflowTotal    float64 // inflowZone1 + zone 2 (m³/s)
	residual       float64 // governing-equation residual at the root
	iterations     int     // solver iterations consumed
}

// Model is an immutable steady-state drawdown model. Create one with [New];
// the zero value is not usable.
type Model struct {
	params Parameters
	guess  float64

	solveOnce sync.Once
	solved    solution
	solveErr  error
}

// New validates p and returns a model ready for querying. The implicit
// governing equation is not solved here; the solve runs once, on first
// access to any radius- or inflow-dependent query.
//
// Returns an INVALID_INPUT error when a parameter violates its physical
// domain (see [Parameters.Validate]).
func New(p Parameters, opts ...Option) (*Model, error) {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := &Model{params: p, guess: DefaultInfluenceGuess}
	for _, opt := range opts {
		opt(m)
	}
	if m.guess <= p.RadiusEff {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"initial guess %g must exceed radius_eff %g", m.guess, p.RadiusEff)
	}
	return m, nil
}

// Params returns the validated parameters the model was built from.
func (m *Model) Params() Parameters { return m.params }

// Residual evaluates the governing Marinelli & Niccoli equation at a
// candidate influence radius R (m, from pit center). A correct radius of
// influence yields a residual of zero. Exposed for diagnostics; callers
// normally use [Model.RadiusOfInfluence].
func (m *Model) Residual(radiusInfl float64) float64 {
	p := m.params
	radiusTerm := radiusInfl*radiusInfl*math.Log(radiusInfl/p.RadiusEff) -
		(radiusInfl*radiusInfl-p.RadiusEff*p.RadiusEff)/2
	right := math.Sqrt(p.DrawdownEdge*p.DrawdownEdge + (p.Recharge/p.CondH)*radiusTerm)
	return p.DrawdownStab - right
}

// RadiusOfInfluence returns the distance from the pit center at which
// drawdown falls to DrawdownEdge (m). The value is solved on first call
// and memoized. Returns a ROOT_FINDING error when the solver does not
// converge; retry with [WithInitialGuess] in that case.
func (m *Model) RadiusOfInfluence() (float64, error) {
	if err := m.solve(); err != nil {
		return 0, err
	}
	return m.solved.radiusInfl, nil
}

// RadiusFromEdge returns the extent of the influence zone measured from
// the pit wall: RadiusOfInfluence − RadiusEff (m, always ≥ 0).
func (m *Model) RadiusFromEdge() (float64, error) {
	if err := m.solve(); err != nil {
		return 0, err
	}
	return m.solved.radiusFromEdge, nil
}

// SolveStats reports the residual and iteration count of the memoized
// influence-radius solve, for diagnostics and testing.
func (m *Model) SolveStats() (residual float64, iterations int, err error) {
	if err := m.solve(); err != nil {
		return 0, 0, err
	}
	return m.solved.residual, m.solved.iterations, nil
}

// solve runs the influence-radius root finding exactly once. Concurrent
// callers block on the same sync.Once and observe the same result.
func (m *Model) solve() error {
	m.solveOnce.Do(func() {
		p := m.params
		res, err := rootfind.Solve(m.Residual, rootfind.Options{
			Guess:    m.guess,
			Lower:    p.RadiusEff,
			HasLower: true,
		})
		if err != nil {
			m.solveErr = errors.Wrap(errors.ErrCodeRootFinding, err,
				"radius of influence solve failed (guess %g m)", m.guess)
			return
		}
		m.solved = solution{
			radiusInfl:     res.Root,
			radiusFromEdge: res.Root - p.RadiusEff,
			residual:       res.Residual,
			iterations:     res.Iterations,
		}
		m.solved.inflowZone1 = p.Recharge * math.Pi *
			(res.Root*res.Root - p.RadiusEff*p.RadiusEff)
		m.solved.inflowTotal = m.solved.inflowZone1 + m.InflowZone2()
	})
	return m.solveErr
}
