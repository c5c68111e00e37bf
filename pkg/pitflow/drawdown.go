package pitflow

import (
	"math"

	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/rootfind"
)

// DrawdownAt returns the drawdown (m, ≥ 0) at radiusFromWall meters from
// the pit wall.
//
// Boundary behavior:
//   - radiusFromWall ≤ 0 returns DrawdownStab: any point at or inside the
//     wall is treated as fully drawn down.
//   - radiusFromWall ≥ [Model.RadiusFromEdge] returns 0: outside the
//     influence zone there is no measurable drawdown.
//
// In between, the radial shape function is evaluated with the solved
// radius of influence held fixed inside the logarithmic term; the root is
// not re-solved per query. The result is non-increasing in radiusFromWall.
func (m *Model) DrawdownAt(radiusFromWall float64) (float64, error) {
	if radiusFromWall <= 0 {
		return m.params.DrawdownStab, nil
	}
	if err := m.solve(); err != nil {
		return 0, err
	}
	if radiusFromWall >= m.solved.radiusFromEdge {
		return 0, nil
	}
	return m.drawdownShape(radiusFromWall), nil
}

// drawdownShape evaluates the interior drawdown profile at a point
// strictly between the wall and the influence boundary. Callers must have
// solved the model first.
func (m *Model) drawdownShape(radiusFromWall float64) float64 {
	p := m.params
	radius := radiusFromWall + p.RadiusEff
	ri := m.solved.radiusInfl
	radiusTerm := ri*ri*math.Log(radius/p.RadiusEff) -
		(radius*radius-p.RadiusEff*p.RadiusEff)/2
	return p.DrawdownStab -
		math.Sqrt(p.DrawdownEdge*p.DrawdownEdge+(p.Recharge/p.CondH)*radiusTerm)
}

// RadiusAtDrawdown returns the distance from the pit wall (m) at which
// drawdown falls to threshold. This inverse has no closed form and is
// solved with the default initial guess of [DefaultThresholdGuess] meters;
// use [Model.RadiusAtDrawdownFrom] to override the guess.
//
// The threshold must lie strictly between 0 and the wall drawdown
// DrawdownStab − DrawdownEdge; outside that range no interior radius
// exists and an INVALID_INPUT error is returned.
func (m *Model) RadiusAtDrawdown(threshold float64) (float64, error) {
	return m.RadiusAtDrawdownFrom(threshold, DefaultThresholdGuess)
}

// RadiusAtDrawdownFrom is [Model.RadiusAtDrawdown] with an explicit
// initial guess (m from the pit wall).
func (m *Model) RadiusAtDrawdownFrom(threshold, guess float64) (float64, error) {
	p := m.params
	if err := errors.ValidateInOpenInterval("threshold", threshold,
		0, p.DrawdownStab-p.DrawdownEdge); err != nil {
		return 0, err
	}
	if err := m.solve(); err != nil {
		return 0, err
	}

	// Solve on the smooth interior shape, bounded away from the piecewise
	// flat regions where the derivative vanishes.
	f := func(r float64) float64 { return m.drawdownShape(r) - threshold }
	res, err := rootfind.Solve(f, rootfind.Options{
		Guess:    guess,
		Lower:    0,
		Upper:    m.solved.radiusFromEdge,
		HasLower: true,
		HasUpper: true,
	})
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeRootFinding, err,
			"threshold radius solve failed (threshold %g m, guess %g m)", threshold, guess)
	}
	return res.Root, nil
}
