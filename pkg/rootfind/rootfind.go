// Package rootfind provides a scalar root finder for implicit equations
// that have no closed-form solution.
//
// # Overview
//
// The solver combines damped Newton iteration (with a numerical central
// difference derivative) and bisection. Whenever two evaluated points
// bracket a sign change the bracket is remembered, and any Newton step
// that leaves the bracket or the valid domain is replaced by a bisection
// step. This keeps the fast quadratic convergence of Newton on
// well-behaved functions while guaranteeing progress on badly scaled ones.
//
// # Domain Guards
//
// Many governing equations are only defined on an open interval (for
// example a logarithmic term that requires its argument to stay positive).
// [Options.Lower] and [Options.Upper] restrict every trial point, including
// the derivative sampling points, to the open interval (Lower, Upper).
//
// # Failure
//
// The solver never returns a non-root silently. If the residual tolerance
// is not met within the iteration budget, [Solve] returns a
// [*NoConvergenceError] carrying the last residual and the iteration count
// so callers can retry with a different guess.
package rootfind

import (
	"math"

	"github.com/groundwaterkit/pitflow/pkg/errors"
)

// Defaults used when the corresponding Options field is zero.
const (
	// DefaultTol is the absolute residual tolerance.
	DefaultTol = 1e-9

	// DefaultMaxIter bounds the number of function evaluations per solve.
	DefaultMaxIter = 200
)

// Func is a scalar function whose root is sought.
type Func func(x float64) float64

// Options configure a solve. The zero value of every field except Guess
// selects a sensible default.
type Options struct {
	Guess   float64 // initial trial point (required, must lie in the domain)
	Lower   float64 // open lower domain bound; math.Inf(-1) if zero-valued is meant literally
	Upper   float64 // open upper domain bound; 0 means unbounded above
	Tol     float64 // absolute residual tolerance (default DefaultTol)
	MaxIter int     // iteration budget (default DefaultMaxIter)

	// HasLower/HasUpper distinguish "bound at zero" from "no bound".
	HasLower bool
	HasUpper bool
}

// Result describes a successful solve.
type Result struct {
	Root       float64 // x with |f(x)| < Tol
	Residual   float64 // f(Root)
	Iterations int     // function evaluations consumed
}

// NoConvergenceError is returned when the iteration budget is exhausted
// before the residual tolerance is met.
type NoConvergenceError struct {
	Residual   float64 // residual at the last trial point
	Iterations int     // iterations consumed
}

// Error implements the error interface.
func (e *NoConvergenceError) Error() string {
	return errors.New(errors.ErrCodeRootFinding,
		"no convergence after %d iterations (residual %g)", e.Iterations, e.Residual).Error()
}

// Code returns the error code for this error type.
func (e *NoConvergenceError) Code() errors.Code { return errors.ErrCodeRootFinding }

// Solve finds x with |f(x)| < Tol starting from opts.Guess.
func Solve(f Func, opts Options) (Result, error) {
	tol := opts.Tol
	if tol <= 0 {
		tol = DefaultTol
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	lower := math.Inf(-1)
	if opts.HasLower {
		lower = opts.Lower
	}
	upper := math.Inf(1)
	if opts.HasUpper {
		upper = opts.Upper
	}

	clamp := func(x, from float64) float64 {
		// Violating trial points are pulled halfway back toward the last
		// in-domain point rather than pinned to the (open) bound itself.
		for x <= lower || x >= upper || math.IsNaN(x) {
			x = (x + from) / 2
			if x == from {
				return from
			}
		}
		return x
	}

	x := clamp(opts.Guess, midpoint(lower, upper, opts.Guess))

	// Bracket endpoints with opposite signs, once discovered.
	var bLo, bHi float64
	var fLo float64
	haveBracket := false

	var fPrev, prevX float64
	prevSet := false

	note := func(xi, fi float64) {
		if haveBracket {
			// Shrink the bracket around the root.
			if (fi < 0) == (fLo < 0) {
				if xi > bLo && xi < bHi {
					bLo, fLo = xi, fi
				}
			} else if xi > bLo && xi < bHi {
				bHi = xi
			}
			return
		}
		if prevSet && (fi < 0) != (fPrev < 0) {
			if prevX < xi {
				bLo, bHi, fLo = prevX, xi, fPrev
			} else {
				bLo, bHi, fLo = xi, prevX, fi
			}
			haveBracket = true
		}
	}

	fx := f(x)
	iters := 1
	for {
		if math.Abs(fx) < tol {
			return Result{Root: x, Residual: fx, Iterations: iters}, nil
		}
		if iters >= maxIter {
			return Result{}, &NoConvergenceError{Residual: fx, Iterations: iters}
		}

		note(x, fx)
		prevX, fPrev, prevSet = x, fx, true

		var next float64
		d := derivative(f, x, lower, upper)
		switch {
		case d != 0 && !math.IsNaN(d) && !math.IsInf(d, 0):
			next = x - fx/d
		case haveBracket:
			next = (bLo + bHi) / 2
		default:
			// Flat spot with no bracket: probe outward.
			next = x + math.Max(math.Abs(x), 1)
		}

		if haveBracket && (next <= bLo || next >= bHi) {
			next = (bLo + bHi) / 2
		}
		next = clamp(next, x)
		if next == x {
			return Result{}, &NoConvergenceError{Residual: fx, Iterations: iters}
		}

		x = next
		fx = f(x)
		iters++
	}
}

// derivative estimates f'(x) by central difference, shrinking the stencil
// when a sampling point would leave the open domain.
func derivative(f Func, x, lower, upper float64) float64 {
	h := math.Max(math.Abs(x), 1) * 1e-7
	for range 40 {
		lo, hi := x-h, x+h
		if lo > lower && hi < upper {
			return (f(hi) - f(lo)) / (2 * h)
		}
		h /= 2
	}
	return 0
}

// midpoint picks an in-domain fallback anchor for clamping the guess.
func midpoint(lower, upper, guess float64) float64 {
	switch {
	case !math.IsInf(lower, -1) && !math.IsInf(upper, 1):
		return (lower + upper) / 2
	case !math.IsInf(lower, -1):
		return lower + math.Max(math.Abs(guess), 1)
	case !math.IsInf(upper, 1):
		return upper - math.Max(math.Abs(guess), 1)
	default:
		return guess
	}
}
