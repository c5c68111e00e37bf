package rootfind

import (
	"math"
	"testing"
)

func TestSolve_Quadratic(t *testing.T) {
	// f(x) = x^2 - 4, roots at ±2.
	f := func(x float64) float64 { return x*x - 4 }

	res, err := Solve(f, Options{Guess: 10})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(res.Root-2) > 1e-6 {
		t.Errorf("Root = %g, want 2", res.Root)
	}
	if math.Abs(res.Residual) >= DefaultTol {
		t.Errorf("Residual = %g, want |residual| < %g", res.Residual, DefaultTol)
	}
}

func TestSolve_NegativeGuessFindsNegativeRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }

	res, err := Solve(f, Options{Guess: -10})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(res.Root+2) > 1e-6 {
		t.Errorf("Root = %g, want -2", res.Root)
	}
}

func TestSolve_Logarithmic(t *testing.T) {
	// f(x) = ln(x) - 1, root at e. Only defined for x > 0, so the domain
	// guard must keep Newton's overshoot out of the singularity.
	f := func(x float64) float64 { return math.Log(x) - 1 }

	res, err := Solve(f, Options{Guess: 50, Lower: 0, HasLower: true})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(res.Root-math.E) > 1e-6 {
		t.Errorf("Root = %g, want e = %g", res.Root, math.E)
	}
}

func TestSolve_DomainGuardNeverSamplesBelowLowerBound(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		if x <= 1 {
			t.Fatalf("f sampled at %g, below the open lower bound 1", x)
		}
		return x*x*math.Log(x) - 100
	}

	if _, err := Solve(f, Options{Guess: 10000, Lower: 1, HasLower: true}); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if calls == 0 {
		t.Fatal("f was never evaluated")
	}
}

func TestSolve_NoConvergence(t *testing.T) {
	// Constant positive function has no root.
	f := func(x float64) float64 { return 1.0 }

	_, err := Solve(f, Options{Guess: 1, MaxIter: 20})
	if err == nil {
		t.Fatal("Solve() error = nil, want NoConvergenceError")
	}

	nce, ok := err.(*NoConvergenceError)
	if !ok {
		t.Fatalf("Solve() error type = %T, want *NoConvergenceError", err)
	}
	if nce.Iterations != 20 {
		t.Errorf("Iterations = %d, want 20", nce.Iterations)
	}
	if nce.Residual != 1.0 {
		t.Errorf("Residual = %g, want 1", nce.Residual)
	}
}

func TestSolve_TightToleranceSteepFunction(t *testing.T) {
	// Root of tanh(50x) at 0, very steep around the root.
	f := func(x float64) float64 { return math.Tanh(50 * x) }

	res, err := Solve(f, Options{Guess: 0.3})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(res.Root) > 1e-6 {
		t.Errorf("Root = %g, want 0", res.Root)
	}
}

func TestSolve_GuessOutsideDomainIsPulledInside(t *testing.T) {
	f := func(x float64) float64 {
		if x <= 0 {
			t.Fatalf("f sampled at %g, outside domain", x)
		}
		return math.Log(x)
	}

	res, err := Solve(f, Options{Guess: -5, Lower: 0, HasLower: true})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(res.Root-1) > 1e-6 {
		t.Errorf("Root = %g, want 1", res.Root)
	}
}

func TestSolve_CustomTolerance(t *testing.T) {
	f := func(x float64) float64 { return x - 3 }

	res, err := Solve(f, Options{Guess: 100, Tol: 1e-3})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(res.Residual) >= 1e-3 {
		t.Errorf("Residual = %g, want below custom tolerance", res.Residual)
	}
}
