// Package sweep runs one-dimensional sensitivity sweeps over the
// drawdown model.
//
// A sweep varies a single parameter across an evenly spaced grid and
// solves an independent model per grid point, in parallel. Models are
// immutable and each point builds its own, so the only shared state is
// the result slice, which workers address by index, so a parallel sweep
// is bit-identical to a sequential one.
package sweep

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/pitflow"
)

// Dimension names the swept parameter.
type Dimension string

// Sweepable dimensions.
const (
	DimCondH        Dimension = "cond_h"
	DimRecharge     Dimension = "recharge"
	DimDrawdownStab Dimension = "drawdown_stab"
	DimRadiusEff    Dimension = "radius_eff"
	DimAnisotropy   Dimension = "anisotropy"
)

// Dimensions lists every sweepable dimension, for CLI validation.
var Dimensions = []Dimension{DimCondH, DimRecharge, DimDrawdownStab, DimRadiusEff, DimAnisotropy}

// Spec describes a sweep: vary Dimension from From to To in Steps evenly
// spaced grid points, holding every other parameter at its Base value.
type Spec struct {
	Base      pitflow.Parameters
	Dimension Dimension
	From, To  float64
	Steps     int // grid points, at least 2

	// Workers bounds the worker pool; 0 means runtime.NumCPU().
	Workers int

	// OnPoint, when non-nil, is called after each completed grid point
	// with the number of finished points and the total. It may be called
	// from multiple goroutines.
	OnPoint func(done, total int)
}

// Point is the solved result at one grid value. A grid point can fail
// individually (for example an unreachable drawdown at extreme
// parameters); Err records the failure and the numeric fields are zero.
type Point struct {
	Value       float64 // swept parameter value
	RadiusInfl  float64 // radius of influence (m)
	InflowZone1 float64 // m³/s
	InflowZone2 float64 // m³/s
	InflowTotal float64 // m³/s
	Err         error
}

// Validate checks the sweep specification.
func (s Spec) Validate() error {
	ok := false
	for _, d := range Dimensions {
		if s.Dimension == d {
			ok = true
			break
		}
	}
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown sweep dimension %q", s.Dimension)
	}
	if s.Steps < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "sweep needs at least 2 steps, got %d", s.Steps)
	}
	if s.From == s.To {
		return errors.New(errors.ErrCodeInvalidInput, "sweep range is empty: from == to == %g", s.From)
	}
	return nil
}

// apply returns Base with the swept dimension set to v.
func (s Spec) apply(v float64) pitflow.Parameters {
	p := s.Base
	switch s.Dimension {
	case DimCondH:
		p.CondH = v
	case DimRecharge:
		p.Recharge = v
	case DimDrawdownStab:
		p.DrawdownStab = v
	case DimRadiusEff:
		p.RadiusEff = v
	case DimAnisotropy:
		p.Anisotropy = v
	}
	return p
}

// Run executes the sweep. The returned slice has exactly Steps entries in
// grid order regardless of worker scheduling. Run returns an error only
// for an invalid spec or a cancelled context; per-point failures are
// recorded in [Point.Err].
func Run(ctx context.Context, spec Spec) ([]Point, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	workers := spec.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > spec.Steps {
		workers = spec.Steps
	}

	points := make([]Point, spec.Steps)
	indices := make(chan int)
	var done atomic.Int64

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				points[i] = solvePoint(spec, i)
				if spec.OnPoint != nil {
					spec.OnPoint(int(done.Add(1)), spec.Steps)
				}
			}
		}()
	}

	var cancelled error
feed:
	for i := 0; i < spec.Steps; i++ {
		select {
		case indices <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(indices)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	return points, nil
}

func solvePoint(spec Spec, i int) Point {
	step := (spec.To - spec.From) / float64(spec.Steps-1)
	v := spec.From + step*float64(i)
	pt := Point{Value: v}

	m, err := pitflow.New(spec.apply(v))
	if err != nil {
		pt.Err = err
		return pt
	}
	if pt.RadiusInfl, err = m.RadiusOfInfluence(); err != nil {
		pt.Err = err
		return pt
	}
	if pt.InflowZone1, err = m.InflowZone1(); err != nil {
		pt.Err = err
		return pt
	}
	pt.InflowZone2 = m.InflowZone2()
	if pt.InflowTotal, err = m.InflowTotal(); err != nil {
		pt.Err = err
		return pt
	}
	return pt
}
