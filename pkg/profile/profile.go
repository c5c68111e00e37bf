// Package profile samples the drawdown field at dense radial intervals
// for plotting and export.
//
// The numerical core exposes drawdown as a pure function of radius; this
// package calls it over a configurable span and writes the resulting
// curve as CSV, JSON, or a self-contained SVG chart. The core does not
// depend on this package.
package profile

import (
	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/pitflow"
)

// Point is one sample of the drawdown curve.
type Point struct {
	Radius   float64 `json:"radius"`   // distance from pit wall (m)
	Drawdown float64 `json:"drawdown"` // drawdown at that distance (m)
}

// Series is a drawdown curve sampled at increasing radii.
type Series struct {
	Points []Point `json:"points"`
}

// Sample evaluates the drawdown profile at n+1 evenly spaced radii over
// [0, span]. span must be positive and n at least 1.
func Sample(m *pitflow.Model, span float64, n int) (Series, error) {
	if err := errors.ValidatePositive("span", span); err != nil {
		return Series{}, err
	}
	if n < 1 {
		return Series{}, errors.New(errors.ErrCodeInvalidInput, "sample count must be at least 1, got %d", n)
	}

	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		r := span * float64(i) / float64(n)
		s, err := m.DrawdownAt(r)
		if err != nil {
			return Series{}, err
		}
		points = append(points, Point{Radius: r, Drawdown: s})
	}
	return Series{Points: points}, nil
}

// SampleToInfluence samples from the pit wall to 5% past the influence
// boundary, so exported curves visibly reach zero.
func SampleToInfluence(m *pitflow.Model, n int) (Series, error) {
	fromEdge, err := m.RadiusFromEdge()
	if err != nil {
		return Series{}, err
	}
	return Sample(m, fromEdge*1.05, n)
}
