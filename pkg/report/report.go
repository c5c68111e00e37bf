// Package report assembles structured listings of drawdown-model inputs
// and outputs for presentation layers.
//
// The numerical core exposes plain values and unit metadata; this package
// turns them into ordered, labeled rows and renders them as a terminal
// table. The core never depends on this package.
package report

import (
	"fmt"

	"github.com/groundwaterkit/pitflow/pkg/pitflow"
)

// Row is one labeled quantity with its unit.
type Row struct {
	Name  string  // canonical field name (key into pitflow.FieldInfos)
	Label string  // human-readable label
	Value float64 // numeric value
	Unit  string  // unit string
}

// Report is an ordered listing of model inputs and key outputs.
type Report struct {
	Title   string
	Inputs  []Row
	Outputs []Row
}

// Options configure which outputs a report includes.
type Options struct {
	// Thresholds lists drawdown values (m) for which the report includes
	// the distance from the pit wall where drawdown falls to that value,
	// e.g. the 1 m boundary relevant for impact assessments.
	Thresholds []float64
}

// row looks up the reporting metadata for name. Unknown names indicate a
// programming error and yield a row with the raw name as label.
func row(name string, value float64) Row {
	info, ok := pitflow.FieldInfos[name]
	if !ok {
		return Row{Name: name, Label: name, Value: value}
	}
	return Row{Name: name, Label: info.Label, Value: value, Unit: info.Unit}
}

// Build assembles a report from a solved field case. Queries that depend
// on the influence radius propagate ROOT_FINDING errors; a report is
// never built from a failed solve.
func Build(c *pitflow.FieldCase, opts Options) (*Report, error) {
	f := c.Field()
	r := &Report{
		Title: "Pit dewatering assessment (Marinelli & Niccoli 2000)",
		Inputs: []Row{
			row("drawdown_stab", f.DrawdownStab),
			row("cond_h", c.Params().CondH),
			row("area", f.Area),
			row("radius_eff", c.Params().RadiusEff),
			row("precipitation", f.Precipitation),
			row("infil_coef", f.InfilCoef),
			row("recharge", c.Params().Recharge),
			row("drawdown_edge", f.DrawdownEdge),
			row("anisotropy", c.Params().Anisotropy),
			row("depth_pitlake", f.DepthPitLake),
		},
	}

	if err := appendModelOutputs(r, c.Model, opts); err != nil {
		return nil, err
	}

	r.Outputs = append(r.Outputs, row("inflow_precipitation", c.InflowPrecipitation()))
	if f.SnowDays > 0 && f.MeltDays > 0 {
		qm, err := c.InflowMeltwater()
		if err != nil {
			return nil, err
		}
		r.Outputs = append(r.Outputs, row("inflow_meltwater", qm))
	}
	return r, nil
}

// BuildSI assembles a report from a bare SI-unit model, without the
// precipitation rows that require field inputs.
func BuildSI(m *pitflow.Model, opts Options) (*Report, error) {
	p := m.Params()
	r := &Report{
		Title: "Pit dewatering assessment (Marinelli & Niccoli 2000)",
		Inputs: []Row{
			row("drawdown_stab", p.DrawdownStab),
			row("cond_h", p.CondH),
			row("radius_eff", p.RadiusEff),
			row("recharge", p.Recharge),
			row("drawdown_edge", p.DrawdownEdge),
			row("anisotropy", p.Anisotropy),
			row("depth_pitlake", p.DepthPitLake),
		},
	}
	if err := appendModelOutputs(r, m, opts); err != nil {
		return nil, err
	}
	return r, nil
}

func appendModelOutputs(r *Report, m *pitflow.Model, opts Options) error {
	radiusInfl, err := m.RadiusOfInfluence()
	if err != nil {
		return err
	}
	fromEdge, err := m.RadiusFromEdge()
	if err != nil {
		return err
	}
	q1, err := m.InflowZone1()
	if err != nil {
		return err
	}
	total, err := m.InflowTotal()
	if err != nil {
		return err
	}

	r.Outputs = append(r.Outputs,
		row("radius_infl", radiusInfl),
		row("radius_infl_from_edge", fromEdge),
		row("inflow_zone1", q1),
		row("inflow_zone2", m.InflowZone2()),
		row("inflow_total", total),
	)

	for _, threshold := range opts.Thresholds {
		radius, err := m.RadiusAtDrawdown(threshold)
		if err != nil {
			return err
		}
		info := pitflow.FieldInfos["radius_at_threshold"]
		r.Outputs = append(r.Outputs, Row{
			Name:  "radius_at_threshold",
			Label: fmt.Sprintf("%s (%g m)", info.Label, threshold),
			Value: radius,
			Unit:  info.Unit,
		})
	}
	return nil
}
