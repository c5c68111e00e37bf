package server

import (
	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/pitflow"
)

// FieldParams mirrors pitflow.FieldParameters with JSON tags.
// Field names follow the snake_case convention of the model literature.
type FieldParams struct {
	DrawdownStab  float64 `json:"drawdown_stab"`
	CondHPerDay   float64 `json:"cond_h_md"`
	Area          float64 `json:"area"`
	Precipitation float64 `json:"precipitation"`
	InfilCoef     float64 `json:"infil_coef,omitempty"`
	DrawdownEdge  float64 `json:"drawdown_edge,omitempty"`
	Anisotropy    float64 `json:"anisotropy,omitempty"`
	DepthPitLake  float64 `json:"depth_pitlake,omitempty"`
	SnowDays      float64 `json:"period_snow_accumulation,omitempty"`
	MeltDays      float64 `json:"period_melting,omitempty"`
}

func (p FieldParams) toPitflow() pitflow.FieldParameters {
	return pitflow.FieldParameters{
		DrawdownStab:  p.DrawdownStab,
		CondHPerDay:   p.CondHPerDay,
		Area:          p.Area,
		Precipitation: p.Precipitation,
		InfilCoef:     p.InfilCoef,
		DrawdownEdge:  p.DrawdownEdge,
		Anisotropy:    p.Anisotropy,
		DepthPitLake:  p.DepthPitLake,
		SnowDays:      p.SnowDays,
		MeltDays:      p.MeltDays,
	}
}

// SIParams mirrors pitflow.Parameters with JSON tags.
type SIParams struct {
	DrawdownStab float64 `json:"drawdown_stab"`
	DrawdownEdge float64 `json:"drawdown_edge,omitempty"`
	RadiusEff    float64 `json:"radius_eff"`
	Recharge     float64 `json:"recharge"`
	CondH        float64 `json:"cond_h"`
	Anisotropy   float64 `json:"anisotropy,omitempty"`
	DepthPitLake float64 `json:"depth_pitlake,omitempty"`
}

func (p SIParams) toPitflow() pitflow.Parameters {
	return pitflow.Parameters{
		DrawdownStab: p.DrawdownStab,
		DrawdownEdge: p.DrawdownEdge,
		RadiusEff:    p.RadiusEff,
		Recharge:     p.Recharge,
		CondH:        p.CondH,
		Anisotropy:   p.Anisotropy,
		DepthPitLake: p.DepthPitLake,
	}
}

// SolveRequest is the body of POST /api/v1/solve. Exactly one of Field
// and SI must be set.
type SolveRequest struct {
	Field      *FieldParams `json:"field,omitempty"`
	SI         *SIParams    `json:"si,omitempty"`
	Thresholds []float64    `json:"thresholds,omitempty"`
	Guess      float64      `json:"guess,omitempty"` // initial solver guess override (m)
}

// model builds the solver inputs from the request. The returned FieldCase
// is nil for SI requests.
func (r SolveRequest) model() (*pitflow.Model, *pitflow.FieldCase, error) {
	switch {
	case r.Field != nil && r.SI != nil:
		return nil, nil, errors.New(errors.ErrCodeInvalidScenario, "request must set either field or si parameters, not both")
	case r.Field != nil:
		var opts []pitflow.Option
		if r.Guess != 0 {
			opts = append(opts, pitflow.WithInitialGuess(r.Guess))
		}
		c, err := pitflow.NewFieldCase(r.Field.toPitflow(), opts...)
		if err != nil {
			return nil, nil, err
		}
		return c.Model, c, nil
	case r.SI != nil:
		var opts []pitflow.Option
		if r.Guess != 0 {
			opts = append(opts, pitflow.WithInitialGuess(r.Guess))
		}
		m, err := pitflow.New(r.SI.toPitflow(), opts...)
		if err != nil {
			return nil, nil, err
		}
		return m, nil, nil
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidScenario, "request must set field or si parameters")
	}
}

// ThresholdResult pairs a requested drawdown threshold with the radius
// at which drawdown falls to it.
type ThresholdResult struct {
	Threshold float64 `json:"threshold"` // m
	Radius    float64 `json:"radius"`    // m from pit wall
}

// SolveResponse is the body returned by POST /api/v1/solve.
type SolveResponse struct {
	RadiusInfl          float64           `json:"radius_infl"`
	RadiusInflFromEdge  float64           `json:"radius_infl_from_edge"`
	InflowZone1         float64           `json:"inflow_zone1"`
	InflowZone2         float64           `json:"inflow_zone2"`
	InflowTotal         float64           `json:"inflow_total"`
	InflowPrecipitation *float64          `json:"inflow_precipitation,omitempty"`
	InflowMeltwater     *float64          `json:"inflow_meltwater,omitempty"`
	Thresholds          []ThresholdResult `json:"thresholds,omitempty"`
}

// ProfileRequest is the body of POST /api/v1/profile. Span 0 samples to
// just past the influence boundary; Samples 0 defaults to 200 points.
type ProfileRequest struct {
	SolveRequest
	Span    float64 `json:"span,omitempty"`
	Samples int     `json:"samples,omitempty"`
	Format  string  `json:"format,omitempty"` // "json" (default) or "svg"
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
