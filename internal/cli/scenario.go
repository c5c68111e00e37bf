package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/pitflow"
)

// scenario is the TOML representation of a dewatering scenario in field
// units. Example file:
//
//	drawdown_stab = 6.0    # stabilized drawdown at pit wall (m)
//	cond_h = 20.0          # horizontal conductivity (m/d)
//	area = 4000.0          # pit plan area (m²)
//	precipitation = 761.0  # mean annual precipitation (mm/yr)
//
//	# optional
//	infil_coef = 0.1
//	drawdown_edge = 0.0
//	anisotropy = 1.0
//	depth_pitlake = 0.0
//	period_snow_accumulation = 90.0
//	period_melting = 30.0
type scenario struct {
	DrawdownStab  float64 `toml:"drawdown_stab"`
	CondH         float64 `toml:"cond_h"`
	Area          float64 `toml:"area"`
	Precipitation float64 `toml:"precipitation"`
	InfilCoef     float64 `toml:"infil_coef"`
	DrawdownEdge  float64 `toml:"drawdown_edge"`
	Anisotropy    float64 `toml:"anisotropy"`
	DepthPitLake  float64 `toml:"depth_pitlake"`
	SnowDays      float64 `toml:"period_snow_accumulation"`
	MeltDays      float64 `toml:"period_melting"`
}

func (s scenario) fieldParameters() pitflow.FieldParameters {
	return pitflow.FieldParameters{
		DrawdownStab:  s.DrawdownStab,
		CondHPerDay:   s.CondH,
		Area:          s.Area,
		Precipitation: s.Precipitation,
		InfilCoef:     s.InfilCoef,
		DrawdownEdge:  s.DrawdownEdge,
		Anisotropy:    s.Anisotropy,
		DepthPitLake:  s.DepthPitLake,
		SnowDays:      s.SnowDays,
		MeltDays:      s.MeltDays,
	}
}

// loadScenario reads a TOML scenario file into field-unit parameters.
// Unknown keys are rejected so typos fail loudly instead of silently
// defaulting a parameter to zero.
func loadScenario(path string) (pitflow.FieldParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pitflow.FieldParameters{}, errors.Wrap(errors.ErrCodeInvalidScenario, err,
			"reading scenario file %s", path)
	}
	return parseScenario(string(data))
}

// parseScenario decodes TOML scenario content.
func parseScenario(data string) (pitflow.FieldParameters, error) {
	var s scenario
	meta, err := toml.Decode(data, &s)
	if err != nil {
		return pitflow.FieldParameters{}, errors.Wrap(errors.ErrCodeInvalidScenario, err,
			"parsing scenario")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return pitflow.FieldParameters{}, errors.New(errors.ErrCodeInvalidScenario,
			"unknown scenario keys: %s", strings.Join(keys, ", "))
	}
	return s.fieldParameters(), nil
}
