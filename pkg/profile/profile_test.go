package profile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/pitflow"
)

func testModel(t *testing.T) *pitflow.Model {
	t.Helper()
	m, err := pitflow.New(pitflow.Parameters{
		DrawdownStab: 6,
		CondH:        20.0 / 86400,
		RadiusEff:    math.Sqrt(4000 / math.Pi),
		Recharge:     761.0 / (1000 * 365.25 * 86400) * 0.1,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestSample(t *testing.T) {
	m := testModel(t)

	s, err := Sample(m, 1000, 100)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(s.Points) != 101 {
		t.Fatalf("len(Points) = %d, want 101", len(s.Points))
	}

	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if first.Radius != 0 || first.Drawdown != 6 {
		t.Errorf("first point = (%g, %g), want (0, 6)", first.Radius, first.Drawdown)
	}
	if last.Radius != 1000 {
		t.Errorf("last radius = %g, want 1000", last.Radius)
	}

	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Radius <= s.Points[i-1].Radius {
			t.Fatalf("radii not strictly increasing at index %d", i)
		}
		if s.Points[i].Drawdown > s.Points[i-1].Drawdown+1e-12 {
			t.Fatalf("drawdown increased at index %d", i)
		}
	}
}

func TestSample_Invalid(t *testing.T) {
	m := testModel(t)

	if _, err := Sample(m, 0, 10); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Sample(span=0) error = %v, want INVALID_INPUT", err)
	}
	if _, err := Sample(m, 100, 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Sample(n=0) error = %v, want INVALID_INPUT", err)
	}
}

func TestSampleToInfluence_ReachesZero(t *testing.T) {
	m := testModel(t)

	s, err := SampleToInfluence(m, 200)
	if err != nil {
		t.Fatalf("SampleToInfluence() error = %v", err)
	}
	if last := s.Points[len(s.Points)-1]; last.Drawdown != 0 {
		t.Errorf("last drawdown = %g, want 0 past the influence boundary", last.Drawdown)
	}
}

func TestWriteCSV(t *testing.T) {
	m := testModel(t)
	s, err := Sample(m, 500, 10)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(records) != 12 { // header + 11 points
		t.Fatalf("CSV rows = %d, want 12", len(records))
	}
	if records[0][0] != "radius_from_wall_m" || records[0][1] != "drawdown_m" {
		t.Errorf("header = %v, want radius_from_wall_m,drawdown_m", records[0])
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	m := testModel(t)
	s, err := Sample(m, 500, 10)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, s); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got Series
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Points) != len(s.Points) {
		t.Fatalf("round-trip points = %d, want %d", len(got.Points), len(s.Points))
	}
	if got.Points[0].Drawdown != s.Points[0].Drawdown {
		t.Errorf("round-trip first drawdown = %g, want %g", got.Points[0].Drawdown, s.Points[0].Drawdown)
	}
}

func TestRenderSVG(t *testing.T) {
	m := testModel(t)
	s, err := SampleToInfluence(m, 50)
	if err != nil {
		t.Fatalf("SampleToInfluence() error = %v", err)
	}

	svg := string(RenderSVG(s, WithTitle("Reference quarry"), WithSize(640, 320)))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 640 320"`,
		"Reference quarry",
		"<polyline",
		"radius from pit wall (m)",
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestRenderSVG_EmptySeries(t *testing.T) {
	svg := string(RenderSVG(Series{}))
	if strings.Contains(svg, "<polyline") {
		t.Error("empty series should not emit a polyline")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("SVG output not closed")
	}
}
