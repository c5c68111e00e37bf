package server

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/groundwaterkit/pitflow/pkg/cache"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(log.New(io.Discard), cache.NewMemoryCache(), 0)
}

func fieldBody() string {
	return `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761}}`
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeSolve(t *testing.T, w *httptest.ResponseRecorder) SolveResponse {
	t.Helper()
	var resp SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v (body %s)", err, w.Body.String())
	}
	return resp
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body %q missing status", w.Body.String())
	}
}

func TestSolve_FieldScenario(t *testing.T) {
	s := newTestServer(t)
	w := post(t, s, "/api/v1/solve", fieldBody())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeSolve(t, w)

	if math.Abs(resp.RadiusInfl-1088.212649) > 1e-3 {
		t.Errorf("radius_infl = %v, want ~1088.2126", resp.RadiusInfl)
	}
	if math.Abs(resp.InflowZone1-0.008962) > 1e-5 {
		t.Errorf("inflow_zone1 = %v, want ~0.008962", resp.InflowZone1)
	}
	if resp.InflowPrecipitation == nil {
		t.Error("inflow_precipitation missing for field scenario")
	}
	if resp.InflowMeltwater != nil {
		t.Error("inflow_meltwater present without melt periods")
	}
	if math.Abs(resp.InflowTotal-(resp.InflowZone1+resp.InflowZone2)) > 1e-12 {
		t.Errorf("inflow_total = %v, want zone1+zone2", resp.InflowTotal)
	}
}

func TestSolve_Thresholds(t *testing.T) {
	s := newTestServer(t)
	body := `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761},"thresholds":[1]}`
	w := post(t, s, "/api/v1/solve", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeSolve(t, w)
	if len(resp.Thresholds) != 1 {
		t.Fatalf("thresholds = %d entries, want 1", len(resp.Thresholds))
	}
	if math.Abs(resp.Thresholds[0].Radius-244.000377) > 1e-3 {
		t.Errorf("radius at 1 m = %v, want ~244.0004", resp.Thresholds[0].Radius)
	}
}

func TestSolve_SIScenario(t *testing.T) {
	s := newTestServer(t)
	si := SIParams{
		DrawdownStab: 6,
		RadiusEff:    math.Sqrt(4000 / math.Pi),
		Recharge:     761 / (1000 * 365.25 * 86400) * 0.1,
		CondH:        20.0 / 86400,
	}
	body, _ := json.Marshal(SolveRequest{SI: &si})
	w := post(t, s, "/api/v1/solve", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeSolve(t, w)
	if math.Abs(resp.RadiusInfl-1088.212649) > 1e-3 {
		t.Errorf("radius_infl = %v, want ~1088.2126", resp.RadiusInfl)
	}
	if resp.InflowPrecipitation != nil {
		t.Error("inflow_precipitation present for SI scenario")
	}
}

func TestSolve_Meltwater(t *testing.T) {
	s := newTestServer(t)
	body := `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761,` +
		`"period_snow_accumulation":90,"period_melting":30}}`
	w := post(t, s, "/api/v1/solve", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeSolve(t, w)
	if resp.InflowMeltwater == nil {
		t.Fatal("inflow_meltwater missing")
	}
	if resp.InflowPrecipitation == nil {
		t.Fatal("inflow_precipitation missing")
	}
	melt, precip := *resp.InflowMeltwater, *resp.InflowPrecipitation
	if math.Abs(melt-3*precip) > 1e-12 {
		t.Errorf("meltwater = %v, want 3x precipitation %v", melt, precip)
	}
}

func TestSolve_CacheHit(t *testing.T) {
	s := newTestServer(t)

	w1 := post(t, s, "/api/v1/solve", fieldBody())
	if got := w1.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("first request X-Cache = %q, want miss", got)
	}

	w2 := post(t, s, "/api/v1/solve", fieldBody())
	if got := w2.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second request X-Cache = %q, want hit", got)
	}
	if !bytes.Equal(w1.Body.Bytes(), w2.Body.Bytes()) {
		t.Error("cached response differs from computed response")
	}
}

func TestSolve_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "no parameters",
			body:     `{}`,
			wantCode: "INVALID_SCENARIO",
		},
		{
			name: "both field and si",
			body: `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761},` +
				`"si":{"drawdown_stab":6,"radius_eff":35,"recharge":1e-9,"cond_h":1e-4}}`,
			wantCode: "INVALID_SCENARIO",
		},
		{
			name:     "unknown field",
			body:     `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitacion":761}}`,
			wantCode: "INVALID_FORMAT",
		},
		{
			name:     "malformed json",
			body:     `{"field":`,
			wantCode: "INVALID_FORMAT",
		},
		{
			name:     "negative conductivity",
			body:     `{"field":{"drawdown_stab":6,"cond_h_md":-20,"area":4000,"precipitation":761}}`,
			wantCode: "INVALID_INPUT",
		},
		{
			name: "threshold above wall drawdown",
			body: `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761},` +
				`"thresholds":[7]}`,
			wantCode: "INVALID_INPUT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := post(t, s, "/api/v1/solve", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}
			var body errorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestSolve_NoConvergence(t *testing.T) {
	s := newTestServer(t)
	// Zero recharge has no influence-radius root.
	body := `{"si":{"drawdown_stab":6,"radius_eff":35.68,"recharge":0,"cond_h":2.3e-4}}`
	w := post(t, s, "/api/v1/solve", body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
	var eb errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &eb); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if eb.Error.Code != "ROOT_FINDING" {
		t.Errorf("error code = %q, want ROOT_FINDING", eb.Error.Code)
	}
}

func TestProfile_JSON(t *testing.T) {
	s := newTestServer(t)
	body := `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761},"samples":10}`
	w := post(t, s, "/api/v1/profile", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var series struct {
		Points []struct {
			Radius   float64 `json:"radius"`
			Drawdown float64 `json:"drawdown"`
		} `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &series); err != nil {
		t.Fatalf("decoding series: %v", err)
	}
	if len(series.Points) != 11 {
		t.Fatalf("points = %d, want 11", len(series.Points))
	}
	if series.Points[0].Drawdown != 6 {
		t.Errorf("drawdown at wall = %v, want 6", series.Points[0].Drawdown)
	}
	if last := series.Points[len(series.Points)-1]; last.Drawdown != 0 {
		t.Errorf("drawdown past influence boundary = %v, want 0", last.Drawdown)
	}
}

func TestProfile_SVG(t *testing.T) {
	s := newTestServer(t)
	body := `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761},` +
		`"samples":10,"format":"svg"}`
	w := post(t, s, "/api/v1/profile", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(w.Body.String(), "<svg") {
		t.Error("body is not an SVG document")
	}
}

func TestProfile_UnsupportedFormat(t *testing.T) {
	s := newTestServer(t)
	body := `{"field":{"drawdown_stab":6,"cond_h_md":20,"area":4000,"precipitation":761},"format":"png"}`
	w := post(t, s, "/api/v1/profile", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRequestID_Echoed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want fixed-id", got)
	}
}

func TestRequestID_Generated(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing from response")
	}
}
