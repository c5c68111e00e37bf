package server

import (
	"encoding/json"
	"net/http"

	"github.com/groundwaterkit/pitflow/pkg/cache"
	"github.com/groundwaterkit/pitflow/pkg/errors"
	"github.com/groundwaterkit/pitflow/pkg/profile"
)

// defaultProfileSamples is the sample count when the request omits it.
const defaultProfileSamples = 200

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	// Hash the decoded request, not the raw body, so formatting
	// differences between equivalent submissions still hit the cache.
	key := cache.Key("solve", req)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("X-Cache", "hit")
		s.writeRaw(w, http.StatusOK, "application/json", data)
		return
	} else if err != nil {
		s.logger.Warn("cache get failed", "error", err)
	}

	resp, err := s.solve(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encoding response"))
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Warn("cache set failed", "error", err)
	}
	w.Header().Set("X-Cache", "miss")
	s.writeRaw(w, http.StatusOK, "application/json", data)
}

// solve runs the numerical model for a validated request.
func (s *Server) solve(req SolveRequest) (*SolveResponse, error) {
	m, fieldCase, err := req.model()
	if err != nil {
		return nil, err
	}

	radiusInfl, err := m.RadiusOfInfluence()
	if err != nil {
		return nil, err
	}
	radiusFromEdge, err := m.RadiusFromEdge()
	if err != nil {
		return nil, err
	}
	zone1, err := m.InflowZone1()
	if err != nil {
		return nil, err
	}
	total, err := m.InflowTotal()
	if err != nil {
		return nil, err
	}

	resp := &SolveResponse{
		RadiusInfl:         radiusInfl,
		RadiusInflFromEdge: radiusFromEdge,
		InflowZone1:        zone1,
		InflowZone2:        m.InflowZone2(),
		InflowTotal:        total,
	}

	if fieldCase != nil {
		precip := fieldCase.InflowPrecipitation()
		resp.InflowPrecipitation = &precip
		if fieldCase.Field().SnowDays > 0 && fieldCase.Field().MeltDays > 0 {
			melt, err := fieldCase.InflowMeltwater()
			if err != nil {
				return nil, err
			}
			resp.InflowMeltwater = &melt
		}
	}

	for _, threshold := range req.Thresholds {
		radius, err := m.RadiusAtDrawdown(threshold)
		if err != nil {
			return nil, err
		}
		resp.Thresholds = append(resp.Thresholds, ThresholdResult{
			Threshold: threshold,
			Radius:    radius,
		})
	}
	return resp, nil
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	m, _, err := req.model()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	samples := req.Samples
	if samples == 0 {
		samples = defaultProfileSamples
	}

	var series profile.Series
	if req.Span > 0 {
		series, err = profile.Sample(m, req.Span, samples)
	} else {
		series, err = profile.SampleToInfluence(m, samples)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch req.Format {
	case "", "json":
		s.writeJSON(w, http.StatusOK, series)
	case "svg":
		s.writeRaw(w, http.StatusOK, "image/svg+xml", profile.RenderSVG(series))
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported profile format %q (want json or svg)", req.Format))
	}
}

// decodeBody parses a JSON request body, rejecting unknown fields so
// typos in parameter names fail loudly instead of defaulting to zero.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding request body")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}

func (s *Server) writeRaw(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"id", r.Context().Value(requestIDKey), "error", err)
	}
	s.writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps error codes to HTTP status codes. Non-convergence is a
// 422: the request was well-formed but the scenario has no solution at
// the given guess.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScenario, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeRootFinding:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
