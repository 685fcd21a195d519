package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/config"
)

const twoSpanBody = `{
	"condition": "two-span-unequal",
	"quantity": "bendingmoment",
	"load": 10,
	"beam": {
		"primary_span": 6,
		"secondary_span": 4,
		"material": {"name": "steel", "properties": {"EI": 2e9}}
	}
}`

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
		cfg.Burst = 100
	}
	return New(cfg, l.NewNopLoggerWrapper()).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestConditions(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/conditions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var conditions []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conditions))
	assert.Equal(t, []string{analysis.SimplySupportedCondition, analysis.TwoSpanUnequalCondition}, conditions)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyze(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodPost, "/api/analyze", twoSpanBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, analysis.BendingMoment, res.Equation.Analys)
	assert.EqualValues(t, 10, res.Load)
	assert.EqualValues(t, 1, res.Beam.DeflectionFactor)

	x, m := res.Equation.Max()
	assert.EqualValues(t, 6, x)
	assert.InDelta(t, 35, m, 0.01)
}

func TestAnalyzeAllAndReactions(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/analyze/all", twoSpanBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var all []analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, analysis.Deflection, all[0].Equation.Analys)

	rec = do(t, h, http.MethodPost, "/api/reactions", twoSpanBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var reactions analysis.Reactions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reactions))
	assert.InDelta(t, 100, reactions.Total(), 1e-9)
}

func TestChart(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodPost, "/api/chart", twoSpanBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestBadRequests(t *testing.T) {
	h := newTestServer(t, nil)

	for name, body := range map[string]string{
		"malformed":     `{"condition":`,
		"unknown field": `{"conditon": "simply-supported"}`,
		"condition":     `{"condition": "cantilever", "quantity": "deflection", "load": 1, "beam": {"primary_span": 4, "material": {"properties": {"EI": 1e9}}}}`,
		"quantity":      `{"condition": "simply-supported", "quantity": "torsion", "load": 1, "beam": {"primary_span": 4, "material": {"properties": {"EI": 1e9}}}}`,
		"geometry":      `{"condition": "simply-supported", "quantity": "deflection", "load": 1, "beam": {"primary_span": -4, "material": {"properties": {"EI": 1e9}}}}`,
		"no EI":         `{"condition": "simply-supported", "quantity": "deflection", "load": 1, "beam": {"primary_span": 4, "material": {"properties": {}}}}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/analyze", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)

		var res errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res), name)
		assert.NotEmpty(t, res.Error, name)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/analyze", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPreflight(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodOptions, "/api/analyze", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Rate = 0.001
	cfg.Burst = 2
	h := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/conditions", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/conditions", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/api/conditions", "").Code)
}
