package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"effectsize/adapters/rng"
	"effectsize/app"
	"effectsize/domain/report"
	"effectsize/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	service := app.NewAnalysisService(rng.NewSeededAdapter(), nil)
	return NewServer(service, nil, config.AnalysisConfig{Coverage: 0.95, Resamples: 1000, Seed: 42})
}

func postAnalysis(t *testing.T, s *Server, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateAnalysis(t *testing.T) {
	s := newTestServer()

	t.Run("computes a report for inline samples", func(t *testing.T) {
		rec := postAnalysis(t, s, map[string]interface{}{
			"xs":     []float64{1, 2, 3, 4, 5},
			"ys":     []float64{2, 3, 4, 5, 6},
			"method": "normal",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var payload report.Payload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, report.MethodNormal, payload.Method)
		assert.Len(t, payload.Results, 3)
		for _, res := range payload.Results {
			assert.LessOrEqual(t, res.Interval.Lower, res.Interval.Upper)
		}
	})

	t.Run("configured resample default applies when the body omits one", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		service := app.NewAnalysisService(rng.NewSeededAdapter(), nil)
		srv := NewServer(service, nil, config.AnalysisConfig{Coverage: 0.95, Resamples: 50, Seed: 42})

		rec := postAnalysis(t, srv, map[string]interface{}{
			"xs":     []float64{1, 2, 3, 4, 5},
			"ys":     []float64{2, 3, 4, 5, 6},
			"method": "bootstrap",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var payload report.Payload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, 50, payload.Resamples)

		rec = postAnalysis(t, srv, map[string]interface{}{
			"xs":        []float64{1, 2, 3, 4, 5},
			"ys":        []float64{2, 3, 4, 5, 6},
			"method":    "bootstrap",
			"resamples": 75,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, 75, payload.Resamples)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		rec := postAnalysis(t, s, map[string]interface{}{
			"xs":     []float64{1, 2, 3},
			"ys":     []float64{2, 3, 4},
			"method": "jackknife",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid coverage rejected as bad request", func(t *testing.T) {
		rec := postAnalysis(t, s, map[string]interface{}{
			"xs":       []float64{1, 2, 3},
			"ys":       []float64{2, 3, 4},
			"method":   "normal",
			"coverage": 1.5,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing samples rejected", func(t *testing.T) {
		rec := postAnalysis(t, s, map[string]interface{}{
			"ys": []float64{2, 3, 4},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("fetch endpoints require persistence", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/analyses/some-id", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}
